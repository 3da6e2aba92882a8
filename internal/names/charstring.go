package names

import (
	"unicode/utf8"

	"github.com/mkortas/dnsq/internal/errors"
	"github.com/mkortas/dnsq/internal/wire"
)

// CharString is a length-prefixed octet sequence (RFC 1035 §3.3), used by
// TXT and HINFO RDATA. Decode never validates its contents as text; wire
// transparency requires the codec preserve whatever bytes were sent. Use
// Text to opt into UTF-8 validation when display actually needs it.
type CharString []byte

// EncodeCharString writes a single length-prefixed string to w.
func EncodeCharString(w *wire.Writer, s CharString) error {
	if len(s) > 255 {
		return &errors.MalformedNameError{
			Offset:  w.Len(),
			Message: "character-string longer than 255 octets",
		}
	}
	w.PutUint8(uint8(len(s)))
	w.PutBytes(s)
	return nil
}

// DecodeCharString reads a single length-prefixed string from r, advancing
// the cursor by length+1 from its current position, never seeking to a
// fixed offset.
func DecodeCharString(r *wire.Reader) (CharString, error) {
	length, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	data, err := r.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}
	return CharString(data), nil
}

// Text validates s as UTF-8 and returns it as a string, for callers that
// explicitly need textual display rather than raw bytes.
func (s CharString) Text(field string) (string, error) {
	if !utf8.Valid(s) {
		return "", &errors.NonUTF8TextError{Field: field}
	}
	return string(s), nil
}
