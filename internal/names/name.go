// Package names implements the domain-name and character-string codecs:
// length-prefixed labels terminated by the root label, with pointer-based
// compression on decode (RFC 1035 §3.1, §4.1.4).
package names

import (
	"strings"

	"github.com/mkortas/dnsq/internal/errors"
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/wire"
)

// Name is an ordered sequence of labels, root-terminated implicitly (the
// root label itself is never stored as an element; an empty Labels slice
// denotes the root name).
type Name struct {
	Labels []string
}

// NewName builds a Name from a dotted presentation string such as
// "www.google.ie". A single trailing dot (a fully-qualified form) is
// tolerated and stripped; an empty string is rejected.
func NewName(s string) (Name, error) {
	if s == "" {
		return Name{}, &errors.EmptyDomainNameError{}
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return Name{}, &errors.EmptyDomainNameError{}
	}
	labels := strings.Split(s, ".")
	return Name{Labels: labels}, nil
}

// EncodedLen returns the number of octets Name would occupy on the wire,
// including every length octet and the terminating zero.
func (n Name) EncodedLen() int {
	total := 1 // terminating zero
	for _, l := range n.Labels {
		total += 1 + len(l)
	}
	return total
}

// String renders the name in dotted presentation form; the root name
// renders as ".".
func (n Name) String() string {
	if len(n.Labels) == 0 {
		return "."
	}
	return strings.Join(n.Labels, ".")
}

// Encode writes the name to w as length-prefixed labels terminated by a
// zero octet. No compression is ever emitted: a client issuing a single
// question per query gains nothing from it.
func Encode(w *wire.Writer, n Name) error {
	for _, label := range n.Labels {
		if len(label) == 0 || len(label) > protocol.MaxLabelLength {
			return &errors.MalformedNameError{
				Offset:  w.Len(),
				Message: "label length out of range [1,63]",
			}
		}
		w.PutUint8(uint8(len(label)))
		w.PutBytes([]byte(label))
	}
	if n.EncodedLen() > protocol.MaxNameLength {
		return &errors.DomainNameTooLongError{
			Name:     n.String(),
			Encoded:  n.EncodedLen(),
			MaxBytes: protocol.MaxNameLength,
		}
	}
	w.PutUint8(0)
	return nil
}

// Decode reads a name starting at r's current position, following
// compression pointers per RFC 1035 §4.1.4. On return r is positioned
// just past the structural end of the name on the wire: past the
// terminating zero octet, or past the two-octet pointer that replaced the
// name's tail, whichever applies. It is never left past a followed
// pointer's target.
func Decode(r *wire.Reader) (Name, error) {
	msg := r.Msg()
	start := r.Pos()

	var labels []string
	pos := start
	jumped := false
	finalPos := start
	jumps := 0
	totalLen := 0

	for {
		if pos >= len(msg) {
			return Name{}, &errors.ShortReadError{
				Operation: "decode name",
				Offset:    pos,
				Need:      1,
				Have:      0,
			}
		}
		lengthByte := msg[pos]

		switch lengthByte & protocol.CompressionPointerMask {
		case protocol.CompressionPointerMask: // top two bits "11": pointer
			if pos+1 >= len(msg) {
				return Name{}, &errors.ShortReadError{
					Operation: "decode name pointer",
					Offset:    pos,
					Need:      2,
					Have:      len(msg) - pos,
				}
			}
			q := int(lengthByte&^protocol.CompressionPointerMask)<<8 | int(msg[pos+1])
			if q >= pos {
				return Name{}, &errors.MalformedNameError{
					Offset:  pos,
					Message: "compression pointer does not point strictly backward",
				}
			}
			if !jumped {
				finalPos = pos + 2
				jumped = true
			}
			jumps++
			if jumps > protocol.MaxCompressionPointers {
				return Name{}, &errors.MalformedNameError{
					Offset:  pos,
					Message: "too many compression pointer hops",
				}
			}
			pos = q
			continue

		case 0x00: // top two bits "00": ordinary label (or the terminator if length is 0)
			length := int(lengthByte)
			if length == 0 {
				if !jumped {
					finalPos = pos + 1
				}
				r.Seek(finalPos)
				return Name{Labels: labels}, nil
			}
			if pos+1+length > len(msg) {
				return Name{}, &errors.ShortReadError{
					Operation: "decode name label",
					Offset:    pos + 1,
					Need:      length,
					Have:      len(msg) - pos - 1,
				}
			}
			label := string(msg[pos+1 : pos+1+length])
			labels = append(labels, label)
			totalLen += 1 + length
			if totalLen+1 > protocol.MaxNameLength {
				return Name{}, &errors.MalformedNameError{
					Offset:  pos,
					Message: "name exceeds 255 octets",
				}
			}
			pos += 1 + length
			continue

		default: // "01" or "10": reserved, invalid
			return Name{}, &errors.MalformedNameError{
				Offset:  pos,
				Message: "reserved label-length bit pattern",
			}
		}
	}
}
