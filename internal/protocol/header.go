package protocol

import "github.com/mkortas/dnsq/internal/wire"

// Header is the fixed 12-octet DNS message header (RFC 1035 §4.1.1). The
// four *Count fields describe the length of the corresponding section as
// it appears on the wire; the message-assembly layer is responsible for
// keeping them consistent with the sections it actually encodes/decodes.
type Header struct {
	ID      uint16
	Flags   Flags
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// Encode appends the 12-byte wire form of h to w.
func (h Header) Encode(w *wire.Writer) {
	w.PutUint16(h.ID)
	w.PutUint16(h.Flags.Encode())
	w.PutUint16(h.QDCount)
	w.PutUint16(h.ANCount)
	w.PutUint16(h.NSCount)
	w.PutUint16(h.ARCount)
}

// DecodeHeader reads the fixed 12-byte header from r.
func DecodeHeader(r *wire.Reader) (Header, error) {
	var h Header
	id, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	rawFlags, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	qd, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	an, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	ns, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	ar, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	h.ID = id
	h.Flags = DecodeFlags(rawFlags)
	h.QDCount = qd
	h.ANCount = an
	h.NSCount = ns
	h.ARCount = ar
	return h, nil
}
