package message

import (
	dnserrors "github.com/mkortas/dnsq/internal/errors"
	"github.com/mkortas/dnsq/internal/names"
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/rdata"
	"github.com/mkortas/dnsq/internal/wire"
)

func encodeQuestion(w *wire.Writer, q Question) error {
	if err := names.Encode(w, q.Name); err != nil {
		return err
	}
	w.PutUint16(uint16(q.Type))
	w.PutUint16(uint16(q.Class))
	return nil
}

func decodeQuestion(r *wire.Reader) (Question, error) {
	name, err := names.Decode(r)
	if err != nil {
		return Question{}, err
	}
	rawType, err := r.ReadUint16()
	if err != nil {
		return Question{}, err
	}
	t, err := protocol.ParseRRType(rawType)
	if err != nil {
		return Question{}, err
	}
	rawClass, err := r.ReadUint16()
	if err != nil {
		return Question{}, err
	}
	c, err := protocol.ParseRRClass(rawClass)
	if err != nil {
		return Question{}, err
	}
	return Question{Name: name, Type: t, Class: c}, nil
}

func encodeRR(w *wire.Writer, rr ResourceRecord) error {
	if err := names.Encode(w, rr.Name); err != nil {
		return err
	}
	w.PutUint16(uint16(rr.Type))
	w.PutUint16(uint16(rr.Class))
	w.PutUint32(rr.TTL)
	lenOffset := w.Reserve(2)
	before := w.Len()
	if err := rr.RData.EncodeRDATA(w); err != nil {
		return err
	}
	w.PatchUint16(lenOffset, uint16(w.Len()-before))
	return nil
}

// decodeRR reads one resource record. The RR-type enum is looked up
// strictly (protocol.ParseRRType): an unregistered numeric type is a
// protocol error, since the record's own layout can't be determined
// without it. The CLASS field is validated against the closed class
// enum for ordinary records; for OPT it is left as the raw UDP payload
// size, since OPT repurposes the bits entirely (RFC 6891 §6.1.3).
func decodeRR(r *wire.Reader) (ResourceRecord, error) {
	name, err := names.Decode(r)
	if err != nil {
		return ResourceRecord{}, err
	}
	rawType, err := r.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}
	t, err := protocol.ParseRRType(rawType)
	if err != nil {
		return ResourceRecord{}, err
	}
	rawClass, err := r.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}

	var class protocol.RRClass
	if t == protocol.TypeOPT {
		if len(name.Labels) != 0 {
			return ResourceRecord{}, &dnserrors.MalformedNameError{
				Offset:  r.Pos(),
				Message: "OPT record NAME must be root",
			}
		}
		class = protocol.RRClass(rawClass)
	} else {
		class, err = protocol.ParseRRClass(rawClass)
		if err != nil {
			return ResourceRecord{}, err
		}
	}

	ttl, err := r.ReadUint32()
	if err != nil {
		return ResourceRecord{}, err
	}
	rdlen, err := r.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}

	var rd rdata.RData
	if t == protocol.TypeOPT {
		opts, err := rdata.DecodeOPTOptions(r, int(rdlen))
		if err != nil {
			return ResourceRecord{}, err
		}
		extRcode, version, do, z := rdata.DecodeOPTTTL(ttl)
		rd = &rdata.OPT{
			UDPPayloadSize: uint16(class),
			ExtendedRcode:  extRcode,
			Version:        version,
			DO:             do,
			Z:              z,
			Options:        opts,
		}
	} else {
		rdataStart := r.Pos()
		rd, err = rdata.DecodeRDATA(t, r, int(rdlen))
		if err != nil {
			return ResourceRecord{}, err
		}
		if r.Pos() != rdataStart+int(rdlen) {
			return ResourceRecord{}, &dnserrors.MalformedNameError{
				Offset:  r.Pos(),
				Message: "RDATA did not align to RDLENGTH",
			}
		}
	}

	return ResourceRecord{Name: name, Type: t, Class: class, TTL: ttl, RData: rd}, nil
}

// checkOPTPlacement enforces the OPT cardinality invariant: at most one
// OPT pseudo-record per message, and only in the additionals section.
func checkOPTPlacement(m Message) error {
	for _, section := range [][]ResourceRecord{m.Answers, m.Authorities} {
		for _, rr := range section {
			if rr.Type == protocol.TypeOPT {
				return &dnserrors.MalformedNameError{
					Offset:  0,
					Message: "OPT record outside the additionals section",
				}
			}
		}
	}
	seen := false
	for _, rr := range m.Additionals {
		if rr.Type != protocol.TypeOPT {
			continue
		}
		if seen {
			return &dnserrors.MalformedNameError{
				Offset:  0,
				Message: "more than one OPT record in message",
			}
		}
		seen = true
	}
	return nil
}

// Encode serializes m into a fresh octet buffer. Section counts are
// derived from the in-memory section lengths, never carried as separate
// mutable state.
func Encode(m Message) ([]byte, error) {
	w := wire.NewWriter()
	h := protocol.Header{
		ID:      m.ID,
		Flags:   m.Flags,
		QDCount: uint16(len(m.Questions)),
		ANCount: uint16(len(m.Answers)),
		NSCount: uint16(len(m.Authorities)),
		ARCount: uint16(len(m.Additionals)),
	}
	h.Encode(w)

	for _, q := range m.Questions {
		if err := encodeQuestion(w, q); err != nil {
			return nil, err
		}
	}
	for _, sections := range [][]ResourceRecord{m.Answers, m.Authorities, m.Additionals} {
		for _, rr := range sections {
			if err := encodeRR(w, rr); err != nil {
				return nil, err
			}
		}
	}
	return w.Bytes(), nil
}

// Decode parses a full message from raw. A wire-decode error anywhere
// aborts the whole message; partial messages are never returned. A
// non-zero response code does not abort decode; it is surfaced to the
// caller as ResponseRcodeError alongside the otherwise well-formed
// message.
func Decode(raw []byte) (Message, error) {
	r := wire.NewReader(raw)
	h, err := protocol.DecodeHeader(r)
	if err != nil {
		return Message{}, err
	}

	m := Message{ID: h.ID, Flags: h.Flags}

	m.Questions = make([]Question, 0, h.QDCount)
	for i := uint16(0); i < h.QDCount; i++ {
		q, err := decodeQuestion(r)
		if err != nil {
			return Message{}, err
		}
		m.Questions = append(m.Questions, q)
	}

	for _, dst := range []struct {
		count uint16
		recs  *[]ResourceRecord
	}{
		{h.ANCount, &m.Answers},
		{h.NSCount, &m.Authorities},
		{h.ARCount, &m.Additionals},
	} {
		*dst.recs = make([]ResourceRecord, 0, dst.count)
		for i := uint16(0); i < dst.count; i++ {
			rr, err := decodeRR(r)
			if err != nil {
				return Message{}, err
			}
			*dst.recs = append(*dst.recs, rr)
		}
	}

	if len(m.Questions) != int(h.QDCount) || len(m.Answers) != int(h.ANCount) ||
		len(m.Authorities) != int(h.NSCount) || len(m.Additionals) != int(h.ARCount) {
		return Message{}, &dnserrors.ShortReadError{Operation: "decode message sections", Offset: r.Pos()}
	}

	if err := checkOPTPlacement(m); err != nil {
		return Message{}, err
	}

	if h.Flags.Response && h.Flags.Rcode != protocol.RCodeNoError {
		return m, &dnserrors.ResponseRcodeError{Code: uint8(h.Flags.Rcode), Name: h.Flags.Rcode.String()}
	}
	return m, nil
}
