package rdata

import (
	"github.com/mkortas/dnsq/internal/errors"
	"github.com/mkortas/dnsq/internal/names"
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/wire"
)

// RData is the polymorphic RDATA payload of a resource record: its
// decoder is chosen at run time from the sibling RR-type field.
type RData interface {
	Type() protocol.RRType
	EncodeRDATA(w *wire.Writer) error
}

// A is the 4-octet IPv4 address RDATA of an A record.
type A struct {
	Address []byte
}

func (r *A) Type() protocol.RRType { return protocol.TypeA }
func (r *A) layout() []FieldCodec  { return []FieldCodec{fixedBytesField(&r.Address, 4)} }
func (r *A) EncodeRDATA(w *wire.Writer) error { return EncodeLayout(w, r.layout()) }

func decodeA(r *wire.Reader, rdlength int) (RData, error) {
	if rdlength != 4 {
		return nil, &errors.MalformedNameError{Offset: r.Pos(), Message: "A record RDLENGTH must be 4"}
	}
	rec := &A{}
	if err := DecodeLayout(r, rec.layout()); err != nil {
		return nil, err
	}
	return rec, nil
}

// AAAA is the 16-octet IPv6 address RDATA of an AAAA record.
type AAAA struct {
	Address []byte
}

func (r *AAAA) Type() protocol.RRType { return protocol.TypeAAAA }
func (r *AAAA) layout() []FieldCodec  { return []FieldCodec{fixedBytesField(&r.Address, 16)} }
func (r *AAAA) EncodeRDATA(w *wire.Writer) error { return EncodeLayout(w, r.layout()) }

func decodeAAAA(r *wire.Reader, rdlength int) (RData, error) {
	if rdlength != 16 {
		return nil, &errors.MalformedNameError{Offset: r.Pos(), Message: "AAAA record RDLENGTH must be 16"}
	}
	rec := &AAAA{}
	if err := DecodeLayout(r, rec.layout()); err != nil {
		return nil, err
	}
	return rec, nil
}

// nameRecord is the shared shape of NS, CNAME and PTR: a single domain
// name. The concrete RR type is carried separately so Type() can report
// the right tag for each of the three wire types.
type nameRecord struct {
	rrType protocol.RRType
	Name   names.Name
}

func (r *nameRecord) Type() protocol.RRType { return r.rrType }
func (r *nameRecord) layout() []FieldCodec  { return []FieldCodec{nField(&r.Name)} }
func (r *nameRecord) EncodeRDATA(w *wire.Writer) error { return EncodeLayout(w, r.layout()) }

// NS wraps nameRecord with the NS tag, so callers can type-assert *NS
// rather than inspecting rrType.
type NS struct{ nameRecord }

func newNS(n names.Name) *NS { return &NS{nameRecord{protocol.TypeNS, n}} }

func decodeNS(r *wire.Reader, rdlength int) (RData, error) {
	rec := newNS(names.Name{})
	if err := DecodeLayout(r, rec.layout()); err != nil {
		return nil, err
	}
	return rec, nil
}

// CNAME wraps nameRecord with the CNAME tag.
type CNAME struct{ nameRecord }

func newCNAME(n names.Name) *CNAME { return &CNAME{nameRecord{protocol.TypeCNAME, n}} }

func decodeCNAME(r *wire.Reader, rdlength int) (RData, error) {
	rec := newCNAME(names.Name{})
	if err := DecodeLayout(r, rec.layout()); err != nil {
		return nil, err
	}
	return rec, nil
}

// PTR wraps nameRecord with the PTR tag.
type PTR struct{ nameRecord }

func newPTR(n names.Name) *PTR { return &PTR{nameRecord{protocol.TypePTR, n}} }

func decodePTR(r *wire.Reader, rdlength int) (RData, error) {
	rec := newPTR(names.Name{})
	if err := DecodeLayout(r, rec.layout()); err != nil {
		return nil, err
	}
	return rec, nil
}

// MX is the preference/exchange RDATA of an MX record.
type MX struct {
	Preference uint16
	Exchange   names.Name
}

func (r *MX) Type() protocol.RRType { return protocol.TypeMX }
func (r *MX) layout() []FieldCodec {
	return []FieldCodec{u16Field(&r.Preference), nField(&r.Exchange)}
}
func (r *MX) EncodeRDATA(w *wire.Writer) error { return EncodeLayout(w, r.layout()) }

func decodeMX(r *wire.Reader, rdlength int) (RData, error) {
	rec := &MX{}
	if err := DecodeLayout(r, rec.layout()); err != nil {
		return nil, err
	}
	return rec, nil
}

// SOA is the start-of-authority RDATA.
type SOA struct {
	MName   names.Name
	RName   names.Name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (r *SOA) Type() protocol.RRType { return protocol.TypeSOA }
func (r *SOA) layout() []FieldCodec {
	return []FieldCodec{
		nField(&r.MName), nField(&r.RName),
		u32Field(&r.Serial), u32Field(&r.Refresh), u32Field(&r.Retry),
		u32Field(&r.Expire), u32Field(&r.Minimum),
	}
}
func (r *SOA) EncodeRDATA(w *wire.Writer) error { return EncodeLayout(w, r.layout()) }

func decodeSOA(r *wire.Reader, rdlength int) (RData, error) {
	rec := &SOA{}
	if err := DecodeLayout(r, rec.layout()); err != nil {
		return nil, err
	}
	return rec, nil
}

// HINFO is the cpu/os RDATA of a HINFO record.
type HINFO struct {
	CPU names.CharString
	OS  names.CharString
}

func (r *HINFO) Type() protocol.RRType { return protocol.TypeHINFO }
func (r *HINFO) layout() []FieldCodec {
	return []FieldCodec{csField(&r.CPU), csField(&r.OS)}
}
func (r *HINFO) EncodeRDATA(w *wire.Writer) error { return EncodeLayout(w, r.layout()) }

func decodeHINFO(r *wire.Reader, rdlength int) (RData, error) {
	rec := &HINFO{}
	if err := DecodeLayout(r, rec.layout()); err != nil {
		return nil, err
	}
	return rec, nil
}

// TXT is one or more character strings, consumed until RDLENGTH is
// exhausted (RFC 1035 §3.3.14).
type TXT struct {
	Strings []names.CharString
}

func (r *TXT) Type() protocol.RRType { return protocol.TypeTXT }

func (r *TXT) EncodeRDATA(w *wire.Writer) error {
	for _, s := range r.Strings {
		if err := names.EncodeCharString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func decodeTXT(r *wire.Reader, rdlength int) (RData, error) {
	end := r.Pos() + rdlength
	rec := &TXT{}
	for r.Pos() < end {
		s, err := names.DecodeCharString(r)
		if err != nil {
			return nil, err
		}
		rec.Strings = append(rec.Strings, s)
	}
	if r.Pos() != end {
		return nil, &errors.MalformedNameError{Offset: end, Message: "TXT RDATA did not align to RDLENGTH"}
	}
	return rec, nil
}

// SRV is the priority/weight/port/target RDATA (RFC 2782). Not part of
// the RFC 1035 core, but common enough in ordinary unicast resolution
// (service discovery) to warrant a typed decoder rather than falling
// back to Opaque.
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   names.Name
}

func (r *SRV) Type() protocol.RRType { return protocol.TypeSRV }
func (r *SRV) layout() []FieldCodec {
	return []FieldCodec{
		u16Field(&r.Priority), u16Field(&r.Weight), u16Field(&r.Port), nField(&r.Target),
	}
}
func (r *SRV) EncodeRDATA(w *wire.Writer) error { return EncodeLayout(w, r.layout()) }

func decodeSRV(r *wire.Reader, rdlength int) (RData, error) {
	rec := &SRV{}
	if err := DecodeLayout(r, rec.layout()); err != nil {
		return nil, err
	}
	return rec, nil
}

// Opaque preserves the raw RDATA bytes of any RR type this package does
// not model explicitly, so the outer message still round-trips.
type Opaque struct {
	rrType protocol.RRType
	Data   []byte
}

func (r *Opaque) Type() protocol.RRType { return r.rrType }
func (r *Opaque) EncodeRDATA(w *wire.Writer) error {
	w.PutBytes(r.Data)
	return nil
}

func decodeOpaque(t protocol.RRType, r *wire.Reader, rdlength int) (RData, error) {
	data, err := r.ReadBytes(rdlength)
	if err != nil {
		return nil, err
	}
	return &Opaque{rrType: t, Data: data}, nil
}
