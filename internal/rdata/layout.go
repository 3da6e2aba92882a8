// Package rdata implements the typed RDATA payloads of the record types
// this resolver decodes, plus the EDNS0 OPT pseudo-record (RFC 6891)
// and an opaque fallback for every RR type not modeled explicitly.
//
// Each aggregate type describes its wire form as an ordered list of
// FieldCodecs: the engine below invokes them in source order on encode
// and decode, so adding a new fixed-shape record type is a matter of
// declaring its field list once.
package rdata

import (
	"github.com/mkortas/dnsq/internal/names"
	"github.com/mkortas/dnsq/internal/wire"
)

// FieldCodec is one field's encode/decode pair within an aggregate's
// Layout. A field closes over the address of the struct field it reads
// from or writes into.
type FieldCodec interface {
	EncodeField(w *wire.Writer) error
	DecodeField(r *wire.Reader) error
}

// EncodeLayout writes every field of layout to w in order.
func EncodeLayout(w *wire.Writer, layout []FieldCodec) error {
	for _, f := range layout {
		if err := f.EncodeField(w); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLayout reads every field of layout from r in order.
func DecodeLayout(r *wire.Reader, layout []FieldCodec) error {
	for _, f := range layout {
		if err := f.DecodeField(r); err != nil {
			return err
		}
	}
	return nil
}

type uint16Field struct{ p *uint16 }

func u16Field(p *uint16) FieldCodec { return uint16Field{p} }
func (f uint16Field) EncodeField(w *wire.Writer) error {
	w.PutUint16(*f.p)
	return nil
}
func (f uint16Field) DecodeField(r *wire.Reader) error {
	v, err := r.ReadUint16()
	if err != nil {
		return err
	}
	*f.p = v
	return nil
}

type uint32Field struct{ p *uint32 }

func u32Field(p *uint32) FieldCodec { return uint32Field{p} }
func (f uint32Field) EncodeField(w *wire.Writer) error {
	w.PutUint32(*f.p)
	return nil
}
func (f uint32Field) DecodeField(r *wire.Reader) error {
	v, err := r.ReadUint32()
	if err != nil {
		return err
	}
	*f.p = v
	return nil
}

type bytesField struct {
	p *[]byte
	n int
}

func fixedBytesField(p *[]byte, n int) FieldCodec { return bytesField{p, n} }
func (f bytesField) EncodeField(w *wire.Writer) error {
	w.PutBytes(*f.p)
	return nil
}
func (f bytesField) DecodeField(r *wire.Reader) error {
	v, err := r.ReadBytes(f.n)
	if err != nil {
		return err
	}
	*f.p = v
	return nil
}

type nameField struct{ p *names.Name }

func nField(p *names.Name) FieldCodec { return nameField{p} }
func (f nameField) EncodeField(w *wire.Writer) error {
	return names.Encode(w, *f.p)
}
func (f nameField) DecodeField(r *wire.Reader) error {
	n, err := names.Decode(r)
	if err != nil {
		return err
	}
	*f.p = n
	return nil
}

type charStringField struct{ p *names.CharString }

func csField(p *names.CharString) FieldCodec { return charStringField{p} }
func (f charStringField) EncodeField(w *wire.Writer) error {
	return names.EncodeCharString(w, *f.p)
}
func (f charStringField) DecodeField(r *wire.Reader) error {
	cs, err := names.DecodeCharString(r)
	if err != nil {
		return err
	}
	*f.p = cs
	return nil
}
