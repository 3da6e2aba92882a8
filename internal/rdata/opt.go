package rdata

import (
	"github.com/mkortas/dnsq/internal/errors"
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/wire"
)

// Option is one {option-code, option-data} pair in an OPT record's RDATA.
type Option struct {
	Code uint16
	Data []byte
}

// OPT is the EDNS0 pseudo-record (RFC 6891 §6.1). It shares the ordinary
// resource-record framing but reinterprets three of its fields: CLASS
// becomes the requestor's UDP payload size, and TTL is sub-structured
// into an extended RCODE, version, DO flag and reserved Z bits. The
// message-assembly layer is responsible for enforcing NAME = root and
// TYPE = 41 when building or validating an OPT record; this type owns
// only the CLASS/TTL/RDATA reinterpretation.
type OPT struct {
	UDPPayloadSize uint16
	ExtendedRcode  uint8
	Version        uint8
	DO             bool
	Z              uint16 // 15 bits
	Options        []Option
}

func (o *OPT) Type() protocol.RRType { return protocol.TypeOPT }

// TTLWord packs ExtendedRcode/Version/DO/Z into the 32-bit TTL field.
func (o *OPT) TTLWord() uint32 {
	var v uint32
	v |= uint32(o.ExtendedRcode) << 24
	v |= uint32(o.Version) << 16
	if o.DO {
		v |= 1 << 15
	}
	v |= uint32(o.Z) & 0x7FFF
	return v
}

// DecodeOPTTTL unpacks a 32-bit TTL field per the OPT reinterpretation.
func DecodeOPTTTL(v uint32) (extendedRcode, version uint8, do bool, z uint16) {
	extendedRcode = uint8(v >> 24)
	version = uint8(v >> 16)
	do = v&(1<<15) != 0
	z = uint16(v & 0x7FFF)
	return
}

func (o *OPT) EncodeRDATA(w *wire.Writer) error {
	for _, opt := range o.Options {
		w.PutUint16(opt.Code)
		w.PutUint16(uint16(len(opt.Data)))
		w.PutBytes(opt.Data)
	}
	return nil
}

// DecodeOPTOptions reads zero or more option triples until rdlength is
// exhausted.
func DecodeOPTOptions(r *wire.Reader, rdlength int) ([]Option, error) {
	end := r.Pos() + rdlength
	var opts []Option
	for r.Pos() < end {
		code, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		length, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		data, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		opts = append(opts, Option{Code: code, Data: data})
	}
	if r.Pos() != end {
		return nil, &errors.MalformedNameError{Offset: end, Message: "OPT RDATA did not align to RDLENGTH"}
	}
	return opts, nil
}

// NewDefaultOPT builds the OPT record this resolver appends to outbound
// queries by default: version 0, DO off, the given UDP payload size, no
// options.
func NewDefaultOPT(udpPayloadSize uint16) *OPT {
	return &OPT{UDPPayloadSize: udpPayloadSize}
}
