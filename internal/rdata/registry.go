package rdata

import (
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/wire"
)

type decoderFunc func(r *wire.Reader, rdlength int) (RData, error)

// registry maps a known RR type to its typed decoder. A type present in
// protocol's closed RRType enum but absent here still decodes, via
// DecodeRDATA's opaque fallback below. The two "unknown" concepts are
// deliberately distinct (see protocol.RRType's doc comment).
var registry = map[protocol.RRType]decoderFunc{
	protocol.TypeA:     decodeA,
	protocol.TypeNS:    decodeNS,
	protocol.TypeCNAME: decodeCNAME,
	protocol.TypeSOA:   decodeSOA,
	protocol.TypePTR:   decodePTR,
	protocol.TypeHINFO: decodeHINFO,
	protocol.TypeMX:    decodeMX,
	protocol.TypeTXT:   decodeTXT,
	protocol.TypeAAAA:  decodeAAAA,
	protocol.TypeSRV:   decodeSRV,
}

// DecodeRDATA selects a decoder by RR type and invokes it on the next
// rdlength octets, falling back to an opaque byte run for any type this
// package does not model.
func DecodeRDATA(t protocol.RRType, r *wire.Reader, rdlength int) (RData, error) {
	if dec, ok := registry[t]; ok {
		return dec(r, rdlength)
	}
	return decodeOpaque(t, r, rdlength)
}
