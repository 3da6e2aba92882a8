package message

import (
	"crypto/rand"
	"encoding/binary"

	dnserrors "github.com/mkortas/dnsq/internal/errors"
	"github.com/mkortas/dnsq/internal/names"
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/rdata"
)

// QueryOptions configures NewQuery. A zero-value QueryOptions asks for
// class IN with EDNS0 enabled at the default payload size.
type QueryOptions struct {
	Class          protocol.RRClass
	DisableOPT     bool
	UDPPayloadSize uint16
}

// NewQuery builds a well-formed query message for domain/qtype: a
// random 16-bit transaction ID, packet type = query, opcode = standard
// query, RD = true, all other flags false, rcode = NoError, a single
// question, and (unless disabled) a default OPT pseudo-record appended
// to additionals.
func NewQuery(domain string, qtype protocol.RRType, opts QueryOptions) (Message, error) {
	name, err := names.NewName(domain)
	if err != nil {
		return Message{}, err
	}
	if name.EncodedLen() > protocol.MaxNameLength {
		return Message{}, &dnserrors.DomainNameTooLongError{
			Name:     name.String(),
			Encoded:  name.EncodedLen(),
			MaxBytes: protocol.MaxNameLength,
		}
	}

	class := opts.Class
	if class == 0 {
		class = protocol.ClassIN
	}

	id, err := randomTransactionID()
	if err != nil {
		return Message{}, err
	}

	m := Message{
		ID: id,
		Flags: protocol.Flags{
			Response: false,
			Opcode:   protocol.OpQuery,
			RD:       true,
			Rcode:    protocol.RCodeNoError,
		},
		Questions: []Question{{Name: name, Type: qtype, Class: class}},
	}

	if !opts.DisableOPT {
		payloadSize := opts.UDPPayloadSize
		if payloadSize == 0 {
			payloadSize = protocol.DefaultUDPPayloadSize
		}
		opt := rdata.NewDefaultOPT(payloadSize)
		m.Additionals = append(m.Additionals, ResourceRecord{
			Name:  names.Name{},
			Type:  protocol.TypeOPT,
			Class: protocol.RRClass(payloadSize),
			TTL:   opt.TTLWord(),
			RData: opt,
		})
	}

	return m, nil
}

// randomTransactionID picks a 16-bit value unique enough to correlate a
// reply with its query. Uniqueness, not unpredictability, is all the
// protocol needs from this client.
func randomTransactionID() (uint16, error) {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}
