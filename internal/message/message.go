// Package message implements message assembly: header construction,
// question/RR sections, and the end-to-end query-serialize / response-
// parse pipeline.
package message

import (
	"github.com/mkortas/dnsq/internal/names"
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/rdata"
)

// Question is one entry of the question section.
type Question struct {
	Name  names.Name
	Type  protocol.RRType
	Class protocol.RRClass
}

// ResourceRecord is one entry of the answer, authority or additional
// section. For an OPT pseudo-record (Type == protocol.TypeOPT), Class and
// TTL hold their EDNS0 reinterpretation (requestor UDP payload size, and
// the packed extended-rcode/version/DO/Z word) rather than an ordinary
// class and time-to-live. See OPTPayloadSize/OPTFlags.
type ResourceRecord struct {
	Name  names.Name
	Type  protocol.RRType
	Class protocol.RRClass
	TTL   uint32
	RData rdata.RData
}

// OPTPayloadSize returns the UDP payload size an OPT record's CLASS field
// carries. Only meaningful when Type == protocol.TypeOPT.
func (rr ResourceRecord) OPTPayloadSize() uint16 {
	return uint16(rr.Class)
}

// OPTFlags decodes an OPT record's TTL field into its sub-structure. Only
// meaningful when Type == protocol.TypeOPT.
func (rr ResourceRecord) OPTFlags() (extendedRcode, version uint8, do bool, z uint16) {
	return rdata.DecodeOPTTTL(rr.TTL)
}

// Message is a full DNS message: the header plus its four sections. The
// header's section counts are not stored independently; they are
// derived from len(Questions)/len(Answers)/len(Authorities)/len(Additionals)
// at encode time, and checked against the decoded section lengths at
// decode time.
type Message struct {
	ID          uint16
	Flags       protocol.Flags
	Questions   []Question
	Answers     []ResourceRecord
	Authorities []ResourceRecord
	Additionals []ResourceRecord
}
