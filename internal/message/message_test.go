package message

import (
	"bytes"
	"errors"
	"testing"

	dnserrors "github.com/mkortas/dnsq/internal/errors"
	"github.com/mkortas/dnsq/internal/names"
	"github.com/mkortas/dnsq/internal/protocol"
	"github.com/mkortas/dnsq/internal/rdata"
)

func TestQuestionEncode(t *testing.T) {
	name, _ := names.NewName("www.google.ie")
	q := Question{Name: name, Type: protocol.TypeA, Class: protocol.ClassIN}

	m := Message{Questions: []Question{q}}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	body := raw[protocol.HeaderSize:]
	want := append([]byte{
		0x03, 'w', 'w', 'w',
		0x06, 'g', 'o', 'o', 'g', 'l', 'e',
		0x02, 'i', 'e',
		0x00,
	}, 0x00, 0x01, 0x00, 0x01)
	if !bytes.Equal(body, want) {
		t.Fatalf("question bytes = % x, want % x", body, want)
	}
}

func TestFullPacketEncodeDecode(t *testing.T) {
	name, _ := names.NewName("www.google.ie")
	m := Message{
		ID: 0x1234,
		Flags: protocol.Flags{
			Response: true,
			Opcode:   protocol.OpIQuery,
			AA:       true, TC: true, RD: true, RA: true, Z: true, AD: true, CD: true,
			Rcode: protocol.RCodeNoError,
		},
		Questions: []Question{{Name: name, Type: protocol.TypeA, Class: protocol.ClassIN}},
	}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(raw) != 31 {
		t.Fatalf("encoded length = %d, want 31", len(raw))
	}
	wantHeader := []byte{0x12, 0x34, 0x8F, 0xF0, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(raw[:12], wantHeader) {
		t.Fatalf("header bytes = % x, want % x", raw[:12], wantHeader)
	}

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ID != m.ID || got.Flags != m.Flags {
		t.Fatalf("decoded header mismatch: %+v", got)
	}
	if len(got.Questions) != 1 || got.Questions[0].Name.String() != "www.google.ie" {
		t.Fatalf("decoded question mismatch: %+v", got.Questions)
	}
}

// A response with rcode=NXDOMAIN decodes successfully and surfaces
// ResponseRcodeError alongside the otherwise-populated message.
func TestUnknownRcodeSurfacedNonFatally(t *testing.T) {
	name, _ := names.NewName("example.com")
	m := Message{
		ID: 1,
		Flags: protocol.Flags{
			Response: true,
			Rcode:    protocol.RCodeNXDomain,
		},
		Questions: []Question{{Name: name, Type: protocol.TypeA, Class: protocol.ClassIN}},
	}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(raw)
	var rcodeErr *dnserrors.ResponseRcodeError
	if !errors.As(err, &rcodeErr) {
		t.Fatalf("expected ResponseRcodeError, got %v", err)
	}
	if rcodeErr.Code != uint8(protocol.RCodeNXDomain) {
		t.Fatalf("Code = %d, want %d", rcodeErr.Code, protocol.RCodeNXDomain)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("expected the well-formed message alongside the error, got %+v", got)
	}
}

func TestSectionCountMismatchIsFatal(t *testing.T) {
	name, _ := names.NewName("example.com")
	m := Message{Questions: []Question{{Name: name, Type: protocol.TypeA, Class: protocol.ClassIN}}}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Corrupt ANCOUNT to claim one answer that isn't there.
	raw[7] = 0x01

	if _, err := Decode(raw); err == nil {
		t.Fatal("expected a decode error for truncated answer section")
	}
}

func TestMessageWithOPTRoundTrip(t *testing.T) {
	m, err := NewQuery("example.com", protocol.TypeA, QueryOptions{})
	if err != nil {
		t.Fatalf("NewQuery: %v", err)
	}
	if len(m.Additionals) != 1 {
		t.Fatalf("expected a default OPT additional, got %d", len(m.Additionals))
	}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Additionals) != 1 || got.Additionals[0].Type != protocol.TypeOPT {
		t.Fatalf("decoded additionals = %+v", got.Additionals)
	}
	if got.Additionals[0].OPTPayloadSize() != protocol.DefaultUDPPayloadSize {
		t.Fatalf("OPT payload size = %d, want %d", got.Additionals[0].OPTPayloadSize(), protocol.DefaultUDPPayloadSize)
	}
}

func TestOPTOutsideAdditionalsRejected(t *testing.T) {
	opt := rdata.NewDefaultOPT(protocol.DefaultUDPPayloadSize)
	m := Message{
		Answers: []ResourceRecord{{
			Name:  names.Name{},
			Type:  protocol.TypeOPT,
			Class: protocol.RRClass(protocol.DefaultUDPPayloadSize),
			TTL:   opt.TTLWord(),
			RData: opt,
		}},
	}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(raw); err == nil {
		t.Fatal("expected an error for an OPT record in the answer section")
	}
}

func TestDuplicateOPTRejected(t *testing.T) {
	opt := rdata.NewDefaultOPT(protocol.DefaultUDPPayloadSize)
	rr := ResourceRecord{
		Name:  names.Name{},
		Type:  protocol.TypeOPT,
		Class: protocol.RRClass(protocol.DefaultUDPPayloadSize),
		TTL:   opt.TTLWord(),
		RData: opt,
	}
	m := Message{Additionals: []ResourceRecord{rr, rr}}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(raw); err == nil {
		t.Fatal("expected an error for two OPT records in one message")
	}
}

func TestOPTWithNonRootNameRejected(t *testing.T) {
	name, _ := names.NewName("not.root")
	opt := rdata.NewDefaultOPT(protocol.DefaultUDPPayloadSize)
	m := Message{
		Additionals: []ResourceRecord{{
			Name:  name,
			Type:  protocol.TypeOPT,
			Class: protocol.RRClass(protocol.DefaultUDPPayloadSize),
			TTL:   opt.TTLWord(),
			RData: opt,
		}},
	}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(raw); err == nil {
		t.Fatal("expected an error for an OPT record with a non-root name")
	}
}

func TestRDATAMisalignedToRDLENGTHRejected(t *testing.T) {
	name, _ := names.NewName("example.com")
	exch, _ := names.NewName("mail.example.com")
	m := Message{
		Answers: []ResourceRecord{{
			Name:  name,
			Type:  protocol.TypeMX,
			Class: protocol.ClassIN,
			TTL:   60,
			RData: &rdata.MX{Preference: 10, Exchange: exch},
		}},
	}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Inflate the answer's RDLENGTH by one. The MX decoder consumes its
	// preference and exchange fields and stops, leaving the cursor one
	// octet short of the claimed RDATA end.
	// Offset: 12-byte header, 13-byte owner name, type+class+ttl (8).
	rdlenOffset := 12 + 13 + 8
	raw[rdlenOffset+1]++
	if _, err := Decode(raw); err == nil {
		t.Fatal("expected an error for RDLENGTH disagreeing with the RDATA layout")
	}
}

func TestNewQueryWithoutOPT(t *testing.T) {
	m, err := NewQuery("example.com", protocol.TypeAAAA, QueryOptions{DisableOPT: true})
	if err != nil {
		t.Fatalf("NewQuery: %v", err)
	}
	if len(m.Additionals) != 0 {
		t.Fatalf("expected no additionals when OPT is disabled, got %d", len(m.Additionals))
	}
	if !m.Flags.RD {
		t.Fatal("expected RD=true on a freshly built query")
	}
}

func TestNewQueryEmptyDomain(t *testing.T) {
	if _, err := NewQuery("", protocol.TypeA, QueryOptions{}); err == nil {
		t.Fatal("expected EmptyDomainNameError")
	}
}
