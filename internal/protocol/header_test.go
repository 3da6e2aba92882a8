package protocol

import (
	"bytes"
	"testing"

	"github.com/mkortas/dnsq/internal/wire"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		ID: 0x1234,
		Flags: Flags{
			Response: true,
			Opcode:   OpQuery,
			RD:       true,
			RA:       true,
			Rcode:    RCodeNoError,
		},
		QDCount: 1,
		ANCount: 2,
		NSCount: 0,
		ARCount: 1,
	}

	w := wire.NewWriter()
	h.Encode(w)
	if w.Len() != HeaderSize {
		t.Fatalf("encoded header is %d bytes, want %d", w.Len(), HeaderSize)
	}

	r := wire.NewReader(w.Bytes())
	got, err := DecodeHeader(r)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if got != h {
		t.Fatalf("DecodeHeader = %+v, want %+v", got, h)
	}
}

// id 0x1234, the flags word 0x8FF0, and every section count 0x1234
// encode to twelve octets repeating the 0x12 0x34 pattern around the
// flags.
func TestHeaderByteVector(t *testing.T) {
	h := Header{
		ID: 0x1234,
		Flags: Flags{
			Response: true,
			Opcode:   OpIQuery,
			AA:       true, TC: true, RD: true, RA: true, Z: true, AD: true, CD: true,
			Rcode: RCodeNoError,
		},
		QDCount: 0x1234,
		ANCount: 0x1234,
		NSCount: 0x1234,
		ARCount: 0x1234,
	}
	w := wire.NewWriter()
	h.Encode(w)
	want := []byte{
		0x12, 0x34, 0x8F, 0xF0,
		0x12, 0x34, 0x12, 0x34, 0x12, 0x34, 0x12, 0x34,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("encoded = % x, want % x", w.Bytes(), want)
	}

	r := wire.NewReader(w.Bytes())
	got, err := DecodeHeader(r)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if got != h {
		t.Fatalf("DecodeHeader = %+v, want %+v", got, h)
	}
}

func TestHeaderEncodeByteLayout(t *testing.T) {
	h := Header{ID: 0x0001, Flags: Flags{RD: true}, QDCount: 1}
	w := wire.NewWriter()
	h.Encode(w)
	want := []byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("encoded = % x, want % x", w.Bytes(), want)
	}
}

func TestDecodeHeaderShort(t *testing.T) {
	r := wire.NewReader([]byte{0x00, 0x01, 0x02})
	if _, err := DecodeHeader(r); err == nil {
		t.Fatal("expected ShortReadError, got nil")
	}
}
