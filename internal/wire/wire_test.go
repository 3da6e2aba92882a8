package wire

import (
	"bytes"
	"testing"
)

func TestUint16RoundTrip(t *testing.T) {
	w := NewWriter()
	n := w.PutUint16(0x1234)
	if n != 2 {
		t.Fatalf("PutUint16 wrote %d bytes, want 2", n)
	}
	if !bytes.Equal(w.Bytes(), []byte{0x12, 0x34}) {
		t.Fatalf("encoded = % x, want 12 34", w.Bytes())
	}

	r := NewReader(w.Bytes())
	got, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16: %v", err)
	}
	if got != 0x1234 {
		t.Fatalf("ReadUint16 = 0x%x, want 0x1234", got)
	}
}

func TestUint8RoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		w := NewWriter()
		w.PutUint8(uint8(v))
		r := NewReader(w.Bytes())
		got, err := r.ReadUint8()
		if err != nil || got != uint8(v) {
			t.Fatalf("u8 round trip failed for %d: got=%d err=%v", v, got, err)
		}
	}
}

func TestUint32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0xFFFFFFFF, 0x12345678, 0x80000000}
	for _, v := range values {
		w := NewWriter()
		w.PutUint32(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadUint32()
		if err != nil || got != v {
			t.Fatalf("u32 round trip failed for %d: got=%d err=%v", v, got, err)
		}
	}
}

func TestInt32RoundTrip(t *testing.T) {
	values := []int32{0, -1, 1<<31 - 1, -(1 << 30)}
	for _, v := range values {
		w := NewWriter()
		w.PutInt32(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadInt32()
		if err != nil || got != v {
			t.Fatalf("i32 round trip failed for %d: got=%d err=%v", v, got, err)
		}
	}
}

func TestReadBytes(t *testing.T) {
	w := NewWriter()
	w.PutBytes([]byte{1, 2, 3, 4})
	r := NewReader(w.Bytes())
	got, err := r.ReadBytes(4)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Fatalf("ReadBytes = % x", got)
	}
}

func TestShortRead(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.ReadUint16(); err == nil {
		t.Fatal("expected ShortReadError, got nil")
	}
}

func TestPatchUint16(t *testing.T) {
	w := NewWriter()
	offset := w.Reserve(2)
	w.PutBytes([]byte{0xAA, 0xBB})
	w.PatchUint16(offset, 0x0002)
	if !bytes.Equal(w.Bytes(), []byte{0x00, 0x02, 0xAA, 0xBB}) {
		t.Fatalf("PatchUint16 result = % x", w.Bytes())
	}
}
