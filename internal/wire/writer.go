// Package wire implements the primitive octet-level codecs the rest of the
// resolver is built on: big-endian fixed-width integers, fixed and
// length-prefixed byte runs, and the growable buffer / bounded cursor pair
// that every higher layer encodes into and decodes from.
package wire

import "encoding/binary"

// Writer is a growable output buffer. Every Put* method appends to it and
// returns the number of bytes written, so callers can sum field lengths
// without re-measuring the buffer themselves.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with capacity pre-allocated for a typical
// single-question DNS query.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 128)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated buffer. The caller must not retain it
// across further writes: appends may reallocate and invalidate it.
func (w *Writer) Bytes() []byte { return w.buf }

// PutUint8 appends a single octet.
func (w *Writer) PutUint8(v uint8) int {
	w.buf = append(w.buf, v)
	return 1
}

// PutUint16 appends a 16-bit big-endian integer.
func (w *Writer) PutUint16(v uint16) int {
	w.buf = append(w.buf, byte(v>>8), byte(v))
	return 2
}

// PutUint32 appends a 32-bit big-endian integer.
func (w *Writer) PutUint32(v uint32) int {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
	return 4
}

// PutInt32 appends a 32-bit big-endian signed integer using its two's
// complement bit pattern.
func (w *Writer) PutInt32(v int32) int {
	return w.PutUint32(uint32(v))
}

// PutBytes appends a fixed-length byte run verbatim.
func (w *Writer) PutBytes(b []byte) int {
	w.buf = append(w.buf, b...)
	return len(b)
}

// Reserve appends n zero bytes and returns the offset they start at, for
// fields whose value (e.g. a length prefix) is only known once the rest of
// the record has been written. Use PatchUint16 to fill it in afterward.
func (w *Writer) Reserve(n int) int {
	offset := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return offset
}

// PatchUint16 overwrites two previously reserved bytes at offset with v.
func (w *Writer) PatchUint16(offset int, v uint16) {
	w.buf[offset] = byte(v >> 8)
	w.buf[offset+1] = byte(v)
}
