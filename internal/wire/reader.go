package wire

import (
	"encoding/binary"

	"github.com/mkortas/dnsq/internal/errors"
)

// Reader is a cursor over a complete message buffer. Decoders advance it as
// they consume primitives; domain-name decoding additionally needs random
// access to the full buffer (for compression pointers), so Reader exposes
// both the cursor and the underlying slice.
type Reader struct {
	msg []byte
	pos int
}

// NewReader wraps msg for decoding starting at offset 0.
func NewReader(msg []byte) *Reader {
	return &Reader{msg: msg}
}

// Msg returns the full underlying buffer, for codecs (domain names) that
// need to follow offsets outside the current cursor position.
func (r *Reader) Msg() []byte { return r.msg }

// Pos returns the current cursor position.
func (r *Reader) Pos() int { return r.pos }

// Seek moves the cursor to an absolute position. It is used after decoding
// a name via a compression pointer, where the structural end of the name
// is not the position the pointer target left the cursor at.
func (r *Reader) Seek(pos int) { r.pos = pos }

// Remaining returns the number of bytes left between the cursor and the
// end of the buffer.
func (r *Reader) Remaining() int { return len(r.msg) - r.pos }

func (r *Reader) need(op string, n int) error {
	if r.Remaining() < n {
		return &errors.ShortReadError{Operation: op, Offset: r.pos, Need: n, Have: r.Remaining()}
	}
	return nil
}

// ReadUint8 decodes a single octet and advances the cursor.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.need("read u8", 1); err != nil {
		return 0, err
	}
	v := r.msg[r.pos]
	r.pos++
	return v, nil
}

// ReadUint16 decodes a 16-bit big-endian integer and advances the cursor.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.need("read u16", 2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.msg[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

// ReadUint32 decodes a 32-bit big-endian integer and advances the cursor.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.need("read u32", 4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.msg[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// ReadInt32 decodes a 32-bit big-endian signed integer and advances the
// cursor.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadBytes decodes n raw octets and advances the cursor. The returned
// slice is a copy, so callers (opaque RDATA, character strings, fixed-size
// address fields) may hold it past the lifetime of the input buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need("read bytes", n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.msg[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}
