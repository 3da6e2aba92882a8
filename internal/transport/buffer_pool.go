package transport

import "sync"

// receiveBufferSize sizes the pooled receive buffer at the UDP payload
// size this resolver advertises via EDNS0 by default
// (protocol.DefaultUDPPayloadSize). It does not grow when a larger size is
// advertised through resolver.WithUDPPayloadSize: a datagram longer than
// this buffer is cut to its size on read. A plain, non-OPT query never needs
// more than 512 octets, but reusing one buffer size keeps the pool
// simple and the cost of over-allocating 4KB per buffer is negligible
// for a client that holds at most one buffer at a time.
const receiveBufferSize = 4096

var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, receiveBufferSize)
		return &buf
	},
}

// GetBuffer returns a pointer to a receiveBufferSize-byte buffer from the
// pool. The caller must return it via PutBuffer (use defer).
func GetBuffer() *[]byte {
	return bufferPool.Get().(*[]byte)
}

// PutBuffer returns a buffer to the pool for reuse. The caller must not
// use the buffer after calling PutBuffer.
func PutBuffer(bufPtr *[]byte) {
	buf := *bufPtr
	for i := range buf {
		buf[i] = 0
	}
	bufferPool.Put(bufPtr)
}
