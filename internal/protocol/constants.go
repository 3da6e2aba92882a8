package protocol

const (
	// MaxLabelLength is the largest a single name label may be (RFC 1035 §3.1).
	MaxLabelLength = 63
	// MaxNameLength is the largest a fully encoded name may be, including
	// every length octet and the terminating zero (RFC 1035 §3.1).
	MaxNameLength = 255
	// MaxCompressionPointers bounds the number of pointer hops names.Decode
	// will follow before giving up, guarding against pointer cycles that
	// the strict-backwards-offset rule alone would still let run long.
	MaxCompressionPointers = 128
	// CompressionPointerMask identifies the two-bit "11" tag on a label
	// length octet that marks it as a compression pointer instead of a
	// literal length.
	CompressionPointerMask = 0xC0
	// HeaderSize is the fixed size in bytes of the DNS message header.
	HeaderSize = 12
	// DefaultUDPPayloadSize is the OPT-record UDP payload size this
	// resolver advertises when EDNS0 is enabled and the caller has not
	// overridden it.
	DefaultUDPPayloadSize = 4096
)
