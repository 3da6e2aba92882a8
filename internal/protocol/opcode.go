package protocol

import (
	"strconv"

	"github.com/mkortas/dnsq/internal/errors"
)

// OpCode is the 4-bit OPCODE field of the header flags word.
type OpCode uint8

// OPCODE values per RFC 1035 §4.1.1.
const (
	OpQuery  OpCode = 0
	OpIQuery OpCode = 1
	OpStatus OpCode = 2
	OpNotify OpCode = 4
	OpUpdate OpCode = 5
)

var opCodeNames = map[OpCode]string{
	OpQuery: "QUERY", OpIQuery: "IQUERY", OpStatus: "STATUS",
	OpNotify: "NOTIFY", OpUpdate: "UPDATE",
}

func (o OpCode) String() string {
	if name, ok := opCodeNames[o]; ok {
		return name
	}
	return "OPCODE" + strconv.Itoa(int(o))
}

// ParseOpCode converts a raw 4-bit wire value into an OpCode. Values 3 and
// 6-15 are reserved and round-trip fine on the wire, but have no declared
// mnemonic here; decode accepts any value in [0,15] since the opcode
// domain is not closed the way RR type is (RFC 1035 reserves the rest for
// future assignment rather than leaving them permanently invalid).
func ParseOpCode(v uint8) (OpCode, error) {
	if v > 15 {
		return 0, &errors.UnknownEnumValueError{Enum: "OpCode", Value: uint16(v)}
	}
	return OpCode(v), nil
}
