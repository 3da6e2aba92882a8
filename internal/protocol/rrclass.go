package protocol

import (
	"strconv"
	"strings"

	"github.com/mkortas/dnsq/internal/errors"
)

// RRClass is the 16-bit resource-record class code.
type RRClass uint16

// Resource record classes per RFC 1035 §3.2.4 and RFC 2136 §1.3.
const (
	ClassIN   RRClass = 1
	ClassCS   RRClass = 2
	ClassCH   RRClass = 3
	ClassHS   RRClass = 4
	ClassNONE RRClass = 254
	ClassANY  RRClass = 255
)

var rrClassNames = map[RRClass]string{
	ClassIN: "IN", ClassCS: "CS", ClassCH: "CH", ClassHS: "HS",
	ClassNONE: "NONE", ClassANY: "ANY",
}

var rrClassByName = func() map[string]RRClass {
	m := make(map[string]RRClass, len(rrClassNames))
	for v, name := range rrClassNames {
		m[name] = v
	}
	return m
}()

func (c RRClass) String() string {
	if name, ok := rrClassNames[c]; ok {
		return name
	}
	return "CLASS" + strconv.Itoa(int(c))
}

// ParseRRClass converts a raw 16-bit wire value into an RRClass.
func ParseRRClass(v uint16) (RRClass, error) {
	if _, ok := rrClassNames[RRClass(v)]; !ok {
		return 0, &errors.UnknownEnumValueError{Enum: "RRClass", Value: v}
	}
	return RRClass(v), nil
}

// ParseRRClassName parses a CLI-supplied class mnemonic (case-insensitive).
func ParseRRClassName(s string) (RRClass, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if c, ok := rrClassByName[name]; ok {
		return c, nil
	}
	return 0, &errors.UnknownEnumValueError{Enum: "RRClass", Value: 0}
}
