package protocol

import "strconv"

// RCode is the 4-bit response code field of the header flags word.
//
// Unlike RRType and RRClass, an RCode value never blocks decoding: the
// 4-bit field always round-trips bit-for-bit regardless of whether this
// library has a mnemonic for it, since (unlike a record type) it never
// drives a downstream length or layout decision.
type RCode uint8

// Response codes per RFC 1035 §4.1.1.
const (
	RCodeNoError  RCode = 0
	RCodeFormErr  RCode = 1
	RCodeServFail RCode = 2
	RCodeNXDomain RCode = 3
	RCodeNotImp   RCode = 4
	RCodeRefused  RCode = 5
	RCodeYXDomain RCode = 6
	RCodeYXRRSet  RCode = 7
	RCodeNXRRSet  RCode = 8
	RCodeNotAuth  RCode = 9
	RCodeNotZone  RCode = 10
)

var rcodeNames = map[RCode]string{
	RCodeNoError: "NOERROR", RCodeFormErr: "FORMERR", RCodeServFail: "SERVFAIL",
	RCodeNXDomain: "NXDOMAIN", RCodeNotImp: "NOTIMP", RCodeRefused: "REFUSED",
	RCodeYXDomain: "YXDOMAIN", RCodeYXRRSet: "YXRRSET", RCodeNXRRSet: "NXRRSET",
	RCodeNotAuth: "NOTAUTH", RCodeNotZone: "NOTZONE",
}

func (c RCode) String() string {
	if name, ok := rcodeNames[c]; ok {
		return name
	}
	return "RCODE" + strconv.Itoa(int(c))
}
