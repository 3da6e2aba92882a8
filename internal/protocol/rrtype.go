// Package protocol defines the DNS protocol primitives shared by every
// higher layer: the enumerated RR-type/class/opcode/rcode domains, the
// bit-packed header flags word, and the 12-octet header itself. Nothing
// here touches the network; it is the vocabulary the codec speaks.
package protocol

import (
	"strconv"
	"strings"

	"github.com/mkortas/dnsq/internal/errors"
)

// RRType is the 16-bit resource-record type code from the IANA DNS
// Parameters registry. The domain is closed: decoding a value outside the
// table below is a protocol error (UnknownEnumValueError), never a silent
// fallback, because the caller cannot know an unregistered type's RDATA
// shape. The RDATA layer's opaque fallback is a separate concern: it
// applies only to known-but-unhandled-in-this-library types (see
// internal/rdata), not to unknown wire values.
type RRType uint16

// Resource record types per the IANA DNS Parameters registry.
const (
	TypeA          RRType = 1
	TypeNS         RRType = 2
	TypeMD         RRType = 3
	TypeMF         RRType = 4
	TypeCNAME      RRType = 5
	TypeSOA        RRType = 6
	TypeMB         RRType = 7
	TypeMG         RRType = 8
	TypeMR         RRType = 9
	TypeNULL       RRType = 10
	TypeWKS        RRType = 11
	TypePTR        RRType = 12
	TypeHINFO      RRType = 13
	TypeMINFO      RRType = 14
	TypeMX         RRType = 15
	TypeTXT        RRType = 16
	TypeRP         RRType = 17
	TypeAFSDB      RRType = 18
	TypeX25        RRType = 19
	TypeISDN       RRType = 20
	TypeRT         RRType = 21
	TypeNSAP       RRType = 22
	TypeNSAPPTR    RRType = 23
	TypeSIG        RRType = 24
	TypeKEY        RRType = 25
	TypePX         RRType = 26
	TypeGPOS       RRType = 27
	TypeAAAA       RRType = 28
	TypeLOC        RRType = 29
	TypeNXT        RRType = 30
	TypeSRV        RRType = 33
	TypeNAPTR      RRType = 35
	TypeKX         RRType = 36
	TypeCERT       RRType = 37
	TypeDNAME      RRType = 39
	TypeOPT        RRType = 41
	TypeAPL        RRType = 42
	TypeDS         RRType = 43
	TypeSSHFP      RRType = 44
	TypeIPSECKEY   RRType = 45
	TypeRRSIG      RRType = 46
	TypeNSEC       RRType = 47
	TypeDNSKEY     RRType = 48
	TypeDHCID      RRType = 49
	TypeNSEC3      RRType = 50
	TypeNSEC3PARAM RRType = 51
	TypeTLSA       RRType = 52
	TypeSMIMEA     RRType = 53
	TypeCDS        RRType = 59
	TypeCDNSKEY    RRType = 60
	TypeOPENPGPKEY RRType = 61
	TypeCSYNC      RRType = 62
	TypeZONEMD     RRType = 63
	TypeSVCB       RRType = 64
	TypeHTTPS      RRType = 65
	TypeSPF        RRType = 99
	TypeNID        RRType = 104
	TypeL32        RRType = 105
	TypeL64        RRType = 106
	TypeLP         RRType = 107
	TypeEUI48      RRType = 108
	TypeEUI64      RRType = 109
	TypeTKEY       RRType = 249
	TypeTSIG       RRType = 250
	TypeIXFR       RRType = 251
	TypeAXFR       RRType = 252
	TypeMAILB      RRType = 253
	TypeMAILA      RRType = 254
	TypeANY        RRType = 255
	TypeURI        RRType = 256
	TypeCAA        RRType = 257
	TypeAVC        RRType = 258
	TypeDOA        RRType = 259
	TypeAMTRELAY   RRType = 260
	TypeDLV        RRType = 32769
)

var rrTypeNames = map[RRType]string{
	TypeA: "A", TypeNS: "NS", TypeMD: "MD", TypeMF: "MF", TypeCNAME: "CNAME",
	TypeSOA: "SOA", TypeMB: "MB", TypeMG: "MG", TypeMR: "MR", TypeNULL: "NULL",
	TypeWKS: "WKS", TypePTR: "PTR", TypeHINFO: "HINFO", TypeMINFO: "MINFO",
	TypeMX: "MX", TypeTXT: "TXT", TypeRP: "RP", TypeAFSDB: "AFSDB", TypeX25: "X25",
	TypeISDN: "ISDN", TypeRT: "RT", TypeNSAP: "NSAP", TypeNSAPPTR: "NSAP-PTR",
	TypeSIG: "SIG", TypeKEY: "KEY", TypePX: "PX", TypeGPOS: "GPOS", TypeAAAA: "AAAA",
	TypeLOC: "LOC", TypeNXT: "NXT", TypeSRV: "SRV", TypeNAPTR: "NAPTR", TypeKX: "KX",
	TypeCERT: "CERT", TypeDNAME: "DNAME", TypeOPT: "OPT", TypeAPL: "APL", TypeDS: "DS",
	TypeSSHFP: "SSHFP", TypeIPSECKEY: "IPSECKEY", TypeRRSIG: "RRSIG", TypeNSEC: "NSEC",
	TypeDNSKEY: "DNSKEY", TypeDHCID: "DHCID", TypeNSEC3: "NSEC3", TypeNSEC3PARAM: "NSEC3PARAM",
	TypeTLSA: "TLSA", TypeSMIMEA: "SMIMEA", TypeCDS: "CDS", TypeCDNSKEY: "CDNSKEY",
	TypeOPENPGPKEY: "OPENPGPKEY", TypeCSYNC: "CSYNC", TypeZONEMD: "ZONEMD", TypeSVCB: "SVCB",
	TypeHTTPS: "HTTPS", TypeSPF: "SPF", TypeNID: "NID", TypeL32: "L32", TypeL64: "L64",
	TypeLP: "LP", TypeEUI48: "EUI48", TypeEUI64: "EUI64", TypeTKEY: "TKEY", TypeTSIG: "TSIG",
	TypeIXFR: "IXFR", TypeAXFR: "AXFR", TypeMAILB: "MAILB", TypeMAILA: "MAILA", TypeANY: "ANY",
	TypeURI: "URI", TypeCAA: "CAA", TypeAVC: "AVC", TypeDOA: "DOA", TypeAMTRELAY: "AMTRELAY",
	TypeDLV: "DLV",
}

var rrTypeByName = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeNames))
	for v, name := range rrTypeNames {
		m[name] = v
	}
	return m
}()

// String returns the mnemonic for a known type, or "TYPEnnn" for a value
// outside the table above (such a value is never produced by ParseRRType).
func (t RRType) String() string {
	if name, ok := rrTypeNames[t]; ok {
		return name
	}
	return "TYPE" + strconv.Itoa(int(t))
}

// ParseRRType converts a raw 16-bit wire value into an RRType, rejecting
// values outside the declared registry.
func ParseRRType(v uint16) (RRType, error) {
	if _, ok := rrTypeNames[RRType(v)]; !ok {
		return 0, &errors.UnknownEnumValueError{Enum: "RRType", Value: v}
	}
	return RRType(v), nil
}

// ParseRRTypeName parses a CLI-supplied type mnemonic (case-insensitive)
// into an RRType, for the --qtype flag.
func ParseRRTypeName(s string) (RRType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if t, ok := rrTypeByName[name]; ok {
		return t, nil
	}
	return 0, &errors.UnknownEnumValueError{Enum: "RRType", Value: 0}
}
