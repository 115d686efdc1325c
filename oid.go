package x509name

/*
oid.go contains all types and methods pertaining to the ASN.1
OBJECT IDENTIFIER type as used for attribute types, registeredID
names and otherName type identifiers.
*/

import (
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

/*
ObjectIdentifier implements an ASN.1 OBJECT IDENTIFIER (tag 6) whose
number forms fit within 64 bits, which is convertible to both the
[encoding/asn1.ObjectIdentifier] and [crypto/x509.OID] types.
*/
type ObjectIdentifier []uint64

/*
ParseObjectIdentifier returns an instance of [ObjectIdentifier] alongside
an error following an attempt to parse dot as a dotted-decimal OID, e.g.
"2.5.4.3".
*/
func ParseObjectIdentifier(dot string) (r ObjectIdentifier, err error) {
	if err = oidSyntaxConstraints.Constrain(dot); err != nil {
		return
	}

	z := split(dot, `.`)
	_d := make(ObjectIdentifier, len(z))
	for j := 0; j < len(z) && err == nil; j++ {
		if _d[j], err = puint(z[j], 10, 64); err != nil {
			err = errorOIDOverflow
		}
	}

	if err == nil {
		if err = _d.validate(); err == nil {
			r = _d
		}
	}

	return
}

func mustOID(dot string) ObjectIdentifier {
	oid, err := ParseObjectIdentifier(dot)
	if err != nil {
		panic(err)
	}
	return oid
}

/*
String returns the dotted-decimal representation of the receiver instance.
*/
func (r ObjectIdentifier) String() (s string) {
	if !r.IsZero() {
		var x []string = make([]string, len(r))
		for i := 0; i < len(r); i++ {
			x[i] = fmtUint(r[i], 10)
		}

		s = join(x, `.`)
	}
	return
}

/*
Eq returns a Boolean value indicative of an equality match between
the receiver and input [ObjectIdentifier] instances.
*/
func (r ObjectIdentifier) Eq(o ObjectIdentifier) bool {
	var ok bool
	if ok = r.Len() == o.Len(); ok {
		for i := 0; i < r.Len() && ok; i++ {
			ok = r[i] == o[i]
		}
	}

	return ok
}

/*
Compare returns -1, 0 or 1 following an arc-by-arc numerical comparison
of the receiver and o. A shorter OID which is a prefix of the longer one
sorts first.
*/
func (r ObjectIdentifier) Compare(o ObjectIdentifier) int {
	for i := 0; i < len(r) && i < len(o); i++ {
		if r[i] < o[i] {
			return -1
		} else if r[i] > o[i] {
			return 1
		}
	}

	switch {
	case len(r) < len(o):
		return -1
	case len(r) > len(o):
		return 1
	}
	return 0
}

/*
Tag returns the integer constant [TagOID].
*/
func (r ObjectIdentifier) Tag() int { return TagOID }

/*
Len returns the integer length of the receiver instance.
*/
func (r ObjectIdentifier) Len() int { return len(r) }

/*
IsZero returns a Boolean indicative of a nil receiver state.
*/
func (r ObjectIdentifier) IsZero() bool { return len(r) == 0 }

/*
Valid returns a Boolean value indicative of the following:

  - Receiver's length is greater than or equal to two (2) slice members, AND ...
  - The first arc is less than three (3), AND ...
  - The second arc is less than forty (40) when the first arc is zero (0) or one (1)
*/
func (r ObjectIdentifier) Valid() bool { return r.validate() == nil }

func (r ObjectIdentifier) validate() (err error) {
	switch {
	case len(r) < 2:
		err = errorMinOIDArcs
	case r[0] > 2:
		err = errorBadOIDRoot
	case r[0] < 2 && r[1] >= 40:
		err = errorBadOIDSecond
	case r[0] == 2 && r[1] > (1<<64-1)-80:
		err = errorOIDOverflow
	}
	return
}

/*
Clone returns a copy of the receiver instance.
*/
func (r ObjectIdentifier) Clone() ObjectIdentifier {
	if r == nil {
		return nil
	}
	return append(ObjectIdentifier{}, r...)
}

/*
content returns the base-128 encoded contents octets of the receiver,
excluding the identifier and length octets.
*/
func (r ObjectIdentifier) content() []byte {
	out := make([]byte, 0, len(r)+4)
	out = appendBase128(out, r[0]*40+r[1])
	for i := 2; i < len(r); i++ {
		out = appendBase128(out, r[i])
	}
	return out
}

/*
marshal writes the full OBJECT IDENTIFIER TLV to b.
*/
func (r ObjectIdentifier) marshal(b *cryptobyte.Builder) {
	b.AddASN1(cbasn1.OBJECT_IDENTIFIER, func(c *cryptobyte.Builder) {
		c.AddBytes(r.content())
	})
}

func appendBase128(dst []byte, n uint64) []byte {
	var buf [10]byte
	i := len(buf)
	for {
		i--
		b := byte(n & 0x7F)
		if i != len(buf)-1 { // set continuation bit except on last octet
			b |= 0x80
		}
		buf[i] = b
		if n >>= 7; n == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// VLQ-decode a single sub-identifier
func readArc(buf []byte, p *int) (n uint64, err error) {
	for first := true; ; first = false {
		if *p >= len(buf) {
			err = primitiveErrorf("OBJECT IDENTIFIER contains truncated VLQ")
			return
		}
		b := buf[*p]
		*p++
		if first && b == 0x80 {
			err = primitiveErrorf("OBJECT IDENTIFIER contains non-minimal VLQ")
			return
		} else if n > (1<<64-1)>>7 {
			err = errorOIDOverflow
			return
		}
		n = n<<7 | uint64(b&0x7F)
		if b&0x80 == 0 {
			return
		}
	}
}

/*
parseOIDContent returns an [ObjectIdentifier] decoded from the contents
octets of an OBJECT IDENTIFIER.
*/
func parseOIDContent(data []byte) (oid ObjectIdentifier, err error) {
	if len(data) == 0 {
		err = errorMinOIDArcs
		return
	}

	var subs []uint64
	for p := 0; p < len(data) && err == nil; {
		var n uint64
		if n, err = readArc(data, &p); err == nil {
			subs = append(subs, n)
		}
	}
	if err != nil {
		return
	}

	// Expand the first compressed sub-identifier into arcs 0 & 1
	switch {
	case subs[0] < 40:
		oid = ObjectIdentifier{0, subs[0]}
	case subs[0] < 80:
		oid = ObjectIdentifier{1, subs[0] - 40}
	default:
		oid = ObjectIdentifier{2, subs[0] - 80}
	}
	oid = append(oid, subs[1:]...)

	return
}

/*
readOID reads a complete OBJECT IDENTIFIER TLV from s.
*/
func readOID(s *cryptobyte.String) (oid ObjectIdentifier, err error) {
	var data cryptobyte.String
	if !s.ReadASN1(&data, cbasn1.OBJECT_IDENTIFIER) {
		err = primitiveErrorf("OBJECT IDENTIFIER: expected tag ", TagOID)
		return
	}
	return parseOIDContent(data)
}
