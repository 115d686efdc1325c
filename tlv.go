package x509name

/*
tlv.go contains all types, methods and functions for the
Type-Length-Value type, as read from and written to DER.
*/

import (
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

func tlvString(tlv TLV) (str string) {
	var value []string
	data := tlv.Value
	for i := 0; i < len(data); i++ {
		value = append(value, itoa(int(data[i])))
	}

	str = "{Class:" + itoa(tlv.Class) +
		", Tag:" + itoa(tlv.Tag) +
		", Compound:" + bool2str(tlv.Compound) +
		", Length:" + itoa(len(tlv.Value)) +
		", Value:[" + join(value, ` `) + "]}"

	return
}

func tlvEqual(a, b TLV, value ...bool) (match bool) {
	match = a.Compound == b.Compound &&
		a.Class == b.Class &&
		a.Tag == b.Tag

	if match && len(value) > 0 && value[0] {
		match = bytesEqual(a.Value, b.Value)
	}

	return
}

/*
TLV stores discrete Type-Length-Value components of a single DER
element. Instances of this type are produced by [ParseTLV] and by
the attribute value accessors of [AVA].
*/
type TLV struct {
	Class    int
	Tag      int
	Compound bool
	Value    []byte
	raw      []byte
}

/*
NewTLV returns a [TLV] for the given class, tag number and contents
octets. The complete DER encoding is computed at construction.
*/
func NewTLV(class, tag int, compound bool, value []byte) (r TLV, err error) {
	if !(ClassUniversal <= class && class <= ClassPrivate) {
		err = tLVErrorf("invalid class ", class)
		return
	} else if tag < 0 || tag > 30 {
		err = tLVErrorf("tag ", tag, " is outside the low-tag-number form")
		return
	}

	r = TLV{Class: class, Tag: tag, Compound: compound, Value: cloneBytes(value)}
	if r.Value == nil {
		r.Value = []byte{}
	}

	var b cryptobyte.Builder
	b.AddASN1(r.cbTag(), func(c *cryptobyte.Builder) { c.AddBytes(r.Value) })
	r.raw, err = b.Bytes()
	return
}

/*
ParseTLV returns a [TLV] following an attempt to read exactly one DER
element from der. Trailing octets are an error.
*/
func ParseTLV(der []byte) (r TLV, err error) {
	s := cryptobyte.String(der)
	if r, err = readTLV(&s); err == nil && !s.Empty() {
		err = derErrorf(der, errorTrailingData)
	}
	return
}

func readTLV(s *cryptobyte.String) (r TLV, err error) {
	var (
		elem    cryptobyte.String
		content cryptobyte.String
		tag     cbasn1.Tag
	)
	if !s.ReadAnyASN1Element(&elem, &tag) {
		err = tLVErrorf(errorTruncated)
		return
	}

	raw := []byte(elem)
	if !elem.ReadAnyASN1(&content, &tag) {
		err = tLVErrorf(errorTruncated)
		return
	}

	r = TLV{
		Class:    int(tag >> 6),
		Tag:      int(tag & 0x1f),
		Compound: tag&0x20 != 0,
		Value:    []byte(content),
		raw:      raw,
	}
	return
}

/*
String returns the string representation of the receiver instance.
*/
func (r TLV) String() string { return tlvString(r) }

/*
Eq returns a Boolean value indicative of a match between the receiver and
input [TLV] instances. The respective contents octets of the [TLV] instances
will only be evaluated if the variadic input "value" value is true.
*/
func (r TLV) Eq(tlv TLV, value ...bool) bool {
	return tlvEqual(r, tlv, value...)
}

/*
Bytes returns the complete DER encoding of the receiver instance.
*/
func (r TLV) Bytes() []byte { return cloneBytes(r.raw) }

func (r TLV) cbTag() cbasn1.Tag {
	t := cbasn1.Tag(r.Tag)
	switch r.Class {
	case ClassApplication:
		t |= 0x40
	case ClassContextSpecific:
		t = t.ContextSpecific()
	case ClassPrivate:
		t |= 0xC0
	}
	if r.Compound {
		t = t.Constructed()
	}
	return t
}

/*
isString returns a Boolean value indicative of the receiver being a
universal, primitive character string type understood by this package.
*/
func (r TLV) isString() bool {
	if r.Class != ClassUniversal || r.Compound {
		return false
	}
	_, ok := stringCodecs[r.Tag]
	return ok
}

/*
contextTag returns the cryptobyte tag for context-specific tag number n.
*/
func contextTag(n int, constructed bool) cbasn1.Tag {
	t := cbasn1.Tag(n).ContextSpecific()
	if constructed {
		t = t.Constructed()
	}
	return t
}

/*
encodeInteger returns the minimal two's complement contents octets of
an ASN.1 INTEGER holding n.
*/
func encodeInteger(n int64) []byte {
	var out []byte
	for {
		out = append([]byte{byte(n)}, out...)
		n >>= 8
		if (n == 0 && out[0]&0x80 == 0) || (n == -1 && out[0]&0x80 != 0) {
			break
		}
	}
	return out
}

/*
decodeInteger returns the int64 value of the INTEGER contents octets in
b, rejecting non-minimal encodings.
*/
func decodeInteger(b []byte) (n int64, err error) {
	switch {
	case len(b) == 0:
		err = primitiveErrorf("INTEGER: zero length")
	case len(b) > 8:
		err = primitiveErrorf("INTEGER: value overflows 64 bits")
	case len(b) > 1 && ((b[0] == 0 && b[1]&0x80 == 0) || (b[0] == 0xFF && b[1]&0x80 != 0)):
		err = primitiveErrorf("INTEGER: non-minimal encoding")
	}
	if err != nil {
		return
	}

	if b[0]&0x80 != 0 {
		n = -1
	}
	for _, c := range b {
		n = n<<8 | int64(c)
	}
	return
}
