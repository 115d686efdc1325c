package x509name

/*
us.go contains the codec of the ASN.1 UNIVERSAL STRING type.
*/

import (
	"encoding/binary"
	"unicode/utf8"
)

/*
UniversalSpec implements the formal [Constraint] specification for the
UCS-4 ASN.1 UNIVERSAL STRING (tag 28). Contents octets are big-endian
32-bit code points.
*/
var UniversalSpec Constraint[string]

func decodeUniversal(b []byte) (s string, err error) {
	if len(b)%4 != 0 {
		err = primitiveErrorf("UniversalString: contents length ", len(b),
			" is not a multiple of four")
		return
	}

	runes := make([]rune, 0, len(b)/4)
	for i := 0; i < len(b); i += 4 {
		r := rune(binary.BigEndian.Uint32(b[i:]))
		if !utf8.ValidRune(r) {
			err = primitiveErrorf("UniversalString: invalid code point at offset ", i)
			return
		}
		runes = append(runes, r)
	}
	s = string(runes)
	return
}

func encodeUniversal(s string) (out []byte, err error) {
	if err = UniversalSpec(s); err != nil {
		return
	}

	out = make([]byte, 0, len(s)*4)
	for _, r := range s {
		out = binary.BigEndian.AppendUint32(out, uint32(r))
	}
	return
}

func init() {
	UniversalSpec = func(s string) (err error) {
		if !utf8.ValidString(s) {
			err = primitiveErrorf("UniversalString: invalid UTF-8 input")
		}
		return
	}

	registerStringCodec(TagUniversalString, stringCodec{
		name:   "UniversalString",
		spec:   UniversalSpec,
		decode: decodeUniversal,
		encode: encodeUniversal,
	})
}
