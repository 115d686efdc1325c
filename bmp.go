package x509name

/*
bmp.go contains the codec of the Basic Multilingual Plane (BMP)
string.
*/

import "unicode/utf16"

/*
BMPSpec implements the formal [Constraint] specification for the Basic
Multilingual Plane string per [ITU-T Rec. X.680] (tag 30). Contents
octets are big-endian UTF-16 code units; characters beyond the BMP are
written as surrogate pairs.

[ITU-T Rec. X.680]: https://www.itu.int/rec/T-REC-X.680
*/
var BMPSpec Constraint[string]

func decodeBMP(b []byte) (s string, err error) {
	if len(b)%2 != 0 {
		err = primitiveErrorf("BMPString: odd number of contents octets (", len(b), ")")
		return
	}

	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	s = string(utf16.Decode(units))
	return
}

func encodeBMP(s string) (out []byte, err error) {
	if err = BMPSpec(s); err != nil {
		return
	}

	units := utf16.Encode([]rune(s))
	out = make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = append(out, byte(u>>8), byte(u))
	}
	return
}

func init() {
	BMPSpec = func(s string) (err error) {
		if !utf8OK([]byte(s)) {
			err = primitiveErrorf("BMPString: invalid UTF-8 input")
		}
		return
	}

	registerStringCodec(TagBMPString, stringCodec{
		name:   "BMPString",
		spec:   BMPSpec,
		decode: decodeBMP,
		encode: encodeBMP,
	})
}
