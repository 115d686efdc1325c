package x509name

/*
t61.go contains the codec of the ASN.1 T61 STRING (also known
as a teletex string).
*/

/*
T61Spec implements the formal [Constraint] specification for values
carried as an [ITU-T Rec. T.61] string (tag 20).

Like most X.509 implementations, this package reads and writes T61String
contents octets as ISO 8859-1 (Latin-1), one octet per character. Values
holding characters above U+00FF cannot be represented.

[ITU-T Rec. T.61]: https://www.itu.int/rec/T-REC-T.61
*/
var T61Spec Constraint[string]

func decodeLatin1(b []byte) (string, error) {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes), nil
}

func encodeLatin1(name string) func(string) ([]byte, error) {
	return func(s string) (out []byte, err error) {
		out = make([]byte, 0, len(s))
		for _, r := range s {
			if r > 0xFF {
				err = primitiveErrorf(name, ": character '", string(r),
					"' cannot be represented")
				return nil, err
			}
			out = append(out, byte(r))
		}
		return
	}
}

func init() {
	T61Spec = func(s string) (err error) {
		_, err = encodeLatin1("T61String")(s)
		return
	}

	registerStringCodec(TagT61String, stringCodec{
		name:   "T61String",
		spec:   T61Spec,
		decode: decodeLatin1,
		encode: encodeLatin1("T61String"),
	})
}
