package x509name

/*
gs.go contains the codec of the ASN.1 GENERAL STRING type.
*/

/*
GeneralSpec implements the formal [Constraint] specification for the
ASN.1 GeneralString type (tag 27). As with [T61Spec], contents octets
are interpreted as ISO 8859-1.
*/
var GeneralSpec Constraint[string]

func init() {
	GeneralSpec = func(s string) (err error) {
		_, err = encodeLatin1("GeneralString")(s)
		return
	}

	registerStringCodec(TagGeneralString, stringCodec{
		name:   "GeneralString",
		spec:   GeneralSpec,
		decode: decodeLatin1,
		encode: encodeLatin1("GeneralString"),
	})
}
