package x509name

/*
ns.go contains the character set and codec of the ASN.1
NUMERIC STRING type.
*/

/*
NumericSpec implements the formal [Constraint] specification for the
ASN.1 NUMERICSTRING type per [ITU-T Rec. X.680]:

	Digits     0, 1, ... 9
	Space

[ITU-T Rec. X.680]: https://www.itu.int/rec/T-REC-X.680
*/
var NumericSpec Constraint[string]

func init() {
	NumericSpec = From(digits + ` `)

	registerStringCodec(TagNumericString, stringCodec{
		name: "NumericString",
		spec: NumericSpec,
	})
}
