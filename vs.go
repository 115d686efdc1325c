package x509name

/*
vs.go contains the character set and codec of the ASN.1
VISIBLE STRING type.
*/

/*
VisibleSpec implements the formal [Constraint] specification for the
ASN.1 VisibleString type (tag 26), which admits the printing characters
of [ITU-T Rec. T.50] and SPACE:

	0x20 through 0x7E

[ITU-T Rec. T.50]: https://www.itu.int/rec/T-REC-T.50
*/
var VisibleSpec Constraint[string]

func init() {
	VisibleSpec = byteRangeSpec("VisibleString", 0x20, 0x7E)

	registerStringCodec(TagVisibleString, stringCodec{
		name: "VisibleString",
		spec: VisibleSpec,
	})
}
