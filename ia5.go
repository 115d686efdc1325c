package x509name

/*
ia5.go contains the character set and codec of the International
Alphabet No. 5 string.
*/

/*
IA5Spec implements the formal [Constraint] specification for the
[ITU-T Rec. T.50] IA5 string (tag 22), which admits the following
character range:

	0x00 through 0x7F

IA5String is used by the rfc822Name, dNSName and uniformResourceIdentifier
alternatives of GeneralName, and by the emailAddress and domainComponent
attribute types.

[ITU-T Rec. T.50]: https://www.itu.int/rec/T-REC-T.50
*/
var IA5Spec Constraint[string]

func init() {
	IA5Spec = byteRangeSpec("IA5String", 0x00, 0x7F)

	registerStringCodec(TagIA5String, stringCodec{
		name: "IA5String",
		spec: IA5Spec,
	})
}
