package x509name

/*
utf8.go contains the codec of the ASN.1 UTF8 STRING type.
*/

/*
UTF8Spec implements the formal [Constraint] specification for the ASN.1
UTF8String type (tag 12): any well-formed UTF-8 sequence.

Attribute values parsed from text are encoded as UTF8String whenever
they contain characters outside of [PrintableSpec], or when any part of
the value was supplied as escaped hex pairs.
*/
var UTF8Spec Constraint[string]

func init() {
	UTF8Spec = func(s string) (err error) {
		if !utf8OK([]byte(s)) {
			err = primitiveErrorf("UTF8String: invalid UTF-8 sequence")
		}
		return
	}

	registerStringCodec(TagUTF8String, stringCodec{
		name: "UTF8String",
		spec: UTF8Spec,
	})
}
