package x509name

/*
ps.go contains the character set and codec of the ASN.1
PRINTABLE STRING type.
*/

/*
PrintableSpec implements the formal [Constraint] specification for the
PrintableString type of [§ 41.4 of ITU-T Rec. X.680] (tag 19):

	Latin capital letters   A, B, ... Z
	Latin small letters     a, b, ... z
	Digits                  0, 1, ... 9
	SPACE
	APOSTROPHE              '
	LEFT PARENTHESIS        (
	RIGHT PARENTHESIS       )
	PLUS SIGN               +
	COMMA                   ,
	HYPHEN-MINUS            -
	FULL STOP               .
	SOLIDUS                 /
	COLON                   :
	EQUALS SIGN             =
	QUESTION MARK           ?

Attribute values parsed from text are encoded as PrintableString when
this specification is satisfied.

[§ 41.4 of ITU-T Rec. X.680]: https://www.itu.int/rec/T-REC-X.680
*/
var PrintableSpec Constraint[string]

var printableStringBitmap [2]uint64 // 128 ASCII code points

func isPrintableChar(c rune) bool {
	return 0 <= c && c < 128 && (printableStringBitmap[c>>6]>>(c&63))&1 != 0
}

func init() {
	set := func(lo, hi rune) {
		for r := lo; r <= hi; r++ {
			printableStringBitmap[r>>6] |= 1 << (r & 63)
		}
	}
	set(0x0020, 0x0020)
	set(0x0027, 0x0029)
	set(0x002B, 0x002F)
	set(0x003A, 0x003A)
	set(0x003D, 0x003D)
	set(0x003F, 0x003F)
	set(0x0030, 0x0039)
	set(0x0041, 0x005A)
	set(0x0061, 0x007A)

	PrintableSpec = func(s string) (err error) {
		for i, r := range s {
			if !isPrintableChar(r) {
				err = primitiveErrorf("PrintableString: invalid character '",
					string(r), "' at position ", i)
				break
			}
		}

		return
	}

	registerStringCodec(TagPrintableString, stringCodec{
		name: "PrintableString",
		spec: PrintableSpec,
	})
}
