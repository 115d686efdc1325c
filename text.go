package x509name

/*
text.go contains all types and functions pertaining to the registration
and use of the ASN.1 character string codecs which may carry attribute
values and directory strings.
*/

/*
stringCodec pairs the character validation [Constraint] of an ASN.1
string type with its DER contents octets transform.
*/
type stringCodec struct {
	name   string
	spec   Constraint[string]
	decode func([]byte) (string, error)
	encode func(string) ([]byte, error)
}

var stringCodecs = map[int]stringCodec{}

/*
registerStringCodec assigns c to the registry under universal tag. This
function panics upon a duplicate registration.
*/
func registerStringCodec(tag int, c stringCodec) {
	if _, dup := stringCodecs[tag]; dup {
		panic("x509name: duplicate string codec for tag " + itoa(tag))
	}
	if c.decode == nil {
		c.decode = func(b []byte) (s string, err error) {
			s = string(b)
			err = c.spec(s)
			return
		}
	}
	if c.encode == nil {
		c.encode = func(s string) (b []byte, err error) {
			if err = c.spec(s); err == nil {
				b = []byte(s)
			}
			return
		}
	}
	stringCodecs[tag] = c
}

/*
decodeString returns the Go string held within the contents octets b of
a universal string of the given tag.
*/
func decodeString(tag int, b []byte) (s string, err error) {
	c, ok := stringCodecs[tag]
	if !ok {
		err = primitiveErrorf("no string codec for tag ", tag)
		return
	}
	if s, err = c.decode(b); err != nil {
		err = wrapf(err, "decode %s", c.name)
	}
	return
}

/*
encodeString returns the contents octets of s as a universal string of
the given tag.
*/
func encodeString(tag int, s string) (b []byte, err error) {
	c, ok := stringCodecs[tag]
	if !ok {
		err = primitiveErrorf("no string codec for tag ", tag)
		return
	}
	if b, err = c.encode(s); err != nil {
		err = wrapf(err, "encode %s", c.name)
	}
	return
}

/*
isDirectoryStringTag returns a Boolean value indicative of tag being one
of the DirectoryString CHOICE alternatives of X.520.
*/
func isDirectoryStringTag(tag int) bool {
	switch tag {
	case TagPrintableString, TagUTF8String, TagT61String,
		TagBMPString, TagUniversalString:
		return true
	}
	return false
}

/*
byteRangeSpec returns a [Constraint] which accepts only strings whose
bytes all fall within lo and hi inclusive.
*/
func byteRangeSpec(name string, lo, hi byte) Constraint[string] {
	return func(s string) (err error) {
		for i := 0; i < len(s) && err == nil; i++ {
			if c := s[i]; c < lo || c > hi {
				err = primitiveErrorf(name, ": invalid character ", int(c),
					" at position ", i)
			}
		}
		return
	}
}
