package x509name

/*
ava.go contains all types and methods pertaining to the X.501
AttributeTypeAndValue, also known as an attribute value assertion.
*/

import (
	"sync/atomic"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

/*
AVA implements the X.501 AttributeTypeAndValue:

	AttributeTypeAndValue ::= SEQUENCE {
	    type     AttributeType,
	    value    AttributeValue }

Instances are immutable. Equality is defined by the RFC 2253 canonical
string form (see [AVA.CanonicalString]), so two values of the same type
held in different string encodings compare equal when their canonical
forms do.
*/
type AVA struct {
	oid   ObjectIdentifier
	value TLV
	canon atomic.Pointer[string]
}

/*
NewAVA returns an instance of *[AVA] alongside an error following an
attempt to encode value as the universal string type tag, e.g.
[TagPrintableString] or [TagUTF8String].
*/
func NewAVA(oid ObjectIdentifier, tag int, value string) (r *AVA, err error) {
	if err = oid.validate(); err != nil {
		return
	}

	var content []byte
	if content, err = encodeString(tag, value); err != nil {
		return
	}

	var tlv TLV
	if tlv, err = NewTLV(ClassUniversal, tag, false, content); err == nil {
		r = &AVA{oid: oid.Clone(), value: tlv}
	}
	return
}

/*
NewAVAFromDER returns an instance of *[AVA] whose value is the single,
complete DER element der, which need not be a string type.
*/
func NewAVAFromDER(oid ObjectIdentifier, der []byte) (r *AVA, err error) {
	if err = oid.validate(); err != nil {
		return
	}

	var tlv TLV
	if tlv, err = ParseTLV(der); err == nil {
		r = &AVA{oid: oid.Clone(), value: tlv}
	}
	return
}

/*
newTextAVA returns an *[AVA] for the string value s parsed from text,
choosing IA5String for email addresses and domain components, then
PrintableString where possible, and UTF8String otherwise.
*/
func newTextAVA(oid ObjectIdentifier, s string, printable bool) (*AVA, error) {
	tag := TagUTF8String
	switch {
	case oid.Eq(OIDEmailAddress) || oid.Eq(OIDDomainComponent):
		tag = TagIA5String
	case printable:
		tag = TagPrintableString
	}
	return NewAVA(oid, tag, s)
}

/*
OID returns the attribute type of the receiver instance.
*/
func (r *AVA) OID() ObjectIdentifier { return r.oid.Clone() }

/*
Value returns the attribute value [TLV] of the receiver instance.
*/
func (r *AVA) Value() TLV { return r.value }

/*
StringValue returns the decoded value of the receiver instance alongside
a Boolean value indicative of the value being a character string.
*/
func (r *AVA) StringValue() (s string, ok bool) {
	if r.value.isString() {
		var err error
		s, err = decodeString(r.value.Tag, r.value.Value)
		ok = err == nil
	}
	return
}

/*
Equal returns a Boolean value indicative of the receiver and o sharing
the same canonical string form.
*/
func (r *AVA) Equal(o *AVA) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r == o || r.CanonicalString() == o.CanonicalString()
}

/*
String returns the receiver in the default (RFC 1779 style) form using
the built-in keywords, e.g. `CN="Doe, John"`.
*/
func (r *AVA) String() string {
	if r == nil {
		return ``
	}
	return r.keywordValueString(oidKeyword(r.oid, DefaultFormat, nil))
}

/*
RFC1779String returns the receiver in RFC 1779 form, with keywords for
attribute types resolved first through the map of dotted OIDs to
keywords.
*/
func (r *AVA) RFC1779String(keywords map[string]string) string {
	return r.keywordValueString(oidKeyword(r.oid, RFC1779, keywords))
}

func (r *AVA) keywordValueString(kw string) string {
	b := newStrBuilder()
	b.WriteString(kw)
	b.WriteByte('=')

	s, ok := r.StringValue()
	if !ok {
		b.WriteByte('#')
		b.WriteString(hexstr(r.value.raw))
		return b.String()
	}

	const escapees = ",+=\n<>#;\\\""
	var (
		quote, prevWhite bool
		val              = newStrBuilder()
	)
	for i, c := range s {
		isWhite := c == ' ' || c == '\n'
		if isPrintableChar(c) || stridx(escapees, string(c)) >= 0 {
			// quote on leading whitespace or special characters
			if (i == 0 && isWhite) || stridx(escapees, string(c)) >= 0 {
				quote = true
			}
			if isWhite {
				// quote on repeated internal whitespace
				quote = quote || prevWhite
				prevWhite = true
			} else {
				if c == '"' || c == '\\' {
					val.WriteByte('\\')
				}
				prevWhite = false
			}
		} else {
			prevWhite = false
		}
		val.WriteRune(c)
	}

	v := val.String()
	if n := len(v); n > 0 && (v[n-1] == ' ' || v[n-1] == '\n') {
		quote = true
	}

	if quote {
		b.WriteByte('"')
		b.WriteString(v)
		b.WriteByte('"')
	} else {
		b.WriteString(v)
	}
	return b.String()
}

/*
RFC2253String returns the receiver in RFC 2253 form, with keywords for
attribute types resolved first through the map of dotted OIDs to
keywords. Values of attribute types lacking a keyword, and values which
are not character strings, are written as '#' followed by the hex dump
of their DER encoding.
*/
func (r *AVA) RFC2253String(keywords map[string]string) string {
	b := newStrBuilder()
	kw := oidKeyword(r.oid, RFC2253, keywords)
	b.WriteString(kw)
	b.WriteByte('=')

	s, ok := r.StringValue()
	if !ok || isDigit(kw[0]) {
		b.WriteByte('#')
		b.WriteString(hexstr(r.value.raw))
		return b.String()
	}

	const escapees = ",=+<>;\"\\"
	runes := []rune(s)
	lead, trail := 0, len(runes)-1
	for lead < len(runes) && (runes[lead] == ' ' || runes[lead] == '\r') {
		lead++
	}
	for trail >= 0 && (runes[trail] == ' ' || runes[trail] == '\r') {
		trail--
	}

	for i, c := range runes {
		switch {
		case c == 0:
			b.WriteString(`\00`)
			continue
		case i < lead || i > trail:
			b.WriteByte('\\')
		case stridx(escapees, string(c)) >= 0:
			b.WriteByte('\\')
		case i == 0 && c == '#':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

/*
CanonicalString returns the RFC 2253 canonical form of the receiver: the
RFC 2253 keyword (or dotted OID), followed by the value with special
characters escaped, runs of spaces collapsed and both ends trimmed, all
lower-cased and NFKD-normalized. Values not held in one of the X.520
DirectoryString encodings are written in hex.

The result is computed once and memoized.
*/
func (r *AVA) CanonicalString() string {
	if p := r.canon.Load(); p != nil {
		return *p
	}
	s := r.canonicalString()
	r.canon.Store(&s)
	return s
}

func (r *AVA) canonicalString() string {
	b := newStrBuilder()
	kw := oidKeyword(r.oid, Canonical, nil)
	b.WriteString(kw)
	b.WriteByte('=')

	var (
		s  string
		ok = isDirectoryStringTag(r.value.Tag) && r.value.isString()
	)
	if ok {
		s, ok = r.StringValue()
	}
	if !ok || isDigit(kw[0]) {
		b.WriteByte('#')
		b.WriteString(hexstr(r.value.raw))
		return canonicalize(b.String())
	}

	const escapees = ",+<>;\"\\"
	var (
		prevWhite bool
		val       = newStrBuilder()
	)
	for i, c := range s {
		if isPrintableChar(c) || stridx(escapees, string(c)) >= 0 || (i == 0 && c == '#') {
			if (i == 0 && c == '#') || stridx(escapees, string(c)) >= 0 {
				val.WriteByte('\\')
			}
			if isSpace(c) {
				if prevWhite {
					continue
				}
				prevWhite = true
			} else {
				prevWhite = false
			}
		} else {
			prevWhite = false
		}
		val.WriteRune(c)
	}

	b.WriteString(trimControl(val.String()))
	return canonicalize(b.String())
}

/*
trimControl removes leading and trailing characters at or below SPACE.
*/
func trimControl(s string) string {
	i, j := 0, len(s)
	for i < j && s[i] <= ' ' {
		i++
	}
	for j > i && s[j-1] <= ' ' {
		j--
	}
	return s[i:j]
}

/*
compareAVA orders AVAs for canonical RDN output: those with RFC 2253
keywords sort first, by canonical string, followed by the rest sorted
numerically by attribute type.
*/
func compareAVA(a, b *AVA) int {
	ak, bk := hasRFC2253Keyword(a.oid), hasRFC2253Keyword(b.oid)
	switch {
	case ak && bk:
		as, bs := a.CanonicalString(), b.CanonicalString()
		if as < bs {
			return -1
		} else if as > bs {
			return 1
		}
		return 0
	case ak:
		return -1
	case bk:
		return 1
	}
	return a.oid.Compare(b.oid)
}

/*
Marshal returns the DER encoding of the receiver instance.
*/
func (r *AVA) Marshal() ([]byte, error) {
	var b cryptobyte.Builder
	r.marshal(&b)
	return b.Bytes()
}

func (r *AVA) marshal(b *cryptobyte.Builder) {
	b.AddASN1(cbasn1.SEQUENCE, func(c *cryptobyte.Builder) {
		r.oid.marshal(c)
		c.AddBytes(r.value.raw)
	})
}

/*
UnmarshalAVA returns an instance of *[AVA] decoded from the DER encoding
of an AttributeTypeAndValue.
*/
func UnmarshalAVA(der []byte) (r *AVA, err error) {
	s := cryptobyte.String(der)
	if r, err = readAVA(&s); err == nil && !s.Empty() {
		err = derErrorf(der, errorTrailingData)
	}
	return
}

func readAVA(s *cryptobyte.String) (r *AVA, err error) {
	var seq cryptobyte.String
	if !s.ReadASN1(&seq, cbasn1.SEQUENCE) {
		err = codecErrorf("AttributeTypeAndValue: expected SEQUENCE")
		return
	}

	var oid ObjectIdentifier
	if oid, err = readOID(&seq); err != nil {
		err = wrapf(err, "AttributeTypeAndValue type")
		return
	}

	var value TLV
	if value, err = readTLV(&seq); err != nil {
		err = wrapf(err, "AttributeTypeAndValue value")
		return
	} else if !seq.Empty() {
		err = codecErrorf("AttributeTypeAndValue: ", errorTrailingData)
		return
	}

	if value.isString() {
		if _, err = decodeString(value.Tag, value.Value); err != nil {
			return
		}
	}

	r = &AVA{oid: oid, value: value}
	return
}
