package x509name

/*
gn.go contains the GeneralName CHOICE of RFC 5280, the closed set of
name forms which may appear in subject alternative names and in name
constraints.
*/

import (
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

/*
NameType identifies a GeneralName alternative. Values equal the
context-specific tag numbers of RFC 5280:

	GeneralName ::= CHOICE {
	    otherName                 [0] OtherName,
	    rfc822Name                [1] IA5String,
	    dNSName                   [2] IA5String,
	    x400Address               [3] ORAddress,
	    directoryName             [4] Name,
	    ediPartyName              [5] EDIPartyName,
	    uniformResourceIdentifier [6] IA5String,
	    iPAddress                 [7] OCTET STRING,
	    registeredID              [8] OBJECT IDENTIFIER }
*/
type NameType int

const (
	NameOther NameType = iota
	NameRFC822
	NameDNS
	NameX400
	NameDirectory
	NameEDI
	NameURI
	NameIP
	NameRegisteredID
)

var nameTypeNames = map[NameType]string{
	NameOther:        "otherName",
	NameRFC822:       "rfc822Name",
	NameDNS:          "dNSName",
	NameX400:         "x400Address",
	NameDirectory:    "directoryName",
	NameEDI:          "ediPartyName",
	NameURI:          "uniformResourceIdentifier",
	NameIP:           "iPAddress",
	NameRegisteredID: "registeredID",
}

/*
String returns the ASN.1 identifier of the receiver instance.
*/
func (r NameType) String() string {
	if s, ok := nameTypeNames[r]; ok {
		return s
	}
	return "unknownName(" + itoa(int(r)) + ")"
}

/*
Relation describes how one name relates to another of the same form.
See [NameValue.Constrains].
*/
type Relation int

const (
	DifferentType Relation = iota - 1 // names are of different forms
	Match                             // names denote the same set
	Narrows                           // receiver denotes a proper subset of the other
	Widens                            // receiver denotes a proper superset of the other
	SameType                          // same form, neither contains the other
)

var relationNames = map[Relation]string{
	DifferentType: "DIFFERENT_TYPE",
	Match:         "MATCH",
	Narrows:       "NARROWS",
	Widens:        "WIDENS",
	SameType:      "SAME_TYPE",
}

/*
String returns the string representation of the receiver instance.
*/
func (r Relation) String() string {
	if s, ok := relationNames[r]; ok {
		return s
	}
	return "UNKNOWN_RELATION"
}

/*
Invert returns the relation seen from the other side: [Narrows] becomes
[Widens] and vice versa; all other values are returned unchanged.
*/
func (r Relation) Invert() Relation {
	switch r {
	case Narrows:
		return Widens
	case Widens:
		return Narrows
	}
	return r
}

/*
NameValue is the closed set of GeneralName alternatives implemented by
this package: *[OtherName], [RFC822Name], [DNSName], *[X400Address],
*[DirectoryName], *[EDIPartyName], *[URIName], [IPAddressName] and
[OIDName].

Constrains reports how the receiver relates to other: [Narrows] when the
receiver denotes a proper subset of other, [Widens] for a proper
superset, [Match] for the same set, [SameType] when the two are of the
same form but neither contains the other, and [DifferentType] when the
forms differ. The relation is antisymmetric: a.Constrains(b) returns
Narrows exactly when b.Constrains(a) returns Widens.

Forms for which containment is undefined return an error satisfying
[errors.Is] against [ErrUnsupported] for any comparison other than an
exact match or a different form.
*/
type NameValue interface {
	Type() NameType
	String() string
	Equal(NameValue) bool
	Constrains(NameValue) (Relation, error)

	marshalGeneralName(*cryptobyte.Builder)
}

/*
MarshalGeneralName returns the DER encoding of n as a GeneralName.
*/
func MarshalGeneralName(n NameValue) ([]byte, error) {
	if n == nil {
		return nil, errorNilInput
	}
	var b cryptobyte.Builder
	n.marshalGeneralName(&b)
	return b.Bytes()
}

/*
ParseGeneralName returns the [NameValue] decoded from the DER encoding of
a single GeneralName. When constraint is true the name is read as the base
of a GeneralSubtree, which admits the subtree forms of each alternative:
"" and leading-period domains for dNSName, rfc822Name and URI hosts, and
address/mask pairs for iPAddress.
*/
func ParseGeneralName(der []byte, constraint bool) (n NameValue, err error) {
	s := cryptobyte.String(der)
	if n, err = readGeneralName(&s, constraint); err == nil && !s.Empty() {
		err = derErrorf(der, errorTrailingData)
		n = nil
	}
	return
}

func addIA5(b *cryptobyte.Builder, tag int, s string) {
	b.AddASN1(contextTag(tag, false), func(c *cryptobyte.Builder) {
		c.AddBytes([]byte(s))
	})
}

func readGeneralName(s *cryptobyte.String, constraint bool) (n NameValue, err error) {
	var (
		content cryptobyte.String
		tag     cbasn1.Tag
	)
	if !s.ReadAnyASN1(&content, &tag) {
		err = derErrorf([]byte(*s), "GeneralName: ", errorTruncated)
		return
	}

	num := NameType(tag & 0x1f)
	if tag&0xC0 != 0x80 || tag&0x1f == 0x1f || num > NameRegisteredID {
		err = derErrorf([]byte(content), "GeneralName: unsupported tag ", int(tag))
		return
	}

	constructed := tag&0x20 != 0
	switch num {
	case NameOther, NameX400, NameDirectory, NameEDI:
		if !constructed {
			err = derErrorf([]byte(content), "GeneralName: ", num, " must be constructed")
			return
		}
	default:
		if constructed {
			err = derErrorf([]byte(content), "GeneralName: ", num, " must be primitive")
			return
		}
	}

	data := []byte(content)
	switch num {
	case NameOther:
		n, err = parseOtherName(data)
	case NameRFC822:
		n, err = parseRFC822Name(data, constraint)
	case NameDNS:
		n, err = parseDNSName(data, constraint)
	case NameX400:
		n, err = NewX400Address(data)
	case NameDirectory:
		n, err = parseDirectoryName(data)
	case NameEDI:
		n, err = parseEDIPartyName(data)
	case NameURI:
		n, err = parseURIName(data, constraint)
	case NameIP:
		n, err = parseIPAddressName(data, constraint)
	case NameRegisteredID:
		n, err = parseOIDName(data)
	}

	if err != nil {
		err = wrapf(err, "GeneralName %s", num)
		n = nil
	}
	debugCodec("decoded general name", "type", num, "name", n, "constraint", constraint, "error", err)
	return
}

func readIA5(data []byte) (s string, err error) {
	return decodeString(TagIA5String, data)
}

/*
GeneralNames implements the SEQUENCE OF GeneralName carried by the
subjectAltName and issuerAltName extensions.
*/
type GeneralNames []NameValue

/*
ParseGeneralNames returns the [GeneralNames] decoded from der, such as
the value of a subjectAltName extension.
*/
func ParseGeneralNames(der []byte) (r GeneralNames, err error) {
	s := cryptobyte.String(der)
	var seq cryptobyte.String
	if !s.ReadASN1(&seq, cbasn1.SEQUENCE) || !s.Empty() {
		err = derErrorf(der, "GeneralNames: expected a single SEQUENCE")
		return
	}

	r = GeneralNames{}
	if err = readAll(seq, func(m *cryptobyte.String) (err error) {
		var n NameValue
		if n, err = readGeneralName(m, false); err == nil {
			r = append(r, n)
		}
		return
	}); err != nil {
		r = nil
	}
	return
}

/*
Marshal returns the DER encoding of the receiver instance.
*/
func (r GeneralNames) Marshal() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(c *cryptobyte.Builder) {
		for _, n := range r {
			n.marshalGeneralName(c)
		}
	})
	return b.Bytes()
}

/*
String returns the string representation of the receiver instance.
*/
func (r GeneralNames) String() string {
	parts := make([]string, len(r))
	for i, n := range r {
		parts[i] = n.Type().String() + ":" + n.String()
	}
	return `[` + join(parts, `, `) + `]`
}

/*
ofType returns a Boolean value indicative of the receiver holding at
least one name of type t.
*/
func (r GeneralNames) ofType(t NameType) bool {
	for _, n := range r {
		if n.Type() == t {
			return true
		}
	}
	return false
}

/*
matchOnly implements the relation of name forms which support nothing
beyond exact matching: equal names [Match], names of another form are
[DifferentType], and any other comparison is unsupported.
*/
func matchOnly(a, b NameValue) (Relation, error) {
	switch {
	case b == nil || a.Type() != b.Type():
		return DifferentType, nil
	case a.Equal(b):
		return Match, nil
	}
	return SameType, unsupportedErrorf("narrowing and widening are not supported for ", a.Type())
}
