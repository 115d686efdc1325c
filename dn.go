package x509name

/*
dn.go contains all types and methods pertaining to the X.501
distinguished name.
*/

import (
	"slices"
	"sync/atomic"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

/*
DistinguishedName implements the X.501 Name, in its only defined form:

	Name ::= CHOICE { rdnSequence  RDNSequence }

	RDNSequence ::= SEQUENCE OF RelativeDistinguishedName

RDNs are held in encoding order, beginning with the RDN nearest the root
of the naming tree. Textual forms are written in the reverse (display)
order. Instances are immutable; the canonical string form is computed
once and memoized.
*/
type DistinguishedName struct {
	rdns  []*RDN
	canon atomic.Pointer[string]
}

/*
NewDistinguishedName returns an instance of *[DistinguishedName] holding
the input *[RDN] instances, supplied in encoding (root-first) order.
*/
func NewDistinguishedName(rdns ...*RDN) *DistinguishedName {
	return &DistinguishedName{rdns: slices.Clone(rdns)}
}

/*
ParseDistinguishedName returns an instance of *[DistinguishedName]
following an attempt to parse text under format, which must be one of
[DefaultFormat], [RFC1779] or [RFC2253]. The keywords map, which may be
nil, supplies additional attribute type keywords mapped to dotted OIDs.

An empty text string yields the empty name.
*/
func ParseDistinguishedName(text string, format Format, keywords map[string]string) (r *DistinguishedName, err error) {
	if err = checkParseFormat(format); err != nil {
		return
	}

	var rdns []*RDN
	if rdns, err = parseDNText(text, format, keywords); err == nil {
		r = &DistinguishedName{rdns: rdns}
	}
	return
}

/*
MustParseDistinguishedName returns an instance of *[DistinguishedName]
and panics if [ParseDistinguishedName] returned an error during
processing of text under [DefaultFormat].
*/
func MustParseDistinguishedName(text string) *DistinguishedName {
	dn, err := ParseDistinguishedName(text, DefaultFormat, nil)
	if err != nil {
		panic(err)
	}
	return dn
}

/*
RDNs returns the RDNs of the receiver instance in encoding order.
*/
func (r *DistinguishedName) RDNs() []*RDN { return slices.Clone(r.rdns) }

/*
Len returns the number of RDNs within the receiver instance.
*/
func (r *DistinguishedName) Len() int {
	if r == nil {
		return 0
	}
	return len(r.rdns)
}

/*
SubtreeDepth returns the depth of the receiver within the naming tree,
which is its number of RDNs.
*/
func (r *DistinguishedName) SubtreeDepth() int { return r.Len() }

/*
IsEmpty returns a Boolean value indicative of the receiver holding no
RDNs, or only RDNs with no members.
*/
func (r *DistinguishedName) IsEmpty() bool {
	if r == nil {
		return true
	}
	for _, rdn := range r.rdns {
		if rdn.Len() > 0 {
			return false
		}
	}
	return true
}

func (r *DistinguishedName) join(sep string, f func(*RDN) string) string {
	if r == nil {
		return ``
	}

	parts := make([]string, 0, len(r.rdns))
	for i := len(r.rdns) - 1; i >= 0; i-- {
		parts = append(parts, f(r.rdns[i]))
	}
	return join(parts, sep)
}

/*
String returns the receiver in the default form, with RDNs written in
display order and joined by ", ".
*/
func (r *DistinguishedName) String() string {
	return r.join(`, `, (*RDN).String)
}

/*
RFC1779String returns the receiver in RFC 1779 form.
*/
func (r *DistinguishedName) RFC1779String(keywords map[string]string) string {
	return r.join(`, `, func(rdn *RDN) string { return rdn.RFC1779String(keywords) })
}

/*
RFC2253String returns the receiver in RFC 2253 form.
*/
func (r *DistinguishedName) RFC2253String(keywords map[string]string) string {
	return r.join(`,`, func(rdn *RDN) string { return rdn.RFC2253String(keywords) })
}

/*
CanonicalString returns the RFC 2253 canonical form of the receiver,
which is used for all comparisons between names.
*/
func (r *DistinguishedName) CanonicalString() string {
	if r == nil {
		return ``
	}
	if p := r.canon.Load(); p != nil {
		return *p
	}
	s := r.join(`,`, (*RDN).CanonicalString)
	r.canon.Store(&s)
	return s
}

/*
Equal returns a Boolean value indicative of the receiver and o sharing
the same canonical string form.
*/
func (r *DistinguishedName) Equal(o *DistinguishedName) bool {
	if r == o {
		return true
	} else if r == nil || o == nil {
		return false
	}
	return r.CanonicalString() == o.CanonicalString()
}

var rdnAncestor = Ancestor(func(a, b *RDN) bool { return a.Equal(b) })

/*
IsWithinSubtree returns a Boolean value indicative of the receiver being
equal to, or subordinate to, o in the naming tree. Every name is within
the subtree of the empty name, while the empty name is within no other
subtree.
*/
func (r *DistinguishedName) IsWithinSubtree(o *DistinguishedName) bool {
	switch {
	case r == o:
		return true
	case o == nil:
		return false
	case o.Len() == 0:
		return true
	case r.Len() == 0:
		return false
	}
	return rdnAncestor(o.rdns, r.rdns)
}

/*
CommonAncestor returns the longest name which both the receiver and o
are within, or nil if they share no RDN at the root.
*/
func (r *DistinguishedName) CommonAncestor(o *DistinguishedName) *DistinguishedName {
	if r.Len() == 0 || o.Len() == 0 {
		return nil
	}

	var i int
	for ; i < r.Len() && i < o.Len(); i++ {
		if !r.rdns[i].Equal(o.rdns[i]) {
			break
		}
	}
	if i == 0 {
		return nil
	}
	return NewDistinguishedName(r.rdns[:i]...)
}

/*
FindAttribute returns the first AVA of attribute type oid found when
searching from the root RDN downward, or nil if none.
*/
func (r *DistinguishedName) FindAttribute(oid ObjectIdentifier) *AVA {
	for i := 0; i < r.Len(); i++ {
		if a := r.rdns[i].FindAttribute(oid); a != nil {
			return a
		}
	}
	return nil
}

/*
FindMostSpecificAttribute returns the first AVA of attribute type oid
found when searching from the leaf RDN upward, or nil if none.
*/
func (r *DistinguishedName) FindMostSpecificAttribute(oid ObjectIdentifier) *AVA {
	for i := r.Len() - 1; i >= 0; i-- {
		if a := r.rdns[i].FindAttribute(oid); a != nil {
			return a
		}
	}
	return nil
}

/*
AllAVAs returns every AVA of the receiver, in encoding order.
*/
func (r *DistinguishedName) AllAVAs() (avas []*AVA) {
	for i := 0; i < r.Len(); i++ {
		avas = append(avas, r.rdns[i].avas...)
	}
	return
}

func (r *DistinguishedName) attrString(oid ObjectIdentifier) (s string) {
	if a := r.FindAttribute(oid); a != nil {
		s, _ = a.StringValue()
	}
	return
}

/*
CommonName returns the first commonName value, or an empty string.
*/
func (r *DistinguishedName) CommonName() string { return r.attrString(OIDCommonName) }

/*
Country returns the first countryName value, or an empty string.
*/
func (r *DistinguishedName) Country() string { return r.attrString(OIDCountry) }

/*
Organization returns the first organizationName value, or an empty string.
*/
func (r *DistinguishedName) Organization() string { return r.attrString(OIDOrganization) }

/*
OrganizationalUnit returns the first organizationalUnitName value, or an
empty string.
*/
func (r *DistinguishedName) OrganizationalUnit() string {
	return r.attrString(OIDOrganizationalUnit)
}

/*
Locality returns the first localityName value, or an empty string.
*/
func (r *DistinguishedName) Locality() string { return r.attrString(OIDLocality) }

/*
State returns the first stateOrProvinceName value, or an empty string.
*/
func (r *DistinguishedName) State() string { return r.attrString(OIDState) }

/*
DomainComponent returns the first domainComponent value, or an empty
string.
*/
func (r *DistinguishedName) DomainComponent() string { return r.attrString(OIDDomainComponent) }

func (r *DistinguishedName) Surname() string     { return r.attrString(OIDSurname) }
func (r *DistinguishedName) GivenName() string   { return r.attrString(OIDGivenName) }
func (r *DistinguishedName) Initials() string    { return r.attrString(OIDInitials) }
func (r *DistinguishedName) Generation() string  { return r.attrString(OIDGeneration) }
func (r *DistinguishedName) DNQualifier() string { return r.attrString(OIDDNQualifier) }

/*
Marshal returns the DER encoding of the receiver as an RDNSequence.
*/
func (r *DistinguishedName) Marshal() ([]byte, error) {
	var b cryptobyte.Builder
	r.marshal(&b)
	return b.Bytes()
}

func (r *DistinguishedName) marshal(b *cryptobyte.Builder) {
	b.AddASN1(cbasn1.SEQUENCE, func(c *cryptobyte.Builder) {
		for i := 0; i < r.Len(); i++ {
			r.rdns[i].marshal(c)
		}
	})
}

/*
UnmarshalDistinguishedName returns an instance of *[DistinguishedName]
decoded from the DER encoding of an RDNSequence.
*/
func UnmarshalDistinguishedName(der []byte) (r *DistinguishedName, err error) {
	s := cryptobyte.String(der)
	if r, err = readDN(&s); err == nil && !s.Empty() {
		err = derErrorf(der, errorTrailingData)
		r = nil
	}
	return
}

func readDN(s *cryptobyte.String) (r *DistinguishedName, err error) {
	var seq cryptobyte.String
	if !s.ReadASN1(&seq, cbasn1.SEQUENCE) {
		err = codecErrorf("Name: expected SEQUENCE")
		return
	}

	r = &DistinguishedName{}
	err = readAll(seq, func(m *cryptobyte.String) (err error) {
		var rdn *RDN
		if rdn, err = readRDN(m); err == nil {
			r.rdns = append(r.rdns, rdn)
		}
		return
	})
	if err != nil {
		r = nil
	}
	debugCodec("decoded distinguished name", "name", r, "error", err)
	return
}
