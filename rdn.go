package x509name

/*
rdn.go contains all types and methods pertaining to the X.501
RelativeDistinguishedName.
*/

import (
	"slices"
	"sync/atomic"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

/*
RDN implements the X.501 RelativeDistinguishedName:

	RelativeDistinguishedName ::= SET SIZE (1..MAX) OF AttributeTypeAndValue

The members of an RDN are unordered; equality is defined by the
canonical string form, in which the members are sorted. An RDN holding
no members can only be produced by decoding DER.
*/
type RDN struct {
	avas  []*AVA
	canon atomic.Pointer[string]
}

/*
NewRDN returns an instance of *[RDN] holding the input *[AVA] instances,
of which there must be at least one.
*/
func NewRDN(avas ...*AVA) (r *RDN, err error) {
	for _, a := range avas {
		if a == nil {
			err = errorNilInput
			return
		}
	}

	r = &RDN{avas: slices.Clone(avas)}
	if err = rdnSizeConstraints.Constrain(r); err != nil {
		r, err = nil, nameErrorf("RDN: ", err)
	}
	return
}

/*
ParseRDN returns an instance of *[RDN] following an attempt to parse
text, e.g. `OU=Sales+CN=J. Smith`, under format.
*/
func ParseRDN(text string, format Format, keywords map[string]string) (*RDN, error) {
	if err := checkParseFormat(format); err != nil {
		return nil, err
	}
	return parseRDNText(text, text, 0, format, keywords)
}

/*
AVAs returns the members of the receiver instance in their original
order.
*/
func (r *RDN) AVAs() []*AVA { return slices.Clone(r.avas) }

/*
Len returns the number of members within the receiver instance.
*/
func (r *RDN) Len() int { return len(r.avas) }

/*
FindAttribute returns the first member of the receiver whose attribute
type is oid, or nil if none.
*/
func (r *RDN) FindAttribute(oid ObjectIdentifier) *AVA {
	for _, a := range r.avas {
		if a.oid.Eq(oid) {
			return a
		}
	}
	return nil
}

/*
Equal returns a Boolean value indicative of the receiver and o sharing
the same canonical string form.
*/
func (r *RDN) Equal(o *RDN) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r == o || r.CanonicalString() == o.CanonicalString()
}

func (r *RDN) join(sep string, f func(*AVA) string) string {
	parts := make([]string, len(r.avas))
	for i, a := range r.avas {
		parts[i] = f(a)
	}
	return join(parts, sep)
}

/*
String returns the receiver in the default form, with members joined
by " + ".
*/
func (r *RDN) String() string {
	if r == nil {
		return ``
	}
	return r.join(` + `, (*AVA).String)
}

/*
RFC1779String returns the receiver in RFC 1779 form.
*/
func (r *RDN) RFC1779String(keywords map[string]string) string {
	return r.join(` + `, func(a *AVA) string { return a.RFC1779String(keywords) })
}

/*
RFC2253String returns the receiver in RFC 2253 form.
*/
func (r *RDN) RFC2253String(keywords map[string]string) string {
	return r.join(`+`, func(a *AVA) string { return a.RFC2253String(keywords) })
}

/*
CanonicalString returns the RFC 2253 canonical form of the receiver, in
which members are sorted as described by [AVA.CanonicalString]. The
result is computed once and memoized.
*/
func (r *RDN) CanonicalString() string {
	if p := r.canon.Load(); p != nil {
		return *p
	}

	sorted := slices.Clone(r.avas)
	slices.SortStableFunc(sorted, compareAVA)
	parts := make([]string, len(sorted))
	for i, a := range sorted {
		parts[i] = a.CanonicalString()
	}
	s := join(parts, `+`)
	r.canon.Store(&s)
	return s
}

func (r *RDN) marshal(b *cryptobyte.Builder) {
	addSetOf(b, r.avas, func(c *cryptobyte.Builder, a *AVA) { a.marshal(c) })
}

func readRDN(s *cryptobyte.String) (r *RDN, err error) {
	var set cryptobyte.String
	if !s.ReadASN1(&set, cbasn1.SET) {
		err = codecErrorf("RelativeDistinguishedName: expected SET")
		return
	}

	r = &RDN{}
	err = readAll(set, func(m *cryptobyte.String) (err error) {
		var a *AVA
		if a, err = readAVA(m); err == nil {
			r.avas = append(r.avas, a)
		}
		return
	})
	if err != nil {
		r = nil
	}
	return
}
