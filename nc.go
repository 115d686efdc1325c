package x509name

/*
nc.go contains the NameConstraints policy: its encoding, the merging
of successive policies along a certification path and the verification
of names against the accumulated policy.
*/

import (
	"net/netip"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

/*
NameConstraints implements the name constraints extension of RFC 5280:

	NameConstraints ::= SEQUENCE {
	    permittedSubtrees       [0]     GeneralSubtrees OPTIONAL,
	    excludedSubtrees        [1]     GeneralSubtrees OPTIONAL }

A nil subtree list denotes an absent field, which is distinct from a
present one that has been reduced to no subtrees.

Instances are not safe for concurrent use while being merged.
*/
type NameConstraints struct {
	permitted GeneralSubtrees
	excluded  GeneralSubtrees
}

/*
NewNameConstraints returns a *[NameConstraints] holding copies of
permitted and excluded, either of which may be nil.
*/
func NewNameConstraints(permitted, excluded GeneralSubtrees) *NameConstraints {
	return &NameConstraints{
		permitted: permitted.Clone(),
		excluded:  excluded.Clone(),
	}
}

/*
ParseNameConstraints returns the *[NameConstraints] decoded from der,
the value of a name constraints extension.
*/
func ParseNameConstraints(der []byte) (r *NameConstraints, err error) {
	s := cryptobyte.String(der)
	var seq cryptobyte.String
	if !s.ReadASN1(&seq, cbasn1.SEQUENCE) || !s.Empty() {
		err = derErrorf(der, "NameConstraints: expected a single SEQUENCE")
		return
	}

	r = &NameConstraints{}
	for !seq.Empty() && err == nil {
		var (
			content cryptobyte.String
			tag     cbasn1.Tag
		)
		if !seq.ReadAnyASN1(&content, &tag) {
			err = derErrorf(der, "NameConstraints: ", errorTruncated)
			break
		}

		var dst *GeneralSubtrees
		switch tag {
		case contextTag(0, true):
			dst = &r.permitted
		case contextTag(1, true):
			dst = &r.excluded
		default:
			err = derErrorf(der, "NameConstraints: unexpected field tag ", int(tag))
			continue
		}

		if *dst != nil {
			err = derErrorf(der, "NameConstraints: duplicate field tag ", int(tag))
		} else {
			*dst, err = readGeneralSubtrees(content)
		}
	}

	if err != nil {
		r = nil
	}
	debugCodec("decoded name constraints", "constraints", r, "error", err)
	return
}

/*
Marshal returns the DER encoding of the receiver instance.
*/
func (r *NameConstraints) Marshal() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(c *cryptobyte.Builder) {
		if len(r.permitted) > 0 {
			r.permitted.marshal(c, contextTag(0, true))
		}
		if len(r.excluded) > 0 {
			r.excluded.marshal(c, contextTag(1, true))
		}
	})
	return b.Bytes()
}

/*
Permitted returns a copy of the permitted subtrees, or nil if absent.
*/
func (r *NameConstraints) Permitted() GeneralSubtrees { return r.permitted.Clone() }

/*
Excluded returns a copy of the excluded subtrees, or nil if absent.
*/
func (r *NameConstraints) Excluded() GeneralSubtrees { return r.excluded.Clone() }

/*
SetPermitted replaces the permitted subtrees with a copy of gs.
*/
func (r *NameConstraints) SetPermitted(gs GeneralSubtrees) { r.permitted = gs.Clone() }

/*
SetExcluded replaces the excluded subtrees with a copy of gs.
*/
func (r *NameConstraints) SetExcluded(gs GeneralSubtrees) { r.excluded = gs.Clone() }

/*
Clone returns a copy of the receiver instance.
*/
func (r *NameConstraints) Clone() *NameConstraints {
	if r == nil {
		return nil
	}
	return NewNameConstraints(r.permitted, r.excluded)
}

/*
String returns the string representation of the receiver instance.
*/
func (r *NameConstraints) String() string {
	if r == nil {
		return "<nil>"
	}
	b := newStrBuilder()
	b.WriteString("NameConstraints: [")
	if r.permitted != nil {
		b.WriteString(" Permitted: " + r.permitted.String())
	}
	if r.excluded != nil {
		b.WriteString(" Excluded: " + r.excluded.String())
	}
	b.WriteString(" ]")
	return b.String()
}

/*
Merge narrows the receiver by next, the name constraints of the next
certificate along a path. Excluded subtrees accumulate by union and
permitted subtrees by intersection; permitted subtrees falling within
an excluded subtree are then removed. next is not modified, and a nil
next leaves the receiver unchanged, as does a failed merge.
*/
func (r *NameConstraints) Merge(next *NameConstraints) (err error) {
	if r == nil {
		return errorNilReceiver
	} else if next == nil {
		return
	}

	m := r.Clone()
	if m.excluded == nil {
		m.excluded = next.excluded.Clone()
	} else {
		m.excluded.Union(next.excluded.Clone())
	}

	if m.permitted == nil {
		m.permitted = next.permitted.Clone()
	} else if next.permitted != nil {
		var newExcluded GeneralSubtrees
		if newExcluded, err = m.permitted.Intersect(next.permitted); err != nil {
			return wrapf(err, "merging permitted subtrees")
		}
		if len(newExcluded) > 0 {
			if m.excluded == nil {
				m.excluded = GeneralSubtrees{}
			}
			m.excluded.Union(newExcluded)
		}
	}

	if m.permitted != nil {
		m.permitted.Reduce(m.excluded)
	}

	debugMerge("merged name constraints", "result", m, "next", next)
	*r = *m
	return
}

/*
VerifyName returns nil if n satisfies the receiver. A name matching or
falling within any excluded subtree is rejected. Where permitted
subtrees of n's form exist, n must match or fall within at least one
of them. Violations are reported as a *[ViolationError]; a relation
which cannot be determined yields an error satisfying [errors.Is]
against [ErrUnsupported].
*/
func (r *NameConstraints) VerifyName(n NameValue) (err error) {
	if r == nil {
		return errorNilReceiver
	} else if n == nil {
		return errorNilInput
	}

	for _, e := range r.excluded {
		var rel Relation
		if rel, err = n.Constrains(e.Name); err != nil {
			return wrapf(err, "checking %s against excluded subtree %s", n.Type(), e.Name)
		}
		if rel == Match || rel == Narrows {
			err = &ViolationError{Name: n, Subtree: e.Name, Excluded: true}
			debugVerify("name within excluded subtree", "name", n, "subtree", e, "relation", rel)
			return
		}
	}

	var sameType bool
	for _, p := range r.permitted {
		var rel Relation
		if rel, err = n.Constrains(p.Name); err != nil {
			return wrapf(err, "checking %s against permitted subtree %s", n.Type(), p.Name)
		}
		switch rel {
		case Match, Narrows:
			debugVerify("name within permitted subtree", "name", n, "subtree", p, "relation", rel)
			return
		case SameType, Widens:
			sameType = true
		}
	}

	if sameType {
		err = &ViolationError{Name: n}
		debugVerify("name outside permitted subtrees", "name", n)
	}
	return
}

/*
Verify returns nil if a certificate's subject name and subject
alternative names satisfy the receiver.

altNames holds the subject alternative names; nil denotes a certificate
without that extension. In that case any emailAddress attributes of
subject are checked as rfc822Name values. The most specific common name
of subject is checked as an iPAddress or dNSName, as fits its syntax,
unless altNames already holds a name of that form; a common name of
neither syntax is ignored.

Non-zero minimum and any maximum base distances are not supported and
yield an error satisfying [errors.Is] against [ErrUnsupported].
*/
func (r *NameConstraints) Verify(subject *DistinguishedName, altNames GeneralNames) (err error) {
	if r == nil {
		return errorNilReceiver
	}

	pMin, pMax := r.permitted.hasDistances()
	eMin, eMax := r.excluded.hasDistances()
	if pMin || pMax || eMin || eMax {
		return errors.WithStack(errorDistanceFeature)
	}

	if !subject.IsEmpty() {
		if err = r.VerifyName(NewDirectoryName(subject)); err != nil {
			return
		}
	}

	names := subjectNames(subject, altNames)
	for _, n := range names {
		if err = r.VerifyName(n); err != nil {
			return
		}
	}

	debugVerify("names satisfy constraints", "subject", subject, "names", names)
	return
}

/*
subjectNames returns altNames supplemented by the names implied by
subject, as described by [NameConstraints.Verify].
*/
func subjectNames(subject *DistinguishedName, altNames GeneralNames) (names GeneralNames) {
	names = append(names, altNames...)
	if altNames == nil {
		for _, ava := range subject.AllAVAs() {
			if !ava.oid.Eq(OIDEmailAddress) {
				continue
			}
			if s, ok := ava.StringValue(); ok {
				if n, err := NewRFC822Name(s); err == nil {
					names = append(names, n)
				}
			}
		}
	}

	cnAVA := subject.FindMostSpecificAttribute(OIDCommonName)
	if cnAVA == nil {
		return
	}
	cn, ok := cnAVA.StringValue()
	if !ok {
		return
	}

	if addr, err := netip.ParseAddr(cn); err == nil && addr.Zone() == "" {
		if !names.ofType(NameIP) {
			names = append(names, IPAddressName{addr: string(addr.AsSlice())})
		}
	} else if !names.ofType(NameDNS) {
		if n, err := NewDNSName(cn); err == nil {
			names = append(names, n)
		}
	}
	return
}
