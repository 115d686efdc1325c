package x509name

/*
subtree.go contains the GeneralSubtree type and the set algebra of
GeneralSubtrees used to combine and apply name constraints.
*/

import (
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

/*
GeneralSubtree implements the GeneralSubtree type of RFC 5280:

	GeneralSubtree ::= SEQUENCE {
	    base                    GeneralName,
	    minimum         [0]     BaseDistance DEFAULT 0,
	    maximum         [1]     BaseDistance OPTIONAL }

A Maximum of -1 denotes an absent maximum.
*/
type GeneralSubtree struct {
	Name    NameValue
	Minimum int64
	Maximum int64
}

/*
NewGeneralSubtree returns a [GeneralSubtree] for n with the default
base distances.
*/
func NewGeneralSubtree(n NameValue) GeneralSubtree {
	return GeneralSubtree{Name: n, Maximum: -1}
}

/*
Constrains returns the [Relation] of the receiver's name to that of o.
Base distances are not considered.
*/
func (r GeneralSubtree) Constrains(o GeneralSubtree) (Relation, error) {
	if r.Name == nil || o.Name == nil {
		return DifferentType, errorNilInput
	}
	return r.Name.Constrains(o.Name)
}

/*
Equal returns a Boolean value indicative of the receiver and o having
equal names and base distances.
*/
func (r GeneralSubtree) Equal(o GeneralSubtree) bool {
	return r.Minimum == o.Minimum && r.Maximum == o.Maximum &&
		r.Name != nil && r.Name.Equal(o.Name)
}

/*
String returns the string representation of the receiver instance.
*/
func (r GeneralSubtree) String() string {
	if r.Name == nil {
		return "<nil>"
	}
	s := r.Name.Type().String() + ":" + r.Name.String()
	if r.Minimum != 0 || r.Maximum >= 0 {
		s += " (minimum " + itoa(int(r.Minimum))
		if r.Maximum >= 0 {
			s += ", maximum " + itoa(int(r.Maximum))
		}
		s += ")"
	}
	return s
}

func (r GeneralSubtree) marshal(b *cryptobyte.Builder) {
	if r.Name == nil {
		b.SetError(errorNilInput)
		return
	}
	b.AddASN1(cbasn1.SEQUENCE, func(c *cryptobyte.Builder) {
		r.Name.marshalGeneralName(c)
		if r.Minimum != 0 {
			c.AddASN1(contextTag(0, false), func(v *cryptobyte.Builder) {
				v.AddBytes(encodeInteger(r.Minimum))
			})
		}
		if r.Maximum >= 0 {
			c.AddASN1(contextTag(1, false), func(v *cryptobyte.Builder) {
				v.AddBytes(encodeInteger(r.Maximum))
			})
		}
	})
}

func readGeneralSubtree(s *cryptobyte.String) (r GeneralSubtree, err error) {
	var seq cryptobyte.String
	if !s.ReadASN1(&seq, cbasn1.SEQUENCE) {
		err = derErrorf([]byte(*s), "GeneralSubtree: expected SEQUENCE")
		return
	}

	raw := []byte(seq)
	r = NewGeneralSubtree(nil)
	if r.Name, err = readGeneralName(&seq, true); err != nil {
		return
	}

	var seenMin, seenMax bool
	for !seq.Empty() && err == nil {
		var (
			content cryptobyte.String
			tag     cbasn1.Tag
		)
		if !seq.ReadAnyASN1(&content, &tag) {
			err = derErrorf(raw, "GeneralSubtree: ", errorTruncated)
			break
		}

		var dist *int64
		switch {
		case tag == contextTag(0, false) && !seenMin && !seenMax:
			seenMin, dist = true, &r.Minimum
		case tag == contextTag(1, false) && !seenMax:
			seenMax, dist = true, &r.Maximum
		default:
			err = derErrorf(raw, "GeneralSubtree: unexpected or duplicate field tag ", int(tag))
			continue
		}

		if *dist, err = decodeInteger(content); err == nil {
			err = distanceConstraints.Constrain(*dist)
		}
	}

	if err == nil && r.Maximum >= 0 && r.Maximum < r.Minimum {
		err = derErrorf(raw, "GeneralSubtree: maximum is less than minimum")
	}
	return
}

/*
GeneralSubtrees implements an ordered collection of [GeneralSubtree]
instances, such as the permitted or excluded subtrees of a
[NameConstraints] instance.
*/
type GeneralSubtrees []GeneralSubtree

/*
ParseGeneralSubtrees returns the [GeneralSubtrees] decoded from the DER
encoding of a SEQUENCE OF GeneralSubtree.
*/
func ParseGeneralSubtrees(der []byte) (r GeneralSubtrees, err error) {
	s := cryptobyte.String(der)
	var seq cryptobyte.String
	if !s.ReadASN1(&seq, cbasn1.SEQUENCE) || !s.Empty() {
		err = derErrorf(der, "GeneralSubtrees: expected a single SEQUENCE")
		return
	}
	return readGeneralSubtrees(seq)
}

func readGeneralSubtrees(seq cryptobyte.String) (r GeneralSubtrees, err error) {
	if seq.Empty() {
		err = derErrorf(nil, "GeneralSubtrees: at least one subtree is required")
		return
	}

	err = readAll(seq, func(m *cryptobyte.String) (err error) {
		var gs GeneralSubtree
		if gs, err = readGeneralSubtree(m); err == nil {
			r = append(r, gs)
		}
		return
	})
	if err != nil {
		r = nil
	}
	debugCodec("decoded general subtrees", "subtrees", r, "error", err)
	return
}

/*
Marshal returns the DER encoding of the receiver as a SEQUENCE OF
GeneralSubtree.
*/
func (r GeneralSubtrees) Marshal() ([]byte, error) {
	var b cryptobyte.Builder
	r.marshal(&b, cbasn1.SEQUENCE)
	return b.Bytes()
}

func (r GeneralSubtrees) marshal(b *cryptobyte.Builder, tag cbasn1.Tag) {
	b.AddASN1(tag, func(c *cryptobyte.Builder) {
		for _, gs := range r {
			gs.marshal(c)
		}
	})
}

/*
String returns the string representation of the receiver instance.
*/
func (r GeneralSubtrees) String() string {
	parts := make([]string, len(r))
	for i, gs := range r {
		parts[i] = gs.String()
	}
	return `[` + join(parts, `, `) + `]`
}

/*
Contains returns a Boolean value indicative of the receiver holding a
subtree equal to gs.
*/
func (r GeneralSubtrees) Contains(gs GeneralSubtree) bool {
	return slices.ContainsFunc(r, gs.Equal)
}

/*
Equal returns a Boolean value indicative of the receiver and o holding
the same subtrees, without regard to order.
*/
func (r GeneralSubtrees) Equal(o GeneralSubtrees) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !o.Contains(r[i]) || !r.Contains(o[i]) {
			return false
		}
	}
	return true
}

/*
Clone returns a copy of the receiver instance. A nil receiver yields
nil. Names are immutable and are shared.
*/
func (r GeneralSubtrees) Clone() GeneralSubtrees { return slices.Clone(r) }

/*
Minimize removes redundant subtrees from the receiver: of two subtrees
with matching names one is removed, and a subtree contained within
another is removed. Subtrees whose relation is unsupported are both
retained.
*/
func (r *GeneralSubtrees) Minimize() {
	s := *r
	for i := 0; i < len(s)-1; i++ {
		removeCurrent := false
	subsequent:
		for j := i + 1; j < len(s); j++ {
			rel, err := s[j].Constrains(s[i])
			if err != nil {
				continue
			}
			switch rel {
			case Match, Widens:
				removeCurrent = true
				break subsequent
			case Narrows:
				debugSubtree("minimize: dropping narrower subtree", "subtree", s[j], "within", s[i])
				s = slices.Delete(s, j, j+1)
				j--
			}
		}
		if removeCurrent {
			debugSubtree("minimize: dropping covered subtree", "subtree", s[i])
			s = slices.Delete(s, i, i+1)
			i--
		}
	}
	*r = s
}

/*
Union appends the subtrees of other to the receiver and minimizes the
result.
*/
func (r *GeneralSubtrees) Union(other GeneralSubtrees) {
	if len(other) == 0 {
		return
	}
	*r = append(*r, other...)
	r.Minimize()
}

/*
Intersect reduces the receiver, interpreted as a set of permitted
subtrees, to its intersection with other. other is not modified.

Where the receiver and other both hold subtrees of a name form but no
pair of them intersects, the intersection of that form is empty; the
widest subtree of the form is then returned within the excluded
subtrees, which the caller must add to its excluded set.

An error is returned when two subtrees cannot be related; the receiver
is left in an unspecified state.
*/
func (r *GeneralSubtrees) Intersect(other GeneralSubtrees) (excluded GeneralSubtrees, err error) {
	exit := debugPath("this", *r, "other", other)
	defer func() { exit("result", *r, "excluded", excluded, "error", err) }()

	if *r == nil {
		r.Union(other.Clone())
		return
	}

	r.Minimize()
	other = other.Clone()
	other.Minimize()

	var newThis GeneralSubtrees
	orig := r.Clone()
	s := *r
	for i := 0; i < len(s); i++ {
		var narrowers GeneralSubtrees
		var sameType, covered bool
		for _, o := range other {
			var rel Relation
			if rel, err = o.Constrains(s[i]); err != nil {
				return
			}
			switch rel {
			case Narrows:
				narrowers = append(narrowers, o)
			case SameType:
				sameType = true
			case Match, Widens:
				covered = true
			}
		}

		switch {
		case covered:
			continue
		case len(narrowers) > 0:
			debugSubtree("intersect: replacing subtree with narrower subtrees", "subtree", s[i], "narrower", narrowers)
			newThis = append(newThis, narrowers...)
		case sameType:
			var intersects bool
			if intersects, err = formIntersects(orig, other, formOf(s[i].Name)); err != nil {
				return
			}
			if !intersects {
				var widest GeneralSubtree
				if widest, err = widestSubtree(s[i].Name.Type()); err != nil {
					return
				}
				if !excluded.Contains(widest) {
					debugSubtree("intersect: empty intersection, excluding name form", "type", s[i].Name.Type())
					excluded = append(excluded, widest)
				}
			}
		default:
			continue
		}

		s = slices.Delete(s, i, i+1)
		i--
	}
	*r = s

	r.Union(newThis)

	// forms this never constrained are taken from other as-is
	for _, o := range other {
		if !orig.hasForm(formOf(o.Name)) {
			*r = append(*r, o)
		}
	}
	return
}

/*
nameForm identifies the form of a name for the purpose of grouping
subtrees. An otherName form is qualified by its type identifier, as
otherNames of distinct type identifiers are unrelated.
*/
type nameForm struct {
	typ NameType
	id  string
}

func formOf(n NameValue) (f nameForm) {
	f.typ = n.Type()
	if o, ok := n.(*OtherName); ok && o != nil {
		f.id = o.typeID.String()
	}
	return
}

/*
formIntersects returns a Boolean value indicative of any subtree of
form f within this matching, widening or narrowing any subtree within
other.
*/
func formIntersects(this, other GeneralSubtrees, f nameForm) (bool, error) {
	for _, a := range this {
		if formOf(a.Name) != f {
			continue
		}
		for _, o := range other {
			rel, err := o.Constrains(a)
			if err != nil {
				return false, err
			}
			switch rel {
			case Match, Narrows, Widens:
				return true, nil
			}
		}
	}
	return false, nil
}

func (r GeneralSubtrees) hasForm(f nameForm) bool {
	return slices.ContainsFunc(r, func(gs GeneralSubtree) bool {
		return formOf(gs.Name) == f
	})
}

/*
Reduce removes from the receiver, interpreted as a set of permitted
subtrees, every subtree matching or falling within a subtree of
excluded.

A name form is never emptied by Reduce: were its last permitted subtree
removed, names of that form would no longer be constrained at all. The
subtrees of such a form are retained.
*/
func (r *GeneralSubtrees) Reduce(excluded GeneralSubtrees) {
	s := *r
	drop := make([]bool, len(s))
	remaining := make(map[nameForm]bool)
	for i, p := range s {
		for _, e := range excluded {
			if rel, err := p.Constrains(e); err == nil && (rel == Match || rel == Narrows) {
				drop[i] = true
				break
			}
		}
		if !drop[i] {
			remaining[formOf(p.Name)] = true
		}
	}

	kept := s[:0]
	for i, p := range s {
		switch {
		case !drop[i]:
		case !remaining[formOf(p.Name)]:
			debugSubtree("reduce: retaining excluded subtree of otherwise empty form", "subtree", p)
		default:
			debugSubtree("reduce: dropping excluded permitted subtree", "subtree", p)
			continue
		}
		kept = append(kept, p)
	}
	*r = kept
}

/*
hasDistances returns whether any subtree of the receiver declares a
non-default minimum or any maximum.
*/
func (r GeneralSubtrees) hasDistances() (hasMin, hasMax bool) {
	for _, gs := range r {
		hasMin = hasMin || gs.Minimum != 0
		hasMax = hasMax || gs.Maximum != -1
	}
	return
}

/*
widestName returns the name of form t which contains every other name
of that form.
*/
func widestName(t NameType) (n NameValue, err error) {
	switch t {
	case NameDNS:
		n = DNSName("")
	case NameRFC822:
		n = RFC822Name("")
	case NameDirectory:
		n = NewDirectoryName(nil)
	case NameURI:
		n = &URIName{constraint: true}
	case NameIP:
		n = IPAddressName{}
	default:
		err = errors.WithStack(unsupportedErrorf("no widest subtree is defined for ", t))
	}
	return
}

func widestSubtree(t NameType) (gs GeneralSubtree, err error) {
	var n NameValue
	if n, err = widestName(t); err == nil {
		gs = NewGeneralSubtree(n)
	}
	return
}
