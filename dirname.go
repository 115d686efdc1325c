package x509name

/*
dirname.go contains the directoryName alternative of GeneralName.
*/

import (
	"golang.org/x/crypto/cryptobyte"
)

/*
DirectoryName implements the directoryName alternative of GeneralName.
A name constrains every name within its subtree; the empty name denotes
every directory name.
*/
type DirectoryName struct {
	dn *DistinguishedName
}

/*
NewDirectoryName returns a *[DirectoryName] wrapping dn. A nil dn is
treated as the empty name.
*/
func NewDirectoryName(dn *DistinguishedName) *DirectoryName {
	if dn == nil {
		dn = NewDistinguishedName()
	}
	return &DirectoryName{dn: dn}
}

func parseDirectoryName(data []byte) (r *DirectoryName, err error) {
	s := cryptobyte.String(data)
	var dn *DistinguishedName
	if dn, err = readDN(&s); err == nil {
		if !s.Empty() {
			err = derErrorf(data, "directoryName: ", errorTrailingData)
		} else {
			r = &DirectoryName{dn: dn}
		}
	}
	return
}

/*
Type returns [NameDirectory].
*/
func (r *DirectoryName) Type() NameType { return NameDirectory }

/*
DN returns the wrapped *[DistinguishedName].
*/
func (r *DirectoryName) DN() *DistinguishedName { return r.dn }

/*
String returns the string representation of the receiver instance.
*/
func (r *DirectoryName) String() string {
	if r == nil {
		return ""
	}
	return r.dn.String()
}

/*
SubtreeDepth returns the number of RDNs within the receiver instance.
*/
func (r *DirectoryName) SubtreeDepth() int { return r.dn.SubtreeDepth() }

/*
Equal returns a Boolean value indicative of n being a *[DirectoryName]
whose name is canonically equal to the receiver's.
*/
func (r *DirectoryName) Equal(n NameValue) bool {
	o, ok := n.(*DirectoryName)
	return ok && r != nil && o != nil && r.dn.Equal(o.dn)
}

/*
Constrains returns the [Relation] of the receiver to n, determined by
subtree containment of the two names.
*/
func (r *DirectoryName) Constrains(n NameValue) (rel Relation, err error) {
	o, ok := n.(*DirectoryName)
	if !ok || o == nil {
		return DifferentType, nil
	}

	switch {
	case r.dn.Equal(o.dn):
		rel = Match
	case r.dn.IsEmpty():
		rel = Widens
	case o.dn.IsEmpty():
		rel = Narrows
	case r.dn.IsWithinSubtree(o.dn):
		rel = Narrows
	case o.dn.IsWithinSubtree(r.dn):
		rel = Widens
	default:
		rel = SameType
	}

	debugConstrains("directoryName", "name", r, "other", o, "relation", rel)
	return
}

func (r *DirectoryName) marshalGeneralName(b *cryptobyte.Builder) {
	b.AddASN1(contextTag(int(NameDirectory), true), func(c *cryptobyte.Builder) {
		r.dn.marshal(c)
	})
}
