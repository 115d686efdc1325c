package x509name

/*
x400.go contains the x400Address alternative of GeneralName.
*/

import (
	"golang.org/x/crypto/cryptobyte"
)

/*
X400Address implements the x400Address alternative of GeneralName. The
ORAddress structure is retained as opaque DER content and supports
only exact matching.
*/
type X400Address struct {
	content []byte
}

/*
NewX400Address returns an *[X400Address] holding a copy of content, the
concatenated DER elements of an ORAddress SEQUENCE.
*/
func NewX400Address(content []byte) (r *X400Address, err error) {
	s := cryptobyte.String(content)
	if s.Empty() {
		err = nameErrorf("x400Address must not be empty")
		return
	}
	if err = readAll(s, func(m *cryptobyte.String) (err error) {
		_, err = readTLV(m)
		return
	}); err == nil {
		r = &X400Address{content: cloneBytes(content)}
	}
	return
}

/*
Type returns [NameX400].
*/
func (r *X400Address) Type() NameType { return NameX400 }

/*
Bytes returns a copy of the receiver's DER content.
*/
func (r *X400Address) Bytes() []byte { return cloneBytes(r.content) }

/*
String returns the hexadecimal form of the receiver's DER content.
*/
func (r *X400Address) String() string { return "#" + hexstr(r.content) }

/*
Equal returns a Boolean value indicative of n being an *[X400Address]
with identical content.
*/
func (r *X400Address) Equal(n NameValue) bool {
	o, ok := n.(*X400Address)
	return ok && r != nil && o != nil && bytesEqual(r.content, o.content)
}

/*
Constrains returns [Match] or [DifferentType] where applicable, and
an unsupported error otherwise.
*/
func (r *X400Address) Constrains(n NameValue) (Relation, error) { return matchOnly(r, n) }

func (r *X400Address) marshalGeneralName(b *cryptobyte.Builder) {
	b.AddASN1(contextTag(int(NameX400), true), func(c *cryptobyte.Builder) {
		c.AddBytes(r.content)
	})
}
