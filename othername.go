package x509name

/*
othername.go contains the otherName alternative of GeneralName.
*/

import (
	"golang.org/x/crypto/cryptobyte"
)

/*
OtherName implements the otherName alternative of GeneralName:

	OtherName ::= SEQUENCE {
	    type-id    OBJECT IDENTIFIER,
	    value      [0] EXPLICIT ANY DEFINED BY type-id }

The value is retained as an opaque DER element. Names with different
type identifiers are treated as different name forms.
*/
type OtherName struct {
	typeID ObjectIdentifier
	value  TLV
}

/*
NewOtherName returns an *[OtherName] for the type identifier oid and the
single, complete DER element value.
*/
func NewOtherName(oid ObjectIdentifier, value []byte) (r *OtherName, err error) {
	if err = oid.validate(); err != nil {
		return
	}

	var tlv TLV
	if tlv, err = ParseTLV(value); err == nil {
		r = &OtherName{typeID: oid.Clone(), value: tlv}
	}
	return
}

func parseOtherName(data []byte) (r *OtherName, err error) {
	s := cryptobyte.String(data)

	var oid ObjectIdentifier
	if oid, err = readOID(&s); err != nil {
		return
	}

	var inner cryptobyte.String
	if !s.ReadASN1(&inner, contextTag(0, true)) || !s.Empty() {
		err = derErrorf(data, "OtherName: expected a single [0] EXPLICIT value")
		return
	}

	var tlv TLV
	if tlv, err = readTLV(&inner); err == nil {
		if !inner.Empty() {
			err = derErrorf(data, "OtherName value: ", errorTrailingData)
		} else {
			r = &OtherName{typeID: oid, value: tlv}
		}
	}
	return
}

/*
Type returns [NameOther].
*/
func (r *OtherName) Type() NameType { return NameOther }

/*
TypeID returns the receiver's type identifier.
*/
func (r *OtherName) TypeID() ObjectIdentifier { return r.typeID.Clone() }

/*
Value returns the receiver's value element.
*/
func (r *OtherName) Value() TLV { return r.value }

/*
String returns the string representation of the receiver instance.
*/
func (r *OtherName) String() string {
	return r.typeID.String() + "=#" + hexstr(r.value.raw)
}

/*
Equal returns a Boolean value indicative of n being an *[OtherName] with
the same type identifier and value encoding.
*/
func (r *OtherName) Equal(n NameValue) bool {
	o, ok := n.(*OtherName)
	return ok && r != nil && o != nil &&
		r.typeID.Eq(o.typeID) &&
		bytesEqual(r.value.raw, o.value.raw)
}

/*
Constrains returns [DifferentType] for names of another form or type
identifier, [Match] for an equal name, and an unsupported error
otherwise.
*/
func (r *OtherName) Constrains(n NameValue) (Relation, error) {
	if o, ok := n.(*OtherName); ok && o != nil && !r.typeID.Eq(o.typeID) {
		return DifferentType, nil
	}
	return matchOnly(r, n)
}

func (r *OtherName) marshalGeneralName(b *cryptobyte.Builder) {
	b.AddASN1(contextTag(int(NameOther), true), func(c *cryptobyte.Builder) {
		r.typeID.marshal(c)
		c.AddASN1(contextTag(0, true), func(v *cryptobyte.Builder) {
			v.AddBytes(r.value.raw)
		})
	})
}
