package x509name

/*
oidname.go contains the registeredID alternative of GeneralName.
*/

import (
	"golang.org/x/crypto/cryptobyte"
)

/*
OIDName implements the registeredID alternative of GeneralName.
Registered identifiers support only exact matching.
*/
type OIDName struct {
	oid ObjectIdentifier
}

/*
NewOIDName returns an [OIDName] holding a copy of oid.
*/
func NewOIDName(oid ObjectIdentifier) (r OIDName, err error) {
	if err = oid.validate(); err == nil {
		r = OIDName{oid: oid.Clone()}
	}
	return
}

func parseOIDName(data []byte) (r OIDName, err error) {
	var oid ObjectIdentifier
	if oid, err = parseOIDContent(data); err == nil {
		r = OIDName{oid: oid}
	}
	return
}

/*
Type returns [NameRegisteredID].
*/
func (r OIDName) Type() NameType { return NameRegisteredID }

/*
OID returns the receiver's object identifier.
*/
func (r OIDName) OID() ObjectIdentifier { return r.oid.Clone() }

/*
String returns the dotted form of the receiver instance.
*/
func (r OIDName) String() string { return r.oid.String() }

/*
Equal returns a Boolean value indicative of n being an [OIDName] for
the same object identifier.
*/
func (r OIDName) Equal(n NameValue) bool {
	o, ok := n.(OIDName)
	return ok && r.oid.Eq(o.oid)
}

/*
Constrains returns [Match] or [DifferentType] where applicable, and
an unsupported error otherwise.
*/
func (r OIDName) Constrains(n NameValue) (Relation, error) { return matchOnly(r, n) }

func (r OIDName) marshalGeneralName(b *cryptobyte.Builder) {
	b.AddASN1(contextTag(int(NameRegisteredID), false), func(c *cryptobyte.Builder) {
		c.AddBytes(r.oid.content())
	})
}
