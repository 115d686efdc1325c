package x509name

/*
edi.go contains the ediPartyName alternative of GeneralName.
*/

import (
	"golang.org/x/crypto/cryptobyte"
)

/*
EDIPartyName implements the ediPartyName alternative of GeneralName:

	EDIPartyName ::= SEQUENCE {
	    nameAssigner [0] DirectoryString OPTIONAL,
	    partyName    [1] DirectoryString }

Party names support only exact matching.
*/
type EDIPartyName struct {
	assigner *TLV
	party    TLV
}

/*
NewEDIPartyName returns an *[EDIPartyName] with both fields encoded as
UTF8String. An empty assigner is omitted.
*/
func NewEDIPartyName(assigner, party string) (r *EDIPartyName, err error) {
	if party == "" {
		err = nameErrorf("ediPartyName partyName must not be empty")
		return
	}

	r = &EDIPartyName{}
	if r.party, err = newUTF8TLV(party); err == nil && assigner != "" {
		var a TLV
		if a, err = newUTF8TLV(assigner); err == nil {
			r.assigner = &a
		}
	}
	if err != nil {
		r = nil
	}
	return
}

func newUTF8TLV(s string) (TLV, error) {
	content, err := encodeString(TagUTF8String, s)
	if err != nil {
		return TLV{}, err
	}
	return NewTLV(ClassUniversal, TagUTF8String, false, content)
}

func parseEDIPartyName(data []byte) (r *EDIPartyName, err error) {
	s := cryptobyte.String(data)
	r = &EDIPartyName{}

	var field cryptobyte.String
	var present bool
	if !s.ReadOptionalASN1(&field, &present, contextTag(0, true)) {
		err = derErrorf(data, "EDIPartyName nameAssigner: ", errorTruncated)
	} else if present {
		var a TLV
		if a, err = readDirectoryString(field); err == nil {
			r.assigner = &a
		}
	}

	if err == nil {
		if !s.ReadASN1(&field, contextTag(1, true)) {
			err = derErrorf(data, "EDIPartyName: missing partyName")
		} else if r.party, err = readDirectoryString(field); err == nil && !s.Empty() {
			err = derErrorf(data, "EDIPartyName: ", errorTrailingData)
		}
	}

	if err != nil {
		r = nil
	}
	return
}

/*
readDirectoryString reads the single DirectoryString element of an
explicitly tagged field.
*/
func readDirectoryString(s cryptobyte.String) (t TLV, err error) {
	if t, err = readTLV(&s); err != nil {
		return
	} else if !s.Empty() {
		err = codecErrorf("DirectoryString: ", errorTrailingData)
	} else if t.Class != ClassUniversal || !isDirectoryStringTag(t.Tag) {
		err = codecErrorf("DirectoryString: unexpected tag ", t.Tag)
	} else {
		_, err = decodeString(t.Tag, t.Value)
	}
	return
}

/*
Type returns [NameEDI].
*/
func (r *EDIPartyName) Type() NameType { return NameEDI }

/*
Assigner returns the decoded nameAssigner, or the empty string if absent.
*/
func (r *EDIPartyName) Assigner() (s string) {
	if r.assigner != nil {
		s, _ = decodeString(r.assigner.Tag, r.assigner.Value)
	}
	return
}

/*
Party returns the decoded partyName.
*/
func (r *EDIPartyName) Party() (s string) {
	s, _ = decodeString(r.party.Tag, r.party.Value)
	return
}

/*
String returns the string representation of the receiver instance.
*/
func (r *EDIPartyName) String() string {
	b := newStrBuilder()
	b.WriteString("EDIPartyName: ")
	if a := r.Assigner(); a != "" {
		b.WriteString("Assigner:" + a + ",")
	}
	b.WriteString("Party:" + r.Party())
	return b.String()
}

/*
Equal returns a Boolean value indicative of n being an *[EDIPartyName]
with the same assigner and party.
*/
func (r *EDIPartyName) Equal(n NameValue) bool {
	o, ok := n.(*EDIPartyName)
	return ok && r != nil && o != nil &&
		r.Assigner() == o.Assigner() &&
		r.Party() == o.Party()
}

/*
Constrains returns [Match] or [DifferentType] where applicable, and
an unsupported error otherwise.
*/
func (r *EDIPartyName) Constrains(n NameValue) (Relation, error) { return matchOnly(r, n) }

func (r *EDIPartyName) marshalGeneralName(b *cryptobyte.Builder) {
	b.AddASN1(contextTag(int(NameEDI), true), func(c *cryptobyte.Builder) {
		if r.assigner != nil {
			c.AddASN1(contextTag(0, true), func(f *cryptobyte.Builder) {
				f.AddBytes(r.assigner.raw)
			})
		}
		c.AddASN1(contextTag(1, true), func(f *cryptobyte.Builder) {
			f.AddBytes(r.party.raw)
		})
	})
}
