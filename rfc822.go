package x509name

/*
rfc822.go contains the rfc822Name alternative of GeneralName.
*/

import (
	"golang.org/x/crypto/cryptobyte"
)

/*
RFC822Name implements the rfc822Name alternative of GeneralName, an
Internet mail address.

Within a name constraint the value may instead denote a set of
addresses: "example.com" covers every mailbox on that host and
".example.com" every mailbox on any host below that domain. The zero
value denotes every address.
*/
type RFC822Name string

/*
NewRFC822Name returns an [RFC822Name] suitable for a subject alternative
name. The domain part must not be empty.
*/
func NewRFC822Name(addr string) (r RFC822Name, err error) {
	if addr == "" {
		err = nameErrorf("rfc822Name must not be empty")
		return
	}
	if err = checkRFC822(addr); err == nil {
		r = RFC822Name(addr)
	}
	return
}

/*
NewRFC822NameConstraint returns an [RFC822Name] suitable as the base of
a GeneralSubtree: a mailbox, a host, a leading-period domain or the
empty string.
*/
func NewRFC822NameConstraint(addr string) (r RFC822Name, err error) {
	if addr == "" {
		return
	}
	if err = checkRFC822(addr); err == nil {
		r = RFC822Name(addr)
	}
	return
}

func checkRFC822(addr string) (err error) {
	domain := addr[stridxb(addr, '@')+1:]
	switch {
	case domain == "":
		err = nameErrorf("rfc822Name ", addr, " must not end with '@'")
	case domain == ".":
		err = nameErrorf("rfc822Name domain must not be a bare period")
	case cntns(domain, "@"):
		err = nameErrorf("rfc822Name ", addr, " contains more than one '@'")
	case cntnsAny(addr, " \t\r\n"):
		err = nameErrorf("rfc822Name ", addr, " contains whitespace")
	}
	return
}

func parseRFC822Name(data []byte, constraint bool) (r RFC822Name, err error) {
	var s string
	if s, err = readIA5(data); err != nil {
		return
	}
	if constraint {
		return NewRFC822NameConstraint(s)
	}
	return NewRFC822Name(s)
}

/*
Type returns [NameRFC822].
*/
func (r RFC822Name) Type() NameType { return NameRFC822 }

/*
String returns the string representation of the receiver instance.
*/
func (r RFC822Name) String() string { return string(r) }

/*
Equal returns a Boolean value indicative of n being an [RFC822Name]
which equals the receiver without regard to case.
*/
func (r RFC822Name) Equal(n NameValue) bool {
	o, ok := n.(RFC822Name)
	return ok && streqf(string(r), string(o))
}

/*
SubtreeDepth returns the depth of the receiver within the DNS hierarchy,
counting a mailbox local part as one additional level.
*/
func (r RFC822Name) SubtreeDepth() (depth int) {
	s := string(r)
	depth = 1
	if i := lidxb(s, '@'); i >= 0 {
		depth++
		s = s[i+1:]
	}
	for i := lidxb(s, '.'); i >= 0; i = lidxb(s, '.') {
		depth++
		s = s[:i]
	}
	return
}

/*
Constrains returns the [Relation] of the receiver to n.
*/
func (r RFC822Name) Constrains(n NameValue) (rel Relation, err error) {
	o, ok := n.(RFC822Name)
	if !ok {
		return DifferentType, nil
	}

	a, b := lc(string(r)), lc(string(o))
	switch {
	case a == b:
		rel = Match
	case a == "":
		rel = Widens
	case b == "":
		rel = Narrows
	case mailWithin(a, b):
		rel = Narrows
	case mailWithin(b, a):
		rel = Widens
	default:
		rel = SameType
	}

	debugConstrains("rfc822Name", "name", r, "other", o, "relation", rel)
	return
}

/*
mailWithin returns a Boolean value indicative of the lowercased address
or constraint x falling strictly within the lowercased constraint y.
A y holding a mailbox contains nothing but itself.
*/
func mailWithin(x, y string) bool {
	if cntns(y, "@") || !hasSfx(x, y) || len(x) <= len(y) {
		return false
	}
	return hasPfx(y, ".") || x[len(x)-len(y)-1] == '@'
}

func (r RFC822Name) marshalGeneralName(b *cryptobyte.Builder) {
	addIA5(b, int(NameRFC822), string(r))
}
