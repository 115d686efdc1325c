package x509name

/*
dns.go contains the dNSName alternative of GeneralName.
*/

import (
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/net/idna"
)

/*
DNSName implements the dNSName alternative of GeneralName.

Within a name constraint a value beginning with a period, such as
".example.com", denotes every name strictly below that domain; any
other value denotes that exact host. The zero value denotes every
DNS name.
*/
type DNSName string

/*
NewDNSName returns a [DNSName] suitable for a subject alternative name.
Internationalized input is converted to its A-label form. A wildcard
label ("*") is permitted only as the leftmost label.
*/
func NewDNSName(name string) (DNSName, error) {
	return newDNSName(name, false)
}

/*
NewDNSNameConstraint returns a [DNSName] suitable as the base of a
GeneralSubtree. In addition to what [NewDNSName] accepts, a leading
period and the empty string are allowed; wildcards are not.
*/
func NewDNSNameConstraint(name string) (DNSName, error) {
	return newDNSName(name, true)
}

func newDNSName(name string, constraint bool) (r DNSName, err error) {
	if name == "" {
		if !constraint {
			err = nameErrorf("dNSName must not be empty")
		}
		return
	}

	var prefix string
	body := name
	switch {
	case constraint && hasPfx(body, "."):
		prefix, body = ".", body[1:]
	case !constraint && hasPfx(body, "*."):
		prefix, body = "*.", body[2:]
	}

	if body, err = toASCIIHost(body); err == nil {
		if err = checkDNSLabels(body); err == nil {
			r = DNSName(prefix + body)
		}
	}

	return
}

/*
toASCIIHost returns the A-label form of host when it holds any non-ASCII
characters, and host otherwise.
*/
func toASCIIHost(host string) (string, error) {
	for i := 0; i < len(host); i++ {
		if host[i] >= 0x80 {
			a, err := idna.Lookup.ToASCII(host)
			if err != nil {
				return "", nameErrorf("invalid internationalized domain name ", host, ": ", err)
			}
			return a, nil
		}
	}
	return host, nil
}

func checkDNSLabels(name string) (err error) {
	if err = dnsNameConstraints.Constrain(name); err != nil {
		return
	}
	for _, label := range split(name, ".") {
		if label == "" {
			return nameErrorf("dNSName ", name, " contains an empty label")
		} else if err = dnsLabelConstraints.Constrain(label); err != nil {
			return
		}
	}
	return
}

func parseDNSName(data []byte, constraint bool) (r DNSName, err error) {
	var s string
	if s, err = readIA5(data); err != nil {
		return
	}
	if s == "" && !constraint {
		err = nameErrorf("dNSName must not be empty")
		return
	}
	r = DNSName(s)
	return
}

/*
Type returns [NameDNS].
*/
func (r DNSName) Type() NameType { return NameDNS }

/*
String returns the string representation of the receiver instance.
*/
func (r DNSName) String() string { return string(r) }

/*
Equal returns a Boolean value indicative of n being a [DNSName] which
equals the receiver without regard to case.
*/
func (r DNSName) Equal(n NameValue) bool {
	o, ok := n.(DNSName)
	return ok && streqf(string(r), string(o))
}

/*
IsDomain returns a Boolean value indicative of the receiver denoting a
domain constraint, i.e. beginning with a period.
*/
func (r DNSName) IsDomain() bool { return hasPfx(string(r), ".") }

/*
SubtreeDepth returns the number of labels within the receiver instance.
*/
func (r DNSName) SubtreeDepth() int {
	return len(split(trimPfx(string(r), "."), "."))
}

/*
Constrains returns the [Relation] of the receiver to n.
*/
func (r DNSName) Constrains(n NameValue) (rel Relation, err error) {
	o, ok := n.(DNSName)
	if !ok {
		return DifferentType, nil
	}
	rel = dnsRelation(lc(string(r)), lc(string(o)))
	debugConstrains("dNSName", "name", r, "other", o, "relation", rel)
	return
}

/*
dnsRelation relates two lowercased DNS names or constraints. Only a
leading-period domain may contain another name.
*/
func dnsRelation(a, b string) Relation {
	switch {
	case a == b:
		return Match
	case a == "":
		return Widens
	case b == "":
		return Narrows
	case hasPfx(b, ".") && len(a) > len(b) && hasSfx(a, b):
		return Narrows
	case hasPfx(a, ".") && len(b) > len(a) && hasSfx(b, a):
		return Widens
	}
	return SameType
}

func (r DNSName) marshalGeneralName(b *cryptobyte.Builder) {
	addIA5(b, int(NameDNS), string(r))
}
