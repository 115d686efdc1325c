package x509name

/*
uri.go contains the uniformResourceIdentifier alternative of
GeneralName.
*/

import (
	"net/netip"
	"net/url"

	"golang.org/x/crypto/cryptobyte"
)

/*
URIName implements the uniformResourceIdentifier alternative of
GeneralName.

A URIName either holds a complete URI, as found in a subject alternative
name, or a name constraint, which carries only a host specification: a
host name matching exactly that host, a leading-period domain matching
every host below it, or the empty string matching every URI.
*/
type URIName struct {
	raw        string
	uri        *url.URL
	host       string
	ip         bool
	constraint bool
}

/*
NewURIName returns a *[URIName] holding the absolute URI s. A host, when
present, must be a valid DNS name or an IP address literal.
*/
func NewURIName(s string) (r *URIName, err error) {
	var u *url.URL
	if u, err = url.Parse(s); err != nil {
		err = nameErrorf("invalid URI ", s, ": ", err)
		return
	} else if u.Scheme == "" {
		err = nameErrorf("URI ", s, " must include a scheme")
		return
	}

	r = &URIName{raw: s, uri: u, host: u.Hostname()}
	if r.host == "" {
		return
	}

	if _, perr := netip.ParseAddr(r.host); perr == nil {
		r.ip = true
	} else if err = checkDNSLabels(r.host); err != nil {
		err = nameErrorf("URI ", s, " host is neither a DNS name nor an IP address: ", err)
		r = nil
	}
	return
}

/*
NewURINameConstraint returns a *[URIName] constraint for host, which
may begin with a period and may be empty. A scheme is not allowed.
*/
func NewURINameConstraint(host string) (r *URIName, err error) {
	if cntnsAny(host, ":/?#@[]") {
		err = nameErrorf("URI name constraint ", host, " must be a bare host or domain")
		return
	}
	if host != "" {
		if err = checkDNSLabels(trimPfx(host, ".")); err != nil {
			err = nameErrorf("invalid URI name constraint ", host, ": ", err)
			return
		}
	}
	r = &URIName{raw: host, host: host, constraint: true}
	return
}

func parseURIName(data []byte, constraint bool) (r *URIName, err error) {
	var s string
	if s, err = readIA5(data); err != nil {
		return
	}
	if constraint {
		return NewURINameConstraint(s)
	}
	return NewURIName(s)
}

/*
Type returns [NameURI].
*/
func (r *URIName) Type() NameType { return NameURI }

/*
String returns the string representation of the receiver instance.
*/
func (r *URIName) String() string {
	if r == nil {
		return ""
	}
	return r.raw
}

/*
Host returns the host portion of the receiver instance, which for a
constraint is the complete value.
*/
func (r *URIName) Host() string { return r.host }

/*
IsConstraint returns a Boolean value indicative of the receiver holding
a name constraint rather than a complete URI.
*/
func (r *URIName) IsConstraint() bool { return r.constraint }

/*
URL returns a copy of the parsed URI, or nil for a constraint.
*/
func (r *URIName) URL() *url.URL {
	if r.uri == nil {
		return nil
	}
	u := *r.uri
	return &u
}

/*
SubtreeDepth returns the number of labels within the receiver's host.
*/
func (r *URIName) SubtreeDepth() (depth int, err error) {
	if r.ip {
		err = unsupportedErrorf("subtree depth of an IP address host")
	} else if r.host != "" {
		depth = DNSName(r.host).SubtreeDepth()
	}
	return
}

/*
Equal returns a Boolean value indicative of n being a *[URIName] equal
to the receiver. The scheme and host are compared without regard to
case, everything else exactly.
*/
func (r *URIName) Equal(n NameValue) bool {
	o, ok := n.(*URIName)
	if !ok || r == nil || o == nil || r.constraint != o.constraint {
		return false
	}
	if r.constraint {
		return streqf(r.host, o.host)
	}

	a, b := *r.uri, *o.uri
	if !streqf(a.Scheme, b.Scheme) || !streqf(a.Host, b.Host) {
		return false
	}
	a.Scheme, a.Host = "", ""
	b.Scheme, b.Host = "", ""
	return a.String() == b.String()
}

/*
Constrains returns the [Relation] of the receiver to n. Only hosts are
compared; containment is delegated to [DNSName] semantics, with an IP
address host never containing nor being contained by another host.
*/
func (r *URIName) Constrains(n NameValue) (rel Relation, err error) {
	o, ok := n.(*URIName)
	if !ok || r == nil || o == nil {
		return DifferentType, nil
	}

	a, b := lc(r.host), lc(o.host)
	wa, wb := a == "" && r.constraint, b == "" && o.constraint
	switch {
	case wa && wb:
		rel = Match
	case wa:
		rel = Widens
	case wb:
		rel = Narrows
	case a == "" || b == "":
		// host-less URIs only match themselves
		if rel = SameType; r.Equal(o) {
			rel = Match
		}
	case a == b:
		rel = Match
	case r.ip || o.ip:
		rel = SameType
	default:
		rel = dnsRelation(a, b)
	}

	debugConstrains("uniformResourceIdentifier", "name", r, "other", o, "relation", rel)
	return
}

func (r *URIName) marshalGeneralName(b *cryptobyte.Builder) {
	addIA5(b, int(NameURI), r.raw)
}
