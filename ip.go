package x509name

/*
ip.go contains the iPAddress alternative of GeneralName.
*/

import (
	"math/bits"
	"net/netip"

	"golang.org/x/crypto/cryptobyte"
)

/*
IPAddressName implements the iPAddress alternative of GeneralName.

The octets hold either a host address (4 octets for IPv4, 16 for IPv6)
or, within a name constraint, an address followed by a mask of equal
length (8 or 32 octets). The zero value denotes every address of either
family.
*/
type IPAddressName struct {
	addr string
}

/*
NewIPAddressName returns an [IPAddressName] holding a copy of b, which
must be 4, 8, 16 or 32 octets long.
*/
func NewIPAddressName(b []byte) (r IPAddressName, err error) {
	if err = ipLengthConstraints.Constrain(len(b)); err != nil {
		err = nameErrorf("IP address length must be 4, 8, 16 or 32 octets, got ", len(b))
		return
	}
	r = IPAddressName{addr: string(b)}
	return
}

/*
ParseIPAddressName returns an [IPAddressName] parsed from s, which is
one of:

  - an IPv4 or IPv6 address, such as "192.0.2.1" or "2001:db8::1"
  - an address and prefix length, such as "192.0.2.0/24" or "2001:db8::/32"
  - an IPv4 address and dotted mask, such as "192.0.2.0/255.255.255.0"

Address bits outside the mask are retained as given.
*/
func ParseIPAddressName(s string) (r IPAddressName, err error) {
	slash := stridxb(s, '/')
	if slash < 0 {
		var a netip.Addr
		if a, err = netip.ParseAddr(s); err != nil || a.Zone() != "" {
			err = nameErrorf("invalid IP address ", s)
			return
		}
		return IPAddressName{addr: string(a.AsSlice())}, nil
	}

	var a, m netip.Addr
	if a, err = netip.ParseAddr(s[:slash]); err != nil || a.Zone() != "" {
		err = nameErrorf("invalid IP address in ", s)
		return
	}

	maskText := s[slash+1:]
	if a.Is4() && cntns(maskText, ".") {
		if m, err = netip.ParseAddr(maskText); err != nil || !m.Is4() {
			err = nameErrorf("invalid IPv4 subnet mask in ", s)
			return
		}
	} else {
		var ones uint64
		if ones, err = puint(maskText, 10, 8); err != nil || int(ones) > a.BitLen() || !isNumber(maskText) {
			err = nameErrorf("invalid prefix length in ", s)
			return
		}
		m = prefixMask(a.BitLen()/8, int(ones))
	}

	r = IPAddressName{addr: string(a.AsSlice()) + string(m.AsSlice())}
	return
}

func prefixMask(octets, ones int) netip.Addr {
	b := make([]byte, octets)
	for i := range b {
		switch {
		case ones >= 8:
			b[i] = 0xFF
			ones -= 8
		case ones > 0:
			b[i] = byte(0xFF << (8 - ones))
			ones = 0
		}
	}
	a, _ := netip.AddrFromSlice(b)
	return a
}

func parseIPAddressName(data []byte, constraint bool) (r IPAddressName, err error) {
	switch {
	case constraint && len(data) == 0:
		return
	case constraint && len(data) != 8 && len(data) != 32:
		err = nameErrorf("iPAddress constraint must be 8 or 32 octets, got ", len(data))
		return
	case !constraint && len(data) != 4 && len(data) != 16:
		err = nameErrorf("iPAddress must be 4 or 16 octets, got ", len(data))
		return
	}
	return NewIPAddressName(data)
}

/*
Type returns [NameIP].
*/
func (r IPAddressName) Type() NameType { return NameIP }

/*
Bytes returns a copy of the address octets.
*/
func (r IPAddressName) Bytes() []byte { return []byte(r.addr) }

/*
IsSubnet returns a Boolean value indicative of the receiver holding an
address and mask pair.
*/
func (r IPAddressName) IsSubnet() bool { return len(r.addr) == 8 || len(r.addr) == 32 }

/*
IsIPv4 returns a Boolean value indicative of the receiver holding an
IPv4 address or subnet.
*/
func (r IPAddressName) IsIPv4() bool { return len(r.addr) == 4 || len(r.addr) == 8 }

/*
family returns the number of octets of a single address of the
receiver's family, or zero.
*/
func (r IPAddressName) family() int {
	if r.IsSubnet() {
		return len(r.addr) / 2
	}
	return len(r.addr)
}

/*
isEmptySubnet returns a Boolean value indicative of the receiver being
a subnet whose address has bits set outside its mask, which matches no
address at all.
*/
func (r IPAddressName) isEmptySubnet() bool {
	if !r.IsSubnet() {
		return false
	}
	n := len(r.addr) / 2
	for i := 0; i < n; i++ {
		if r.addr[i]&r.addr[i+n] != r.addr[i] {
			return true
		}
	}
	return false
}

/*
String returns the string representation of the receiver instance:
the address of a host, "address/mask" for an IPv4 subnet and
"address/prefix" for an IPv6 subnet. A non-contiguous IPv6 mask is
written in address form.
*/
func (r IPAddressName) String() string {
	a, ok := netip.AddrFromSlice([]byte(r.addr[:r.family()]))
	if !ok {
		return ""
	} else if !r.IsSubnet() {
		return a.String()
	}

	m, _ := netip.AddrFromSlice([]byte(r.addr[r.family():]))
	if r.IsIPv4() {
		return a.String() + "/" + m.String()
	} else if n, ok := maskOnes([]byte(r.addr[16:])); ok {
		return a.String() + "/" + itoa(n)
	}
	return a.String() + "/" + m.String()
}

/*
maskOnes returns the number of leading one bits within mask, and whether
all remaining bits are zero.
*/
func maskOnes(mask []byte) (n int, ok bool) {
	leading := true
	for _, c := range mask {
		switch {
		case !leading && c != 0:
			return n, false
		case c == 0xFF:
			n += 8
		default:
			ones := bits.LeadingZeros8(^c)
			if c<<ones != 0 {
				return n, false
			}
			n += ones
			leading = false
		}
	}
	return n, true
}

/*
Equal returns a Boolean value indicative of n being an [IPAddressName]
equal to the receiver. Subnets are compared by their masks and masked
addresses.
*/
func (r IPAddressName) Equal(n NameValue) bool {
	o, ok := n.(IPAddressName)
	if !ok || len(r.addr) != len(o.addr) {
		return false
	} else if !r.IsSubnet() {
		return r.addr == o.addr
	}

	h := len(r.addr) / 2
	for i := 0; i < h; i++ {
		if r.addr[i]&r.addr[i+h] != o.addr[i]&o.addr[i+h] {
			return false
		}
	}
	return r.addr[h:] == o.addr[h:]
}

/*
Constrains returns the [Relation] of the receiver to n. Host addresses
never contain one another; a host within a subnet narrows it; addresses
of different families are only of the same type. A subnet whose address
has bits outside its mask is empty and narrows every non-empty subnet.
*/
func (r IPAddressName) Constrains(n NameValue) (rel Relation, err error) {
	o, ok := n.(IPAddressName)
	if !ok {
		return DifferentType, nil
	}
	rel = ipRelation(r, o)
	debugConstrains("iPAddress", "name", r, "other", o, "relation", rel)
	return
}

func ipRelation(a, b IPAddressName) Relation {
	switch {
	case a.Equal(b):
		return Match
	case len(a.addr) == 0:
		return Widens
	case len(b.addr) == 0:
		return Narrows
	case a.family() != b.family():
		return SameType
	case !a.IsSubnet() && !b.IsSubnet():
		return SameType
	case !a.IsSubnet():
		return hostInSubnet(a.addr, b.addr, Narrows)
	case !b.IsSubnet():
		return hostInSubnet(b.addr, a.addr, Widens)
	}

	aEmpty, bEmpty := a.isEmptySubnet(), b.isEmptySubnet()
	switch {
	case aEmpty && bEmpty:
		return Match
	case aEmpty:
		return Narrows
	case bEmpty:
		return Widens
	case subnetWithin(a.addr, b.addr):
		return Narrows
	case subnetWithin(b.addr, a.addr):
		return Widens
	}
	return SameType
}

func hostInSubnet(host, subnet string, in Relation) Relation {
	h := len(host)
	for i := 0; i < h; i++ {
		if host[i]&subnet[i+h] != subnet[i] {
			return SameType
		}
	}
	return in
}

/*
subnetWithin returns a Boolean value indicative of subnet x falling
within subnet y: every bit of y's mask is set in x's mask, and both
addresses agree under y's mask.
*/
func subnetWithin(x, y string) bool {
	h := len(x) / 2
	for i := 0; i < h; i++ {
		xm, ym := x[i+h], y[i+h]
		if xm&ym != ym || x[i]&ym != y[i]&ym {
			return false
		}
	}
	return true
}

/*
SubtreeDepth always returns an error, as IP addresses form no
hierarchy of subtrees.
*/
func (r IPAddressName) SubtreeDepth() (int, error) {
	return 0, unsupportedErrorf("subtree depth is not defined for ", NameIP)
}

func (r IPAddressName) marshalGeneralName(b *cryptobyte.Builder) {
	b.AddASN1(contextTag(int(NameIP), false), func(c *cryptobyte.Builder) {
		c.AddBytes([]byte(r.addr))
	})
}
