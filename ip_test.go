package x509name

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func mustIP(t *testing.T, s string) IPAddressName {
	t.Helper()
	ip, err := ParseIPAddressName(s)
	if err != nil {
		t.Fatalf("%s failed [%s]: %v", t.Name(), s, err)
	}
	return ip
}

func TestIPAddressName_parse(t *testing.T) {
	for idx, tc := range []struct {
		in     string
		str    string
		octets []byte
	}{
		{`192.0.2.1`, `192.0.2.1`, []byte{192, 0, 2, 1}},
		{`192.0.2.0/24`, `192.0.2.0/255.255.255.0`, []byte{192, 0, 2, 0, 255, 255, 255, 0}},
		{`192.0.2.0/255.255.255.0`, `192.0.2.0/255.255.255.0`, []byte{192, 0, 2, 0, 255, 255, 255, 0}},
		{`10.0.0.0/255.0.255.0`, `10.0.0.0/255.0.255.0`, []byte{10, 0, 0, 0, 255, 0, 255, 0}},
		{`0.0.0.0/0`, `0.0.0.0/0.0.0.0`, make([]byte, 8)},
		{`2001:db8::1`, `2001:db8::1`, nil},
		{`2001:db8::/32`, `2001:db8::/32`, nil},
		{`::/0`, `::/0`, nil},
		{`2001:db8::/127`, `2001:db8::/127`, nil},
	} {
		ip, err := ParseIPAddressName(tc.in)
		if err != nil {
			t.Fatalf("%s[%d] failed [%s]: %v", t.Name(), idx, tc.in, err)
		}
		if got := ip.String(); got != tc.str {
			t.Fatalf("%s[%d] failed [String]: want %s, got %s", t.Name(), idx, tc.str, got)
		}
		if tc.octets != nil {
			if diff := cmp.Diff(tc.octets, ip.Bytes()); diff != "" {
				t.Fatalf("%s[%d] failed [Bytes] (-want +got):\n%s", t.Name(), idx, diff)
			}
		}
	}

	for idx, bad := range []string{
		``,
		`192.0.2.1/33`,
		`192.0.2.1/abc`,
		`192.0.2.0/`,
		`192.0.2.0/-1`,
		`192.0.2.0/255.255.256.0`,
		`2001:db8::/255.255.0.0`,
		`2001:db8::/129`,
		`fe80::1%eth0`,
		`example.com`,
	} {
		if ip, err := ParseIPAddressName(bad); err == nil {
			t.Fatalf("%s[%d] failed [%s]: expected error, got %s", t.Name(), idx, bad, ip)
		}
	}
}

func TestIPAddressName_bytes(t *testing.T) {
	for _, n := range []int{0, 1, 5, 12, 33} {
		if _, err := NewIPAddressName(make([]byte, n)); err == nil {
			t.Fatalf("%s failed [%d octets]: expected error", t.Name(), n)
		}
	}

	v6mask := make([]byte, 32)
	v6mask[16], v6mask[18] = 0xFF, 0xFF
	ip, err := NewIPAddressName(v6mask)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if got := ip.String(); got != `::/ff00:ff00::` {
		t.Fatalf("%s failed [non-contiguous IPv6 mask]: got %s", t.Name(), got)
	}
	if !ip.IsSubnet() || ip.IsIPv4() {
		t.Fatalf("%s failed [kind]", t.Name())
	}

	var zero IPAddressName
	if zero.String() != `` || zero.IsSubnet() || zero.IsIPv4() {
		t.Fatalf("%s failed [zero value]", t.Name())
	}
	if _, err = zero.SubtreeDepth(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("%s failed [SubtreeDepth]: %v", t.Name(), err)
	}
}

func TestIPAddressName_Constrains(t *testing.T) {
	var all IPAddressName
	for idx, tc := range []struct {
		a, b string
		want Relation
	}{
		{`192.0.2.1`, `192.0.2.0/24`, Narrows},
		{`192.0.2.0/24`, `192.0.2.1`, Widens},
		{`192.0.3.1`, `192.0.2.0/24`, SameType},
		{`192.0.2.0/24`, `192.0.0.0/8`, Narrows},
		{`192.0.0.0/8`, `192.0.2.0/24`, Widens},
		{`192.0.2.0/24`, `198.51.100.0/24`, SameType},
		{`192.0.2.0/24`, `192.0.2.0/255.255.255.0`, Match},
		{`192.0.2.1`, `192.0.2.2`, SameType},
		{`192.0.2.1`, `192.0.2.1`, Match},
		{`192.0.2.1`, `2001:db8::1`, SameType},
		{`192.0.2.0/24`, `2001:db8::/32`, SameType},
		{`2001:db8::1`, `2001:db8::/32`, Narrows},
		{`2001:db8:1::/48`, `2001:db8::/32`, Narrows},
		{`10.1.0.0/255.255.0.0`, `10.0.0.0/255.0.255.0`, SameType},
		{`10.0.5.0/255.255.255.0`, `10.0.0.0/255.0.255.0`, SameType},
		{`10.1.0.0/255.255.255.0`, `10.0.0.0/255.0.255.0`, Narrows},
		{`192.0.2.5/24`, `10.0.0.0/8`, Narrows},
		{`10.0.0.0/8`, `192.0.2.5/24`, Widens},
	} {
		a, b := mustIP(t, tc.a), mustIP(t, tc.b)
		rel, err := a.Constrains(b)
		if err != nil || rel != tc.want {
			t.Fatalf("%s[%d] failed [%s vs %s]: want %s, got %s (%v)",
				t.Name(), idx, tc.a, tc.b, tc.want, rel, err)
		}
		if inv, _ := b.Constrains(a); inv != rel.Invert() {
			t.Fatalf("%s[%d] failed [inverse]: want %s, got %s", t.Name(), idx, rel.Invert(), inv)
		}
		if rel, _ = all.Constrains(a); rel != Widens {
			t.Fatalf("%s[%d] failed [widest]: got %s", t.Name(), idx, rel)
		}
	}

	if rel, _ := all.Constrains(all); rel != Match {
		t.Fatalf("%s failed [widest vs widest]: got %s", t.Name(), rel)
	}
	if rel, _ := mustIP(t, `192.0.2.1`).Constrains(DNSName(`192.0.2.1`)); rel != DifferentType {
		t.Fatalf("%s failed [different type]: got %s", t.Name(), rel)
	}
}

func ExampleParseIPAddressName() {
	subnet, _ := ParseIPAddressName(`192.0.2.0/24`)
	host, _ := ParseIPAddressName(`192.0.2.10`)
	rel, _ := host.Constrains(subnet)
	fmt.Println(subnet, rel)
	// Output: 192.0.2.0/255.255.255.0 NARROWS
}
