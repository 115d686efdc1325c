package x509name

import (
	"fmt"
	"strings"
	"testing"
)

func TestConstraintGroup_dnsLabels(t *testing.T) {
	for idx, tc := range []struct {
		label string
		valid bool
	}{
		{"example", true},
		{"xn--bcher-kva", true},
		{"a1-b2", true},
		{"0", true},
		{"", false},
		{"-lead", false},
		{"trail-", false},
		{"under_score", false},
		{"sp ace", false},
		{string(make([]byte, 64)), false},
	} {
		if err := dnsLabelConstraints.Constrain(tc.label); (err == nil) != tc.valid {
			t.Fatalf("%s[%d] failed [%q]: want valid:%t, got %v",
				t.Name(), idx, tc.label, tc.valid, err)
		}
	}
}

func TestConstraintGroup_ipLengths(t *testing.T) {
	for n := 0; n <= 40; n++ {
		want := n == 4 || n == 8 || n == 16 || n == 32
		if err := ipLengthConstraints.Constrain(n); (err == nil) != want {
			t.Fatalf("%s failed [%d]: want valid:%t, got %v", t.Name(), n, want, err)
		}
	}
}

func TestConstraintGroup_dnsNames(t *testing.T) {
	for idx, tc := range []struct {
		name  string
		valid bool
	}{
		{"example.com", true},
		{"xn--bcher-kva.example", true},
		{"", false},
		{"under_score.com", false},
		{"*.example.com", false},
		{strings.Repeat("a", 254), false},
	} {
		if err := dnsNameConstraints.Constrain(tc.name); (err == nil) != tc.valid {
			t.Fatalf("%s[%d] failed [%q]: want valid:%t, got %v",
				t.Name(), idx, tc.name, tc.valid, err)
		}
	}
}

func TestConstraintGroup_rdnSize(t *testing.T) {
	ava, err := ParseAVA(`CN=a`, DefaultFormat, nil)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if err = rdnSizeConstraints.Constrain(&RDN{avas: []*AVA{ava}}); err != nil {
		t.Fatalf("%s failed [one AVA]: %v", t.Name(), err)
	}
	if err = rdnSizeConstraints.Constrain(&RDN{}); err == nil {
		t.Fatalf("%s failed [no AVAs]: expected error", t.Name())
	}
}

func TestConstraintGroup_distances(t *testing.T) {
	for idx, tc := range []struct {
		n     int64
		valid bool
	}{
		{0, true},
		{5, true},
		{1<<31 - 1, true},
		{-1, false},
		{1 << 31, false},
	} {
		if err := distanceConstraints.Constrain(tc.n); (err == nil) != tc.valid {
			t.Fatalf("%s[%d] failed [%d]: want valid:%t, got %v",
				t.Name(), idx, tc.n, tc.valid, err)
		}
	}
}

func TestConstraint_combinators(t *testing.T) {
	short := StringLength(1, 3)
	alpha := From(letters)

	or := Union(short, alpha)
	and := Intersection(short, alpha)

	for idx, tc := range []struct {
		s      string
		or, an bool
	}{
		{"ab", true, true},
		{"12", true, false},
		{"abcdef", true, false},
		{"12345", false, false},
	} {
		if got := or(tc.s) == nil; got != tc.or {
			t.Fatalf("%s[%d] failed [Union %q]: want %t", t.Name(), idx, tc.s, tc.or)
		}
		if got := and(tc.s) == nil; got != tc.an {
			t.Fatalf("%s[%d] failed [Intersection %q]: want %t", t.Name(), idx, tc.s, tc.an)
		}
	}
}

func TestConstraint_codecov(t *testing.T) {
	size := SizeConstraint[*DistinguishedName](1, 2)
	if err := size(MustParseDistinguishedName("CN=a,O=b")); err != nil {
		t.Fatalf("%s failed [SizeConstraint]: %v", t.Name(), err)
	}
	if err := size(MustParseDistinguishedName("CN=a,OU=b,O=c")); err == nil {
		t.Fatalf("%s failed [SizeConstraint]: expected error", t.Name())
	}

	var group ConstraintGroup[int]
	group = append(group, nil, RangeConstraint(1, 2))
	if err := group.Constrain(3); err == nil {
		t.Fatalf("%s failed [ConstraintGroup]: expected error", t.Name())
	}

	anc := Ancestor(func(a, b string) bool { return a == b })
	if !anc([]string{"c=us"}, []string{"c=us", "o=x"}) ||
		anc([]string{"c=us", "o=x"}, []string{"c=us"}) ||
		anc([]string{"c=gb"}, []string{"c=us", "o=x"}) {
		t.Fatalf("%s failed [Ancestor]", t.Name())
	}
}

func ExampleAncestor() {
	prefix := Ancestor(func(a, b int) bool { return a == b })
	fmt.Println(prefix([]int{1, 2}, []int{1, 2, 3}))
	fmt.Println(prefix([]int{1, 3}, []int{1, 2, 3}))
	// Output:
	// true
	// false
}
