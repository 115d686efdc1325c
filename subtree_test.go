package x509name

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func subtrees(names ...NameValue) (r GeneralSubtrees) {
	r = GeneralSubtrees{}
	for _, n := range names {
		r = append(r, NewGeneralSubtree(n))
	}
	return
}

func mustOIDName(dot string) OIDName {
	n, err := NewOIDName(mustOID(dot))
	if err != nil {
		panic(err)
	}
	return n
}

func mustOtherName(dot, valueHex string) *OtherName {
	n, err := NewOtherName(mustOID(dot), mustHex(valueHex))
	if err != nil {
		panic(err)
	}
	return n
}

func TestGeneralSubtrees_Minimize(t *testing.T) {
	for idx, tc := range []struct {
		in, want GeneralSubtrees
	}{
		{
			in: subtrees(DNSName(`.example.com`), DNSName(`www.example.com`),
				DNSName(`.example.com`), DNSName(`.other.com`)),
			want: subtrees(DNSName(`.example.com`), DNSName(`.other.com`)),
		},
		{
			in:   subtrees(DNSName(`www.example.com`), DNSName(``), RFC822Name(`example.com`)),
			want: subtrees(DNSName(``), RFC822Name(`example.com`)),
		},
		{
			in:   subtrees(mustOIDName(`1.2.3`), mustOIDName(`1.2.4`), mustOIDName(`1.2.3`)),
			want: subtrees(mustOIDName(`1.2.3`), mustOIDName(`1.2.4`)),
		},
		{
			in:   GeneralSubtrees{},
			want: GeneralSubtrees{},
		},
	} {
		got := tc.in.Clone()
		got.Minimize()
		if !got.Equal(tc.want) {
			t.Fatalf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}
}

func TestGeneralSubtrees_Union(t *testing.T) {
	a := subtrees(DNSName(`.example.com`), mustIPName(`192.0.2.0/24`))
	b := a.Clone()
	b.Union(a)
	if !b.Equal(a) {
		t.Fatalf("%s failed [idempotence]: got %s", t.Name(), b)
	}

	b.Union(subtrees(DNSName(`.com`), mustIPName(`198.51.100.0/24`)))
	want := subtrees(DNSName(`.com`), mustIPName(`192.0.2.0/24`), mustIPName(`198.51.100.0/24`))
	if !b.Equal(want) {
		t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), want, b)
	}
	if len(a) != 2 {
		t.Fatalf("%s failed: operand modified", t.Name())
	}
}

func mustIPName(s string) IPAddressName {
	ip, err := ParseIPAddressName(s)
	if err != nil {
		panic(err)
	}
	return ip
}

func TestGeneralSubtrees_Intersect(t *testing.T) {
	for idx, tc := range []struct {
		this, other   GeneralSubtrees
		want, wantExc GeneralSubtrees
	}{
		{
			this:  GeneralSubtrees{},
			other: subtrees(DNSName(`.example.com`)),
			want:  subtrees(DNSName(`.example.com`)),
		},
		{
			this:  subtrees(DNSName(`.example.com`)),
			other: subtrees(DNSName(`secure.example.com`)),
			want:  subtrees(DNSName(`secure.example.com`)),
		},
		{
			this:  subtrees(DNSName(`secure.example.com`)),
			other: subtrees(DNSName(`.example.com`)),
			want:  subtrees(DNSName(`secure.example.com`)),
		},
		{
			this:    subtrees(DNSName(`.a.com`)),
			other:   subtrees(DNSName(`.b.com`)),
			want:    GeneralSubtrees{},
			wantExc: subtrees(DNSName(``)),
		},
		{
			this:  subtrees(DNSName(`.example.com`), mustIPName(`192.0.2.0/24`)),
			other: subtrees(DNSName(`www.example.com`)),
			want:  subtrees(mustIPName(`192.0.2.0/24`), DNSName(`www.example.com`)),
		},
		{
			this:  subtrees(DNSName(`.example.com`)),
			other: subtrees(mustIPName(`192.0.2.0/24`)),
			want:  subtrees(DNSName(`.example.com`), mustIPName(`192.0.2.0/24`)),
		},
		{
			this:  subtrees(DNSName(`.example.com`), DNSName(`.other.com`)),
			other: subtrees(DNSName(`www.example.com`)),
			want:  subtrees(DNSName(`www.example.com`)),
		},
		{
			this:  subtrees(DNSName(`.example.com`)),
			other: subtrees(DNSName(`a.example.com`), DNSName(`b.example.com`)),
			want:  subtrees(DNSName(`a.example.com`), DNSName(`b.example.com`)),
		},
		{
			this:    subtrees(RFC822Name(`example.com`), mustIPName(`10.0.0.0/8`)),
			other:   subtrees(RFC822Name(`example.org`), mustIPName(`10.1.0.0/16`)),
			want:    subtrees(mustIPName(`10.1.0.0/16`)),
			wantExc: subtrees(RFC822Name(``)),
		},
		{
			// intersecting with no subtrees changes nothing
			this:  subtrees(DNSName(`.example.com`), mustIPName(`10.0.0.0/8`)),
			other: GeneralSubtrees{},
			want:  subtrees(DNSName(`.example.com`), mustIPName(`10.0.0.0/8`)),
		},
		{
			this:  subtrees(DNSName(`.example.com`), mustIPName(`10.0.0.0/8`)),
			other: nil,
			want:  subtrees(DNSName(`.example.com`), mustIPName(`10.0.0.0/8`)),
		},
		{
			// otherNames of distinct type identifiers are distinct forms
			this:  subtrees(mustOtherName(`1.3.6.1.4.1.311.20.2.3`, `0c0161`)),
			other: subtrees(mustOtherName(`1.3.6.1.5.5.7.8.9`, `0c0162`)),
			want: subtrees(mustOtherName(`1.3.6.1.4.1.311.20.2.3`, `0c0161`),
				mustOtherName(`1.3.6.1.5.5.7.8.9`, `0c0162`)),
		},
	} {
		other := tc.other.Clone()
		got := tc.this.Clone()
		exc, err := got.Intersect(other)
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%s[%d] failed [permitted]:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
		if !exc.Equal(tc.wantExc) {
			t.Fatalf("%s[%d] failed [excluded]:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.wantExc, exc)
		}
		if !other.Equal(tc.other) {
			t.Fatalf("%s[%d] failed: other was modified", t.Name(), idx)
		}
	}

	this := subtrees(mustOIDName(`1.2.3`))
	if _, err := this.Intersect(subtrees(mustOIDName(`1.2.4`))); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("%s failed: expected unsupported error, got %v", t.Name(), err)
	}

	x400, _ := NewX400Address(mustHex(`3000`))
	x400b, _ := NewX400Address(mustHex(`3003020101`))
	this = subtrees(x400)
	if _, err := this.Intersect(subtrees(x400b)); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("%s failed: expected unsupported error, got %v", t.Name(), err)
	}
}

func TestGeneralSubtrees_Reduce(t *testing.T) {
	for idx, tc := range []struct {
		permitted, excluded, want GeneralSubtrees
	}{
		{
			permitted: subtrees(DNSName(`.example.com`), DNSName(`www.example.com`), DNSName(`.other.com`)),
			excluded:  subtrees(DNSName(`.example.com`)),
			want:      subtrees(DNSName(`.other.com`)),
		},
		{
			// the last subtree of a form is kept
			permitted: subtrees(DNSName(`.example.com`), mustIPName(`10.0.0.0/8`)),
			excluded:  subtrees(DNSName(``)),
			want:      subtrees(DNSName(`.example.com`), mustIPName(`10.0.0.0/8`)),
		},
		{
			permitted: subtrees(DNSName(`.a.example.com`)),
			excluded:  subtrees(DNSName(`.example.com`)),
			want:      subtrees(DNSName(`.a.example.com`)),
		},
		{
			permitted: subtrees(mustOtherName(`1.3.6.1.4.1.311.20.2.3`, `0c0161`),
				mustOtherName(`1.3.6.1.5.5.7.8.9`, `0c0162`)),
			excluded: subtrees(mustOtherName(`1.3.6.1.4.1.311.20.2.3`, `0c0161`)),
			want: subtrees(mustOtherName(`1.3.6.1.4.1.311.20.2.3`, `0c0161`),
				mustOtherName(`1.3.6.1.5.5.7.8.9`, `0c0162`)),
		},
		{
			permitted: GeneralSubtrees{},
			excluded:  subtrees(DNSName(`.example.com`)),
			want:      GeneralSubtrees{},
		},
		{
			permitted: subtrees(DNSName(`.example.com`)),
			excluded:  subtrees(DNSName(`bad.example.com`)),
			want:      subtrees(DNSName(`.example.com`)),
		},
		{
			permitted: subtrees(mustOIDName(`1.2.3`)),
			excluded:  subtrees(mustOIDName(`1.2.4`)),
			want:      subtrees(mustOIDName(`1.2.3`)),
		},
	} {
		got := tc.permitted.Clone()
		got.Reduce(tc.excluded)
		if !got.Equal(tc.want) {
			t.Fatalf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}
}

func TestGeneralSubtrees_codec(t *testing.T) {
	for idx, tc := range []struct {
		gs  GeneralSubtrees
		der string
		str string
	}{
		{
			gs:  GeneralSubtrees{{Name: DNSName(`.example.com`), Minimum: 1, Maximum: 3}},
			der: `30163014820c2e6578616d706c652e636f6d800101810103`,
			str: `[dNSName:.example.com (minimum 1, maximum 3)]`,
		},
		{
			gs:  subtrees(DNSName(`example.com`)),
			der: `300f300d820b6578616d706c652e636f6d`,
			str: `[dNSName:example.com]`,
		},
		{
			gs:  GeneralSubtrees{{Name: mustIPName(`192.0.2.0/24`), Maximum: 0}},
			der: `300f300d8708c0000200ffffff00810100`,
			str: `[iPAddress:192.0.2.0/255.255.255.0 (minimum 0, maximum 0)]`,
		},
		{
			gs:  subtrees(DNSName(``), IPAddressName{}),
			der: `30083002820030028700`,
			str: `[dNSName:, iPAddress:]`,
		},
	} {
		der, err := tc.gs.Marshal()
		if err != nil {
			t.Fatalf("%s[%d] failed [encoding]: %v", t.Name(), idx, err)
		}
		if got := hex.EncodeToString(der); got != tc.der {
			t.Fatalf("%s[%d] failed [encoding]:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.der, got)
		}
		if got := tc.gs.String(); got != tc.str {
			t.Fatalf("%s[%d] failed [String]:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.str, got)
		}

		back, err := ParseGeneralSubtrees(der)
		if err != nil {
			t.Fatalf("%s[%d] failed [decoding]: %v", t.Name(), idx, err)
		}
		if !back.Equal(tc.gs) {
			t.Fatalf("%s[%d] failed [cmp.]:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.gs, back)
		}
	}
}

func TestGeneralSubtrees_invalid(t *testing.T) {
	for idx, der := range []string{
		`3000`,                       // no subtrees
		`300a3008820080010180010101`, // duplicate minimum
		`300a3008820081010380010101`, // minimum after maximum
		`300430028201`,               // truncated base
		`3006300482008200`,           // unexpected field
		`300a3008820080010381010101`, // maximum below minimum
		`3007300582008001ff`,         // negative minimum
		`300830068704c0000201`,       // host address as a base
		`300230`,                     // truncated
		`3002300000`,                 // trailing data
	} {
		if gs, err := ParseGeneralSubtrees(mustHex(der)); err == nil {
			t.Fatalf("%s[%d] failed [%s]: expected error, got %s", t.Name(), idx, der, gs)
		}
	}
}

func TestGeneralSubtrees_misc(t *testing.T) {
	a := subtrees(DNSName(`.example.com`), mustIPName(`10.0.0.0/8`))
	b := subtrees(mustIPName(`10.0.0.0/8`), DNSName(`.EXAMPLE.com`))
	if !a.Equal(b) || a.Equal(b[:1]) {
		t.Fatalf("%s failed [Equal]", t.Name())
	}
	if !a.Contains(NewGeneralSubtree(DNSName(`.example.com`))) ||
		a.Contains(GeneralSubtree{Name: DNSName(`.example.com`), Minimum: 1, Maximum: -1}) {
		t.Fatalf("%s failed [Contains]", t.Name())
	}

	c := a.Clone()
	c[0] = NewGeneralSubtree(DNSName(`changed.com`))
	if a[0].Name.String() != `.example.com` {
		t.Fatalf("%s failed [Clone]", t.Name())
	}
	if GeneralSubtrees(nil).Clone() != nil {
		t.Fatalf("%s failed [nil Clone]", t.Name())
	}

	if _, err := NewGeneralSubtree(nil).Constrains(a[0]); err == nil {
		t.Fatalf("%s failed: expected nil name error", t.Name())
	}
	if NewGeneralSubtree(nil).String() != `<nil>` {
		t.Fatalf("%s failed [nil String]", t.Name())
	}
	if _, err := subtrees(nil).Marshal(); err == nil {
		t.Fatalf("%s failed: expected nil name encoding error", t.Name())
	}

	for _, typ := range []NameType{NameOther, NameX400, NameEDI, NameRegisteredID} {
		if _, err := widestName(typ); !errors.Is(err, ErrUnsupported) {
			t.Fatalf("%s failed [%s]: expected unsupported error, got %v", t.Name(), typ, err)
		}
	}
	for _, typ := range []NameType{NameRFC822, NameDNS, NameDirectory, NameURI, NameIP} {
		n, err := widestName(typ)
		if err != nil || n.Type() != typ {
			t.Fatalf("%s failed [%s]: %v", t.Name(), typ, err)
		}
	}
}

func ExampleGeneralSubtrees_Intersect() {
	permitted := GeneralSubtrees{NewGeneralSubtree(DNSName(`.example.com`))}
	excluded, err := permitted.Intersect(GeneralSubtrees{NewGeneralSubtree(DNSName(`secure.example.com`))})
	fmt.Println(permitted, len(excluded), err)
	// Output: [dNSName:secure.example.com] 0 <nil>
}
