package x509name

import "testing"

func TestRFC822Name_constructors(t *testing.T) {
	for idx, tc := range []struct {
		in         string
		constraint bool
		valid      bool
	}{
		{`user@example.com`, false, true},
		{`example.com`, false, true},
		{`.example.com`, true, true},
		{``, true, true},
		{``, false, false},
		{`user@`, false, false},
		{`user@.`, true, false},
		{`a@b@c`, false, false},
		{`a b@example.com`, false, false},
	} {
		var err error
		if tc.constraint {
			_, err = NewRFC822NameConstraint(tc.in)
		} else {
			_, err = NewRFC822Name(tc.in)
		}
		if (err == nil) != tc.valid {
			t.Fatalf("%s[%d] failed [%q]: want valid:%t, got %v", t.Name(), idx, tc.in, tc.valid, err)
		}
	}

	// DER-decoded names pass through the same checks
	if _, err := ParseGeneralName(mustHex(`81056120624063`), false); err == nil {
		t.Fatalf("%s failed: expected error for decoded address with whitespace", t.Name())
	}
}

func TestRFC822Name_Constrains(t *testing.T) {
	for idx, tc := range []struct {
		a, b string
		want Relation
	}{
		{`user@example.com`, `example.com`, Narrows},
		{`user@mail.example.com`, `example.com`, SameType},
		{`user@mail.example.com`, `.example.com`, Narrows},
		{`user@example.com`, `.example.com`, SameType},
		{`mail.example.com`, `.example.com`, Narrows},
		{`.example.com`, `user@mail.example.com`, Widens},
		{`example.com`, `user@example.com`, Widens},
		{`user@example.com`, `User@EXAMPLE.com`, Match},
		{`user@example.com`, `other@example.com`, SameType},
		{`user@example.com`, `user@example.com.evil`, SameType},
		{``, `user@example.com`, Widens},
		{`example.com`, ``, Narrows},
	} {
		a, b := RFC822Name(tc.a), RFC822Name(tc.b)
		rel, err := a.Constrains(b)
		if err != nil || rel != tc.want {
			t.Fatalf("%s[%d] failed [%q vs %q]: want %s, got %s (%v)",
				t.Name(), idx, tc.a, tc.b, tc.want, rel, err)
		}
		if inv, _ := b.Constrains(a); inv != rel.Invert() {
			t.Fatalf("%s[%d] failed [inverse]: want %s, got %s", t.Name(), idx, rel.Invert(), inv)
		}
	}

	if rel, _ := RFC822Name(`a@b`).Constrains(DNSName(`b`)); rel != DifferentType {
		t.Fatalf("%s failed [different type]: got %s", t.Name(), rel)
	}
}

func TestRFC822Name_SubtreeDepth(t *testing.T) {
	for idx, tc := range []struct {
		name  string
		depth int
	}{
		{`user@mail.example.com`, 4},
		{`mail.example.com`, 3},
		{`.example.com`, 3},
		{`com`, 1},
	} {
		if got := RFC822Name(tc.name).SubtreeDepth(); got != tc.depth {
			t.Fatalf("%s[%d] failed [%s]: want %d, got %d", t.Name(), idx, tc.name, tc.depth, got)
		}
	}
}
