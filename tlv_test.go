package x509name

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTLV_roundTrip(t *testing.T) {
	tlv, err := NewTLV(ClassUniversal, TagUTF8String, false, []byte("hi"))
	if err != nil {
		t.Fatalf("%s failed [NewTLV]: %v", t.Name(), err)
	}

	want := []byte{0x0c, 0x02, 'h', 'i'}
	if diff := cmp.Diff(want, tlv.Bytes()); diff != "" {
		t.Fatalf("%s failed [encoding] (-want +got):\n%s", t.Name(), diff)
	}

	var back TLV
	if back, err = ParseTLV(want); err != nil {
		t.Fatalf("%s failed [ParseTLV]: %v", t.Name(), err)
	} else if !back.Eq(tlv, true) {
		t.Fatalf("%s failed [TLV cmp.]:\n\twant: %s\n\tgot:  %s", t.Name(), tlv, back)
	}

	if _, err = ParseTLV(append(want, 0x00)); err == nil {
		t.Fatalf("%s failed: expected trailing data error", t.Name())
	}
	if _, err = ParseTLV([]byte{0x0c, 0x05, 'h'}); err == nil {
		t.Fatalf("%s failed: expected truncation error", t.Name())
	}
}

func TestTLV_codecov(t *testing.T) {
	if _, err := NewTLV(4, 1, false, nil); err == nil {
		t.Fatalf("%s failed: expected invalid class error", t.Name())
	}
	if _, err := NewTLV(ClassUniversal, 31, false, nil); err == nil {
		t.Fatalf("%s failed: expected high tag error", t.Name())
	}

	tlv, err := NewTLV(ClassContextSpecific, 3, true, nil)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	} else if tlv.Value == nil || len(tlv.Bytes()) != 2 || tlv.Bytes()[0] != 0xa3 {
		t.Fatalf("%s failed: unexpected encoding %x", t.Name(), tlv.Bytes())
	}
	_ = tlv.String()

	other, _ := NewTLV(ClassContextSpecific, 3, false, nil)
	if tlv.Eq(other) {
		t.Fatalf("%s failed: primitive and constructed TLVs compared equal", t.Name())
	}
}

func TestInteger_codec(t *testing.T) {
	for idx, tc := range []struct {
		n   int64
		hex string
	}{
		{0, "00"},
		{127, "7f"},
		{128, "0080"},
		{255, "00ff"},
		{256, "0100"},
		{-1, "ff"},
		{-128, "80"},
		{-129, "ff7f"},
		{1<<31 - 1, "7fffffff"},
	} {
		enc := encodeInteger(tc.n)
		if got := hexstr(enc); got != tc.hex {
			t.Fatalf("%s[%d] failed [encoding %d]:\n\twant: %s\n\tgot:  %s",
				t.Name(), idx, tc.n, tc.hex, got)
		}
		if back, err := decodeInteger(enc); err != nil || back != tc.n {
			t.Fatalf("%s[%d] failed [decoding]: want %d, got %d (%v)",
				t.Name(), idx, tc.n, back, err)
		}
	}

	for idx, bad := range [][]byte{
		{},
		{0x00, 0x7f},
		{0xff, 0x80},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
	} {
		if _, err := decodeInteger(bad); err == nil {
			t.Fatalf("%s[%d] failed: expected error for % x", t.Name(), idx, bad)
		}
	}
}
