package x509name

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
)

var testSerial atomic.Int64

type testIssuer struct {
	cert *x509.Certificate
	key  ed25519.PrivateKey
}

/*
newTestCert issues a certificate from tmpl, signed by parent or
self-signed when parent is nil.
*/
func newTestCert(t *testing.T, tmpl *x509.Certificate, parent *testIssuer) *testIssuer {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("%s failed [key]: %v", t.Name(), err)
	}

	tmpl.SerialNumber = big.NewInt(testSerial.Add(1))
	tmpl.NotBefore = time.Now().Add(-time.Hour)
	tmpl.NotAfter = time.Now().Add(time.Hour)

	signer, signKey := tmpl, priv
	if parent != nil {
		signer, signKey = parent.cert, parent.key
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, signer, pub, signKey)
	if err != nil {
		t.Fatalf("%s failed [create]: %v", t.Name(), err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}
	return &testIssuer{cert: cert, key: priv}
}

func caTemplate(cn string) *x509.Certificate {
	return &x509.Certificate{
		Subject:               pkix.Name{CommonName: cn, Organization: []string{"Acme"}},
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}
}

func leafTemplate(cn string, dnsNames ...string) *x509.Certificate {
	return &x509.Certificate{
		Subject:  pkix.Name{CommonName: cn},
		DNSNames: dnsNames,
	}
}

func TestCertificate_extract(t *testing.T) {
	tmpl := caTemplate("Root CA")
	tmpl.PermittedDNSDomains = []string{".example.com"}
	tmpl.ExcludedIPRanges = []*net.IPNet{{IP: net.IP{192, 0, 2, 0}, Mask: net.CIDRMask(24, 32)}}
	root := newTestCert(t, tmpl, nil)

	nc, err := NameConstraintsFromCertificate(root.cert)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if want := subtrees(DNSName(`.example.com`)); !nc.Permitted().Equal(want) {
		t.Fatalf("%s failed [permitted]:\n\twant: %s\n\tgot:  %s", t.Name(), want, nc.Permitted())
	}
	if want := subtrees(mustIPName(`192.0.2.0/24`)); !nc.Excluded().Equal(want) {
		t.Fatalf("%s failed [excluded]:\n\twant: %s\n\tgot:  %s", t.Name(), want, nc.Excluded())
	}

	subject, err := SubjectFromCertificate(root.cert)
	if err != nil || subject.CommonName() != "Root CA" || subject.Organization() != "Acme" {
		t.Fatalf("%s failed [subject]: %s, %v", t.Name(), subject, err)
	}
	if alt, err := SubjectAltNamesFromCertificate(root.cert); alt != nil || err != nil {
		t.Fatalf("%s failed: expected no alternative names, got %s, %v", t.Name(), alt, err)
	}

	leaf := newTestCert(t, leafTemplate("www.example.com", "www.example.com", "api.example.com"), root)
	alt, err := SubjectAltNamesFromCertificate(leaf.cert)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if got := alt.String(); got != `[dNSName:www.example.com, dNSName:api.example.com]` {
		t.Fatalf("%s failed [alternative names]: got %s", t.Name(), got)
	}
	if nc, err = NameConstraintsFromCertificate(leaf.cert); nc != nil || err != nil {
		t.Fatalf("%s failed: expected no name constraints, got %s, %v", t.Name(), nc, err)
	}

	if _, err = SubjectFromCertificate(nil); err == nil {
		t.Fatalf("%s failed: expected nil input error", t.Name())
	}
	if _, err = SubjectAltNamesFromCertificate(nil); err == nil {
		t.Fatalf("%s failed: expected nil input error", t.Name())
	}
	if _, err = NameConstraintsFromCertificate(nil); err == nil {
		t.Fatalf("%s failed: expected nil input error", t.Name())
	}
}

func TestVerifyChain(t *testing.T) {
	tmpl := caTemplate("Root CA")
	tmpl.PermittedDNSDomains = []string{".example.com"}
	tmpl.ExcludedDNSDomains = []string{"bad.example.com"}
	root := newTestCert(t, tmpl, nil)

	for idx, tc := range []struct {
		leaf *x509.Certificate
		ok   bool
	}{
		{leafTemplate("www.example.com", "www.example.com"), true},
		{leafTemplate("Service", "a.example.com", "b.example.com"), true},
		{leafTemplate("www.other.com", "www.other.com"), false},
		{leafTemplate("www.example.com", "www.example.com", "www.other.com"), false},
		{leafTemplate("bad.example.com", "bad.example.com"), false},
		{leafTemplate("www.other.com"), false},
		{leafTemplate("www.example.com"), true},
	} {
		leaf := newTestCert(t, tc.leaf, root)
		err := VerifyChain([]*x509.Certificate{leaf.cert, root.cert})
		if (err == nil) != tc.ok {
			t.Fatalf("%s[%d] failed [%v]: want ok:%t, got %v", t.Name(), idx, tc.leaf.DNSNames, tc.ok, err)
		}
		if err != nil && !errors.Is(err, ErrConstraintViolation) {
			t.Fatalf("%s[%d] failed: unexpected error kind %v", t.Name(), idx, err)
		}
	}
}

func TestVerifyChain_intermediate(t *testing.T) {
	root := newTestCert(t, caTemplate("Root CA"), nil)

	tmpl := caTemplate("Issuing CA")
	tmpl.PermittedDNSDomains = []string{".example.com"}
	issuing := newTestCert(t, tmpl, root)

	good := newTestCert(t, leafTemplate("www.example.com", "www.example.com"), issuing)
	if err := VerifyChain([]*x509.Certificate{good.cert, issuing.cert, root.cert}); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	bad := newTestCert(t, leafTemplate("www.other.com", "www.other.com"), issuing)
	if err := VerifyChain([]*x509.Certificate{bad.cert, issuing.cert, root.cert}); !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("%s failed: expected violation, got %v", t.Name(), err)
	}

	// constraints of the root apply to the issuing CA itself
	tmpl = caTemplate("Root CA 2")
	tmpl.Subject.Organization = nil
	tmpl.PermittedDNSDomains = []string{".example.com"}
	root2 := newTestCert(t, tmpl, nil)

	tmpl = caTemplate("Issuing CA")
	tmpl.DNSNames = []string{"ca.other.com"}
	outside := newTestCert(t, tmpl, root2)
	leaf := newTestCert(t, leafTemplate("www.example.com", "www.example.com"), outside)
	if err := VerifyChain([]*x509.Certificate{leaf.cert, outside.cert, root2.cert}); !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("%s failed: expected violation for the issuing CA, got %v", t.Name(), err)
	}

	// a self-issued intermediate (subject equal to issuer) is exempt
	selfTmpl := caTemplate("Root CA 2")
	selfTmpl.Subject.Organization = nil
	selfTmpl.DNSNames = []string{"ca.other.com"}
	rollover := newTestCert(t, selfTmpl, root2)
	leaf = newTestCert(t, leafTemplate("www.example.com", "www.example.com"), rollover)
	if err := VerifyChain([]*x509.Certificate{leaf.cert, rollover.cert, root2.cert}); err != nil {
		t.Fatalf("%s failed [self-issued]: %v", t.Name(), err)
	}

	if err := VerifyChain([]*x509.Certificate{nil, root.cert}); err == nil {
		t.Fatalf("%s failed: expected nil input error", t.Name())
	}
	if err := VerifyChain(nil); err != nil {
		t.Fatalf("%s failed [empty chain]: %v", t.Name(), err)
	}
}

func TestNameConstraints_VerifyCertificate(t *testing.T) {
	root := newTestCert(t, caTemplate("Root CA"), nil)
	leaf := newTestCert(t, &x509.Certificate{
		Subject:        pkix.Name{CommonName: "Alice", Organization: []string{"Acme"}, Country: []string{"US"}},
		EmailAddresses: []string{"alice@mail.example.com"},
		IPAddresses:    []net.IP{net.ParseIP("192.0.2.7")},
	}, root)

	for idx, tc := range []struct {
		nc *NameConstraints
		ok bool
	}{
		{NewNameConstraints(subtrees(RFC822Name(`.example.com`)), nil), true},
		{NewNameConstraints(subtrees(RFC822Name(`example.com`)), nil), false},
		{NewNameConstraints(subtrees(mustIPName(`192.0.2.0/24`)), nil), true},
		{NewNameConstraints(nil, subtrees(mustIPName(`192.0.2.0/28`))), false},
		{NewNameConstraints(subtrees(mustDirName(`C=US`)), nil), true},
		{NewNameConstraints(subtrees(mustDirName(`O=Acme,C=GB`)), nil), false},
	} {
		if err := tc.nc.VerifyCertificate(leaf.cert); (err == nil) != tc.ok {
			t.Fatalf("%s[%d] failed: want ok:%t, got %v", t.Name(), idx, tc.ok, err)
		}
	}

	if err := NewNameConstraints(nil, nil).VerifyCertificate(nil); err == nil {
		t.Fatalf("%s failed: expected nil input error", t.Name())
	}
}
