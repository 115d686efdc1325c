package x509name

/*
cert.go contains adapters between this package and the certificates of
crypto/x509.
*/

import (
	"crypto/x509"
	"encoding/asn1"
)

/*
extensionValue returns the value of the extension oid within cert, or
nil if the extension is absent.
*/
func extensionValue(cert *x509.Certificate, oid ObjectIdentifier) []byte {
	for _, ext := range cert.Extensions {
		if oidEqualASN1(oid, ext.Id) {
			return ext.Value
		}
	}
	return nil
}

func oidEqualASN1(a ObjectIdentifier, b asn1.ObjectIdentifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if b[i] < 0 || a[i] != uint64(b[i]) {
			return false
		}
	}
	return true
}

/*
SubjectFromCertificate returns the subject of cert as decoded from its
DER encoding.
*/
func SubjectFromCertificate(cert *x509.Certificate) (*DistinguishedName, error) {
	if cert == nil {
		return nil, errorNilInput
	}
	return UnmarshalDistinguishedName(cert.RawSubject)
}

/*
SubjectAltNamesFromCertificate returns the subject alternative names of
cert, or nil if it bears no such extension.
*/
func SubjectAltNamesFromCertificate(cert *x509.Certificate) (GeneralNames, error) {
	if cert == nil {
		return nil, errorNilInput
	}
	if v := extensionValue(cert, OIDExtSubjectAltName); v != nil {
		return ParseGeneralNames(v)
	}
	return nil, nil
}

/*
NameConstraintsFromCertificate returns the name constraints of cert, or
nil if it bears no such extension.
*/
func NameConstraintsFromCertificate(cert *x509.Certificate) (*NameConstraints, error) {
	if cert == nil {
		return nil, errorNilInput
	}
	if v := extensionValue(cert, OIDExtNameConstraints); v != nil {
		return ParseNameConstraints(v)
	}
	return nil, nil
}

/*
VerifyCertificate returns nil if the subject and subject alternative
names of cert satisfy the receiver. See [NameConstraints.Verify].
*/
func (r *NameConstraints) VerifyCertificate(cert *x509.Certificate) (err error) {
	var (
		subject  *DistinguishedName
		altNames GeneralNames
	)
	if subject, err = SubjectFromCertificate(cert); err != nil {
		return wrapf(err, "certificate subject")
	}
	if altNames, err = SubjectAltNamesFromCertificate(cert); err != nil {
		return wrapf(err, "certificate subject alternative names")
	}
	return r.Verify(subject, altNames)
}

/*
VerifyChain applies the name constraints accumulated along chain, which
is ordered from the end-entity certificate to the trust anchor as
returned by [x509.Certificate.Verify]. Each certificate is checked
against the constraints of every certificate above it; self-issued
intermediate certificates are exempt, as RFC 5280 section 6.1.3
requires. The trust anchor is never checked.
*/
func VerifyChain(chain []*x509.Certificate) (err error) {
	var policy *NameConstraints
	for i := len(chain) - 1; i >= 0; i-- {
		cert := chain[i]
		if cert == nil {
			return errorNilInput
		}

		leaf := i == 0
		selfIssued := bytesEqual(cert.RawSubject, cert.RawIssuer)
		if policy != nil && (leaf || !selfIssued) {
			if err = policy.VerifyCertificate(cert); err != nil {
				return wrapf(err, "certificate %d (%s)", i, cert.Subject)
			}
		}

		if leaf {
			break
		}

		var nc *NameConstraints
		if nc, err = NameConstraintsFromCertificate(cert); err != nil {
			return wrapf(err, "certificate %d (%s)", i, cert.Subject)
		} else if nc == nil {
			continue
		}

		if policy == nil {
			policy = nc
		} else if err = policy.Merge(nc); err != nil {
			return wrapf(err, "certificate %d (%s)", i, cert.Subject)
		}
	}
	return
}
