package pki

import (
	"crypto/x509"
	"fmt"
	"io"
	"time"
)

// Sign verifies the signing request and issues a leaf certificate under the
// CA. The subject and SAN set are copied from the request exactly; nothing is
// added or dropped. The validity window is independent of the CA's own: a
// leaf outliving its CA is the caller's problem to flag, not this function's
// to correct.
func (c *CA) Sign(csr *x509.CertificateRequest, validity time.Duration, rng io.Reader) (*x509.Certificate, error) {
	if err := csr.CheckSignature(); err != nil {
		return nil, fmt.Errorf("invalid certificate request signature: %w", err)
	}

	serial, err := randSerial(rng)
	if err != nil {
		return nil, err
	}

	notBefore := time.Now().Add(-backdate)
	template := x509.Certificate{
		SerialNumber: serial,
		Subject:      csr.Subject,
		DNSNames:     csr.DNSNames,
		IPAddresses:  csr.IPAddresses,
		NotBefore:    notBefore,
		NotAfter:     notBefore.Add(validity),
		KeyUsage:     x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	derBytes, err := x509.CreateCertificate(rng, &template, c.Cert, csr.PublicKey, c.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign leaf certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(derBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signed leaf certificate: %w", err)
	}

	return cert, nil
}
