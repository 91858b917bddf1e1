package pki

import (
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"io"
	"net"
)

// ErrNoIdentity is returned when a request carries neither a common name nor
// any subject alternative name. Such a certificate would be rejected by TLS
// clients performing hostname verification.
var ErrNoIdentity = fmt.Errorf("certificate request needs a common name, DNS names, or IP addresses")

// RequestOptions configures leaf key and signing-request generation.
type RequestOptions struct {
	// CommonName is the subject common name.
	CommonName string

	// Organization is the subject organization.
	Organization string

	// DNSNames are the DNS subject alternative names.
	DNSNames []string

	// IPAddresses are the IP subject alternative names.
	IPAddresses []net.IP

	// KeySize is the RSA modulus size. Defaults to DefaultRSAKeySize.
	KeySize int

	// Rand is the randomness source.
	Rand io.Reader
}

// CertificateRequest pairs a freshly generated leaf key with the signing
// request that embeds its subject identity.
type CertificateRequest struct {
	Key *rsa.PrivateKey
	CSR *x509.CertificateRequest
}

// NewCertificateRequest generates a leaf RSA key pair and a certificate
// signing request carrying the subject and the SAN lists verbatim.
func NewCertificateRequest(opts RequestOptions) (*CertificateRequest, error) {
	if opts.CommonName == "" && len(opts.DNSNames) == 0 && len(opts.IPAddresses) == 0 {
		return nil, ErrNoIdentity
	}

	keySize := opts.KeySize
	if keySize == 0 {
		keySize = DefaultRSAKeySize
	}

	key, err := rsa.GenerateKey(opts.Rand, keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate leaf private key: %w", err)
	}

	template := x509.CertificateRequest{
		Subject: pkix.Name{
			CommonName:   opts.CommonName,
			Organization: []string{opts.Organization},
		},
		DNSNames:    opts.DNSNames,
		IPAddresses: opts.IPAddresses,
	}
	if opts.Organization == "" {
		template.Subject.Organization = nil
	}

	derBytes, err := x509.CreateCertificateRequest(opts.Rand, &template, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate request: %w", err)
	}

	csr, err := x509.ParseCertificateRequest(derBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated certificate request: %w", err)
	}

	return &CertificateRequest{Key: key, CSR: csr}, nil
}

// ParseIPAddresses converts textual IP addresses into net.IP values,
// rejecting anything that does not parse.
func ParseIPAddresses(addrs []string) ([]net.IP, error) {
	if len(addrs) == 0 {
		return nil, nil
	}
	ips := make([]net.IP, 0, len(addrs))
	for _, a := range addrs {
		ip := net.ParseIP(a)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address %q", a)
		}
		ips = append(ips, ip)
	}
	return ips, nil
}
