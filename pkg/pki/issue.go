package pki

import (
	"fmt"
	"io"
	"net"
	"time"
)

// IssueOptions are the inputs of a full issuance pass.
type IssueOptions struct {
	// CAOrganization is the subject organization of the root CA.
	CAOrganization string

	// CAValidity is the CA certificate's validity window.
	CAValidity time.Duration

	// CommonName, Organization, DNSNames and IPAddresses form the leaf
	// certificate's identity.
	CommonName   string
	Organization string
	DNSNames     []string
	IPAddresses  []net.IP

	// LeafValidity is the leaf certificate's validity window, independent
	// of the CA's.
	LeafValidity time.Duration

	// Rand is the randomness source.
	Rand io.Reader
}

// Bundle is the PEM-encoded result of one issuance pass: the three byte
// blobs that end up in the target Secret. The CA private key is deliberately
// absent; the chain is regenerated as a whole when it no longer matches the
// desired inputs.
type Bundle struct {
	// CertPEM is the leaf certificate.
	CertPEM []byte
	// KeyPEM is the leaf private key.
	KeyPEM []byte
	// CACertPEM is the CA certificate the leaf chains to.
	CACertPEM []byte
}

// Issue runs the linear issuance flow: generate a self-signed CA, generate a
// leaf key and signing request, sign the request under the CA, and encode the
// results. The CA and the leaf always come out of the same pass, so the leaf
// in a Bundle chains to the CA certificate next to it by construction.
func Issue(opts IssueOptions) (*Bundle, error) {
	ca, err := NewSelfSignedCA(CAOptions{
		Organization: opts.CAOrganization,
		Validity:     opts.CAValidity,
		Rand:         opts.Rand,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate CA: %w", err)
	}

	req, err := NewCertificateRequest(RequestOptions{
		CommonName:   opts.CommonName,
		Organization: opts.Organization,
		DNSNames:     opts.DNSNames,
		IPAddresses:  opts.IPAddresses,
		Rand:         opts.Rand,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate certificate request: %w", err)
	}

	leaf, err := ca.Sign(req.CSR, opts.LeafValidity, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("failed to sign certificate request: %w", err)
	}

	return &Bundle{
		CertPEM:   EncodeCertPEM(leaf),
		KeyPEM:    EncodeKeyPEM(req.Key),
		CACertPEM: EncodeCertPEM(ca.Cert),
	}, nil
}
