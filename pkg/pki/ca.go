package pki

import (
	cryptorand "crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"io"
	"math/big"
	"time"
)

const (
	// DefaultRSAKeySize is the modulus size for generated RSA keys.
	DefaultRSAKeySize = 2048

	// backdate shifts NotBefore into the past to tolerate clock skew
	// between the issuing process and the consumers of the certificate.
	backdate = 1 * time.Hour
)

// serialNumberLimit bounds randomly generated certificate serials to 128 bits.
var serialNumberLimit = new(big.Int).Lsh(big.NewInt(1), 128)

// CA is a self-signed certificate authority: the private key and the
// certificate it issues leaves under.
type CA struct {
	Key  *rsa.PrivateKey
	Cert *x509.Certificate
}

// CAOptions configures root CA generation.
type CAOptions struct {
	// Organization is the CA subject organization.
	Organization string

	// Validity is how long the CA certificate is valid for.
	Validity time.Duration

	// KeySize is the RSA modulus size. Defaults to DefaultRSAKeySize.
	KeySize int

	// Rand is the randomness source, crypto/rand.Reader in production.
	Rand io.Reader
}

// NewSelfSignedCA generates an RSA key pair and a self-signed certificate
// asserting CA capability. Key usages cover certificate signing, CRL signing
// and digital signatures.
func NewSelfSignedCA(opts CAOptions) (*CA, error) {
	keySize := opts.KeySize
	if keySize == 0 {
		keySize = DefaultRSAKeySize
	}

	key, err := rsa.GenerateKey(opts.Rand, keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CA private key: %w", err)
	}

	serial, err := randSerial(opts.Rand)
	if err != nil {
		return nil, err
	}

	notBefore := time.Now().Add(-backdate)
	template := x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			CommonName:   opts.Organization + " CA",
			Organization: []string{opts.Organization},
		},
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(opts.Validity),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	derBytes, err := x509.CreateCertificate(opts.Rand, &template, &template, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create CA certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(derBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated CA certificate: %w", err)
	}

	return &CA{Key: key, Cert: cert}, nil
}

// randSerial draws a random 128-bit certificate serial.
func randSerial(rng io.Reader) (*big.Int, error) {
	serial, err := cryptorand.Int(rng, serialNumberLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to generate certificate serial: %w", err)
	}
	return serial, nil
}
