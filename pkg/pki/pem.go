package pki

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

const (
	certificatePEMType  = "CERTIFICATE"
	pkcs1PrivateKeyType = "RSA PRIVATE KEY"
	pkcs8PrivateKeyType = "PRIVATE KEY"
)

// EncodeCertPEM encodes a certificate in the PEM format.
func EncodeCertPEM(cert *x509.Certificate) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: certificatePEMType, Bytes: cert.Raw})
}

// EncodeKeyPEM encodes an RSA private key as a PKCS#1 PEM block.
func EncodeKeyPEM(key *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  pkcs1PrivateKeyType,
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

// ParseCertPEM decodes the first certificate block of the given PEM data.
func ParseCertPEM(pemData []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(pemData)
	if block == nil || block.Type != certificatePEMType {
		return nil, fmt.Errorf("no certificate block found in PEM data")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}
	return cert, nil
}

// ParseKeyPEM decodes an RSA private key from PEM data, accepting both
// PKCS#1 and PKCS#8 encodings.
func ParseKeyPEM(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("no private key block found in PEM data")
	}

	switch block.Type {
	case pkcs1PrivateKeyType:
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PKCS#1 private key: %w", err)
		}
		return key, nil
	case pkcs8PrivateKeyType:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PKCS#8 private key: %w", err)
		}
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("found non-RSA private key in PKCS#8 block")
		}
		return key, nil
	default:
		return nil, fmt.Errorf("unsupported private key PEM type %q", block.Type)
	}
}
