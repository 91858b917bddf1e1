package controller

import (
	"testing"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
	"github.com/infrapki/certforge/pkg/pki"
	"github.com/infrapki/certforge/pkg/util/metadata"
)

func TestBuildSecret(t *testing.T) {
	t.Parallel()

	scheme := runtime.NewScheme()
	_ = certforgev1alpha1.AddToScheme(scheme)
	_ = corev1.AddToScheme(scheme)

	bundle := &pki.Bundle{
		CertPEM:   []byte("leaf-pem"),
		KeyPEM:    []byte("key-pem"),
		CACertPEM: []byte("ca-pem"),
	}

	cert := baseCertificate()
	secret, err := BuildSecret(cert, bundle, scheme)
	if err != nil {
		t.Fatalf("BuildSecret() error = %v", err)
	}

	if secret.Name != "db-cert-tls" {
		t.Errorf("Secret name = %q, want %q", secret.Name, "db-cert-tls")
	}
	if secret.Namespace != "default" {
		t.Errorf("Secret namespace = %q, want %q", secret.Namespace, "default")
	}
	if secret.Type != corev1.SecretTypeTLS {
		t.Errorf("Secret type = %q, want %q", secret.Type, corev1.SecretTypeTLS)
	}

	for key, want := range map[string][]byte{
		corev1.TLSCertKey:       bundle.CertPEM,
		corev1.TLSPrivateKeyKey: bundle.KeyPEM,
		CACertKey:               bundle.CACertPEM,
	} {
		if got := secret.Data[key]; string(got) != string(want) {
			t.Errorf("Secret data[%q] = %q, want %q", key, got, want)
		}
	}
	if len(secret.Data) != 3 {
		t.Errorf("Secret has %d data keys, want exactly 3", len(secret.Data))
	}

	if got := secret.Labels[metadata.LabelCertforgeCertificate]; got != "db-cert" {
		t.Errorf("certificate label = %q, want %q", got, "db-cert")
	}

	if len(secret.OwnerReferences) != 1 {
		t.Fatalf("Secret has %d owner references, want 1", len(secret.OwnerReferences))
	}
	owner := secret.OwnerReferences[0]
	if owner.Kind != "TLSCertificate" || owner.Name != "db-cert" {
		t.Errorf("owner reference = %s/%s, want TLSCertificate/db-cert", owner.Kind, owner.Name)
	}
	if owner.Controller == nil || !*owner.Controller {
		t.Errorf("owner reference should be a controller reference")
	}
}

func TestBuildSecret_ExplicitSecretName(t *testing.T) {
	t.Parallel()

	scheme := runtime.NewScheme()
	_ = certforgev1alpha1.AddToScheme(scheme)
	_ = corev1.AddToScheme(scheme)

	cert := baseCertificate()
	cert.Spec.SecretName = "custom-secret"

	secret, err := BuildSecret(cert, &pki.Bundle{}, scheme)
	if err != nil {
		t.Fatalf("BuildSecret() error = %v", err)
	}
	if secret.Name != "custom-secret" {
		t.Errorf("Secret name = %q, want %q", secret.Name, "custom-secret")
	}
}

func TestBuildSecret_UnregisteredScheme(t *testing.T) {
	t.Parallel()

	// A scheme without the certforge types cannot produce an owner reference.
	scheme := runtime.NewScheme()
	_ = corev1.AddToScheme(scheme)

	if _, err := BuildSecret(baseCertificate(), &pki.Bundle{}, scheme); err == nil {
		t.Errorf("BuildSecret() error = nil, want error for unregistered scheme")
	}
}
