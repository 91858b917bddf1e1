package cert

import (
	"crypto/rand"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	admissionregistrationv1 "k8s.io/api/admissionregistration/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/infrapki/certforge/pkg/pki"
)

const (
	testNamespace = "test-ns"
	testService   = "test-svc"
)

// failReader is a mock io.Reader that always returns an error
type failReader struct{}

func (f *failReader) Read([]byte) (int, error) {
	return 0, errors.New("simulated random source failure")
}

func testScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	s := runtime.NewScheme()
	if err := corev1.AddToScheme(s); err != nil {
		t.Fatalf("Failed to add corev1 scheme: %v", err)
	}
	if err := admissionregistrationv1.AddToScheme(s); err != nil {
		t.Fatalf("Failed to add admissionregistration scheme: %v", err)
	}
	return s
}

// issueBundle generates a webhook chain the way the manager would.
func issueBundle(t *testing.T, serviceName string, leafValidity time.Duration) *pki.Bundle {
	t.Helper()

	commonName := serviceName + "." + testNamespace + ".svc"
	bundle, err := pki.Issue(pki.IssueOptions{
		CAOrganization: Organization,
		CAValidity:     CAValidityDuration,
		CommonName:     commonName,
		Organization:   Organization,
		DNSNames:       []string{serviceName, serviceName + "." + testNamespace, commonName},
		LeafValidity:   leafValidity,
		Rand:           rand.Reader,
	})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return bundle
}

func certSecret(bundle *pki.Bundle) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: SecretName, Namespace: testNamespace},
		Type:       corev1.SecretTypeTLS,
		Data: map[string][]byte{
			CertFileName:  bundle.CertPEM,
			KeyFileName:   bundle.KeyPEM,
			CACertDataKey: bundle.CACertPEM,
		},
	}
}

func webhookConfigs() []client.Object {
	svcRef := &admissionregistrationv1.ServiceReference{
		Name:      testService,
		Namespace: testNamespace,
	}
	return []client.Object{
		&admissionregistrationv1.MutatingWebhookConfiguration{
			ObjectMeta: metav1.ObjectMeta{Name: MutatingWebhookName},
			Webhooks: []admissionregistrationv1.MutatingWebhook{{
				Name:                    "mtlscertificate.kb.io",
				AdmissionReviewVersions: []string{"v1"},
				SideEffects:             ptr.To(admissionregistrationv1.SideEffectClassNone),
				ClientConfig: admissionregistrationv1.WebhookClientConfig{
					Service: svcRef,
				},
			}},
		},
		&admissionregistrationv1.ValidatingWebhookConfiguration{
			ObjectMeta: metav1.ObjectMeta{Name: ValidatingWebhookName},
			Webhooks: []admissionregistrationv1.ValidatingWebhook{{
				Name:                    "vtlscertificate.kb.io",
				AdmissionReviewVersions: []string{"v1"},
				SideEffects:             ptr.To(admissionregistrationv1.SideEffectClassNone),
				ClientConfig: admissionregistrationv1.WebhookClientConfig{
					Service: svcRef,
				},
			}},
		},
	}
}

func newTestManager(t *testing.T, objs ...client.Object) *Manager {
	t.Helper()

	c := fake.NewClientBuilder().
		WithScheme(testScheme(t)).
		WithObjects(objs...).
		Build()
	return NewManager(c, Options{
		Namespace:   testNamespace,
		ServiceName: testService,
		CertDir:     t.TempDir(),
	})
}

func getCertSecret(t *testing.T, c client.Client) *corev1.Secret {
	t.Helper()
	secret := &corev1.Secret{}
	if err := c.Get(t.Context(),
		types.NamespacedName{Name: SecretName, Namespace: testNamespace},
		secret); err != nil {
		t.Fatalf("Failed to get cert secret: %v", err)
	}
	return secret
}

func TestManager_EnsureCerts_Bootstrap(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, webhookConfigs()...)
	if err := m.EnsureCerts(t.Context()); err != nil {
		t.Fatalf("EnsureCerts() error = %v", err)
	}

	secret := getCertSecret(t, m.Client)
	for _, key := range []string{CertFileName, KeyFileName, CACertDataKey} {
		if len(secret.Data[key]) == 0 {
			t.Errorf("Secret data[%q] is empty", key)
		}
	}

	// Server cert chains to the stored CA and names the service first.
	leaf, err := pki.ParseCertPEM(secret.Data[CertFileName])
	if err != nil {
		t.Fatalf("server certificate should parse: %v", err)
	}
	caCert, err := pki.ParseCertPEM(secret.Data[CACertDataKey])
	if err != nil {
		t.Fatalf("CA certificate should parse: %v", err)
	}
	if err := leaf.CheckSignatureFrom(caCert); err != nil {
		t.Errorf("server certificate should chain to the CA: %v", err)
	}
	if len(leaf.DNSNames) == 0 || leaf.DNSNames[0] != testService {
		t.Errorf("leaf DNS names = %v, want %q first", leaf.DNSNames, testService)
	}

	// Certs are written to disk for the webhook server.
	for _, name := range []string{CertFileName, KeyFileName} {
		if _, err := os.Stat(filepath.Join(m.Options.CertDir, name)); err != nil {
			t.Errorf("cert file %q should exist on disk: %v", name, err)
		}
	}

	// CA bundle is injected into both webhook configurations.
	mutating := &admissionregistrationv1.MutatingWebhookConfiguration{}
	if err := m.Client.Get(t.Context(),
		types.NamespacedName{Name: MutatingWebhookName}, mutating); err != nil {
		t.Fatalf("Failed to get mutating webhook config: %v", err)
	}
	if string(mutating.Webhooks[0].ClientConfig.CABundle) != string(secret.Data[CACertDataKey]) {
		t.Errorf("mutating webhook caBundle does not match stored CA")
	}
	if mutating.Annotations[CertStrategyAnnotation] != certStrategySelfSigned {
		t.Errorf("cert-strategy annotation = %q, want %q",
			mutating.Annotations[CertStrategyAnnotation], certStrategySelfSigned)
	}

	validating := &admissionregistrationv1.ValidatingWebhookConfiguration{}
	if err := m.Client.Get(t.Context(),
		types.NamespacedName{Name: ValidatingWebhookName}, validating); err != nil {
		t.Fatalf("Failed to get validating webhook config: %v", err)
	}
	if string(validating.Webhooks[0].ClientConfig.CABundle) != string(secret.Data[CACertDataKey]) {
		t.Errorf("validating webhook caBundle does not match stored CA")
	}

	if !HasCertAnnotation(t.Context(), m.Client) {
		t.Errorf("HasCertAnnotation() = false after bootstrap, want true")
	}
}

func TestManager_EnsureCerts_KeepsValidSecret(t *testing.T) {
	t.Parallel()

	existing := issueBundle(t, testService, ServerValidityDuration)
	m := newTestManager(t, certSecret(existing))

	if err := m.EnsureCerts(t.Context()); err != nil {
		t.Fatalf("EnsureCerts() error = %v", err)
	}

	secret := getCertSecret(t, m.Client)
	want := certSecret(existing).Data
	if diff := cmp.Diff(want, secret.Data); diff != "" {
		t.Errorf("valid certificates were rotated (-want +got):\n%s", diff)
	}
}

func TestManager_EnsureCerts_Rotation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		existing *pki.Bundle
	}{
		"expired cert is rotated": {
			// Backdated NotBefore puts NotAfter in the past.
			existing: issueBundle(t, testService, 30*time.Minute),
		},
		"near-expiry cert is rotated": {
			// 15 days of lifetime left, threshold is 30.
			existing: issueBundle(t, testService, 16*24*time.Hour),
		},
		"cert for a different service is rotated": {
			existing: issueBundle(t, "other-svc", ServerValidityDuration),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := newTestManager(t, certSecret(tc.existing))
			if err := m.EnsureCerts(t.Context()); err != nil {
				t.Fatalf("EnsureCerts() error = %v", err)
			}

			secret := getCertSecret(t, m.Client)
			if string(secret.Data[CertFileName]) == string(tc.existing.CertPEM) {
				t.Errorf("certificate should have been rotated")
			}
			leaf, err := pki.ParseCertPEM(secret.Data[CertFileName])
			if err != nil {
				t.Fatalf("rotated certificate should parse: %v", err)
			}
			if len(leaf.DNSNames) == 0 || leaf.DNSNames[0] != testService {
				t.Errorf("rotated leaf DNS names = %v, want %q first", leaf.DNSNames, testService)
			}
			if time.Now().Add(RotationThreshold).After(leaf.NotAfter) {
				t.Errorf("rotated certificate expires too soon: %v", leaf.NotAfter)
			}
		})
	}
}

func TestManager_EnsureCerts_MissingOptions(t *testing.T) {
	t.Parallel()

	c := fake.NewClientBuilder().WithScheme(testScheme(t)).Build()

	m := NewManager(c, Options{Namespace: testNamespace})
	if err := m.EnsureCerts(t.Context()); err == nil {
		t.Errorf("EnsureCerts() error = nil, want error for missing service name")
	}

	m = NewManager(c, Options{ServiceName: testService})
	if err := m.EnsureCerts(t.Context()); err == nil {
		t.Errorf("EnsureCerts() error = nil, want error for missing namespace")
	}
}

func TestManager_EnsureCerts_RandFailure(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	m.rng = &failReader{}

	if err := m.EnsureCerts(t.Context()); err == nil {
		t.Errorf("EnsureCerts() error = nil, want error from failing random source")
	}
}

func TestHasCertAnnotation_Empty(t *testing.T) {
	t.Parallel()

	c := fake.NewClientBuilder().WithScheme(testScheme(t)).Build()
	if HasCertAnnotation(t.Context(), c) {
		t.Errorf("HasCertAnnotation() = true on empty cluster, want false")
	}
}
