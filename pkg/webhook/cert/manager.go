package cert

// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=admissionregistration.k8s.io,resources=mutatingwebhookconfigurations,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=admissionregistration.k8s.io,resources=validatingwebhookconfigurations,verbs=get;list;watch;update;patch

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/infrapki/certforge/pkg/pki"
)

const (
	// SecretName is the name of the Secret where we store the generated certs.
	SecretName = "certforge-webhook-certs" //nolint:gosec // Not a credential, just a name

	// CertFileName is the name of the certificate file expected by controller-runtime.
	CertFileName = "tls.crt"
	// KeyFileName is the name of the key file expected by controller-runtime.
	KeyFileName = "tls.key"
	// CACertDataKey is the Secret data key holding the CA certificate.
	CACertDataKey = "ca.crt"

	// RotationThreshold is the buffer period before expiration when we should rotate the cert.
	RotationThreshold = 30 * 24 * time.Hour

	// Organization is the subject organization of the webhook PKI.
	Organization = "Certforge Operator"

	// CAValidityDuration is the duration the CA certificate is valid for (10 years).
	CAValidityDuration = 10 * 365 * 24 * time.Hour
	// ServerValidityDuration is the duration the server certificate is valid for (1 year).
	ServerValidityDuration = 365 * 24 * time.Hour
)

// Options configuration for the certificate manager.
type Options struct {
	// Namespace is the namespace where the operator (and Service) is running.
	Namespace string
	// ServiceName is the Service fronting the webhook server.
	ServiceName string
	// CertDir is the directory where the certificates should be written for the server to use.
	CertDir string
}

// Manager handles the lifecycle of the webhook certificates.
type Manager struct {
	Client  client.Client
	Options Options
	// rng is the source of randomness. Defaults to crypto/rand.Reader.
	rng io.Reader
}

// NewManager creates a new certificate manager.
func NewManager(c client.Client, opts Options) *Manager {
	return &Manager{
		Client:  c,
		Options: opts,
		rng:     rand.Reader,
	}
}

// EnsureCerts checks for existing certificates, generates them if missing or
// expiring, writes them to disk, and injects the CA bundle into the
// webhook configurations.
func (m *Manager) EnsureCerts(ctx context.Context) error {
	logger := log.FromContext(ctx).WithName("webhook-cert-manager")
	logger.Info("ensuring webhook certificates exist and are valid")

	if m.Options.ServiceName == "" {
		return fmt.Errorf("webhook service name must be set for self-signed certificates")
	}
	if m.Options.Namespace == "" {
		return fmt.Errorf("operator namespace must be set for self-signed certificates")
	}

	// 1. Ensure the Secret exists and holds a valid, non-expired chain
	bundle, err := m.ensureSecret(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure cert secret: %w", err)
	}

	// 2. Write certs to disk so the webhook server can start
	if err := m.writeCertsToDisk(ctx, bundle); err != nil {
		return fmt.Errorf("failed to write certs to disk: %w", err)
	}

	// 3. Patch the webhook configurations with the CA bundle
	if err := PatchWebhookCABundle(ctx, m.Client, bundle.CACertPEM); err != nil {
		return fmt.Errorf("failed to patch webhook configurations: %w", err)
	}

	logger.Info("webhook certificates successfully configured")
	return nil
}

// ensureSecret fetches the cert secret and validates it. If missing, expiring
// soon, or issued for a different service, it regenerates the whole chain and
// updates/creates the Secret.
func (m *Manager) ensureSecret(ctx context.Context) (*pki.Bundle, error) {
	logger := log.FromContext(ctx)

	secret := &corev1.Secret{}
	err := m.Client.Get(
		ctx,
		types.NamespacedName{Name: SecretName, Namespace: m.Options.Namespace},
		secret,
	)

	secretFound := false
	if err == nil {
		secretFound = true
		bundle := &pki.Bundle{
			CertPEM:   secret.Data[CertFileName],
			KeyPEM:    secret.Data[KeyFileName],
			CACertPEM: secret.Data[CACertDataKey],
		}
		if m.isValid(bundle) {
			logger.Info("existing webhook certificates are valid")
			return bundle, nil
		}
		logger.Info("existing webhook certificates are missing, expired, or invalid for current service; rotating")
		// Fall through to regeneration
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	commonName := fmt.Sprintf("%s.%s.svc", m.Options.ServiceName, m.Options.Namespace)
	dnsNames := []string{
		m.Options.ServiceName,
		fmt.Sprintf("%s.%s", m.Options.ServiceName, m.Options.Namespace),
		commonName,
		commonName + ".cluster.local",
	}

	logger.Info("generating new self-signed certificates", "commonName", commonName)
	bundle, genErr := pki.Issue(pki.IssueOptions{
		CAOrganization: Organization,
		CAValidity:     CAValidityDuration,
		CommonName:     commonName,
		Organization:   Organization,
		DNSNames:       dnsNames,
		LeafValidity:   ServerValidityDuration,
		Rand:           m.rng,
	})
	if genErr != nil {
		return nil, genErr
	}

	// Create or Update the Secret. The CA key is not stored: rotation always
	// regenerates CA and server certificate together.
	secret.ObjectMeta = metav1.ObjectMeta{
		Name:      SecretName,
		Namespace: m.Options.Namespace,
	}
	secret.Type = corev1.SecretTypeTLS
	secret.Data = map[string][]byte{
		CertFileName:  bundle.CertPEM,
		KeyFileName:   bundle.KeyPEM,
		CACertDataKey: bundle.CACertPEM,
	}

	if secretFound {
		if updateErr := m.Client.Update(ctx, secret); updateErr != nil {
			return nil, fmt.Errorf("failed to update cert secret: %w", updateErr)
		}
	} else {
		if createErr := m.Client.Create(ctx, secret); createErr != nil {
			return nil, fmt.Errorf("failed to create cert secret: %w", createErr)
		}
	}

	return bundle, nil
}

// isValid checks chain completeness, expiration, and the target service.
func (m *Manager) isValid(b *pki.Bundle) bool {
	if len(b.CertPEM) == 0 || len(b.KeyPEM) == 0 || len(b.CACertPEM) == 0 {
		return false
	}

	cert, err := pki.ParseCertPEM(b.CertPEM)
	if err != nil {
		return false
	}

	// Check Expiration
	if time.Now().Add(RotationThreshold).After(cert.NotAfter) {
		return false
	}

	// Check if the cert was generated for the correct service
	if len(cert.DNSNames) == 0 || cert.DNSNames[0] != m.Options.ServiceName {
		return false
	}

	return true
}

func (m *Manager) writeCertsToDisk(ctx context.Context, bundle *pki.Bundle) error {
	logger := log.FromContext(ctx)

	// Ensure directory exists
	if err := os.MkdirAll(m.Options.CertDir, 0o755); err != nil {
		return err
	}

	certPath := filepath.Join(m.Options.CertDir, CertFileName)
	keyPath := filepath.Join(m.Options.CertDir, KeyFileName)

	logger.Info("writing certificates to disk", "dir", m.Options.CertDir)

	// Write Cert (0644)
	if err := os.WriteFile(certPath, bundle.CertPEM, 0o644); err != nil { //nolint:gosec // Cert is public
		return err
	}

	// Write Key (0600 - strict permissions)
	if err := os.WriteFile(keyPath, bundle.KeyPEM, 0o600); err != nil {
		return err
	}

	return nil
}
