package webhook

import (
	"context"
	"fmt"

	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
	"github.com/infrapki/certforge/pkg/webhook/cert"
	"github.com/infrapki/certforge/pkg/webhook/handlers"
)

// Certificate management strategies for the webhook server.
const (
	// CertStrategySelfSigned makes the operator bootstrap and rotate its own
	// serving certificates.
	CertStrategySelfSigned = "self-signed"

	// CertStrategyExternal expects certificates provisioned externally
	// (e.g. cert-manager) and mounted into the container.
	CertStrategyExternal = "external"
)

// Options contains the configuration required to set up the webhook server.
type Options struct {
	// Enable indicates whether to start the webhook server.
	Enable bool
	// CertStrategy defines how certificates are managed ("external" or "self-signed").
	CertStrategy string
	// CertDir is the directory where certificates should be read/written.
	CertDir string
	// Namespace is the operator's namespace (required for self-signed strategy).
	Namespace string
	// ServiceName is the operator's webhook service name (required for
	// self-signed strategy).
	ServiceName string
}

// Setup configures the webhook server, handles certificate generation (if
// requested), and registers the admission handlers with the manager.
func Setup(mgr ctrl.Manager, opts Options) error {
	if !opts.Enable {
		return nil
	}

	logger := mgr.GetLogger().WithName("webhook-setup")
	logger.Info("Setting up webhook server", "strategy", opts.CertStrategy)

	// If using self-signed certs, we must ensure they exist and patch the
	// WebhookConfigurations *before* the manager starts the server.
	if opts.CertStrategy == CertStrategySelfSigned {
		certMgr := cert.NewManager(mgr.GetClient(), cert.Options{
			Namespace:   opts.Namespace,
			ServiceName: opts.ServiceName,
			CertDir:     opts.CertDir,
		})

		// Use a temporary context as the manager's context isn't started yet
		if err := certMgr.EnsureCerts(context.Background()); err != nil {
			return fmt.Errorf("failed to bootstrap self-signed certificates: %w", err)
		}
	}

	server := mgr.GetWebhookServer()

	// Paths MUST match the +kubebuilder:webhook annotations on the handlers.
	server.Register(
		"/mutate-certforge-io-v1alpha1-tlscertificate",
		admission.WithCustomDefaulter(
			mgr.GetScheme(),
			&certforgev1alpha1.TLSCertificate{},
			handlers.NewTLSCertificateDefaulter(),
		),
	)
	server.Register(
		"/validate-certforge-io-v1alpha1-tlscertificate",
		admission.WithCustomValidator(
			mgr.GetScheme(),
			&certforgev1alpha1.TLSCertificate{},
			handlers.NewTLSCertificateValidator(),
		),
	)

	return nil
}
