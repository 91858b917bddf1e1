package handlers

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
	"github.com/infrapki/certforge/pkg/monitoring"
)

// +kubebuilder:webhook:path=/mutate-certforge-io-v1alpha1-tlscertificate,mutating=true,failurePolicy=fail,sideEffects=None,groups=certforge.io,resources=tlscertificates,verbs=create;update,versions=v1alpha1,name=mtlscertificate.kb.io,admissionReviewVersions=v1

// TLSCertificateDefaulter handles the mutation of TLSCertificate resources.
type TLSCertificateDefaulter struct{}

var _ webhook.CustomDefaulter = &TLSCertificateDefaulter{}

// NewTLSCertificateDefaulter creates a new defaulter handler.
func NewTLSCertificateDefaulter() *TLSCertificateDefaulter {
	return &TLSCertificateDefaulter{}
}

// Default implements webhook.CustomDefaulter.
func (d *TLSCertificateDefaulter) Default(_ context.Context, obj runtime.Object) error {
	start := time.Now()

	cert, ok := obj.(*certforgev1alpha1.TLSCertificate)
	if !ok {
		return fmt.Errorf("expected TLSCertificate, got %T", obj)
	}
	defer func() {
		monitoring.RecordWebhookRequest("DEFAULT", "TLSCertificate", nil, time.Since(start))
	}()

	spec := &cert.Spec
	if spec.ValidityHours == 0 {
		spec.ValidityHours = certforgev1alpha1.DefaultLeafValidityHours
	}
	if spec.CA.ValidityHours == 0 {
		spec.CA.ValidityHours = certforgev1alpha1.DefaultCAValidityHours
	}
	if spec.CA.Organization == "" {
		spec.CA.Organization = spec.Subject.Organization
	}
	if spec.SecretName == "" {
		spec.SecretName = cert.Name + certforgev1alpha1.SecretNameSuffix
	}
	if spec.Vault != nil && spec.Vault.Mount == "" {
		spec.Vault.Mount = certforgev1alpha1.DefaultVaultMount
	}

	return nil
}
