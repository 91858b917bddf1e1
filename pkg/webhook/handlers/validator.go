package handlers

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
	"github.com/infrapki/certforge/pkg/monitoring"
	"github.com/infrapki/certforge/pkg/pki"
)

// +kubebuilder:webhook:path=/validate-certforge-io-v1alpha1-tlscertificate,mutating=false,failurePolicy=fail,sideEffects=None,groups=certforge.io,resources=tlscertificates,verbs=create;update,versions=v1alpha1,name=vtlscertificate.kb.io,admissionReviewVersions=v1

// TLSCertificateValidator validates Create and Update events for
// TLSCertificates.
type TLSCertificateValidator struct{}

var _ webhook.CustomValidator = &TLSCertificateValidator{}

// NewTLSCertificateValidator creates a new validator for TLSCertificates.
func NewTLSCertificateValidator() *TLSCertificateValidator {
	return &TLSCertificateValidator{}
}

func (v *TLSCertificateValidator) ValidateCreate(
	_ context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return v.validate("CREATE", obj)
}

func (v *TLSCertificateValidator) ValidateUpdate(
	_ context.Context,
	_, newObj runtime.Object,
) (admission.Warnings, error) {
	return v.validate("UPDATE", newObj)
}

func (v *TLSCertificateValidator) ValidateDelete(
	context.Context,
	runtime.Object,
) (admission.Warnings, error) {
	return nil, nil
}

func (v *TLSCertificateValidator) validate(
	operation string,
	obj runtime.Object,
) (warnings admission.Warnings, err error) {
	start := time.Now()
	defer func() {
		monitoring.RecordWebhookRequest(operation, "TLSCertificate", err, time.Since(start))
	}()

	cert, ok := obj.(*certforgev1alpha1.TLSCertificate)
	if !ok {
		return nil, fmt.Errorf("expected TLSCertificate, got %T", obj)
	}
	spec := &cert.Spec

	if !spec.HasIdentity() {
		return nil, fmt.Errorf(
			"at least one of spec.subject.commonName, spec.dnsNames, or spec.ipAddresses must be set")
	}
	if spec.ValidityHours < 0 {
		return nil, fmt.Errorf("spec.validityHours must be positive, got %d", spec.ValidityHours)
	}
	if spec.CA.ValidityHours < 0 {
		return nil, fmt.Errorf("spec.ca.validityHours must be positive, got %d", spec.CA.ValidityHours)
	}
	if _, ipErr := pki.ParseIPAddresses(spec.IPAddresses); ipErr != nil {
		return nil, fmt.Errorf("spec.ipAddresses: %w", ipErr)
	}
	if spec.Vault != nil && spec.Vault.Path == "" {
		return nil, fmt.Errorf("spec.vault.path must be set when Vault export is enabled")
	}

	// A leaf outliving its CA becomes unverifiable at CA expiry. This is
	// flagged, not fixed or rejected.
	if spec.LeafOutlivesCA() {
		warnings = append(warnings, fmt.Sprintf(
			"leaf validity (%s) exceeds CA validity (%s); the chain becomes unverifiable when the CA expires",
			spec.LeafValidity(), spec.CAValidity()))
	}

	return warnings, nil
}
