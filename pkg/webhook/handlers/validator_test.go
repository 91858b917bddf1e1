package handlers

import (
	"strings"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
)

func certWithSpec(spec certforgev1alpha1.TLSCertificateSpec) *certforgev1alpha1.TLSCertificate {
	return &certforgev1alpha1.TLSCertificate{
		ObjectMeta: metav1.ObjectMeta{Name: "db-cert", Namespace: "default"},
		Spec:       spec,
	}
}

func TestTLSCertificateValidator_ValidateCreate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		spec         certforgev1alpha1.TLSCertificateSpec
		wantErr      string
		wantWarnings int
	}{
		"common name alone is a valid identity": {
			spec: certforgev1alpha1.TLSCertificateSpec{
				Subject: certforgev1alpha1.SubjectSpec{CommonName: "db.example.com"},
			},
		},
		"dns names alone are a valid identity": {
			spec: certforgev1alpha1.TLSCertificateSpec{
				DNSNames: []string{"db.example.com"},
			},
		},
		"ip addresses alone are a valid identity": {
			spec: certforgev1alpha1.TLSCertificateSpec{
				IPAddresses: []string{"10.0.0.10"},
			},
		},
		"empty identity is rejected": {
			spec:    certforgev1alpha1.TLSCertificateSpec{},
			wantErr: "at least one of",
		},
		"negative leaf validity is rejected": {
			spec: certforgev1alpha1.TLSCertificateSpec{
				Subject:       certforgev1alpha1.SubjectSpec{CommonName: "db.example.com"},
				ValidityHours: -1,
			},
			wantErr: "spec.validityHours must be positive",
		},
		"negative ca validity is rejected": {
			spec: certforgev1alpha1.TLSCertificateSpec{
				Subject: certforgev1alpha1.SubjectSpec{CommonName: "db.example.com"},
				CA:      certforgev1alpha1.CASpec{ValidityHours: -1},
			},
			wantErr: "spec.ca.validityHours must be positive",
		},
		"unparsable ip address is rejected": {
			spec: certforgev1alpha1.TLSCertificateSpec{
				Subject:     certforgev1alpha1.SubjectSpec{CommonName: "db.example.com"},
				IPAddresses: []string{"not-an-ip"},
			},
			wantErr: "spec.ipAddresses",
		},
		"vault without path is rejected": {
			spec: certforgev1alpha1.TLSCertificateSpec{
				Subject: certforgev1alpha1.SubjectSpec{CommonName: "db.example.com"},
				Vault:   &certforgev1alpha1.VaultExportSpec{Mount: "secret"},
			},
			wantErr: "spec.vault.path must be set",
		},
		"leaf outliving ca yields a warning, not a denial": {
			spec: certforgev1alpha1.TLSCertificateSpec{
				Subject:       certforgev1alpha1.SubjectSpec{CommonName: "db.example.com"},
				ValidityHours: 87600,
				CA:            certforgev1alpha1.CASpec{ValidityHours: 8760},
			},
			wantWarnings: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v := NewTLSCertificateValidator()
			warnings, err := v.ValidateCreate(t.Context(), certWithSpec(tc.spec))

			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateCreate() error = %v, want nil", err)
				}
			} else {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("ValidateCreate() error = %v, want containing %q", err, tc.wantErr)
				}
			}
			if len(warnings) != tc.wantWarnings {
				t.Errorf("ValidateCreate() warnings = %v, want %d", warnings, tc.wantWarnings)
			}
		})
	}
}

func TestTLSCertificateValidator_ValidateUpdate(t *testing.T) {
	t.Parallel()

	v := NewTLSCertificateValidator()
	old := certWithSpec(certforgev1alpha1.TLSCertificateSpec{
		Subject: certforgev1alpha1.SubjectSpec{CommonName: "db.example.com"},
	})
	invalid := certWithSpec(certforgev1alpha1.TLSCertificateSpec{})

	// Only the new object is validated.
	if _, err := v.ValidateUpdate(t.Context(), invalid, old); err != nil {
		t.Errorf("ValidateUpdate() error = %v, want nil for valid new object", err)
	}
	if _, err := v.ValidateUpdate(t.Context(), old, invalid); err == nil {
		t.Errorf("ValidateUpdate() error = nil, want error for invalid new object")
	}
}

func TestTLSCertificateValidator_ValidateDelete(t *testing.T) {
	t.Parallel()

	v := NewTLSCertificateValidator()
	warnings, err := v.ValidateDelete(t.Context(), certWithSpec(certforgev1alpha1.TLSCertificateSpec{}))
	if err != nil || warnings != nil {
		t.Errorf("ValidateDelete() = (%v, %v), want (nil, nil)", warnings, err)
	}
}

func TestTLSCertificateValidator_WrongType(t *testing.T) {
	t.Parallel()

	v := NewTLSCertificateValidator()
	if _, err := v.ValidateCreate(t.Context(), &corev1.Pod{}); err == nil {
		t.Errorf("ValidateCreate() error = nil, want type error")
	}
}
