/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

// ============================================================================
// Shared Configuration Structs
// ============================================================================

// SubjectSpec identifies the entity a certificate is issued to.
type SubjectSpec struct {
	// CommonName is the X.509 subject common name of the leaf certificate.
	// +optional
	// +kubebuilder:validation:MaxLength=64
	CommonName string `json:"commonName,omitempty"`

	// Organization is the X.509 subject organization.
	// +optional
	// +kubebuilder:validation:MaxLength=64
	Organization string `json:"organization,omitempty"`
}

// CASpec configures the self-signed root that signs the leaf certificate.
type CASpec struct {
	// Organization is the X.509 subject organization of the CA certificate.
	// Defaults to the leaf subject's organization.
	// +optional
	// +kubebuilder:validation:MaxLength=64
	Organization string `json:"organization,omitempty"`

	// ValidityHours is the CA certificate's validity window in hours.
	// Defaults to 87600 (10 years).
	// +optional
	// +kubebuilder:validation:Minimum=1
	ValidityHours int32 `json:"validityHours,omitempty"`
}

// VaultExportSpec configures the export of the CA certificate to a
// HashiCorp Vault KV v2 secrets engine.
type VaultExportSpec struct {
	// Mount is the KV v2 mount point. Defaults to "secret".
	// +optional
	// +kubebuilder:validation:MaxLength=128
	Mount string `json:"mount,omitempty"`

	// Path is the secret path under the mount where ca.pem is written.
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:MaxLength=512
	Path string `json:"path"`
}

// Phase is a coarse-grained lifecycle summary of a TLSCertificate.
// +kubebuilder:validation:Enum=Pending;Issued;Failed
type Phase string

const (
	// PhasePending means the certificate chain has not been issued yet.
	PhasePending Phase = "Pending"

	// PhaseIssued means the target Secret holds a valid chain for the
	// current spec.
	PhaseIssued Phase = "Issued"

	// PhaseFailed means the last issuance attempt failed.
	PhaseFailed Phase = "Failed"
)

// Condition types reported on TLSCertificate status.
const (
	// ConditionReady tracks whether the target Secret holds a chain that
	// matches the spec.
	ConditionReady = "Ready"

	// ConditionCAExported tracks the outcome of the optional Vault export
	// of the CA certificate.
	ConditionCAExported = "CAExported"
)
