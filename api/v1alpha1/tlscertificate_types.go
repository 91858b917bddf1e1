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

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ============================================================================
// TLSCertificate Spec
// ============================================================================

// TLSCertificateSpec defines the desired state of TLSCertificate.
// +kubebuilder:validation:XValidation:rule="(has(self.subject) && has(self.subject.commonName)) || (has(self.dnsNames) && size(self.dnsNames) > 0) || (has(self.ipAddresses) && size(self.ipAddresses) > 0)",message="at least one of subject.commonName, dnsNames, or ipAddresses must be set"
type TLSCertificateSpec struct {
	// Subject identifies the leaf certificate's subject.
	// +optional
	Subject SubjectSpec `json:"subject,omitempty"`

	// DNSNames are the DNS subject alternative names of the leaf certificate.
	// +optional
	// +kubebuilder:validation:MaxItems=64
	// +listType=atomic
	DNSNames []string `json:"dnsNames,omitempty"`

	// IPAddresses are the IP subject alternative names of the leaf certificate.
	// +optional
	// +kubebuilder:validation:MaxItems=64
	// +listType=atomic
	IPAddresses []string `json:"ipAddresses,omitempty"`

	// ValidityHours is the leaf certificate's validity window in hours.
	// Defaults to 8760 (1 year). The leaf is not clamped to the CA's
	// validity; a leaf outliving its CA is flagged at admission time.
	// +optional
	// +kubebuilder:validation:Minimum=1
	ValidityHours int32 `json:"validityHours,omitempty"`

	// CA configures the self-signed root that signs the leaf.
	// +optional
	CA CASpec `json:"ca,omitempty"`

	// SecretName is the name of the Secret the chain is written to, in the
	// TLSCertificate's own namespace. Defaults to "<name>-tls".
	// +optional
	// +kubebuilder:validation:MaxLength=253
	SecretName string `json:"secretName,omitempty"`

	// Vault enables exporting the CA certificate to Vault KV.
	// +optional
	Vault *VaultExportSpec `json:"vault,omitempty"`
}

// ============================================================================
// TLSCertificate Status
// ============================================================================

// TLSCertificateStatus defines the observed state of TLSCertificate.
type TLSCertificateStatus struct {
	// Phase is a coarse lifecycle summary.
	// +optional
	Phase Phase `json:"phase,omitempty"`

	// Conditions represent the latest available observations.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`

	// SecretName is the name of the Secret holding the issued chain.
	// +optional
	SecretName string `json:"secretName,omitempty"`

	// SerialNumber is the decimal serial of the issued leaf certificate.
	// +optional
	SerialNumber string `json:"serialNumber,omitempty"`

	// NotBefore is the start of the leaf certificate's validity window.
	// +optional
	NotBefore *metav1.Time `json:"notBefore,omitempty"`

	// NotAfter is the end of the leaf certificate's validity window.
	// +optional
	NotAfter *metav1.Time `json:"notAfter,omitempty"`

	// ObservedGeneration is the spec generation last acted upon.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Secret",type=string,JSONPath=`.status.secretName`
// +kubebuilder:printcolumn:name="NotAfter",type=date,JSONPath=`.status.notAfter`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// TLSCertificate declares a self-signed certificate chain materialized into a
// Kubernetes Secret.
type TLSCertificate struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec TLSCertificateSpec `json:"spec,omitempty"`
	// +optional
	Status TLSCertificateStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// TLSCertificateList contains a list of TLSCertificate.
type TLSCertificateList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []TLSCertificate `json:"items"`
}

func init() {
	SchemeBuilder.Register(&TLSCertificate{}, &TLSCertificateList{})
}
