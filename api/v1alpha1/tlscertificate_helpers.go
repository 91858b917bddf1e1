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

import "time"

const (
	// DefaultLeafValidityHours is the leaf validity applied when
	// spec.validityHours is unset (1 year).
	DefaultLeafValidityHours = 8760

	// DefaultCAValidityHours is the CA validity applied when
	// spec.ca.validityHours is unset (10 years).
	DefaultCAValidityHours = 87600

	// SecretNameSuffix is appended to the resource name to derive the
	// default target Secret name.
	SecretNameSuffix = "-tls"

	// DefaultVaultMount is the KV v2 mount used when spec.vault.mount is
	// unset.
	DefaultVaultMount = "secret"
)

// LeafValidity returns the leaf certificate validity as a duration,
// falling back to the default when unset.
func (s *TLSCertificateSpec) LeafValidity() time.Duration {
	hours := s.ValidityHours
	if hours <= 0 {
		hours = DefaultLeafValidityHours
	}
	return time.Duration(hours) * time.Hour
}

// CAValidity returns the CA certificate validity as a duration,
// falling back to the default when unset.
func (s *TLSCertificateSpec) CAValidity() time.Duration {
	hours := s.CA.ValidityHours
	if hours <= 0 {
		hours = DefaultCAValidityHours
	}
	return time.Duration(hours) * time.Hour
}

// CAOrganization returns the CA subject organization, inheriting the leaf
// subject's organization when unset.
func (s *TLSCertificateSpec) CAOrganization() string {
	if s.CA.Organization != "" {
		return s.CA.Organization
	}
	return s.Subject.Organization
}

// HasIdentity reports whether the spec carries at least one verifiable
// identity. A certificate without a common name, DNS names, or IP addresses
// is unusable for TLS clients performing hostname verification.
func (s *TLSCertificateSpec) HasIdentity() bool {
	return s.Subject.CommonName != "" || len(s.DNSNames) > 0 || len(s.IPAddresses) > 0
}

// TargetSecretName returns the name of the Secret the chain is written to.
func (c *TLSCertificate) TargetSecretName() string {
	if c.Spec.SecretName != "" {
		return c.Spec.SecretName
	}
	return c.Name + SecretNameSuffix
}

// KVMount returns the Vault KV v2 mount point, falling back to the default
// when unset.
func (v *VaultExportSpec) KVMount() string {
	if v.Mount != "" {
		return v.Mount
	}
	return DefaultVaultMount
}

// LeafOutlivesCA reports whether the configured leaf validity extends past
// the CA's. Such a leaf becomes unverifiable before its stated expiry; the
// condition is flagged at admission time but deliberately not corrected.
func (s *TLSCertificateSpec) LeafOutlivesCA() bool {
	return s.LeafValidity() > s.CAValidity()
}
