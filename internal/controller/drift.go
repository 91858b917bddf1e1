package controller

import (
	"crypto/x509"
	"net"
	"slices"
	"time"

	corev1 "k8s.io/api/core/v1"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
	"github.com/infrapki/certforge/pkg/monitoring"
	"github.com/infrapki/certforge/pkg/pki"
)

// renewalFraction divides the leaf lifetime: reissuance starts once less
// than a renewalFraction-th of the lifetime remains before NotAfter.
const renewalFraction = 3

// issuanceDecision is the outcome of inspecting the target Secret against
// the spec.
type issuanceDecision struct {
	reissue bool
	trigger string
	reason  string
}

// evaluateSecret decides whether the chain in the target Secret still serves
// the spec. Any parse failure, chain break, spec drift, or proximity to
// expiry rotates the whole chain; a clean match leaves the Secret untouched.
func evaluateSecret(
	cert *certforgev1alpha1.TLSCertificate,
	secret *corev1.Secret,
	now time.Time,
) issuanceDecision {
	if secret == nil {
		return issuanceDecision{
			reissue: true,
			trigger: monitoring.RotationTriggerInitial,
			reason:  "target Secret does not exist",
		}
	}

	drift := func(reason string) issuanceDecision {
		return issuanceDecision{
			reissue: true,
			trigger: monitoring.RotationTriggerSpecChange,
			reason:  reason,
		}
	}

	leafPEM := secret.Data[corev1.TLSCertKey]
	keyPEM := secret.Data[corev1.TLSPrivateKeyKey]
	caPEM := secret.Data[CACertKey]
	if len(leafPEM) == 0 || len(keyPEM) == 0 || len(caPEM) == 0 {
		return drift("target Secret is missing chain data")
	}

	leaf, err := pki.ParseCertPEM(leafPEM)
	if err != nil {
		return drift("stored leaf certificate does not parse")
	}
	caCert, err := pki.ParseCertPEM(caPEM)
	if err != nil {
		return drift("stored CA certificate does not parse")
	}
	key, err := pki.ParseKeyPEM(keyPEM)
	if err != nil {
		return drift("stored private key does not parse")
	}

	if !key.PublicKey.Equal(leaf.PublicKey) {
		return drift("stored private key does not match leaf certificate")
	}
	if err := leaf.CheckSignatureFrom(caCert); err != nil {
		return drift("stored leaf does not chain to stored CA")
	}

	if reason := specDrift(&cert.Spec, leaf, caCert); reason != "" {
		return drift(reason)
	}

	lifetime := leaf.NotAfter.Sub(leaf.NotBefore)
	if now.After(leaf.NotAfter.Add(-lifetime / renewalFraction)) {
		return issuanceDecision{
			reissue: true,
			trigger: monitoring.RotationTriggerExpiry,
			reason:  "leaf certificate is inside the renewal window",
		}
	}

	return issuanceDecision{}
}

// specDrift compares an issued chain against the spec it should serve.
// Returns an empty string when everything matches.
func specDrift(
	spec *certforgev1alpha1.TLSCertificateSpec,
	leaf *x509.Certificate,
	caCert *x509.Certificate,
) string {
	if leaf.Subject.CommonName != spec.Subject.CommonName {
		return "subject common name changed"
	}
	if singleValue(leaf.Subject.Organization) != spec.Subject.Organization {
		return "subject organization changed"
	}
	if !slices.Equal(leaf.DNSNames, spec.DNSNames) {
		return "dns names changed"
	}
	specIPs, err := pki.ParseIPAddresses(spec.IPAddresses)
	if err != nil || !ipsEqual(leaf.IPAddresses, specIPs) {
		return "ip addresses changed"
	}
	if leaf.NotAfter.Sub(leaf.NotBefore) != spec.LeafValidity() {
		return "leaf validity changed"
	}

	if singleValue(caCert.Subject.Organization) != spec.CAOrganization() {
		return "ca organization changed"
	}
	if caCert.NotAfter.Sub(caCert.NotBefore) != spec.CAValidity() {
		return "ca validity changed"
	}

	return ""
}

func singleValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// ipsEqual compares two SAN IP lists positionally, tolerating the 4-byte vs
// 16-byte representations of the same IPv4 address.
func ipsEqual(a, b []net.IP) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
