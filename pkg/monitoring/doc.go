// Package monitoring provides Prometheus metrics and recording helpers for
// the Certforge Operator. It exposes domain-specific gauges and counters
// that complement the generic controller-runtime metrics already registered
// by the framework.
//
// All metrics follow the naming convention certforge_<component>_<metric>_<unit>
// and are registered against controller-runtime's default Prometheus registry
// on import.
//
// Usage in controllers:
//
//	monitoring.SetCertificateInfo(cert.Name, cert.Namespace, string(cert.Status.Phase))
//	monitoring.RecordIssuance(cert.Namespace, err)
//
// Usage in webhooks:
//
//	monitoring.RecordWebhookRequest("CREATE", "TLSCertificate", err, elapsed)
package monitoring
