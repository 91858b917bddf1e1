package monitoring

import "time"

// CA rotation triggers recorded by RecordCARotation.
const (
	// RotationTriggerInitial is the first issuance for a resource.
	RotationTriggerInitial = "initial"

	// RotationTriggerSpecChange is a rotation forced by a spec update.
	RotationTriggerSpecChange = "spec-change"

	// RotationTriggerExpiry is a rotation forced by the renewal window.
	RotationTriggerExpiry = "expiry"
)

// SetCertificateInfo sets the info-style gauge for a TLSCertificate.
// Old phase labels are automatically cleaned up via DeletePartialMatch.
func SetCertificateInfo(name, namespace, phase string) {
	certificateInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
	certificateInfo.WithLabelValues(name, namespace, phase).Set(1)
}

// SetCertificateNotAfter records the leaf expiry for a TLSCertificate.
func SetCertificateNotAfter(name, namespace string, notAfter time.Time) {
	certificateNotAfter.WithLabelValues(name, namespace).Set(float64(notAfter.Unix()))
}

// DeleteCertificateMetrics drops all per-resource series for a deleted
// TLSCertificate so the gauges do not report stale objects.
func DeleteCertificateMetrics(name, namespace string) {
	certificateInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
	certificateNotAfter.DeleteLabelValues(name, namespace)
}

// RecordIssuance records the outcome of one issuance pass.
func RecordIssuance(namespace string, err error) {
	issuanceTotal.WithLabelValues(namespace, resultLabel(err)).Inc()
}

// RecordCARotation records a CA rotation and its trigger.
func RecordCARotation(namespace, trigger string) {
	caRotationsTotal.WithLabelValues(namespace, trigger).Inc()
}

// RecordVaultExport records the outcome of a CA export to Vault.
func RecordVaultExport(namespace string, err error) {
	vaultExportTotal.WithLabelValues(namespace, resultLabel(err)).Inc()
}

// RecordWebhookRequest records a webhook admission request's result and duration.
func RecordWebhookRequest(operation, resource string, err error, duration time.Duration) {
	webhookRequestTotal.WithLabelValues(operation, resource, resultLabel(err)).Inc()
	webhookRequestDuration.WithLabelValues(operation, resource).Observe(duration.Seconds())
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
