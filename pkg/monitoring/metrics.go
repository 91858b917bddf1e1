package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Domain-specific metric collectors.
//
// These complement the generic controller-runtime metrics (reconcile counts,
// durations, work queue depth, etc.) with issuance state that the framework
// cannot know about.
var (
	certificateInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "certforge_certificate_info",
			Help: "Info-style metric for TLSCertificate discovery and phase tracking. Always 1.",
		},
		[]string{"name", "namespace", "phase"},
	)

	certificateNotAfter = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "certforge_certificate_not_after_timestamp_seconds",
			Help: "Expiry of the issued leaf certificate as a Unix timestamp.",
		},
		[]string{"name", "namespace"},
	)

	issuanceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "certforge_certificate_issuance_total",
			Help: "Total number of certificate chain issuance passes.",
		},
		[]string{"namespace", "result"},
	)

	caRotationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "certforge_ca_rotations_total",
			Help: "Total number of CA rotations, by trigger.",
		},
		[]string{"namespace", "trigger"},
	)

	vaultExportTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "certforge_vault_export_total",
			Help: "Total number of CA certificate exports to Vault.",
		},
		[]string{"namespace", "result"},
	)

	webhookRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "certforge_webhook_request_total",
			Help: "Total number of webhook admission requests.",
		},
		[]string{"operation", "resource", "result"},
	)

	webhookRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "certforge_webhook_request_duration_seconds",
			Help:    "Latency of webhook admission handling in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "resource"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		certificateInfo,
		certificateNotAfter,
		issuanceTotal,
		caRotationsTotal,
		vaultExportTotal,
		webhookRequestTotal,
		webhookRequestDuration,
	)
}

// Collectors returns all registered metric collectors. This is useful for
// testing that metrics are properly registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		certificateInfo,
		certificateNotAfter,
		issuanceTotal,
		caRotationsTotal,
		vaultExportTotal,
		webhookRequestTotal,
		webhookRequestDuration,
	}
}
