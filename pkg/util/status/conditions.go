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

// Package status provides helpers for managing the Phase and Status
// conditions of certforge Custom Resources, so that the controller and the
// tests agree on one lifecycle mapping.
package status

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
)

// Condition reasons reported on TLSCertificate status.
const (
	// ReasonIssued means the target Secret holds a chain matching the spec.
	ReasonIssued = "Issued"

	// ReasonIssuanceFailed means the last issuance attempt failed.
	ReasonIssuanceFailed = "IssuanceFailed"

	// ReasonExported means the CA certificate was written to Vault.
	ReasonExported = "Exported"

	// ReasonExportFailed means the Vault write failed.
	ReasonExportFailed = "ExportFailed"

	// ReasonExportDisabled means no Vault export was configured.
	ReasonExportDisabled = "ExportDisabled"
)

// ComputePhase maps the Ready condition onto the coarse Phase value.
func ComputePhase(ready *metav1.Condition) certforgev1alpha1.Phase {
	if ready == nil {
		return certforgev1alpha1.PhasePending
	}
	switch {
	case ready.Status == metav1.ConditionTrue:
		return certforgev1alpha1.PhaseIssued
	case ready.Reason == ReasonIssuanceFailed:
		return certforgev1alpha1.PhaseFailed
	default:
		return certforgev1alpha1.PhasePending
	}
}

// NewCondition builds a status condition stamped with the object generation.
func NewCondition(condType string, condStatus metav1.ConditionStatus, reason, message string, generation int64) metav1.Condition {
	return metav1.Condition{
		Type:               condType,
		Status:             condStatus,
		Reason:             reason,
		Message:            message,
		ObservedGeneration: generation,
		LastTransitionTime: metav1.Now(),
	}
}
