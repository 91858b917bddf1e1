package controller

import (
	"context"
	cryptorand "crypto/rand"
	"crypto/x509"
	"fmt"
	"io"
	"slices"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/log"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
	"github.com/infrapki/certforge/internal/vault"
	"github.com/infrapki/certforge/pkg/monitoring"
	"github.com/infrapki/certforge/pkg/pki"
	"github.com/infrapki/certforge/pkg/util/status"
)

const (
	finalizerName = "tlscertificate.certforge.io/finalizer"

	// fieldOwner identifies this controller's Server-Side Apply patches.
	fieldOwner = "certforge-operator"
)

// TLSCertificateReconciler reconciles a TLSCertificate object.
type TLSCertificateReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder

	// Vault exports CA certificates when the resource asks for it. May be
	// nil, which behaves like a disabled client.
	Vault vault.Client

	// Rand overrides the randomness source for issuance. Nil means
	// crypto/rand.Reader.
	Rand io.Reader
}

// Reconcile handles TLSCertificate resource reconciliation.
func (r *TLSCertificateReconciler) Reconcile(
	ctx context.Context,
	req ctrl.Request,
) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	// Fetch the TLSCertificate instance
	cert := &certforgev1alpha1.TLSCertificate{}
	if err := r.Get(ctx, req.NamespacedName, cert); err != nil {
		if errors.IsNotFound(err) {
			logger.Info("TLSCertificate resource not found, ignoring")
			return ctrl.Result{}, nil
		}
		logger.Error(err, "Failed to get TLSCertificate")
		return ctrl.Result{}, err
	}

	// Handle deletion
	if !cert.DeletionTimestamp.IsZero() {
		return r.handleDeletion(ctx, cert)
	}

	// Add finalizer if not present
	if !slices.Contains(cert.Finalizers, finalizerName) {
		cert.Finalizers = append(cert.Finalizers, finalizerName)
		if err := r.Update(ctx, cert); err != nil {
			logger.Error(err, "Failed to add finalizer")
			return ctrl.Result{}, err
		}
		r.Recorder.Event(cert, "Normal", "Finalizer", "Added finalizer")
	}

	ctx, span := monitoring.StartReconcileSpan(
		ctx, "Reconcile", cert.Name, cert.Namespace, "TLSCertificate")
	defer span.End()

	// Read the current target Secret; nil means it does not exist yet.
	existing := &corev1.Secret{}
	err := r.Get(ctx, client.ObjectKey{
		Namespace: cert.Namespace,
		Name:      cert.TargetSecretName(),
	}, existing)
	switch {
	case errors.IsNotFound(err):
		existing = nil
	case err != nil:
		logger.Error(err, "Failed to get target Secret")
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}

	decision := evaluateSecret(cert, existing, time.Now())

	chainData := map[string][]byte{}
	if existing != nil {
		chainData = existing.Data
	}
	if decision.reissue {
		logger.Info("Issuing certificate chain",
			"trigger", decision.trigger, "reason", decision.reason)

		desired, err := r.issueAndApply(ctx, cert, decision)
		if err != nil {
			monitoring.RecordSpanError(span, err)
			r.markIssuanceFailed(ctx, cert, err)
			return ctrl.Result{}, err
		}
		chainData = desired.Data

		r.Recorder.Eventf(cert, "Normal", "Issued",
			"Issued certificate chain into Secret %s (%s)",
			desired.Name, decision.reason)
	}

	leaf, err := pki.ParseCertPEM(chainData[corev1.TLSCertKey])
	if err != nil {
		// Unreachable after a successful issue or a clean evaluation.
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, fmt.Errorf("failed to parse issued leaf certificate: %w", err)
	}

	exportCond := r.exportCA(ctx, cert, chainData[CACertKey], decision.reissue)

	if err := r.updateStatus(ctx, cert, leaf, exportCond); err != nil {
		logger.Error(err, "Failed to update status")
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}

	r.Recorder.Event(cert, "Normal", "Synced", "Successfully reconciled TLSCertificate")

	// Wake up again when the leaf enters the renewal window.
	lifetime := leaf.NotAfter.Sub(leaf.NotBefore)
	renewAt := leaf.NotAfter.Add(-lifetime / renewalFraction)
	if wait := time.Until(renewAt); wait > 0 {
		return ctrl.Result{RequeueAfter: wait}, nil
	}
	return ctrl.Result{}, nil
}

// issueAndApply runs one full issuance pass and applies the target Secret.
func (r *TLSCertificateReconciler) issueAndApply(
	ctx context.Context,
	cert *certforgev1alpha1.TLSCertificate,
	decision issuanceDecision,
) (*corev1.Secret, error) {
	ctx, span := monitoring.StartChildSpan(ctx, "Issue")
	defer span.End()

	bundle, err := r.issue(cert)
	monitoring.RecordIssuance(cert.Namespace, err)
	if err != nil {
		monitoring.RecordSpanError(span, err)
		return nil, err
	}
	monitoring.RecordCARotation(cert.Namespace, decision.trigger)

	desired, err := BuildSecret(cert, bundle, r.Scheme)
	if err != nil {
		monitoring.RecordSpanError(span, err)
		return nil, fmt.Errorf("failed to build Secret: %w", err)
	}

	// Server Side Apply
	desired.SetGroupVersionKind(corev1.SchemeGroupVersion.WithKind("Secret"))
	if err := r.Patch(
		ctx,
		desired,
		client.Apply,
		client.ForceOwnership,
		client.FieldOwner(fieldOwner),
	); err != nil {
		monitoring.RecordSpanError(span, err)
		return nil, fmt.Errorf("failed to apply Secret: %w", err)
	}

	return desired, nil
}

// issue generates a fresh CA plus leaf from the spec.
func (r *TLSCertificateReconciler) issue(
	cert *certforgev1alpha1.TLSCertificate,
) (*pki.Bundle, error) {
	ips, err := pki.ParseIPAddresses(cert.Spec.IPAddresses)
	if err != nil {
		return nil, err
	}

	return pki.Issue(pki.IssueOptions{
		CAOrganization: cert.Spec.CAOrganization(),
		CAValidity:     cert.Spec.CAValidity(),
		CommonName:     cert.Spec.Subject.CommonName,
		Organization:   cert.Spec.Subject.Organization,
		DNSNames:       cert.Spec.DNSNames,
		IPAddresses:    ips,
		LeafValidity:   cert.Spec.LeafValidity(),
		Rand:           r.rng(),
	})
}

func (r *TLSCertificateReconciler) rng() io.Reader {
	if r.Rand != nil {
		return r.Rand
	}
	return cryptorand.Reader
}

// exportCA writes the CA certificate to Vault when the resource asks for it.
// Export failures degrade the CAExported condition but never fail issuance.
func (r *TLSCertificateReconciler) exportCA(
	ctx context.Context,
	cert *certforgev1alpha1.TLSCertificate,
	caPEM []byte,
	reissued bool,
) metav1.Condition {
	gen := cert.Generation

	if cert.Spec.Vault == nil {
		return status.NewCondition(certforgev1alpha1.ConditionCAExported,
			metav1.ConditionFalse, status.ReasonExportDisabled,
			"no Vault export configured", gen)
	}
	if r.Vault == nil || !r.Vault.IsEnabled() {
		return status.NewCondition(certforgev1alpha1.ConditionCAExported,
			metav1.ConditionFalse, status.ReasonExportDisabled,
			"Vault integration is disabled", gen)
	}

	// An unchanged CA that was already exported for this generation does not
	// need another write.
	if !reissued {
		cond := apimeta.FindStatusCondition(cert.Status.Conditions,
			certforgev1alpha1.ConditionCAExported)
		if cond != nil && cond.Status == metav1.ConditionTrue && cond.ObservedGeneration == gen {
			return *cond
		}
	}

	ctx, span := monitoring.StartChildSpan(ctx, "ExportCA")
	defer span.End()

	mount := cert.Spec.Vault.KVMount()
	path := cert.Spec.Vault.Path
	err := r.Vault.WriteCACertificate(ctx, mount, path, caPEM)
	monitoring.RecordVaultExport(cert.Namespace, err)
	if err != nil {
		monitoring.RecordSpanError(span, err)
		r.Recorder.Eventf(cert, "Warning", "VaultExportFailed",
			"Failed to export CA certificate: %v", err)
		return status.NewCondition(certforgev1alpha1.ConditionCAExported,
			metav1.ConditionFalse, status.ReasonExportFailed, err.Error(), gen)
	}

	r.Recorder.Event(cert, "Normal", "CAExported", "Exported CA certificate to Vault")
	return status.NewCondition(certforgev1alpha1.ConditionCAExported,
		metav1.ConditionTrue, status.ReasonExported,
		fmt.Sprintf("CA certificate written to %s/%s", mount, path), gen)
}

// updateStatus records the issued chain's identity on the resource.
func (r *TLSCertificateReconciler) updateStatus(
	ctx context.Context,
	cert *certforgev1alpha1.TLSCertificate,
	leaf *x509.Certificate,
	exportCond metav1.Condition,
) error {
	ready := status.NewCondition(certforgev1alpha1.ConditionReady,
		metav1.ConditionTrue, status.ReasonIssued,
		fmt.Sprintf("Secret %s holds a chain matching the spec", cert.TargetSecretName()),
		cert.Generation)
	apimeta.SetStatusCondition(&cert.Status.Conditions, ready)
	apimeta.SetStatusCondition(&cert.Status.Conditions, exportCond)

	cert.Status.Phase = status.ComputePhase(&ready)
	cert.Status.SecretName = cert.TargetSecretName()
	cert.Status.SerialNumber = leaf.SerialNumber.String()
	cert.Status.NotBefore = &metav1.Time{Time: leaf.NotBefore}
	cert.Status.NotAfter = &metav1.Time{Time: leaf.NotAfter}
	cert.Status.ObservedGeneration = cert.Generation

	monitoring.SetCertificateInfo(cert.Name, cert.Namespace, string(cert.Status.Phase))
	monitoring.SetCertificateNotAfter(cert.Name, cert.Namespace, leaf.NotAfter)

	if err := r.Status().Update(ctx, cert); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// markIssuanceFailed records a failed issuance pass on status. The original
// issuance error is returned by the caller; a status update failure here is
// only logged.
func (r *TLSCertificateReconciler) markIssuanceFailed(
	ctx context.Context,
	cert *certforgev1alpha1.TLSCertificate,
	issueErr error,
) {
	logger := log.FromContext(ctx)

	r.Recorder.Eventf(cert, "Warning", "IssuanceFailed",
		"Failed to issue certificate chain: %v", issueErr)

	cond := status.NewCondition(certforgev1alpha1.ConditionReady,
		metav1.ConditionFalse, status.ReasonIssuanceFailed,
		issueErr.Error(), cert.Generation)
	apimeta.SetStatusCondition(&cert.Status.Conditions, cond)
	cert.Status.Phase = status.ComputePhase(&cond)
	cert.Status.ObservedGeneration = cert.Generation

	monitoring.SetCertificateInfo(cert.Name, cert.Namespace, string(cert.Status.Phase))

	if err := r.Status().Update(ctx, cert); err != nil {
		logger.Error(err, "Failed to update status after issuance failure")
	}
}

// handleDeletion handles cleanup when a TLSCertificate is being deleted.
func (r *TLSCertificateReconciler) handleDeletion(
	ctx context.Context,
	cert *certforgev1alpha1.TLSCertificate,
) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	if slices.Contains(cert.Finalizers, finalizerName) {
		// The target Secret is garbage collected through its owner
		// reference; only the per-resource metric series need cleanup.
		monitoring.DeleteCertificateMetrics(cert.Name, cert.Namespace)

		cert.Finalizers = slices.DeleteFunc(cert.Finalizers, func(s string) bool {
			return s == finalizerName
		})
		if err := r.Update(ctx, cert); err != nil {
			logger.Error(err, "Failed to remove finalizer")
			return ctrl.Result{}, err
		}
		r.Recorder.Event(cert, "Normal", "Deleted", "Object finalized and deleted")
	}

	return ctrl.Result{}, nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *TLSCertificateReconciler) SetupWithManager(
	mgr ctrl.Manager,
	opts ...controller.Options,
) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&certforgev1alpha1.TLSCertificate{}).
		Owns(&corev1.Secret{}).
		WithOptions(controllerOpts).
		Complete(r)
}
