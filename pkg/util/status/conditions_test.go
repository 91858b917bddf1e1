package status

import (
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
)

func TestComputePhase(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		ready *metav1.Condition
		want  certforgev1alpha1.Phase
	}{
		"no condition yet": {
			ready: nil,
			want:  certforgev1alpha1.PhasePending,
		},
		"ready": {
			ready: &metav1.Condition{Status: metav1.ConditionTrue, Reason: ReasonIssued},
			want:  certforgev1alpha1.PhaseIssued,
		},
		"issuance failed": {
			ready: &metav1.Condition{Status: metav1.ConditionFalse, Reason: ReasonIssuanceFailed},
			want:  certforgev1alpha1.PhaseFailed,
		},
		"not ready, not failed": {
			ready: &metav1.Condition{Status: metav1.ConditionFalse, Reason: "Reconciling"},
			want:  certforgev1alpha1.PhasePending,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := ComputePhase(tc.ready); got != tc.want {
				t.Errorf("ComputePhase() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewCondition(t *testing.T) {
	t.Parallel()

	cond := NewCondition(
		certforgev1alpha1.ConditionReady,
		metav1.ConditionTrue,
		ReasonIssued,
		"chain issued",
		7,
	)
	if cond.Type != certforgev1alpha1.ConditionReady {
		t.Errorf("Type = %q, want %q", cond.Type, certforgev1alpha1.ConditionReady)
	}
	if cond.ObservedGeneration != 7 {
		t.Errorf("ObservedGeneration = %d, want 7", cond.ObservedGeneration)
	}
	if cond.LastTransitionTime.IsZero() {
		t.Error("LastTransitionTime should be set")
	}
}
