package metadata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildStandardLabels(t *testing.T) {
	t.Parallel()

	got := BuildStandardLabels("api-server", ComponentCertificate)
	want := map[string]string{
		"app.kubernetes.io/name":       "certforge",
		"app.kubernetes.io/instance":   "api-server",
		"app.kubernetes.io/component":  "certificate",
		"app.kubernetes.io/part-of":    "certforge",
		"app.kubernetes.io/managed-by": "certforge-operator",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildStandardLabels() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCertificateLabel(t *testing.T) {
	t.Parallel()

	labels := BuildStandardLabels("api-server", ComponentCertificate)
	got := AddCertificateLabel(labels, "api-server")
	if got[LabelCertforgeCertificate] != "api-server" {
		t.Errorf("certificate label = %q, want %q", got[LabelCertforgeCertificate], "api-server")
	}
}

func TestMergeLabels(t *testing.T) {
	t.Parallel()

	base := map[string]string{"a": "1", "b": "2"}
	got := MergeLabels(base, map[string]string{"b": "3", "c": "4"})
	want := map[string]string{"a": "1", "b": "3", "c": "4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeLabels() mismatch (-want +got):\n%s", diff)
	}
}
