package metadata

import "maps"

// Standard Kubernetes label keys following kubernetes.io conventions.
//
// See: https://kubernetes.io/docs/concepts/overview/working-with-objects/common-labels/
const (
	// LabelAppName is the standard label key for the application name.
	LabelAppName = "app.kubernetes.io/name"

	// LabelAppInstance is the standard label key for the unique instance name.
	LabelAppInstance = "app.kubernetes.io/instance"

	// LabelAppComponent is the standard label key for the component within the
	// application.
	LabelAppComponent = "app.kubernetes.io/component"

	// LabelAppPartOf is the standard label key for the name of a higher level
	// application this one is part of.
	LabelAppPartOf = "app.kubernetes.io/part-of"

	// LabelAppManagedBy is the standard label key for the tool managing the
	// resource.
	LabelAppManagedBy = "app.kubernetes.io/managed-by"
)

const (
	// AppNameCertforge is the fixed application name for all certforge resources.
	AppNameCertforge = "certforge"

	// ManagedByCertforge identifies the operator managing these resources.
	ManagedByCertforge = "certforge-operator"
)

const (
	// ComponentCertificate identifies Secrets holding issued chains.
	ComponentCertificate = "certificate"

	// ComponentWebhook identifies the operator's own webhook serving certs.
	ComponentWebhook = "webhook"
)

const (
	// LabelCertforgeCertificate identifies which TLSCertificate a Secret
	// was issued for.
	LabelCertforgeCertificate = "certforge.io/certificate"
)

// BuildStandardLabels returns a map of standard kubernetes labels.
// instance should be the name of the TLSCertificate CR and component one of
// the Component constants.
func BuildStandardLabels(instance, component string) map[string]string {
	return map[string]string{
		LabelAppName:      AppNameCertforge,
		LabelAppInstance:  instance,
		LabelAppComponent: component,
		LabelAppPartOf:    AppNameCertforge,
		LabelAppManagedBy: ManagedByCertforge,
	}
}

// AddCertificateLabel adds the owning-certificate label to the provided map.
func AddCertificateLabel(labels map[string]string, certName string) map[string]string {
	labels[LabelCertforgeCertificate] = certName
	return labels
}

// MergeLabels copies the entries of extra over base and returns base.
func MergeLabels(base, extra map[string]string) map[string]string {
	maps.Copy(base, extra)
	return base
}
