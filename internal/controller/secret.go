package controller

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	certforgev1alpha1 "github.com/infrapki/certforge/api/v1alpha1"
	"github.com/infrapki/certforge/pkg/pki"
	"github.com/infrapki/certforge/pkg/util/metadata"
)

// CACertKey is the Secret data key holding the CA certificate next to the
// standard tls.crt/tls.key pair.
const CACertKey = "ca.pem"

// BuildSecret creates the target Secret for an issued chain. The three data
// fields are always written together as a full replacement; consumers never
// see a leaf without the CA it chains to.
func BuildSecret(
	cert *certforgev1alpha1.TLSCertificate,
	bundle *pki.Bundle,
	scheme *runtime.Scheme,
) (*corev1.Secret, error) {
	labels := metadata.BuildStandardLabels(cert.Name, metadata.ComponentCertificate)
	labels = metadata.AddCertificateLabel(labels, cert.Name)

	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      cert.TargetSecretName(),
			Namespace: cert.Namespace,
			Labels:    labels,
		},
		Type: corev1.SecretTypeTLS,
		Data: map[string][]byte{
			corev1.TLSCertKey:       bundle.CertPEM,
			corev1.TLSPrivateKeyKey: bundle.KeyPEM,
			CACertKey:               bundle.CACertPEM,
		},
	}

	if err := ctrl.SetControllerReference(cert, secret, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return secret, nil
}
