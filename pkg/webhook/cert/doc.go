// Package cert handles the lifecycle of TLS certificates for the admission
// webhook server.
//
// In the self-signed strategy the package issues a dedicated CA and server
// certificate through pkg/pki, persists the chain to a Kubernetes Secret,
// writes it to the local filesystem for controller-runtime, and injects the
// CA certificate as the caBundle of the operator's webhook configurations.
//
// Rotation is handled on startup: when the stored server certificate is
// expired, within the rotation threshold, or was issued for a different
// service name, the whole chain is regenerated and the Secret and webhook
// configurations are updated. The CA private key is never persisted; like the
// operator's own issuance flow, rotation always regenerates CA and server
// certificate together.
//
// Usage:
//
//	mgr := cert.NewManager(client, options)
//	if err := mgr.EnsureCerts(ctx); err != nil {
//	    // handle error
//	}
package cert
