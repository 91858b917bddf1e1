// Package controller implements the TLSCertificate reconciler: it drives the
// issuance flow in pkg/pki and materializes the resulting chain into a
// Kubernetes Secret with Server-Side Apply. The CA and the leaf are always
// issued in the same pass; a Secret that still matches the spec is left
// untouched, so unchanged inputs never rotate the chain.
package controller
