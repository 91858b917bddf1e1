// Package pki implements the self-signed issuance primitives behind the
// TLSCertificate resource: root CA generation, leaf key and signing-request
// generation, and signing.
//
// The flow is strictly linear and the pieces compose through data, not
// scheduling:
//
//	NewSelfSignedCA ──► NewCertificateRequest ──► CA.Sign
//
// Issue runs the whole chain in one call and is the only way the operator
// produces certificates, which keeps the CA and the leaf issued together as a
// pair. All functions take an io.Reader as randomness source so error paths
// can be exercised deterministically in tests.
package pki
