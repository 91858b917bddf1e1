// Package handlers implements the admission control logic for TLSCertificate
// resources.
//
// It contains implementations of the controller-runtime CustomDefaulter and
// CustomValidator interfaces:
//
//  1. Mutation (TLSCertificateDefaulter): applies the documented defaults for
//     validity windows, the CA organization, the target Secret name, and the
//     Vault mount, so that the stored spec is explicit about what will be
//     issued.
//
//  2. Validation (TLSCertificateValidator): enforces rules the CRD schema
//     cannot express, such as requiring at least one verifiable identity and
//     rejecting unparsable IP addresses. A leaf configured to outlive its CA
//     is deliberately allowed through with an admission warning: the mismatch
//     is surfaced to the user, never silently corrected.
package handlers
