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

// Package v1alpha1 defines the API types for the Certforge Operator.
//
// This package contains the Go type definitions for the Custom Resources in
// the certforge.io API group.
//
// # Custom Resources
//
//   - TLSCertificate: declares a self-signed certificate chain. The operator
//     generates a root CA, issues a leaf certificate signed by it, and
//     materializes both into a Kubernetes Secret consumed by workloads that
//     terminate TLS. The CA certificate can additionally be exported to
//     HashiCorp Vault for distribution outside the cluster.
//
// # Issuance model
//
//	TLSCertificate
//	└── Secret (tls.crt, tls.key, ca.pem)
//	    └── optional Vault KV export of ca.pem
//
// The CA and the leaf are always issued together: a leaf in the Secret always
// chains to the CA certificate stored next to it. There is no independent
// rotation of either half.
//
// # Versioning
//
// This is the v1alpha1 version, indicating the API is in early development
// and may change in backward-incompatible ways.
package v1alpha1
