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

// Package webhook provides the entry point for configuring Kubernetes admission
// webhooks for the Certforge Operator.
//
// The package exposes a [Setup] function that registers all webhook handlers
// with the controller-runtime manager. It wires together:
//
//   - Mutating Webhook: applies defaults to TLSCertificate resources before
//     they are persisted (see pkg/webhook/handlers).
//
//   - Validating Webhook: enforces semantic rules that cannot be expressed in
//     the CRD schema, such as the certificate identity requirement, and
//     surfaces an admission warning when a leaf is configured to outlive its
//     CA.
//
// # TLS Certificates
//
// The webhook server's own serving certificate is bootstrapped by
// pkg/webhook/cert: a self-hosted chain issued through pkg/pki, persisted to a
// Secret, written to disk for the server, and injected as the caBundle of the
// webhook configurations. An external strategy (e.g. cert-manager) is also
// supported, in which case the package only points the server at the mounted
// certificate directory.
package webhook
