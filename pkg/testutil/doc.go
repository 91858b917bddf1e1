// Package testutil provides test utilities for controller tests. The main
// support is a fake client wrapper with configurable failure injection,
// letting table-driven tests exercise error handling paths that the plain
// controller-runtime fake client cannot reach.
//
// Example:
//
//	baseClient := fake.NewClientBuilder().WithScheme(scheme).Build()
//	failing := testutil.NewFakeClientWithFailures(baseClient, &testutil.FailureConfig{
//	    OnPatch: testutil.FailOnObjectName("my-cert-tls", testutil.ErrInjected),
//	})
//
// Every client operation delegates to the wrapped client unless the matching
// hook returns an error, so tests stay declarative about which call fails.
package testutil
