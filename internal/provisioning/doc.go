// Package provisioning provides shared types and orchestration for service provisioning.
//
// # Core Types
//
// Context carries configuration, state, platform clients, and the observer.
// Stage defines a provisioning step with Name() and Run() methods.
// State accumulates results from each stage (manifest text, created directories,
// proxy paths, DNS record).
//
// Stages execute sequentially and the workflow halts at the first failure.
// Completed work is never rolled back; re-running after a fix is safe because
// every stage is idempotent against its own prior output.
package provisioning
