// Package kube owns every direct interaction with the Kubernetes API for
// podctl's declarative resources.
//
// The package is built around an explicit Client handle constructed once
// from a kubeconfig path (see NewClient) and passed into every component
// that needs cluster access. This replaces the cached process-wide client
// the predecessor tool used; fakes slot in through NewClientWith.
//
// # Resources
//
// Definitions files are multi-document YAML. Each document is decoded with
// the client-go scheme codec into a typed object and tagged with one of the
// closed set of kinds (Pod, Service, Deployment). Any other kind is rejected
// with UnsupportedKindError before the API server is contacted.
//
// # Error classification
//
// Create and delete calls surface three outcome classes as typed errors:
//
//   - 409 conflict   -> AlreadyExistsError
//   - 422 invalid    -> InvalidDefinitionError
//   - 404 not found  -> NotFoundError
//
// Any other API failure propagates unmodified so the caller sees the real
// cause.
package kube
