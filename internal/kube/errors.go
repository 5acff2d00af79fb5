package kube

import (
	"fmt"
)

// NotFoundError indicates the named resource does not exist in the cluster,
// either when deleting it or when opening an exec stream against it.
type NotFoundError struct {
	Kind      Kind
	Name      string
	Namespace string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the %s %q was not found in %q namespace", e.Kind, e.Name, e.Namespace)
}

// AlreadyExistsError indicates a create conflicted with an existing resource
// of the same name and namespace (HTTP 409).
type AlreadyExistsError struct {
	Kind      Kind
	Name      string
	Namespace string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("the %s %q already exists in %q namespace", e.Kind, e.Name, e.Namespace)
}

// InvalidDefinitionError indicates the API server rejected the resource body
// as invalid (HTTP 422).
type InvalidDefinitionError struct {
	Kind      Kind
	Name      string
	Namespace string
	Reason    string
}

func (e *InvalidDefinitionError) Error() string {
	msg := fmt.Sprintf("the definition of %s %q is invalid", e.Kind, e.Name)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// UnsupportedKindError indicates a definition file names a resource kind
// outside the supported set.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("the resource kind %q is not supported (supported kinds: %s, %s, %s)",
		e.Kind, KindPod, KindService, KindDeployment)
}
