package kube

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
)

// Kind is the closed set of declarative resource kinds podctl can manage.
// Unknown kinds are rejected at load time with UnsupportedKindError.
type Kind string

const (
	KindPod        Kind = "Pod"
	KindService    Kind = "Service"
	KindDeployment Kind = "Deployment"
)

// Resource is one declarative object parsed from a definitions file. Exactly
// one of the typed bodies is set, matching Kind.
type Resource struct {
	Kind      Kind
	Name      string
	Namespace string

	pod        *corev1.Pod
	service    *corev1.Service
	deployment *appsv1.Deployment
}
