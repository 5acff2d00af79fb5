package kube

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"podctl/pkg/logging"
)

// CreateResource creates one declarative resource in the cluster.
// Conflicts surface as *AlreadyExistsError, validation rejections as
// *InvalidDefinitionError; every other API error propagates unmodified.
func (c *Client) CreateResource(ctx context.Context, res Resource) error {
	logging.Debug("KubeCreate", "Creating %s %s/%s", res.Kind, res.Namespace, res.Name)

	var err error
	switch res.Kind {
	case KindPod:
		_, err = c.clientset.CoreV1().Pods(res.Namespace).Create(ctx, res.pod, metav1.CreateOptions{})
	case KindService:
		_, err = c.clientset.CoreV1().Services(res.Namespace).Create(ctx, res.service, metav1.CreateOptions{})
	case KindDeployment:
		_, err = c.clientset.AppsV1().Deployments(res.Namespace).Create(ctx, res.deployment, metav1.CreateOptions{})
	default:
		return &UnsupportedKindError{Kind: string(res.Kind)}
	}

	if err != nil {
		if apierrors.IsAlreadyExists(err) {
			return &AlreadyExistsError{Kind: res.Kind, Name: res.Name, Namespace: res.Namespace}
		}
		if apierrors.IsInvalid(err) {
			return &InvalidDefinitionError{Kind: res.Kind, Name: res.Name, Namespace: res.Namespace, Reason: err.Error()}
		}
		return err
	}

	fmt.Fprintf(c.out, "%s %s created in %s namespace.\n", res.Kind, res.Name, res.Namespace)
	return nil
}

// DeleteResource deletes one declarative resource from the cluster.
// A missing resource surfaces as *NotFoundError.
func (c *Client) DeleteResource(ctx context.Context, res Resource) error {
	logging.Debug("KubeDelete", "Deleting %s %s/%s", res.Kind, res.Namespace, res.Name)

	var err error
	switch res.Kind {
	case KindPod:
		err = c.clientset.CoreV1().Pods(res.Namespace).Delete(ctx, res.Name, metav1.DeleteOptions{})
	case KindService:
		err = c.clientset.CoreV1().Services(res.Namespace).Delete(ctx, res.Name, metav1.DeleteOptions{})
	case KindDeployment:
		err = c.clientset.AppsV1().Deployments(res.Namespace).Delete(ctx, res.Name, metav1.DeleteOptions{})
	default:
		return &UnsupportedKindError{Kind: string(res.Kind)}
	}

	if err != nil {
		if apierrors.IsNotFound(err) {
			return &NotFoundError{Kind: res.Kind, Name: res.Name, Namespace: res.Namespace}
		}
		return err
	}

	fmt.Fprintf(c.out, "%s %s deleted from %s namespace.\n", res.Kind, res.Name, res.Namespace)
	return nil
}

// DeployFromFile creates every resource declared in a definitions file, in
// document order. The first failure stops the run; earlier creations stay.
func (c *Client) DeployFromFile(ctx context.Context, filePath string) error {
	resources, err := LoadDefinitions(filePath)
	if err != nil {
		return err
	}
	for _, res := range resources {
		if err := c.CreateResource(ctx, res); err != nil {
			return err
		}
	}
	return nil
}

// DeleteFromFile deletes every resource declared in a definitions file, in
// document order.
func (c *Client) DeleteFromFile(ctx context.Context, filePath string) error {
	resources, err := LoadDefinitions(filePath)
	if err != nil {
		return err
	}
	for _, res := range resources {
		if err := c.DeleteResource(ctx, res); err != nil {
			return err
		}
	}
	return nil
}

// ListPodsAllNamespaces prints one line per pod across all namespaces:
// pod IP, namespace and name, tab separated.
func (c *Client) ListPodsAllNamespaces(ctx context.Context) error {
	podList, err := c.clientset.CoreV1().Pods(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to list pods: %w", err)
	}
	for _, pod := range podList.Items {
		fmt.Fprintf(c.out, "%s\t%s\t%s\n", pod.Status.PodIP, pod.Namespace, pod.Name)
	}
	return nil
}

// HealthCheck verifies connectivity by listing namespaces, the cheapest
// call that exercises auth and the API server round trip.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{Limit: 1}); err != nil {
		return fmt.Errorf("failed to connect to the cluster: %w", err)
	}
	return nil
}
