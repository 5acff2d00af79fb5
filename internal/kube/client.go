package kube

import (
	"fmt"
	"io"
	"os"

	"k8s.io/client-go/kubernetes"
	_ "k8s.io/client-go/plugin/pkg/client/auth" // Important for various auth providers
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Client is an explicitly constructed handle to one cluster, built once at
// process start from a kubeconfig path and passed by reference into every
// component that talks to the cluster. There is deliberately no process-wide
// cached instance.
type Client struct {
	clientset  kubernetes.Interface
	restConfig *rest.Config
	out        io.Writer
}

// NewClient builds a Client from the given kubeconfig file.
func NewClient(kubeconfigPath string) (*Client, error) {
	restConfig, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig %q: %w", kubeconfigPath, err)
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes clientset: %w", err)
	}

	return &Client{
		clientset:  clientset,
		restConfig: restConfig,
		out:        os.Stdout,
	}, nil
}

// NewClientWith wraps a pre-built clientset. The rest config may be nil when
// no exec stream will be opened; tests use this with the client-go fake.
func NewClientWith(clientset kubernetes.Interface, restConfig *rest.Config) *Client {
	return &Client{
		clientset:  clientset,
		restConfig: restConfig,
		out:        os.Stdout,
	}
}

// Clientset exposes the typed API surface.
func (c *Client) Clientset() kubernetes.Interface {
	return c.clientset
}

// RESTConfig exposes the rest config used to build SPDY exec transports.
func (c *Client) RESTConfig() *rest.Config {
	return c.restConfig
}

// SetOutput redirects operation result lines (created/deleted messages, pod
// listings). Defaults to os.Stdout.
func (c *Client) SetOutput(w io.Writer) {
	c.out = w
}
