package kube

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/kubernetes/scheme"
)

// LoadDefinitions parses a multi-document YAML definitions file into typed
// resources. Documents are decoded with the client-go scheme codec, so the
// bodies sent to the API server are fully typed objects, not raw maps.
func LoadDefinitions(filePath string) ([]Resource, error) {
	if !strings.HasSuffix(filePath, ".yaml") && !strings.HasSuffix(filePath, ".yml") {
		return nil, fmt.Errorf("definitions file %q must have a .yaml or .yml extension", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}

	return parseDefinitions(data)
}

func parseDefinitions(data []byte) ([]Resource, error) {
	reader := utilyaml.NewYAMLReader(bufio.NewReader(bytes.NewReader(data)))
	decoder := scheme.Codecs.UniversalDeserializer()

	var resources []Resource
	for {
		doc, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to split definitions file: %w", err)
		}
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}

		obj, gvk, err := decoder.Decode(doc, nil, nil)
		if err != nil {
			// The scheme knows nothing about this document; report the
			// declared kind when one is present.
			var head struct {
				Kind string `yaml:"kind"`
			}
			if yamlErr := yaml.Unmarshal(doc, &head); yamlErr == nil && head.Kind != "" {
				return nil, &UnsupportedKindError{Kind: head.Kind}
			}
			return nil, fmt.Errorf("failed to decode definition document: %w", err)
		}

		switch o := obj.(type) {
		case *corev1.Pod:
			resources = append(resources, Resource{
				Kind:      KindPod,
				Name:      o.Name,
				Namespace: defaultNamespace(o.Namespace),
				pod:       o,
			})
		case *corev1.Service:
			resources = append(resources, Resource{
				Kind:      KindService,
				Name:      o.Name,
				Namespace: defaultNamespace(o.Namespace),
				service:   o,
			})
		case *appsv1.Deployment:
			resources = append(resources, Resource{
				Kind:       KindDeployment,
				Name:       o.Name,
				Namespace:  defaultNamespace(o.Namespace),
				deployment: o,
			})
		default:
			return nil, &UnsupportedKindError{Kind: gvk.Kind}
		}
	}
	return resources, nil
}

// defaultNamespace mirrors the API server convention for manifests that
// omit metadata.namespace.
func defaultNamespace(ns string) string {
	if ns == "" {
		return "default"
	}
	return ns
}
