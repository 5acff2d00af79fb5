package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	// Test setting version
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	// Test root command properties
	if rootCmd.Use != "podctl" {
		t.Errorf("Expected Use to be 'podctl', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionTemplate(t *testing.T) {
	// Create a new command to test version template
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}

	// Set the same version template as in Execute()
	testCmd.SetVersionTemplate(`{{printf "podctl version %s\n" .Version}}`)

	// Capture output
	var buf bytes.Buffer
	testCmd.SetOut(&buf)

	// Execute version command
	testCmd.SetArgs([]string{"--version"})
	err := testCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	output := buf.String()
	expected := "podctl version 1.0.0\n"
	if output != expected {
		t.Errorf("Expected version output %q, got %q", expected, output)
	}
}

func TestSubcommands(t *testing.T) {
	// Test that subcommands are added
	commands := rootCmd.Commands()

	expectedCommands := []string{
		"deploy",
		"delete",
		"exec",
		"list",
		"upload",
		"download",
		"list-pods-for-all-namespaces",
		"health-check",
		"version",
		"self-update",
	}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	// Test that help can be generated without error
	var buf bytes.Buffer

	// Create a new command to avoid affecting the global one
	testRootCmd := &cobra.Command{
		Use:   "podctl",
		Short: "Manage workloads and move files on a Kubernetes cluster",
		Long: `podctl deploys and deletes resources from definition files, runs
commands inside pods, and copies files to and from them over the
cluster's exec channel.`,
		SilenceUsage: true,
	}

	testRootCmd.SetOut(&buf)
	testRootCmd.SetArgs([]string{"--help"})

	err := testRootCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing help command: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "podctl") {
		t.Errorf("Help output should contain 'podctl'. Got: %q", output)
	}

	if !strings.Contains(output, "deploys and deletes resources") {
		t.Errorf("Help output should contain the long description. Got: %q", output)
	}
}

func TestRequiredFlags(t *testing.T) {
	// Every cluster-facing command must insist on a kubeconfig; the
	// pod-facing ones on a pod name too.
	tests := []struct {
		command string
		flags   []string
	}{
		{"deploy", []string{"kubeconfig", "file"}},
		{"delete", []string{"kubeconfig", "file"}},
		{"exec", []string{"kubeconfig", "pod", "command"}},
		{"list", []string{"kubeconfig", "pod", "dir"}},
		{"upload", []string{"kubeconfig", "pod", "src", "dst"}},
		{"download", []string{"kubeconfig", "pod", "src", "dst"}},
		{"list-pods-for-all-namespaces", []string{"kubeconfig"}},
		{"health-check", []string{"kubeconfig"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			sub, _, err := rootCmd.Find([]string{tt.command})
			if err != nil {
				t.Fatalf("Command %s not found: %v", tt.command, err)
			}
			for _, name := range tt.flags {
				flag := sub.Flags().Lookup(name)
				if flag == nil {
					t.Fatalf("Expected flag --%s on %s", name, tt.command)
				}
				if flag.Annotations[cobra.BashCompOneRequiredFlag] == nil {
					t.Errorf("Expected flag --%s on %s to be required", name, tt.command)
				}
			}
		})
	}
}

func TestNamespaceDefaultsToDefault(t *testing.T) {
	for _, command := range []string{"exec", "list", "upload", "download"} {
		sub, _, err := rootCmd.Find([]string{command})
		if err != nil {
			t.Fatalf("Command %s not found: %v", command, err)
		}
		flag := sub.Flags().Lookup("namespace")
		if flag == nil {
			t.Fatalf("Expected flag --namespace on %s", command)
		}
		if flag.DefValue != "default" {
			t.Errorf("Expected --namespace default on %s to be 'default', got %q", command, flag.DefValue)
		}
	}
}
