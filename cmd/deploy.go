package cmd

import (
	"github.com/spf13/cobra"

	"podctl/internal/kube"
)

func newDeployCmd() *cobra.Command {
	var (
		kubeconfig string
		file       string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy resources from a definition file",
		Long: `Reads a YAML definition file and creates every pod, service and
deployment it contains, in document order. Creation stops at the first
failure so earlier documents are not silently rolled back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := kube.NewClient(kubeconfig)
			if err != nil {
				return err
			}
			client.SetOutput(cmd.OutOrStdout())
			return client.DeployFromFile(cmd.Context(), file)
		},
	}

	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	cmd.Flags().StringVar(&file, "file", "", "Path to the resource definition file (.yaml/.yml)")
	_ = cmd.MarkFlagRequired("kubeconfig")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
