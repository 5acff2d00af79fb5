package cmd

import (
	"github.com/spf13/cobra"

	"podctl/internal/kube"
)

func newListPodsCmd() *cobra.Command {
	var kubeconfig string

	cmd := &cobra.Command{
		Use:   "list-pods-for-all-namespaces",
		Short: "List every pod in the cluster",
		Long:  `Prints IP, namespace and name for every pod across all namespaces.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := kube.NewClient(kubeconfig)
			if err != nil {
				return err
			}
			client.SetOutput(cmd.OutOrStdout())
			return client.ListPodsAllNamespaces(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	_ = cmd.MarkFlagRequired("kubeconfig")

	return cmd
}
