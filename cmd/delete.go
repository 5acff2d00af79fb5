package cmd

import (
	"github.com/spf13/cobra"

	"podctl/internal/kube"
)

func newDeleteCmd() *cobra.Command {
	var (
		kubeconfig string
		file       string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete resources listed in a definition file",
		Long: `Reads the same YAML definition file used for deploy and deletes
every resource it names, in document order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := kube.NewClient(kubeconfig)
			if err != nil {
				return err
			}
			client.SetOutput(cmd.OutOrStdout())
			return client.DeleteFromFile(cmd.Context(), file)
		},
	}

	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	cmd.Flags().StringVar(&file, "file", "", "Path to the resource definition file (.yaml/.yml)")
	_ = cmd.MarkFlagRequired("kubeconfig")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
