package cmd

import (
	"github.com/spf13/cobra"

	"podctl/internal/color"
	"podctl/internal/kube"
)

func newHealthCheckCmd() *cobra.Command {
	var kubeconfig string

	cmd := &cobra.Command{
		Use:   "health-check",
		Short: "Check connectivity to the cluster",
		Long: `Performs a cheap read against the API server to verify the
kubeconfig works and the cluster is reachable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := kube.NewClient(kubeconfig)
			if err != nil {
				return err
			}
			if err := client.HealthCheck(cmd.Context()); err != nil {
				cmd.Println(color.Error.Render("Cluster is unreachable."))
				return err
			}
			cmd.Println(color.Success.Render("Cluster is healthy."))
			return nil
		},
	}

	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	_ = cmd.MarkFlagRequired("kubeconfig")

	return cmd
}
