package cmd

import (
	"github.com/spf13/cobra"

	"podctl/internal/kube"
	"podctl/internal/podexec"
	"podctl/internal/transfer"
)

func newDownloadCmd() *cobra.Command {
	var (
		kubeconfig string
		pod        string
		namespace  string
		src        string
		dst        string
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download a file from a pod",
		Long: `Copies a single file out of the named pod into a local directory,
creating the directory if needed. The file keeps its base name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := kube.NewClient(kubeconfig)
			if err != nil {
				return err
			}
			dialer := podexec.NewDialer(client)
			runner := podexec.NewRunner(dialer, cmd.OutOrStdout(), cmd.ErrOrStderr())
			engine := transfer.NewEngine(dialer, runner, appConfig.Transfer, cmd.OutOrStdout(), cmd.ErrOrStderr())
			target := podexec.Target{Pod: pod, Namespace: namespace}
			return engine.DownloadFile(cmd.Context(), target, src, dst)
		},
	}

	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	cmd.Flags().StringVar(&pod, "pod", "", "Name of the target pod")
	cmd.Flags().StringVar(&namespace, "namespace", "default", "Namespace of the target pod")
	cmd.Flags().StringVar(&src, "src", "", "Path of the file inside the pod")
	cmd.Flags().StringVar(&dst, "dst", "", "Local directory to download into")
	_ = cmd.MarkFlagRequired("kubeconfig")
	_ = cmd.MarkFlagRequired("pod")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")

	return cmd
}
