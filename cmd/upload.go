package cmd

import (
	"github.com/spf13/cobra"

	"podctl/internal/kube"
	"podctl/internal/podexec"
	"podctl/internal/transfer"
)

func newUploadCmd() *cobra.Command {
	var (
		kubeconfig string
		pod        string
		namespace  string
		src        string
		dst        string
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a local file into a pod",
		Long: `Copies a single local file into a directory inside the named pod.
The destination directory is created first if it does not exist. Only
tar and a POSIX shell are required in the target container.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := kube.NewClient(kubeconfig)
			if err != nil {
				return err
			}
			dialer := podexec.NewDialer(client)
			runner := podexec.NewRunner(dialer, cmd.OutOrStdout(), cmd.ErrOrStderr())
			engine := transfer.NewEngine(dialer, runner, appConfig.Transfer, cmd.OutOrStdout(), cmd.ErrOrStderr())
			target := podexec.Target{Pod: pod, Namespace: namespace}
			return engine.UploadFile(cmd.Context(), target, src, dst)
		},
	}

	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	cmd.Flags().StringVar(&pod, "pod", "", "Name of the target pod")
	cmd.Flags().StringVar(&namespace, "namespace", "default", "Namespace of the target pod")
	cmd.Flags().StringVar(&src, "src", "", "Local file to upload")
	cmd.Flags().StringVar(&dst, "dst", "", "Destination directory inside the pod")
	_ = cmd.MarkFlagRequired("kubeconfig")
	_ = cmd.MarkFlagRequired("pod")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")

	return cmd
}
