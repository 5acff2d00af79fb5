package cmd

import (
	"github.com/spf13/cobra"

	"podctl/internal/kube"
	"podctl/internal/podexec"
)

func newListCmd() *cobra.Command {
	var (
		kubeconfig string
		pod        string
		namespace  string
		dir        string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a directory inside a pod",
		Long:  `Runs 'ls' on the given directory in the named pod and prints the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := kube.NewClient(kubeconfig)
			if err != nil {
				return err
			}
			runner := podexec.NewRunner(podexec.NewDialer(client), cmd.OutOrStdout(), cmd.ErrOrStderr())
			target := podexec.Target{Pod: pod, Namespace: namespace}
			return runner.ListRemote(cmd.Context(), target, dir)
		},
	}

	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	cmd.Flags().StringVar(&pod, "pod", "", "Name of the target pod")
	cmd.Flags().StringVar(&namespace, "namespace", "default", "Namespace of the target pod")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory inside the pod to list")
	_ = cmd.MarkFlagRequired("kubeconfig")
	_ = cmd.MarkFlagRequired("pod")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}
