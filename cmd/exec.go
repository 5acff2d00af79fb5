package cmd

import (
	"github.com/spf13/cobra"

	"podctl/internal/kube"
	"podctl/internal/podexec"
)

func newExecCmd() *cobra.Command {
	var (
		kubeconfig string
		pod        string
		namespace  string
		command    string
	)

	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Execute a shell command inside a pod",
		Long: `Runs a command through '/bin/sh -c' in the named pod, streaming its
stdout to the terminal. The command's stderr and exit status surface as
an error; a non-zero remote exit makes podctl exit non-zero too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := kube.NewClient(kubeconfig)
			if err != nil {
				return err
			}
			runner := podexec.NewRunner(podexec.NewDialer(client), cmd.OutOrStdout(), cmd.ErrOrStderr())
			target := podexec.Target{Pod: pod, Namespace: namespace}

			// A failing remote command comes back as *podexec.CommandError
			// with the remote stderr attached; returning it lets cobra print
			// it once and Execute() turn it into a non-zero exit.
			return runner.Run(cmd.Context(), target, command)
		},
	}

	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	cmd.Flags().StringVar(&pod, "pod", "", "Name of the target pod")
	cmd.Flags().StringVar(&namespace, "namespace", "default", "Namespace of the target pod")
	cmd.Flags().StringVar(&command, "command", "", "Shell command to run in the pod")
	_ = cmd.MarkFlagRequired("kubeconfig")
	_ = cmd.MarkFlagRequired("pod")
	_ = cmd.MarkFlagRequired("command")

	return cmd
}
