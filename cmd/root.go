package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"podctl/internal/color"
	"podctl/internal/config"
	"podctl/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podctl",
	Short: "Manage workloads and move files on a Kubernetes cluster",
	Long: `podctl deploys and deletes resources from definition files, runs
commands inside pods, and copies files to and from them over the
cluster's exec channel. No agent is required in the target pod beyond
a POSIX shell and tar.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed connections)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			// A broken config file should not block the CLI; fall back
			// to defaults and say so once logging is up.
			cfg = config.GetDefaultConfig()
			logging.Init(logging.ParseLevel(cfg.GlobalSettings.LogLevel), os.Stderr)
			logging.Warn("config", "Ignoring user config: %v", err)
		} else {
			logging.Init(logging.ParseLevel(cfg.GlobalSettings.LogLevel), os.Stderr)
		}
		appConfig = cfg
		color.Initialize(lipgloss.HasDarkBackground())
	},
}

// appConfig holds the layered configuration for the current invocation.
// Populated by the root command's PersistentPreRun before any RunE fires.
var appConfig config.PodctlConfig

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "podctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newExecCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newListPodsCmd())
	rootCmd.AddCommand(newHealthCheckCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
