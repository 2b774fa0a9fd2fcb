// Package main provides the command-line interface for the pr-collector application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lerenn/pr-collector/pkg/config"
	"github.com/lerenn/pr-collector/pkg/logger"
)

const (
	appName        = "pr-collector"
	appDescription = "Collect PR diffs and metadata into markdown files"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	quiet      bool
	verbose    bool
	configPath string
)

// newLogger creates the logger for the current invocation.
func newLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger(verbose)
}

// newConfigManager creates the settings manager for the current invocation.
func newConfigManager() config.Manager {
	return config.NewManager(configPath)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: appDescription,
		Long: `Collect pull request diffs and metadata from GitHub into a single ` +
			`markdown document, auto-detecting the pull request for the current branch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Version = version

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress status output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createCollectCmd(),
		createInfoCmd(),
		createConfigCmd(),
		createListPRsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorPanel(err))
		os.Exit(1)
	}
}
