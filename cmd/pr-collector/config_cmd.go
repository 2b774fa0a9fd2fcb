package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func createConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
	}

	configCmd.AddCommand(
		createConfigShowCmd(),
		createConfigSetTokenCmd(),
		createConfigSetOutputDirCmd(),
		createConfigInitCmd(),
	)

	return configCmd
}

func createConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := newConfigManager()
			if _, err := manager.EnsureConfigFile(); err != nil {
				return err
			}
			cfg := manager.GetConfigWithFallback()

			text := fmt.Sprintf("Configuration File: %s\n\nSettings:\n  github_token: %s\n  default_output_dir: %s",
				manager.GetConfigPath(), maskToken(cfg.GitHubToken), cfg.DefaultOutputDir)
			fmt.Fprintln(cmd.OutOrStdout(), infoPanel(text))
			return nil
		},
	}
}

func createConfigSetTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token <token>",
		Short: "Store the GitHub token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newConfigManager().SetGitHubToken(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successPanel("GitHub token saved successfully!"))
			return nil
		},
	}
}

func createConfigSetOutputDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-output-dir <path>",
		Short: "Store the default output directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expanded := expandHome(args[0])
			if err := newConfigManager().SetDefaultOutputDir(expanded); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successPanel("Default output directory set to: "+expanded))
			return nil
		},
	}
}

func createConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration file with defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := newConfigManager()
			if _, err := manager.EnsureConfigFile(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				successPanel("Configuration initialized at: "+manager.GetConfigPath()))
			return nil
		},
	}
}

// maskToken masks a token to its first 8 characters plus ellipsis.
func maskToken(token string) string {
	switch {
	case token == "":
		return "(not set)"
	case len(token) > 8:
		return token[:8] + "..."
	default:
		return "***"
	}
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}
	return path
}
