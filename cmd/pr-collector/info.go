package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show information about pr-collector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text := fmt.Sprintf("%s\n\nVersion: %s\nDescription: %s\n\nUse 'pr-collector collect --help' to get started.",
				appName, version, appDescription)
			fmt.Fprintln(cmd.OutOrStdout(), infoPanel(text))
			return nil
		},
	}
}
