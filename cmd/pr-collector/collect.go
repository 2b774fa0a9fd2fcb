package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lerenn/pr-collector/pkg/collector"
	"github.com/lerenn/pr-collector/pkg/forge"
)

func createCollectCmd() *cobra.Command {
	var (
		repoPath   string
		targetDir  string
		outputPath string
		silent     bool
		token      string
	)

	collectCmd := &cobra.Command{
		Use:   "collect [pr-number]",
		Short: "Collect PR diff and metadata into a markdown file",
		Long: `Collect PR diff and metadata into a markdown document.

When no PR number is given, the PR is auto-detected from the current branch.

Examples:
  pr-collector collect
  pr-collector collect 42 --output ./reviews/
  pr-collector collect --dir services/api --silent --output review.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			prNumber := 0
			if len(args) == 1 {
				number, err := strconv.Atoi(args[0])
				if err != nil || number <= 0 {
					return fmt.Errorf("invalid PR number: %s", args[0])
				}
				prNumber = number
			}

			absRepoPath, err := filepath.Abs(repoPath)
			if err != nil {
				return fmt.Errorf("failed to resolve repository path: %w", err)
			}

			if targetDir != "" {
				log.Debugf("Target directory: %s", targetDir)
			}

			resolvedToken := newConfigManager().ResolveToken(token)
			if resolvedToken == "" {
				log.Logf("No GitHub token found - only public repositories will be accessible")
				log.Logf("Set one with: pr-collector config set-token <token>")
			}

			coll := collector.NewCollector(collector.NewCollectorParams{
				Forge:  forge.NewGitHub(resolvedToken),
				Logger: log,
			})

			result, err := coll.Collect(collector.CollectOpts{
				RepoPath:   absRepoPath,
				PRNumber:   prNumber,
				TargetDir:  targetDir,
				OutputPath: outputPath,
				Silent:     silent,
			})
			if err != nil {
				return err
			}

			if !silent {
				fmt.Fprintln(cmd.OutOrStdout(), result.Markdown)
			}
			if result.OutputPath != "" {
				fmt.Fprintln(cmd.OutOrStdout(),
					successPanel("PR data collected successfully!\nFile: "+result.OutputPath))
			}
			return nil
		},
	}

	collectCmd.Flags().StringVarP(&repoPath, "repo", "r", ".", "Path to git repository")
	collectCmd.Flags().StringVarP(&targetDir, "dir", "d", "", "Target directory to collect diffs for (relative to repo root)")
	collectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path or directory (default: print to stdout only)")
	collectCmd.Flags().BoolVarP(&silent, "silent", "s", false, "Don't print markdown to stdout (requires --output)")
	collectCmd.Flags().StringVarP(&token, "token", "t", "", "GitHub token (or set GITHUB_TOKEN)")

	return collectCmd
}
