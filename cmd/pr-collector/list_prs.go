package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lerenn/pr-collector/pkg/collector"
	"github.com/lerenn/pr-collector/pkg/forge"
)

func createListPRsCmd() *cobra.Command {
	var (
		repoPath string
		token    string
	)

	listPRsCmd := &cobra.Command{
		Use:   "list-prs",
		Short: "List all open PRs for the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger()

			absRepoPath, err := filepath.Abs(repoPath)
			if err != nil {
				return fmt.Errorf("failed to resolve repository path: %w", err)
			}

			log.Logf("Listing open PRs for %s", absRepoPath)

			resolvedToken := newConfigManager().ResolveToken(token)
			if resolvedToken == "" {
				log.Logf("No GitHub token found - only public repositories will be accessible")
			}

			coll := collector.NewCollector(collector.NewCollectorParams{
				Forge:  forge.NewGitHub(resolvedToken),
				Logger: log,
			})

			prs, err := coll.ListOpenPRs(absRepoPath)
			if err != nil {
				return err
			}

			if len(prs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No open pull requests found.")
				return nil
			}

			return renderPRTable(cmd, prs)
		},
	}

	listPRsCmd.Flags().StringVarP(&repoPath, "repo", "r", ".", "Path to git repository")
	listPRsCmd.Flags().StringVarP(&token, "token", "t", "", "GitHub token (or set GITHUB_TOKEN)")

	return listPRsCmd
}

// renderPRTable renders a lipgloss table of open pull requests to stdout.
func renderPRTable(cmd *cobra.Command, prs []forge.PullRequestInfo) error {
	purple := lipgloss.Color("99")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	headerStyle := lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	oddRowStyle := cellStyle.Foreground(gray)
	evenRowStyle := cellStyle.Foreground(lightGray)

	rows := make([][]string, len(prs))
	for i, pr := range prs {
		created := ""
		if pr.CreatedAt != nil {
			created = pr.CreatedAt.Format("2006-01-02")
		}
		updated := ""
		if pr.UpdatedAt != nil {
			updated = humanize.Time(*pr.UpdatedAt)
		}

		rows[i] = []string{
			fmt.Sprintf("#%d", pr.Number),
			truncateString(pr.Title, 40),
			truncateString(pr.HeadBranch, 30),
			pr.Author,
			created,
			updated,
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers("PR #", "Title", "Branch", "Author", "Created", "Updated").
		Rows(rows...)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}
