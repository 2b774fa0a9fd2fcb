// Package report renders pull request metadata and diffs into markdown documents.
package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lerenn/pr-collector/pkg/forge"
)

var stateTitleCaser = cases.Title(language.English)

// Render builds the markdown document for a pull request and its diff.
// The output is deterministic: identical inputs produce byte-identical
// documents. The Description section is omitted entirely when the
// description is blank after trimming.
func Render(pr *forge.PullRequestInfo, diff, targetDir string) string {
	lines := []string{
		fmt.Sprintf("# %s", pr.Title),
		"",
		fmt.Sprintf("**PR #%d** - %s", pr.Number, stateTitleCaser.String(pr.State)),
		fmt.Sprintf("**Author:** %s", pr.Author),
		fmt.Sprintf("**Created:** %s", formatTimestamp(pr.CreatedAt)),
		fmt.Sprintf("**Updated:** %s", formatTimestamp(pr.UpdatedAt)),
		fmt.Sprintf("**Base Branch:** %s", pr.BaseBranch),
		fmt.Sprintf("**Head Branch:** %s", pr.HeadBranch),
		fmt.Sprintf("**URL:** %s", pr.URL),
		"",
	}

	if targetDir != "" {
		lines = append(lines,
			fmt.Sprintf("**Target Directory:** `%s`", targetDir),
			"",
		)
	}

	if strings.TrimSpace(pr.Description) != "" {
		lines = append(lines,
			"## Description",
			"",
			pr.Description,
			"",
		)
	}

	lines = append(lines,
		"## Changes",
		"",
		"```diff",
		diff,
		"```",
	)

	return strings.Join(lines, "\n")
}

// formatTimestamp renders a timestamp as RFC 3339, or empty when absent.
func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
