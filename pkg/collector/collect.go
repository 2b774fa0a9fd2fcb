package collector

import (
	"fmt"

	"github.com/lerenn/pr-collector/pkg/git"
	"github.com/lerenn/pr-collector/pkg/report"
)

// CollectOpts configures a single collection run.
type CollectOpts struct {
	// RepoPath is the local clone to operate on; empty means the current directory.
	RepoPath string
	// PRNumber selects the pull request; 0 auto-detects from the current branch.
	PRNumber int
	// TargetDir optionally restricts the diff to a subdirectory.
	TargetDir string
	// OutputPath is a file or directory to write the document to; empty
	// means stdout only.
	OutputPath string
	// Silent suppresses stdout rendering and requires OutputPath.
	Silent bool
}

// CollectResult is the outcome of a collection run.
type CollectResult struct {
	PRNumber   int
	Markdown   string
	OutputPath string // empty when nothing was written
}

// Collect runs the full pipeline sequentially: locate the pull request,
// fetch its metadata, refresh remote refs, compute the diff, render the
// document and optionally write it. Nothing is retried; the file write
// happens only after the full document is assembled.
func (c *Collector) Collect(opts CollectOpts) (CollectResult, error) {
	if opts.Silent && opts.OutputPath == "" {
		return CollectResult{}, ErrSilentRequiresOutput
	}

	repoPath := opts.RepoPath
	if repoPath == "" {
		repoPath = "."
	}

	number := opts.PRNumber
	if number == 0 {
		c.logger.Logf("Auto-detecting pull request from current branch in %s", repoPath)
		detected, err := c.DetectCurrentPR(repoPath)
		if err != nil {
			return CollectResult{}, err
		}
		number = detected
	}

	identity, err := c.repositoryIdentity(repoPath)
	if err != nil {
		return CollectResult{}, err
	}

	c.logger.Logf("Collecting pull request #%d from %s", number, identity)
	pr, err := c.forge.GetPullRequest(identity, number)
	if err != nil {
		return CollectResult{}, err
	}

	c.logger.Debugf("Refreshing %s before diffing %s...%s", DefaultRemote, pr.BaseBranch, pr.HeadBranch)
	if err := c.git.FetchRemote(repoPath, DefaultRemote); err != nil {
		return CollectResult{}, fmt.Errorf("failed to refresh remote refs: %w", err)
	}

	diff, err := c.git.DiffRange(git.DiffRangeParams{
		RepoPath:   repoPath,
		Remote:     DefaultRemote,
		BaseBranch: pr.BaseBranch,
		HeadBranch: pr.HeadBranch,
		PathSpec:   opts.TargetDir,
	})
	if err != nil {
		return CollectResult{}, err
	}

	markdown := report.Render(pr, diff, opts.TargetDir)

	result := CollectResult{
		PRNumber: number,
		Markdown: markdown,
	}
	if opts.OutputPath != "" {
		path := report.ResolveOutputPath(opts.OutputPath, pr.Title, number)
		if err := report.WriteDocument(path, markdown); err != nil {
			return CollectResult{}, err
		}
		result.OutputPath = path
	}

	return result, nil
}
