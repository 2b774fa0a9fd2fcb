package collector

import (
	"fmt"

	"github.com/lerenn/pr-collector/pkg/forge"
)

// DetectCurrentPR determines which open pull request corresponds to the
// clone's current branch.
func (c *Collector) DetectCurrentPR(repoPath string) (int, error) {
	branch, err := c.git.GetCurrentBranch(repoPath)
	if err != nil {
		return 0, fmt.Errorf("failed to determine current branch: %w", err)
	}
	// A detached HEAD yields an empty name; an empty head filter would
	// match unrelated pull requests, so stop before querying the forge.
	if branch == "" {
		return 0, fmt.Errorf("%w (detached HEAD?): checkout a branch or pass the pull request number explicitly",
			ErrNoCurrentBranch)
	}

	identity, err := c.repositoryIdentity(repoPath)
	if err != nil {
		return 0, err
	}

	// Prefer the upstream tracking branch; fall back to the local name.
	remoteBranch, err := c.git.GetUpstreamBranch(repoPath, branch)
	if err != nil {
		remoteBranch = branch
	}

	// Three lookup strategies tried in order, first non-empty result wins:
	// owner-qualified head, bare head (forked-repo naming), then a scan of
	// all open pull requests.
	strategies := []func() ([]forge.PullRequestInfo, error){
		func() ([]forge.PullRequestInfo, error) {
			return c.forge.ListOpenPullRequests(identity, identity.Owner+":"+remoteBranch)
		},
		func() ([]forge.PullRequestInfo, error) {
			return c.forge.ListOpenPullRequests(identity, remoteBranch)
		},
		func() ([]forge.PullRequestInfo, error) {
			all, err := c.forge.ListOpenPullRequests(identity, "")
			if err != nil {
				return nil, err
			}
			for _, pr := range all {
				if pr.HeadBranch == remoteBranch {
					return []forge.PullRequestInfo{pr}, nil
				}
			}
			return nil, nil
		},
	}

	for _, lookup := range strategies {
		matches, err := lookup()
		if err != nil {
			return 0, err
		}
		if len(matches) > 0 {
			c.logger.Debugf("Matched pull request #%d for branch %s", matches[0].Number, remoteBranch)
			return matches[0].Number, nil
		}
	}

	return 0, fmt.Errorf("%w: local branch %q (remote branch %q); make sure an open pull request exists for this branch",
		ErrNoPullRequestFound, branch, remoteBranch)
}
