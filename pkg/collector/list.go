package collector

import "github.com/lerenn/pr-collector/pkg/forge"

// ListOpenPRs lists all open pull requests for the clone's default remote.
func (c *Collector) ListOpenPRs(repoPath string) ([]forge.PullRequestInfo, error) {
	identity, err := c.repositoryIdentity(repoPath)
	if err != nil {
		return nil, err
	}
	return c.forge.ListOpenPullRequests(identity, "")
}
