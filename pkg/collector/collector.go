// Package collector implements the pull request collection pipeline:
// locate the pull request, fetch its metadata and diff, render the
// markdown document and optionally write it to disk.
package collector

import (
	"github.com/lerenn/pr-collector/pkg/forge"
	"github.com/lerenn/pr-collector/pkg/git"
	"github.com/lerenn/pr-collector/pkg/logger"
)

// DefaultRemote is the remote the pipeline operates on.
const DefaultRemote = "origin"

// Collector orchestrates pull request lookup, diff retrieval and document rendering.
type Collector struct {
	git    git.Git
	forge  forge.Forge
	logger logger.Logger
}

// NewCollectorParams contains dependencies for NewCollector.
type NewCollectorParams struct {
	Git    git.Git
	Forge  forge.Forge
	Logger logger.Logger
}

// NewCollector creates a new Collector. A nil Git falls back to the real
// implementation and a nil Logger to the noop logger; the Forge must be
// provided since its construction depends on the resolved token.
func NewCollector(params NewCollectorParams) *Collector {
	c := &Collector{
		git:    params.Git,
		forge:  params.Forge,
		logger: params.Logger,
	}
	if c.git == nil {
		c.git = git.NewGit()
	}
	if c.logger == nil {
		c.logger = logger.NewNoopLogger()
	}
	return c
}

// repositoryIdentity resolves the forge identity of the clone's default remote.
func (c *Collector) repositoryIdentity(repoPath string) (forge.RemoteIdentity, error) {
	remoteURL, err := c.git.GetRemoteURL(repoPath, DefaultRemote)
	if err != nil {
		return forge.RemoteIdentity{}, err
	}
	return forge.ParseRemoteURL(remoteURL)
}
