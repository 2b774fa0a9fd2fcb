package collector

import "errors"

// Collector-specific errors.
var (
	ErrSilentRequiresOutput = errors.New("silent mode requires --output to be specified")
	ErrNoPullRequestFound   = errors.New("no open pull request found")
	ErrNoCurrentBranch      = errors.New("repository has no current branch")
)
