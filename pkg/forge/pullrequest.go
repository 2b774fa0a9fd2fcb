package forge

import "time"

// PullRequestInfo is an immutable snapshot of a pull request's metadata,
// fetched once per invocation and never persisted.
type PullRequestInfo struct {
	Number      int
	Title       string
	Description string
	Author      string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
	State       string
	BaseBranch  string
	HeadBranch  string
	URL         string
}
