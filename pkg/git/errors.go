// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrFetchFailed        = errors.New("failed to fetch from remote")
	ErrDiffFailed         = errors.New("failed to compute diff")
	ErrNoUpstreamBranch   = errors.New("branch has no upstream")
	ErrBranchLookupFailed = errors.New("failed to determine current branch")
	ErrRemoteLookupFailed = errors.New("failed to resolve remote URL")
)
