package forge

import "errors"

// Forge-specific errors.
var (
	ErrInvalidRemoteURL = errors.New("could not parse GitHub remote URL")
	ErrNotFound         = errors.New("repository or pull request not found")
	ErrUnauthorized     = errors.New("unauthorized access to forge API")
	ErrRateLimited      = errors.New("rate limited by forge API")
)
