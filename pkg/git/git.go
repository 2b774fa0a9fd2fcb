package git

//go:generate go run go.uber.org/mock/mockgen@latest -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// GetCurrentBranch gets the current branch name.
	GetCurrentBranch(repoPath string) (string, error)

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)

	// GetUpstreamBranch gets the remote branch name tracked by a local branch.
	GetUpstreamBranch(repoPath, branch string) (string, error)

	// FetchRemote fetches from a specific remote.
	FetchRemote(repoPath, remoteName string) error

	// GetRepositoryRoot gets the absolute path of the repository working tree root.
	GetRepositoryRoot(repoPath string) (string, error)

	// DiffRange computes the merge-base-relative diff between two remote branches.
	DiffRange(params DiffRangeParams) (string, error)
}

// DiffRangeParams contains parameters for DiffRange.
type DiffRangeParams struct {
	RepoPath   string
	Remote     string
	BaseBranch string
	HeadBranch string
	PathSpec   string
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
