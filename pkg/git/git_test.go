//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentBranch(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	g := NewGit()
	branch, err := g.GetCurrentBranch(repoPath)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	runGitCommand(t, repoPath, "checkout", "-b", "feature-x")
	branch, err = g.GetCurrentBranch(repoPath)
	require.NoError(t, err)
	assert.Equal(t, "feature-x", branch)
}

func TestGetCurrentBranch_DetachedHead(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	runGitCommand(t, repoPath, "checkout", "--detach", "HEAD")

	// git exits 0 with empty output on a detached HEAD; callers are
	// expected to treat the empty name as "no branch".
	g := NewGit()
	branch, err := g.GetCurrentBranch(repoPath)
	require.NoError(t, err)
	assert.Empty(t, branch)
}

func TestGetCurrentBranch_NotARepository(t *testing.T) {
	g := NewGit()
	_, err := g.GetCurrentBranch(t.TempDir())
	assert.ErrorIs(t, err, ErrBranchLookupFailed)
}

func TestGetRemoteURL(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	g := NewGit()
	url, err := g.GetRemoteURL(repoPath, "origin")
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:acme/widgets.git", url)
}

func TestGetRemoteURL_UnknownRemote(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	g := NewGit()
	_, err := g.GetRemoteURL(repoPath, "upstream")
	assert.ErrorIs(t, err, ErrRemoteLookupFailed)
}

func TestGetUpstreamBranch_NoUpstream(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	g := NewGit()
	_, err := g.GetUpstreamBranch(repoPath, "main")
	assert.ErrorIs(t, err, ErrNoUpstreamBranch)
}

func TestGetUpstreamBranch(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	// Simulate a tracking branch by pointing origin at a local clone.
	remotePath := t.TempDir()
	runGitCommand(t, remotePath, "clone", "--bare", repoPath, ".")
	runGitCommand(t, repoPath, "remote", "set-url", "origin", remotePath)
	runGitCommand(t, repoPath, "fetch", "origin")
	runGitCommand(t, repoPath, "branch", "--set-upstream-to=origin/main", "main")

	g := NewGit()
	branch, err := g.GetUpstreamBranch(repoPath, "main")
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestGetRepositoryRoot(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	subDir := filepath.Join(repoPath, "services", "api")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	g := NewGit()
	root, err := g.GetRepositoryRoot(subDir)
	require.NoError(t, err)

	expected, err := filepath.EvalSymlinks(repoPath)
	require.NoError(t, err)
	assert.Equal(t, expected, root)
}

func TestDiffRange(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	remotePath := t.TempDir()
	runGitCommand(t, remotePath, "clone", "--bare", repoPath, ".")
	runGitCommand(t, repoPath, "remote", "set-url", "origin", remotePath)

	runGitCommand(t, repoPath, "checkout", "-b", "feature-x")
	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "feature.txt"), []byte("new feature\n"), 0644))
	runGitCommand(t, repoPath, "add", "feature.txt")
	runGitCommand(t, repoPath, "commit", "-m", "Add feature")
	runGitCommand(t, repoPath, "push", "origin", "main", "feature-x")
	runGitCommand(t, repoPath, "fetch", "origin")

	g := NewGit()
	diff, err := g.DiffRange(DiffRangeParams{
		RepoPath:   repoPath,
		Remote:     "origin",
		BaseBranch: "main",
		HeadBranch: "feature-x",
	})
	require.NoError(t, err)
	assert.Contains(t, diff, "feature.txt")
	assert.Contains(t, diff, "+new feature")
}

func TestDiffRange_PathSpec(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	remotePath := t.TempDir()
	runGitCommand(t, remotePath, "clone", "--bare", repoPath, ".")
	runGitCommand(t, repoPath, "remote", "set-url", "origin", remotePath)

	runGitCommand(t, repoPath, "checkout", "-b", "feature-x")
	require.NoError(t, os.MkdirAll(filepath.Join(repoPath, "services", "api"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "services", "api", "handler.go"), []byte("package api\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "other.txt"), []byte("other\n"), 0644))
	runGitCommand(t, repoPath, "add", ".")
	runGitCommand(t, repoPath, "commit", "-m", "Add files")
	runGitCommand(t, repoPath, "push", "origin", "main", "feature-x")
	runGitCommand(t, repoPath, "fetch", "origin")

	g := NewGit()
	diff, err := g.DiffRange(DiffRangeParams{
		RepoPath:   repoPath,
		Remote:     "origin",
		BaseBranch: "main",
		HeadBranch: "feature-x",
		PathSpec:   "services/api",
	})
	require.NoError(t, err)
	assert.Contains(t, diff, "handler.go")
	assert.NotContains(t, diff, "other.txt")
}

func TestDiffRange_UnknownRef(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	g := NewGit()
	_, err := g.DiffRange(DiffRangeParams{
		RepoPath:   repoPath,
		Remote:     "origin",
		BaseBranch: "main",
		HeadBranch: "does-not-exist",
	})
	assert.ErrorIs(t, err, ErrDiffFailed)
}

func TestFetchRemote_UnreachableRemote(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	// origin points at a GitHub URL that cannot be reached without network
	// access; repoint it at a missing local path to keep the test hermetic.
	runGitCommand(t, repoPath, "remote", "set-url", "origin", filepath.Join(t.TempDir(), "missing"))

	g := NewGit()
	err := g.FetchRemote(repoPath, "origin")
	assert.ErrorIs(t, err, ErrFetchFailed)
}

// Guard against the helper breaking on newer git versions.
func TestSetupTestRepo(t *testing.T) {
	repoPath, cleanup := SetupTestRepo(t)
	defer cleanup()

	cmd := exec.Command("git", "log", "--oneline")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "Initial commit")
}
