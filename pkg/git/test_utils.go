package git

import (
	"os"
	"os/exec"
	"testing"
)

// SetupTestRepo creates a temporary git repository for testing.
func SetupTestRepo(t *testing.T) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "git-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	runGitCommand(t, tmpDir, "init", "--initial-branch=main")
	runGitCommand(t, tmpDir, "config", "user.name", "Test User")
	runGitCommand(t, tmpDir, "config", "user.email", "test@example.com")
	runGitCommand(t, tmpDir, "remote", "add", "origin", "git@github.com:acme/widgets.git")

	if err := os.WriteFile(tmpDir+"/README.md", []byte("# Test\n"), 0644); err != nil {
		cleanup()
		t.Fatalf("Failed to write initial file: %v", err)
	}
	runGitCommand(t, tmpDir, "add", "README.md")
	runGitCommand(t, tmpDir, "commit", "-m", "Initial commit")

	return tmpDir, cleanup
}

func runGitCommand(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v (output: %s)", args, err, string(output))
	}
}
