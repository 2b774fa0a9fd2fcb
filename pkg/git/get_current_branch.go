package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetCurrentBranch gets the current branch name. A detached HEAD yields
// an empty name without an error.
func (g *realGit) GetCurrentBranch(repoPath string) (string, error) {
	cmd := exec.Command("git", "branch", "--show-current")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %w (command: git branch --show-current, output: %s)",
			ErrBranchLookupFailed, err, string(output))
	}
	return strings.TrimSpace(string(output)), nil
}
