package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetRepositoryRoot gets the absolute path of the repository working tree root.
func (g *realGit) GetRepositoryRoot(repoPath string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git rev-parse --show-toplevel failed: %w (output: %s)",
			err, string(output))
	}
	return strings.TrimSpace(string(output)), nil
}
