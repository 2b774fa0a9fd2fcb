package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetUpstreamBranch gets the remote branch name tracked by a local branch
// (e.g. "origin/feature-x" yields "feature-x").
func (g *realGit) GetUpstreamBranch(repoPath, branch string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", branch+"@{upstream}")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s (output: %s)", ErrNoUpstreamBranch, branch, string(output))
	}

	// Upstream is reported as "<remote>/<branch>"; strip the remote segment.
	upstream := strings.TrimSpace(string(output))
	if idx := strings.Index(upstream, "/"); idx >= 0 {
		return upstream[idx+1:], nil
	}
	return upstream, nil
}
