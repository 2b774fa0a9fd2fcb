package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DiffRange computes `git diff <remote>/<base>...<remote>/<head>` restricted
// to an optional path spec. The triple-dot range diffs against the merge
// base of the two branches, matching what the GitHub pull request view
// shows. An absolute path spec nested under the repository root is
// converted to a root-relative path first.
func (g *realGit) DiffRange(params DiffRangeParams) (string, error) {
	pathSpec := params.PathSpec
	if pathSpec != "" && filepath.IsAbs(pathSpec) {
		if root, err := g.GetRepositoryRoot(params.RepoPath); err == nil {
			pathSpec = relativizePathSpec(root, pathSpec)
		}
	}

	rangeSpec := fmt.Sprintf("%s/%s...%s/%s",
		params.Remote, params.BaseBranch, params.Remote, params.HeadBranch)
	args := []string{"diff", rangeSpec}
	if pathSpec != "" {
		args = append(args, "--", pathSpec)
	}

	// Keep stdout and stderr apart: stdout is the diff itself.
	var stdout, stderr bytes.Buffer
	cmd := exec.Command("git", args...)
	cmd.Dir = params.RepoPath
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %w (command: git %s, output: %s)",
			ErrDiffFailed, err, strings.Join(args, " "), stderr.String())
	}

	return stdout.String(), nil
}

// relativizePathSpec converts an absolute path spec strictly nested under
// the repository root into a root-relative one. Anything else, including
// a sibling directory whose name merely extends the root's, is returned
// unchanged.
func relativizePathSpec(root, pathSpec string) string {
	if !strings.HasPrefix(pathSpec, root+string(os.PathSeparator)) {
		return pathSpec
	}
	rel, err := filepath.Rel(root, pathSpec)
	if err != nil {
		return pathSpec
	}
	return rel
}
