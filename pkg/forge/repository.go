package forge

import (
	"fmt"
	"regexp"
	"strings"
)

// remoteURLRegex extracts the first two path segments after the host marker.
var remoteURLRegex = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/.]+)`)

// RemoteIdentity identifies a repository on the forge.
type RemoteIdentity struct {
	Owner string
	Name  string
}

// String returns the "owner/name" form used in API calls.
func (r RemoteIdentity) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRemoteURL extracts the repository identity from a remote URL. Both
// HTTPS (https://github.com/owner/repo.git) and SSH
// (git@github.com:owner/repo.git) forms are accepted; a trailing .git
// suffix is stripped before matching.
func ParseRemoteURL(remoteURL string) (RemoteIdentity, error) {
	normalized := strings.Replace(remoteURL, "git@github.com:", "https://github.com/", 1)
	normalized = strings.TrimSuffix(normalized, ".git")

	matches := remoteURLRegex.FindStringSubmatch(normalized)
	if len(matches) != 3 {
		return RemoteIdentity{}, fmt.Errorf("%w: %s", ErrInvalidRemoteURL, remoteURL)
	}

	return RemoteIdentity{Owner: matches[1], Name: matches[2]}, nil
}
