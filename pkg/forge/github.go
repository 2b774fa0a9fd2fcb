package forge

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for the GitHub forge.
	GitHubName = "github"

	requestTimeout = 10 * time.Second
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client   *github.Client
	hasToken bool
}

// NewGitHub creates a new GitHub forge instance. An empty token yields an
// unauthenticated client limited to public repositories.
func NewGitHub(token string) *GitHub {
	var client *github.Client
	if token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{
		client:   client,
		hasToken: token != "",
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// GetPullRequest fetches a single pull request by number.
func (g *GitHub) GetPullRequest(identity RemoteIdentity, number int) (*PullRequestInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	pr, resp, err := g.client.PullRequests.Get(ctx, identity.Owner, identity.Name, number)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, identity, number)
	}

	info := mapPullRequest(pr)
	return &info, nil
}

// ListOpenPullRequests lists open pull requests, optionally filtered by head branch.
func (g *GitHub) ListOpenPullRequests(identity RemoteIdentity, headFilter string) ([]PullRequestInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	opts := &github.PullRequestListOptions{
		State: "open",
		Head:  headFilter,
	}
	pulls, resp, err := g.client.PullRequests.List(ctx, identity.Owner, identity.Name, opts)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, identity, 0)
	}

	infos := make([]PullRequestInfo, 0, len(pulls))
	for _, pr := range pulls {
		infos = append(infos, mapPullRequest(pr))
	}
	return infos, nil
}

// mapPullRequest converts a GitHub API pull request into a PullRequestInfo snapshot.
func mapPullRequest(pr *github.PullRequest) PullRequestInfo {
	info := PullRequestInfo{
		Number:      pr.GetNumber(),
		Title:       pr.GetTitle(),
		Description: pr.GetBody(),
		Author:      pr.GetUser().GetLogin(),
		State:       pr.GetState(),
		BaseBranch:  pr.GetBase().GetRef(),
		HeadBranch:  pr.GetHead().GetRef(),
		URL:         pr.GetHTMLURL(),
	}
	if created := pr.GetCreatedAt(); !created.IsZero() {
		t := created.Time
		info.CreatedAt = &t
	}
	if updated := pr.GetUpdatedAt(); !updated.IsZero() {
		t := updated.Time
		info.UpdatedAt = &t
	}
	return info
}

// handleGitHubError maps GitHub API errors to forge errors.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, identity RemoteIdentity, number int) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return g.notFoundError(identity, number)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check the supplied token", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to query GitHub API: %w", err)
}

// notFoundError builds a 404 message whose advice depends on whether a
// token was supplied: without one, the repository may simply be private.
func (g *GitHub) notFoundError(identity RemoteIdentity, number int) error {
	subject := fmt.Sprintf("repository %q", identity.String())
	if number > 0 {
		subject = fmt.Sprintf("%s or pull request #%d", subject, number)
	}

	if !g.hasToken {
		return fmt.Errorf("%w: %s not found, or the repository is private; "+
			"provide a GitHub token with --token or the GITHUB_TOKEN environment variable",
			ErrNotFound, subject)
	}
	return fmt.Errorf("%w: %s not found; check that the repository and pull request exist",
		ErrNotFound, subject)
}
