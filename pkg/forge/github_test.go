//go:build unit

package forge

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHub_Name(t *testing.T) {
	assert.Equal(t, "github", NewGitHub("").Name())
}

func TestNewGitHub(t *testing.T) {
	assert.NotNil(t, NewGitHub("").client)
	assert.False(t, NewGitHub("").hasToken)
	assert.True(t, NewGitHub("ghp_sometoken").hasToken)
}

func apiResponse(code int) *github.Response {
	return &github.Response{
		Response: &http.Response{
			StatusCode: code,
			Header:     http.Header{},
		},
	}
}

func TestGitHub_HandleGitHubError_NotFoundWithoutToken(t *testing.T) {
	g := NewGitHub("")
	identity := RemoteIdentity{Owner: "acme", Name: "widgets"}

	err := g.handleGitHubError(errors.New("404"), apiResponse(http.StatusNotFound), identity, 42)
	require.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "acme/widgets")
	assert.ErrorContains(t, err, "pull request #42")
	assert.ErrorContains(t, err, "provide a GitHub token")
}

func TestGitHub_HandleGitHubError_NotFoundWithToken(t *testing.T) {
	g := NewGitHub("ghp_sometoken")
	identity := RemoteIdentity{Owner: "acme", Name: "widgets"}

	err := g.handleGitHubError(errors.New("404"), apiResponse(http.StatusNotFound), identity, 42)
	require.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "check that the repository and pull request exist")
	assert.NotContains(t, err.Error(), "provide a GitHub token")
}

func TestGitHub_HandleGitHubError_NotFoundWithoutNumber(t *testing.T) {
	g := NewGitHub("")
	identity := RemoteIdentity{Owner: "acme", Name: "widgets"}

	err := g.handleGitHubError(errors.New("404"), apiResponse(http.StatusNotFound), identity, 0)
	require.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, err.Error(), "pull request #")
}

func TestGitHub_HandleGitHubError_Unauthorized(t *testing.T) {
	g := NewGitHub("bad-token")
	identity := RemoteIdentity{Owner: "acme", Name: "widgets"}

	err := g.handleGitHubError(errors.New("401"), apiResponse(http.StatusUnauthorized), identity, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGitHub_HandleGitHubError_RateLimited(t *testing.T) {
	g := NewGitHub("")
	identity := RemoteIdentity{Owner: "acme", Name: "widgets"}

	resp := apiResponse(http.StatusForbidden)
	resp.Header.Set("X-RateLimit-Remaining", "0")

	err := g.handleGitHubError(errors.New("403"), resp, identity, 1)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGitHub_HandleGitHubError_NoResponse(t *testing.T) {
	g := NewGitHub("")
	identity := RemoteIdentity{Owner: "acme", Name: "widgets"}

	err := g.handleGitHubError(errors.New("connection refused"), nil, identity, 1)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "connection refused")
}

func TestMapPullRequest(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)

	pr := &github.PullRequest{
		Number:    github.Int(42),
		Title:     github.String("Fix race condition"),
		Body:      github.String("Details here."),
		State:     github.String("open"),
		HTMLURL:   github.String("https://github.com/acme/widgets/pull/42"),
		User:      &github.User{Login: github.String("octocat")},
		Base:      &github.PullRequestBranch{Ref: github.String("main")},
		Head:      &github.PullRequestBranch{Ref: github.String("feature-x")},
		CreatedAt: &github.Timestamp{Time: created},
		UpdatedAt: &github.Timestamp{Time: updated},
	}

	info := mapPullRequest(pr)
	assert.Equal(t, 42, info.Number)
	assert.Equal(t, "Fix race condition", info.Title)
	assert.Equal(t, "Details here.", info.Description)
	assert.Equal(t, "octocat", info.Author)
	assert.Equal(t, "open", info.State)
	assert.Equal(t, "main", info.BaseBranch)
	assert.Equal(t, "feature-x", info.HeadBranch)
	assert.Equal(t, "https://github.com/acme/widgets/pull/42", info.URL)
	require.NotNil(t, info.CreatedAt)
	assert.Equal(t, created, *info.CreatedAt)
	require.NotNil(t, info.UpdatedAt)
	assert.Equal(t, updated, *info.UpdatedAt)
}

func TestMapPullRequest_MissingTimestamps(t *testing.T) {
	info := mapPullRequest(&github.PullRequest{Number: github.Int(7)})
	assert.Nil(t, info.CreatedAt)
	assert.Nil(t, info.UpdatedAt)
}
