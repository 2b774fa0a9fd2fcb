// Package forge provides access to hosted code-review services.
package forge

//go:generate go run go.uber.org/mock/mockgen@latest -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge.
	Name() string

	// GetPullRequest fetches a single pull request by number.
	GetPullRequest(identity RemoteIdentity, number int) (*PullRequestInfo, error)

	// ListOpenPullRequests lists open pull requests. The head filter may be
	// "owner:branch" or "branch"; an empty filter lists all open pull
	// requests (first page, service ordering).
	ListOpenPullRequests(identity RemoteIdentity, headFilter string) ([]PullRequestInfo, error)
}
