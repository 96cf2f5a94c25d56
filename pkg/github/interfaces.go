package github

import "context"

// APIClient defines the interface for the GitHub API operations the sync run
// depends on. Pagination is exposed page-by-page so callers control the
// continuation decision.
type APIClient interface {
	// ListRepositories returns one page of repositories for the owner along
	// with the next page number, or 0 when no further page exists.
	ListRepositories(ctx context.Context, owner Owner, page int) ([]Repository, int, error)

	// ListTopics returns the topic names attached to one repository.
	ListTopics(ctx context.Context, owner, repo string) ([]string, error)

	// GetContent fetches the current state of a file in a repository. A nil
	// result with a nil error means the file does not exist remotely.
	GetContent(ctx context.Context, owner, repo, path string) (*RemoteFile, error)

	// PutContent creates or updates a file. The write is a create when
	// FileWrite.SHA is empty and an update otherwise.
	PutContent(ctx context.Context, owner, repo, path string, write FileWrite) error
}
