package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// listPageSize is the fixed page size for repository listing requests.
const listPageSize = 100

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client with the provided token
func NewClient(token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		client: github.NewClient(tc),
	}
}

// ListRepositories returns one page of repositories owned by the given user
// or organization. The next page number comes from the Link header of the
// response; 0 means the listing is exhausted.
func (c *Client) ListRepositories(ctx context.Context, owner Owner, page int) ([]Repository, int, error) {
	var (
		repos []*github.Repository
		resp  *github.Response
		err   error
	)

	if owner.IsOrganization() {
		opts := &github.RepositoryListByOrgOptions{
			ListOptions: github.ListOptions{Page: page, PerPage: listPageSize},
		}
		repos, resp, err = c.client.Repositories.ListByOrg(ctx, owner.Organization, opts)
	} else {
		opts := &github.RepositoryListByUserOptions{
			ListOptions: github.ListOptions{Page: page, PerPage: listPageSize},
		}
		repos, resp, err = c.client.Repositories.ListByUser(ctx, owner.User, opts)
	}
	if err != nil {
		return nil, 0, NewFetchError(fmt.Sprintf("repositories for %s", owner.Name()), err)
	}

	result := make([]Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, Repository{
			Name:     repo.GetName(),
			Archived: repo.GetArchived(),
		})
	}

	return result, resp.NextPage, nil
}

// ListTopics returns the topics attached to a repository
func (c *Client) ListTopics(ctx context.Context, owner, repo string) ([]string, error) {
	topics, _, err := c.client.Repositories.ListAllTopics(ctx, owner, repo)
	if err != nil {
		return nil, NewFetchError(fmt.Sprintf("topics for %s/%s", owner, repo), err)
	}
	return topics, nil
}

// GetContent fetches the decoded content and content identifier of a file in
// a repository. A 404 from the API maps to (nil, nil); any other failure is a
// fetch error.
func (c *Client) GetContent(ctx context.Context, owner, repo, path string) (*RemoteFile, error) {
	resource := fmt.Sprintf("content %s/%s:%s", owner, repo, path)

	file, _, resp, err := c.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, NewFetchError(resource, err)
	}
	if file == nil {
		return nil, NewFetchError(resource, fmt.Errorf("path is a directory, expected a file"))
	}

	decoded, err := file.GetContent()
	if err != nil {
		return nil, NewFetchError(resource, err)
	}

	return &RemoteFile{
		Content: []byte(decoded),
		SHA:     file.GetSHA(),
	}, nil
}

// PutContent creates or updates a file in a repository. The content API
// requires base64-encoded payloads; the library encodes the raw content on
// the wire. Updates must carry the remote file's current SHA to satisfy the
// optimistic-concurrency check.
func (c *Client) PutContent(ctx context.Context, owner, repo, path string, write FileWrite) error {
	resource := fmt.Sprintf("content %s/%s:%s", owner, repo, path)

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(write.Message),
		Content: write.Content,
	}

	if write.SHA != "" {
		opts.SHA = github.String(write.SHA)
		_, _, err := c.client.Repositories.UpdateFile(ctx, owner, repo, path, opts)
		if err != nil {
			return NewWriteError(resource, err)
		}
		return nil
	}

	_, _, err := c.client.Repositories.CreateFile(ctx, owner, repo, path, opts)
	if err != nil {
		return NewWriteError(resource, err)
	}
	return nil
}
