package workflows

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ChaoticTrials/action-sync-workflows/pkg/github"
)

// MockAPIClient is a mock implementation of github.APIClient for testing
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) ListRepositories(ctx context.Context, owner github.Owner, page int) ([]github.Repository, int, error) {
	args := m.Called(ctx, owner, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]github.Repository), args.Int(1), args.Error(2)
}

func (m *MockAPIClient) ListTopics(ctx context.Context, owner, repo string) ([]string, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAPIClient) GetContent(ctx context.Context, owner, repo, path string) (*github.RemoteFile, error) {
	args := m.Called(ctx, owner, repo, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.RemoteFile), args.Error(1)
}

func (m *MockAPIClient) PutContent(ctx context.Context, owner, repo, path string, write github.FileWrite) error {
	args := m.Called(ctx, owner, repo, path, write)
	return args.Error(0)
}
