package workflows

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ChaoticTrials/action-sync-workflows/pkg/github"
)

// writeWorkflowDir creates a temporary local workflow directory with the
// given files.
func writeWorkflowDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func newTestSyncer(client github.APIClient, dir string, opts ...func(*Options)) *Syncer {
	options := Options{
		Directory: dir,
		Source:    Source{Repository: "acme/workflow-source", SHA: "cafe1234"},
	}
	for _, opt := range opts {
		opt(&options)
	}
	return NewSyncer(client, github.Owner{Organization: "acme"}, options, nil)
}

func TestSyncer_Sync_CreatesMissingFile(t *testing.T) {
	dir := writeWorkflowDir(t, map[string]string{"ci.yml": "name: ci\n"})
	client := &MockAPIClient{}
	syncer := newTestSyncer(client, dir)

	client.On("GetContent", mock.Anything, "acme", "service-a", ".github/workflows/ci.yml").Return(nil, nil).Once()
	client.On("PutContent", mock.Anything, "acme", "service-a", ".github/workflows/ci.yml", mock.MatchedBy(func(write github.FileWrite) bool {
		return write.SHA == "" &&
			string(write.Content) == "name: ci\n" &&
			strings.HasPrefix(write.Message, "Create ci.yml.\n\nSynced from https://github.com/acme/workflow-source/blob/cafe1234/") &&
			strings.HasSuffix(write.Message, "/ci.yml")
	})).Return(nil).Once()

	err := syncer.Sync(context.Background(), "service-a")

	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestSyncer_Sync_SkipsIdenticalContent(t *testing.T) {
	dir := writeWorkflowDir(t, map[string]string{"ci.yml": "name: ci\n"})
	client := &MockAPIClient{}
	syncer := newTestSyncer(client, dir)

	client.On("GetContent", mock.Anything, "acme", "service-a", ".github/workflows/ci.yml").
		Return(&github.RemoteFile{Content: []byte("name: ci\n"), SHA: "abc123"}, nil).Once()

	err := syncer.Sync(context.Background(), "service-a")

	assert.NoError(t, err)
	client.AssertNotCalled(t, "PutContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncer_Sync_UpdatesDifferingContentWithSHA(t *testing.T) {
	dir := writeWorkflowDir(t, map[string]string{"ci.yml": "name: ci v2\n"})
	client := &MockAPIClient{}
	syncer := newTestSyncer(client, dir, func(o *Options) { o.Prefix = "[Sync]" })

	client.On("GetContent", mock.Anything, "acme", "service-a", ".github/workflows/ci.yml").
		Return(&github.RemoteFile{Content: []byte("name: ci v1\n"), SHA: "abc123"}, nil).Once()
	client.On("PutContent", mock.Anything, "acme", "service-a", ".github/workflows/ci.yml", mock.MatchedBy(func(write github.FileWrite) bool {
		return write.SHA == "abc123" &&
			string(write.Content) == "name: ci v2\n" &&
			strings.HasPrefix(write.Message, "[Sync] Update ci.yml.\n\nSynced from ")
	})).Return(nil).Once()

	err := syncer.Sync(context.Background(), "service-a")

	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestSyncer_Sync_ProbeFailureIsFatalForFile(t *testing.T) {
	dir := writeWorkflowDir(t, map[string]string{"ci.yml": "name: ci\n"})
	client := &MockAPIClient{}
	syncer := newTestSyncer(client, dir)
	fetchErr := github.NewFetchError("content acme/service-a:.github/workflows/ci.yml", assert.AnError)

	client.On("GetContent", mock.Anything, "acme", "service-a", ".github/workflows/ci.yml").Return(nil, fetchErr).Once()

	err := syncer.Sync(context.Background(), "service-a")

	assert.ErrorIs(t, err, fetchErr)
	client.AssertNotCalled(t, "PutContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncer_Sync_WriteFailureAbortsRemainingFiles(t *testing.T) {
	// os.ReadDir yields a.yml before b.yml, so the failing write on a.yml
	// must prevent any call for b.yml.
	dir := writeWorkflowDir(t, map[string]string{
		"a.yml": "a\n",
		"b.yml": "b\n",
	})
	client := &MockAPIClient{}
	syncer := newTestSyncer(client, dir)
	writeErr := github.NewWriteError("content acme/service-a:.github/workflows/a.yml", assert.AnError)

	client.On("GetContent", mock.Anything, "acme", "service-a", ".github/workflows/a.yml").Return(nil, nil).Once()
	client.On("PutContent", mock.Anything, "acme", "service-a", ".github/workflows/a.yml", mock.Anything).Return(writeErr).Once()

	err := syncer.Sync(context.Background(), "service-a")

	assert.ErrorIs(t, err, writeErr)
	assert.True(t, github.IsErrorType(err, github.ErrorTypeWrite))
	client.AssertNotCalled(t, "GetContent", mock.Anything, "acme", "service-a", ".github/workflows/b.yml")
	client.AssertExpectations(t)
}

func TestSyncer_Sync_IgnoresSubdirectories(t *testing.T) {
	dir := writeWorkflowDir(t, map[string]string{"ci.yml": "name: ci\n"})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	client := &MockAPIClient{}
	syncer := newTestSyncer(client, dir)

	client.On("GetContent", mock.Anything, "acme", "service-a", ".github/workflows/ci.yml").
		Return(&github.RemoteFile{Content: []byte("name: ci\n"), SHA: "abc123"}, nil).Once()

	err := syncer.Sync(context.Background(), "service-a")

	assert.NoError(t, err)
	client.AssertNotCalled(t, "GetContent", mock.Anything, "acme", "service-a", ".github/workflows/nested")
	client.AssertExpectations(t)
}

func TestSyncer_Sync_DryRunIssuesNoWrites(t *testing.T) {
	dir := writeWorkflowDir(t, map[string]string{"ci.yml": "name: ci v2\n"})
	client := &MockAPIClient{}
	syncer := newTestSyncer(client, dir, func(o *Options) { o.DryRun = true })

	client.On("GetContent", mock.Anything, "acme", "service-a", ".github/workflows/ci.yml").
		Return(&github.RemoteFile{Content: []byte("name: ci v1\n"), SHA: "abc123"}, nil).Once()

	err := syncer.Sync(context.Background(), "service-a")

	assert.NoError(t, err)
	client.AssertNotCalled(t, "PutContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncer_Sync_MissingDirectory(t *testing.T) {
	client := &MockAPIClient{}
	syncer := newTestSyncer(client, filepath.Join(t.TempDir(), "does-not-exist"))

	err := syncer.Sync(context.Background(), "service-a")

	assert.Error(t, err)
	client.AssertNotCalled(t, "GetContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
