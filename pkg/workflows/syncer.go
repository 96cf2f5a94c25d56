package workflows

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ChaoticTrials/action-sync-workflows/pkg/github"
)

// remoteWorkflowDir is the fixed workflow directory in every target
// repository.
const remoteWorkflowDir = ".github/workflows"

// Outcome classifies the result of reconciling one workflow file
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeSkipped Outcome = "skipped"
)

// Source identifies the repository and commit the local workflow files come
// from. It is used only to build the permalink embedded in commit messages.
type Source struct {
	Repository string
	SHA        string
}

// Options configures a Syncer for one run
type Options struct {
	// Directory is the local path holding the workflow files, enumerated
	// non-recursively.
	Directory string
	// Prefix is prepended (trimmed) to every commit message.
	Prefix string
	// Source locates the local files for commit-message permalinks.
	Source Source
	// DryRun logs the decisions without issuing any write.
	DryRun bool
}

// Syncer reconciles local workflow files into target repositories
type Syncer struct {
	client  github.APIClient
	owner   github.Owner
	options Options
	logger  *zap.Logger
}

// NewSyncer creates a new syncer instance
func NewSyncer(client github.APIClient, owner github.Owner, options Options, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Syncer{
		client:  client,
		owner:   owner,
		options: options,
		logger:  logger,
	}
}

// Sync reconciles every file in the configured directory against the target
// repository, in directory-listing order. The first failed probe or write
// aborts the remaining files of this repository; files already written stay
// written.
func (s *Syncer) Sync(ctx context.Context, repo string) error {
	entries, err := os.ReadDir(s.options.Directory)
	if err != nil {
		return fmt.Errorf("failed to read workflow directory %s: %w", s.options.Directory, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := s.syncFile(ctx, repo, entry.Name()); err != nil {
			return err
		}
	}

	return nil
}

// syncFile reconciles a single workflow file: probe the remote path, then
// create, update or skip depending on what is there.
func (s *Syncer) syncFile(ctx context.Context, repo, name string) error {
	content, err := os.ReadFile(filepath.Join(s.options.Directory, name))
	if err != nil {
		return fmt.Errorf("failed to read workflow file %s: %w", name, err)
	}

	remotePath := path.Join(remoteWorkflowDir, name)
	remote, err := s.client.GetContent(ctx, s.owner.Name(), repo, remotePath)
	if err != nil {
		s.logger.Error("content probe failed",
			zap.String("repository", repo),
			zap.String("file", name),
			zap.Error(err))
		return err
	}

	permalink := s.permalink(name)

	switch {
	case remote == nil:
		write := github.FileWrite{
			Message: commitMessage(s.options.Prefix, "Create", name, permalink),
			Content: content,
		}
		if err := s.write(ctx, repo, remotePath, write); err != nil {
			return err
		}
		s.logOutcome(repo, name, OutcomeCreated)

	case bytes.Equal(remote.Content, content):
		s.logOutcome(repo, name, OutcomeSkipped)

	default:
		write := github.FileWrite{
			Message: commitMessage(s.options.Prefix, "Update", name, permalink),
			Content: content,
			SHA:     remote.SHA,
		}
		if err := s.write(ctx, repo, remotePath, write); err != nil {
			return err
		}
		s.logOutcome(repo, name, OutcomeUpdated)
	}

	return nil
}

func (s *Syncer) write(ctx context.Context, repo, remotePath string, write github.FileWrite) error {
	if s.options.DryRun {
		s.logger.Info("dry-run: skipping write",
			zap.String("repository", repo),
			zap.String("path", remotePath))
		return nil
	}

	if err := s.client.PutContent(ctx, s.owner.Name(), repo, remotePath, write); err != nil {
		s.logger.Error("workflow write failed",
			zap.String("repository", repo),
			zap.String("path", remotePath),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *Syncer) logOutcome(repo, name string, outcome Outcome) {
	s.logger.Info("workflow file reconciled",
		zap.String("repository", repo),
		zap.String("file", name),
		zap.String("outcome", string(outcome)))
}
