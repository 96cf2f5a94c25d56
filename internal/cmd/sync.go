package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ChaoticTrials/action-sync-workflows/pkg/config"
	"github.com/ChaoticTrials/action-sync-workflows/pkg/github"
	"github.com/ChaoticTrials/action-sync-workflows/pkg/workflows"
)

var (
	syncConfigFile string
	syncUser       string
	syncOrg        string
	syncTopic      string
	syncDirectory  string
	syncPrefix     string
	syncDryRun     bool
	syncLogLevel   string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Discover topic-tagged repositories and sync workflow files into them",
	Long: `Discover every non-archived repository of the configured owner that carries
the configured topic, then reconcile the local workflow directory into each
one. Files are created when absent, updated when their content differs and
skipped when identical, so repository history stays free of no-op commits.

Configuration is layered: an optional YAML config file provides defaults,
GitHub Actions inputs (INPUT_USER, INPUT_ORG, INPUT_TOPIC, INPUT_DIRECTORY,
INPUT_PREFIX, INPUT_TOKEN) override the file, and flags override both.

Examples:
  # Sync workflows to all repositories of an organization tagged "managed-ci"
  action-sync-workflows sync --org my-org --topic managed-ci --directory workflows

  # Same for a user account, with a commit message prefix
  action-sync-workflows sync --user my-user --topic managed-ci --directory workflows --prefix "[Sync]"

  # Preview the decisions without writing anything
  action-sync-workflows sync --org my-org --topic managed-ci --directory workflows --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncConfigFile, "config", "", "Path to an optional YAML config file with run defaults")
	syncCmd.Flags().StringVar(&syncUser, "user", "", "User whose repositories are synced (mutually exclusive with --org)")
	syncCmd.Flags().StringVar(&syncOrg, "org", "", "Organization whose repositories are synced (mutually exclusive with --user)")
	syncCmd.Flags().StringVar(&syncTopic, "topic", "", "Topic a repository must carry to be synced")
	syncCmd.Flags().StringVar(&syncDirectory, "directory", "", "Local directory holding the workflow files")
	syncCmd.Flags().StringVar(&syncPrefix, "prefix", "", "Optional prefix prepended to every commit message")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Log create/update/skip decisions without writing")
	syncCmd.Flags().StringVar(&syncLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runSync(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return reportFailure(err)
	}

	// Owner exclusivity must fail before any remote call is made.
	owner := github.Owner{User: cfg.Owner.User, Organization: cfg.Owner.Organization}
	if err := owner.Validate(); err != nil {
		return reportFailure(err)
	}

	authManager := github.NewAuthManager()
	token, err := authManager.GetToken(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n\n", err)
		fmt.Fprintf(os.Stderr, "%s\n", github.GetAuthInstructions())
		return reportFailure(err)
	}

	logger, err := newLogger(syncLogLevel)
	if err != nil {
		return reportFailure(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	client := github.NewClient(token)

	discoverer := workflows.NewDiscoverer(client, logger)
	repos, err := discoverer.Discover(ctx, owner, cfg.Topic)
	if err != nil {
		return reportFailure(err)
	}

	fmt.Printf("✓ Discovered %d repositories of %s with topic %q\n", len(repos), owner.Name(), cfg.Topic)

	options := workflows.Options{
		Directory: cfg.Directory,
		Prefix:    cfg.Prefix,
		DryRun:    syncDryRun,
		Source: workflows.Source{
			Repository: os.Getenv("GITHUB_REPOSITORY"),
			SHA:        os.Getenv("GITHUB_SHA"),
		},
	}
	syncer := workflows.NewSyncer(client, owner, options, logger)

	for _, repo := range repos {
		if err := syncer.Sync(ctx, repo); err != nil {
			return reportFailure(fmt.Errorf("sync failed for %s/%s: %w", owner.Name(), repo, err))
		}
		fmt.Printf("✓ Synced %s/%s\n", owner.Name(), repo)
	}

	return nil
}

// resolveConfig layers the optional config file, the environment and the
// command-line flags, highest precedence last.
func resolveConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if syncConfigFile != "" {
		loaded, err := config.LoadConfigFromPath(syncConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyEnvironment()

	if syncUser != "" {
		cfg.Owner.User = syncUser
	}
	if syncOrg != "" {
		cfg.Owner.Organization = syncOrg
	}
	if syncTopic != "" {
		cfg.Topic = syncTopic
	}
	if syncDirectory != "" {
		cfg.Directory = syncDirectory
	}
	if syncPrefix != "" {
		cfg.Prefix = syncPrefix
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the run logger honoring the requested level.
func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unsupported log level %q: %w", level, err)
	}

	configuration := zap.NewProductionConfig()
	configuration.Level = zap.NewAtomicLevelAt(parsed)
	return configuration.Build()
}

// reportFailure marks the run failed in the Actions job log before the error
// propagates to Execute. Files already synced are not rolled back.
func reportFailure(err error) error {
	fmt.Printf("::error::%s\n", err)
	return err
}
