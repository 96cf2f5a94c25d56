package workflows

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/ChaoticTrials/action-sync-workflows/pkg/github"
)

// Discoverer enumerates the repositories a sync run targets
type Discoverer struct {
	client github.APIClient
	logger *zap.Logger
}

// NewDiscoverer creates a new discoverer instance
func NewDiscoverer(client github.APIClient, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{
		client: client,
		logger: logger,
	}
}

// Discover returns the names of all non-archived repositories owned by the
// given identity whose topics contain topic. Archived repositories are
// dropped before any topic lookup. The listing endpoint does not expose
// topics inline, so each remaining repository costs one extra call. Any
// failure aborts discovery with no partial result.
func (d *Discoverer) Discover(ctx context.Context, owner github.Owner, topic string) ([]string, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var matched []string
	for page := 1; page != 0; {
		repos, nextPage, err := d.client.ListRepositories(ctx, owner, page)
		if err != nil {
			d.logger.Error("repository listing failed",
				zap.String("owner", owner.Name()),
				zap.Int("page", page),
				zap.Error(err))
			return nil, err
		}

		for _, repo := range repos {
			if repo.Archived {
				continue
			}

			topics, err := d.client.ListTopics(ctx, owner.Name(), repo.Name)
			if err != nil {
				d.logger.Error("topic lookup failed",
					zap.String("owner", owner.Name()),
					zap.String("repository", repo.Name),
					zap.Error(err))
				return nil, err
			}

			if slices.Contains(topics, topic) {
				matched = append(matched, repo.Name)
			}
		}

		page = nextPage
	}

	return matched, nil
}
