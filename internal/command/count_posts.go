package command

import (
	"context"
	"fmt"
	"time"

	"github.com/gamehub/post-feed/internal/datasources"
	"github.com/gamehub/post-feed/internal/domain"
)

// CountPosts counts posts matching criteria, with the same decay-window
// augmentation as the list path. The count is always store-computed; no
// ranking happens.
type CountPosts struct {
	Counter                 datasources.PostCounter
	DefaultPopularityWindow time.Duration
	Now                     func() time.Time
}

func NewCountPosts(counter datasources.PostCounter, defaultPopularityWindow time.Duration) *CountPosts {
	return &CountPosts{
		Counter:                 counter,
		DefaultPopularityWindow: defaultPopularityWindow,
		Now:                     time.Now,
	}
}

func (c *CountPosts) Execute(ctx context.Context, criteria domain.Criteria, sortKey string) (int64, error) {
	spec := domain.ResolveSortKey(sortKey, c.DefaultPopularityWindow)
	if spec.Window > 0 {
		criteria = criteria.WithCreatedAfter(c.Now().Add(-spec.Window))
	}

	count, err := c.Counter.CountMatchingPosts(ctx, criteria)
	if err != nil {
		return 0, fmt.Errorf("counting posts: %w", err)
	}
	return count, nil
}
