package command

import (
	"context"
	"fmt"
	"time"

	"github.com/gamehub/post-feed/internal/datasources"
	"github.com/gamehub/post-feed/internal/domain"
)

type ListPostsRequest struct {
	Criteria domain.Criteria
	// Limit zero or less means no limit.
	Limit   int
	Offset  int
	SortKey string
}

// ListPosts assembles the general browsing list: it resolves the sort key,
// augments criteria with the decay window, collects and ranks the
// candidate set, and hydrates the resulting page of posts.
type ListPosts struct {
	Candidates              datasources.CandidateLister
	Assembler               *ListAssembler
	DefaultPopularityWindow time.Duration
	Now                     func() time.Time
}

func NewListPosts(
	candidates datasources.CandidateLister,
	assembler *ListAssembler,
	defaultPopularityWindow time.Duration,
) *ListPosts {
	return &ListPosts{
		Candidates:              candidates,
		Assembler:               assembler,
		DefaultPopularityWindow: defaultPopularityWindow,
		Now:                     time.Now,
	}
}

func (c *ListPosts) Execute(ctx context.Context, req ListPostsRequest) ([]domain.Post, error) {
	spec := domain.ResolveSortKey(req.SortKey, c.DefaultPopularityWindow)

	criteria := req.Criteria
	if spec.Window > 0 {
		criteria = criteria.WithCreatedAfter(c.Now().Add(-spec.Window))
	}

	ids, err := c.sortedPostIDs(ctx, criteria, spec, req.Limit, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("collecting sorted post ids: %w", err)
	}

	return c.Assembler.AssembleByID(ctx, ids)
}

func (c *ListPosts) sortedPostIDs(
	ctx context.Context,
	criteria domain.Criteria,
	spec domain.SortSpec,
	limit, offset int,
) ([]int64, error) {
	switch spec.Strategy {
	case domain.SortByRating:
		return c.storeOrderedIDs(ctx, criteria, datasources.CandidateQuery{
			Ordering: datasources.OrderBySortValueDesc,
			Limit:    limit,
			Offset:   offset,
		})

	case domain.SortByCreationDate:
		return c.storeOrderedIDs(ctx, criteria, datasources.CandidateQuery{
			Ordering: datasources.OrderByCreatedAtDesc,
			Limit:    limit,
			Offset:   offset,
		})

	case domain.SortByPopularity, domain.SortByMainPage:
		// The full candidate set is scored before slicing, so limit and
		// offset stay out of the store query. The decay window injected
		// above is what keeps the set bounded.
		candidates, err := c.Candidates.ListCandidatePosts(ctx, criteria, datasources.CandidateQuery{
			IncludeCreatedAt: true,
		})
		if err != nil {
			return nil, err
		}
		return domain.RankByPopularity(candidates, c.Now(), spec.Strategy.AgeRatio(), limit, offset), nil

	default:
		return nil, fmt.Errorf("unknown sort strategy: %d", spec.Strategy)
	}
}

func (c *ListPosts) storeOrderedIDs(
	ctx context.Context,
	criteria domain.Criteria,
	query datasources.CandidateQuery,
) ([]int64, error) {
	candidates, err := c.Candidates.ListCandidatePosts(ctx, criteria, query)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(candidates))
	for i, candidate := range candidates {
		ids[i] = candidate.ID
	}
	return ids, nil
}
