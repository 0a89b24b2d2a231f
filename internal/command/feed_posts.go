package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/gamehub/post-feed/internal/datasources"
	"github.com/gamehub/post-feed/internal/domain"
)

// FeedPosts assembles a user's personalized feed: public posts of the
// games they follow, newest first, narrowed by their feed preferences.
type FeedPosts struct {
	Followed  datasources.FollowedGameLister
	Filters   datasources.FeedFilterGetter
	Posts     datasources.FeedPostLister
	Assembler *ListAssembler
}

func NewFeedPosts(
	followed datasources.FollowedGameLister,
	filters datasources.FeedFilterGetter,
	posts datasources.FeedPostLister,
	assembler *ListAssembler,
) *FeedPosts {
	return &FeedPosts{
		Followed:  followed,
		Filters:   filters,
		Posts:     posts,
		Assembler: assembler,
	}
}

func (c *FeedPosts) Execute(ctx context.Context, userID int64, page, pageSize int) ([]domain.Post, error) {
	gameIDs, err := c.Followed.ListFollowedGameIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing followed games: %w", err)
	}
	if len(gameIDs) == 0 {
		return []domain.Post{}, nil
	}

	filter, err := c.Filters.GetFeedFilter(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting feed filter: %w", err)
	}

	criteria := domain.Criteria{}.
		WithFieldIn("game_id", domain.Int64Values(gameIDs)...).
		WithFieldIn("status", domain.StatusValues(domain.PublicStatuses())...)

	if len(filter.ExcludedTypes) > 0 {
		allowed := make([]domain.PostType, 0, len(domain.PostTypes))
		for _, t := range domain.PostTypes {
			if !slices.Contains(filter.ExcludedTypes, t) {
				allowed = append(allowed, t)
			}
		}
		criteria = criteria.WithFieldIn("type", domain.TypeValues(allowed)...)
	}

	if len(filter.IncludedCategoryIDs) > 0 {
		// Long-standing behavior: posts in the listed categories are
		// dropped from the feed, not kept.
		criteria = criteria.ExcludingCategories(filter.IncludedCategoryIDs...)
	}

	posts, err := c.Posts.ListFeedPosts(ctx, criteria, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("listing feed posts: %w", err)
	}

	return c.Assembler.Assemble(ctx, posts)
}
