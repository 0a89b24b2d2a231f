package datasources

import (
	"context"

	"github.com/gamehub/post-feed/internal/domain"
)

// PostRepository is the full store capability set the engine needs.
type PostRepository interface {
	CandidateLister
	PostCounter
	FeedPostLister
	PostFetcher
	RelationLoader
	FollowedGameLister
	FeedFilterGetter
}

// CandidateOrdering is a store-side ordering of the candidate set.
type CandidateOrdering int

const (
	// OrderNone leaves the candidate set in store order; used by decaying
	// strategies, which rank client-side.
	OrderNone CandidateOrdering = iota
	// OrderBySortValueDesc orders by raw score descending, creation time
	// descending as tie-break.
	OrderBySortValueDesc
	// OrderByCreatedAtDesc orders by creation time descending.
	OrderByCreatedAtDesc
)

// CandidateQuery shapes a candidate listing on the store side. Limit zero
// means no limit; decaying strategies must leave Limit and Offset unset so
// the full candidate set is retrieved for ranking.
type CandidateQuery struct {
	IncludeCreatedAt bool
	Ordering         CandidateOrdering
	Limit            int
	Offset           int
}

type CandidateLister interface {
	ListCandidatePosts(ctx context.Context, criteria domain.Criteria, query CandidateQuery) ([]domain.PostCandidate, error)
}

type PostCounter interface {
	CountMatchingPosts(ctx context.Context, criteria domain.Criteria) (int64, error)
}

// FeedPostLister returns full post rows ordered by creation time
// descending. Page is 1-indexed.
type FeedPostLister interface {
	ListFeedPosts(ctx context.Context, criteria domain.Criteria, page, pageSize int) ([]domain.Post, error)
}

// PostFetcher fetches full posts by id, preserving the order of ids.
type PostFetcher interface {
	FetchPostsByID(ctx context.Context, ids []int64) ([]domain.Post, error)
}

// RelationLoader fills display relations on already-fetched entities,
// batched and de-duplicated by id. The engine never triggers loading as a
// side effect of reading a field.
type RelationLoader interface {
	LoadPostRelations(ctx context.Context, posts []domain.Post, relations ...domain.Relation) error
	LoadGameLinks(ctx context.Context, games []*domain.Game) error
	LoadUserLinks(ctx context.Context, users []*domain.User) error
}

type FollowedGameLister interface {
	ListFollowedGameIDs(ctx context.Context, userID int64) ([]int64, error)
}

// FeedFilterGetter returns a user's feed preferences. A user without
// stored preferences gets the zero filter, not an error.
type FeedFilterGetter interface {
	GetFeedFilter(ctx context.Context, userID int64) (domain.FeedFilter, error)
}
