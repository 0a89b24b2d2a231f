package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamehub/post-feed/internal/datasources"
	"github.com/gamehub/post-feed/internal/datasources/mocks"
	"github.com/gamehub/post-feed/internal/domain"
)

var listNow = time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

const listWindow = 30 * 24 * time.Hour

func relationLoadArgs() []interface{} {
	args := []interface{}{mock.Anything, mock.Anything}
	for range domain.DisplayRelations {
		args = append(args, mock.Anything)
	}
	return args
}

func expectAssembly(t *testing.T, ids []int64, posts []domain.Post) *ListAssembler {
	fetcher := mocks.NewMockPostFetcher(t)
	loader := mocks.NewMockRelationLoader(t)

	fetcher.On("FetchPostsByID", mock.Anything, ids).Return(posts, nil)
	if len(posts) > 0 {
		loader.On("LoadPostRelations", relationLoadArgs()...).Return(nil)
		loader.On("LoadGameLinks", mock.Anything, mock.Anything).Return(nil)
		loader.On("LoadUserLinks", mock.Anything, mock.Anything).Return(nil)
	}

	return &ListAssembler{Fetcher: fetcher, Loader: loader}
}

func noWindow(c domain.Criteria) bool {
	_, ok := c.CreatedAfter()
	return !ok
}

func windowEndingAt(bound time.Time) func(domain.Criteria) bool {
	return func(c domain.Criteria) bool {
		after, ok := c.CreatedAfter()
		return ok && after.Equal(bound)
	}
}

func TestListPosts_CreationDateUsesStoreOrdering(t *testing.T) {
	candidates := mocks.NewMockCandidateLister(t)
	candidates.On("ListCandidatePosts",
		mock.Anything,
		mock.MatchedBy(noWindow),
		datasources.CandidateQuery{
			Ordering: datasources.OrderByCreatedAtDesc,
			Limit:    2,
			Offset:   1,
		},
	).Return([]domain.PostCandidate{{ID: 4}, {ID: 3}}, nil)

	lp := NewListPosts(candidates, expectAssembly(t, []int64{4, 3}, []domain.Post{{ID: 4}, {ID: 3}}), listWindow)
	lp.Now = func() time.Time { return listNow }

	posts, err := lp.Execute(context.Background(), ListPostsRequest{
		Limit:   2,
		Offset:  1,
		SortKey: "creation_date",
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{4, 3}, []int64{posts[0].ID, posts[1].ID})
}

func TestListPosts_RatingUsesStoreOrdering(t *testing.T) {
	candidates := mocks.NewMockCandidateLister(t)
	candidates.On("ListCandidatePosts",
		mock.Anything,
		mock.MatchedBy(noWindow),
		datasources.CandidateQuery{
			Ordering: datasources.OrderBySortValueDesc,
			Limit:    10,
		},
	).Return([]domain.PostCandidate{{ID: 1, SortValue: 10}, {ID: 2, SortValue: 5}}, nil)

	lp := NewListPosts(candidates, expectAssembly(t, []int64{1, 2}, []domain.Post{{ID: 1}, {ID: 2}}), listWindow)
	lp.Now = func() time.Time { return listNow }

	posts, err := lp.Execute(context.Background(), ListPostsRequest{
		Limit:   10,
		SortKey: "rating",
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, []int64{posts[0].ID, posts[1].ID})
}

func TestListPosts_UnrecognizedSortKeyBehavesLikeCreationDate(t *testing.T) {
	candidates := mocks.NewMockCandidateLister(t)
	candidates.On("ListCandidatePosts",
		mock.Anything,
		mock.MatchedBy(noWindow),
		datasources.CandidateQuery{
			Ordering: datasources.OrderByCreatedAtDesc,
			Limit:    5,
		},
	).Return([]domain.PostCandidate{{ID: 9}}, nil)

	lp := NewListPosts(candidates, expectAssembly(t, []int64{9}, []domain.Post{{ID: 9}}), listWindow)
	lp.Now = func() time.Time { return listNow }

	_, err := lp.Execute(context.Background(), ListPostsRequest{
		Limit:   5,
		SortKey: "definitely_not_a_sort_key",
	})
	require.NoError(t, err)
}

func TestListPosts_PopularityRanksFullCandidateSet(t *testing.T) {
	candidates := mocks.NewMockCandidateLister(t)

	// The store query carries no limit or offset; ranking needs every
	// candidate, and slicing happens after scoring.
	candidates.On("ListCandidatePosts",
		mock.Anything,
		mock.MatchedBy(windowEndingAt(listNow.Add(-listWindow))),
		datasources.CandidateQuery{IncludeCreatedAt: true},
	).Return([]domain.PostCandidate{
		{ID: 1, SortValue: 10, CreatedAt: listNow.Add(-48 * time.Hour)},
		{ID: 2, SortValue: 100, CreatedAt: listNow.Add(-6 * time.Hour)},
		{ID: 3, SortValue: 100, CreatedAt: listNow.Add(-48 * time.Hour)},
	}, nil)

	lp := NewListPosts(candidates, expectAssembly(t, []int64{2, 3}, []domain.Post{{ID: 2}, {ID: 3}}), listWindow)
	lp.Now = func() time.Time { return listNow }

	posts, err := lp.Execute(context.Background(), ListPostsRequest{
		Limit:   2,
		SortKey: "popularity",
	})
	require.NoError(t, err)

	// Equal ratings: the six-hour-old post outranks the two-day-old one.
	assert.Equal(t, []int64{2, 3}, []int64{posts[0].ID, posts[1].ID})
}

func TestListPosts_ExplicitPeriodInjectsWindow(t *testing.T) {
	candidates := mocks.NewMockCandidateLister(t)
	candidates.On("ListCandidatePosts",
		mock.Anything,
		mock.MatchedBy(windowEndingAt(listNow.Add(-7*24*time.Hour))),
		mock.Anything,
	).Return([]domain.PostCandidate{}, nil)

	lp := NewListPosts(candidates, expectAssembly(t, []int64{}, []domain.Post{}), listWindow)
	lp.Now = func() time.Time { return listNow }

	posts, err := lp.Execute(context.Background(), ListPostsRequest{
		SortKey: "rating_for_week",
	})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestListPosts_StoreErrorPropagates(t *testing.T) {
	candidates := mocks.NewMockCandidateLister(t)
	candidates.On("ListCandidatePosts", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database gone"))

	lp := NewListPosts(candidates, &ListAssembler{}, listWindow)
	lp.Now = func() time.Time { return listNow }

	_, err := lp.Execute(context.Background(), ListPostsRequest{SortKey: "creation_date"})
	assert.ErrorContains(t, err, "database gone")
}
