package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamehub/post-feed/internal/datasources/mocks"
	"github.com/gamehub/post-feed/internal/domain"
)

func TestFeedPosts_NoFollowedGamesGivesEmptyFeed(t *testing.T) {
	followed := mocks.NewMockFollowedGameLister(t)
	followed.On("ListFollowedGameIDs", mock.Anything, int64(42)).Return([]int64{}, nil)

	// Neither preferences nor posts are consulted for an empty follow set.
	feed := NewFeedPosts(followed, mocks.NewMockFeedFilterGetter(t), mocks.NewMockFeedPostLister(t), &ListAssembler{})

	posts, err := feed.Execute(context.Background(), 42, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFeedPosts_ScopesToFollowedGamesAndPublicStatuses(t *testing.T) {
	followed := mocks.NewMockFollowedGameLister(t)
	followed.On("ListFollowedGameIDs", mock.Anything, int64(42)).Return([]int64{3, 7}, nil)

	filters := mocks.NewMockFeedFilterGetter(t)
	filters.On("GetFeedFilter", mock.Anything, int64(42)).Return(domain.FeedFilter{}, nil)

	lister := mocks.NewMockFeedPostLister(t)
	lister.On("ListFeedPosts",
		mock.Anything,
		mock.MatchedBy(func(c domain.Criteria) bool {
			fields := c.Fields()
			if len(fields) != 2 {
				return false
			}
			return fields[0].Field == "game_id" &&
				assert.ObjectsAreEqual(fields[0].Values, []any{int64(3), int64(7)}) &&
				fields[1].Field == "status" &&
				assert.ObjectsAreEqual(fields[1].Values, []any{"published", "archived"}) &&
				len(c.ExcludedCategories()) == 0
		}),
		2, 20,
	).Return([]domain.Post{{ID: 11, CreatedAt: time.Now()}}, nil)

	feed := NewFeedPosts(followed, filters, lister, expectAssemblyForRows(t))

	posts, err := feed.Execute(context.Background(), 42, 2, 20)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestFeedPosts_ExcludedTypesInvertToAllowedSet(t *testing.T) {
	followed := mocks.NewMockFollowedGameLister(t)
	followed.On("ListFollowedGameIDs", mock.Anything, int64(42)).Return([]int64{3}, nil)

	filters := mocks.NewMockFeedFilterGetter(t)
	filters.On("GetFeedFilter", mock.Anything, int64(42)).Return(domain.FeedFilter{
		ExcludedTypes: []domain.PostType{domain.PostTypeNews, domain.PostTypeVideo},
	}, nil)

	lister := mocks.NewMockFeedPostLister(t)
	lister.On("ListFeedPosts",
		mock.Anything,
		mock.MatchedBy(func(c domain.Criteria) bool {
			fields := c.Fields()
			if len(fields) != 3 {
				return false
			}
			return fields[2].Field == "type" &&
				assert.ObjectsAreEqual(fields[2].Values, []any{"article", "guide"})
		}),
		1, 20,
	).Return([]domain.Post{}, nil)

	feed := NewFeedPosts(followed, filters, lister, expectAssemblyForRows(t))

	posts, err := feed.Execute(context.Background(), 42, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFeedPosts_CategoryPreferenceExcludesListedCategories(t *testing.T) {
	followed := mocks.NewMockFollowedGameLister(t)
	followed.On("ListFollowedGameIDs", mock.Anything, int64(42)).Return([]int64{3}, nil)

	filters := mocks.NewMockFeedFilterGetter(t)
	filters.On("GetFeedFilter", mock.Anything, int64(42)).Return(domain.FeedFilter{
		IncludedCategoryIDs: []int64{5, 6},
	}, nil)

	lister := mocks.NewMockFeedPostLister(t)
	lister.On("ListFeedPosts",
		mock.Anything,
		mock.MatchedBy(func(c domain.Criteria) bool {
			return assert.ObjectsAreEqual(c.ExcludedCategories(), []int64{5, 6})
		}),
		1, 20,
	).Return([]domain.Post{}, nil)

	feed := NewFeedPosts(followed, filters, lister, expectAssemblyForRows(t))

	_, err := feed.Execute(context.Background(), 42, 1, 20)
	require.NoError(t, err)
}

func TestFeedPosts_FollowLookupErrorPropagates(t *testing.T) {
	followed := mocks.NewMockFollowedGameLister(t)
	followed.On("ListFollowedGameIDs", mock.Anything, int64(42)).
		Return(nil, errors.New("follows unavailable"))

	feed := NewFeedPosts(followed, mocks.NewMockFeedFilterGetter(t), mocks.NewMockFeedPostLister(t), &ListAssembler{})

	_, err := feed.Execute(context.Background(), 42, 1, 20)
	assert.ErrorContains(t, err, "follows unavailable")
}

// expectAssemblyForRows builds an assembler whose loader tolerates any row
// set, for tests that only care about the criteria reaching the store.
func expectAssemblyForRows(t *testing.T) *ListAssembler {
	loader := mocks.NewMockRelationLoader(t)
	loader.On("LoadPostRelations", relationLoadArgs()...).Return(nil).Maybe()
	loader.On("LoadGameLinks", mock.Anything, mock.Anything).Return(nil).Maybe()
	loader.On("LoadUserLinks", mock.Anything, mock.Anything).Return(nil).Maybe()
	return &ListAssembler{Fetcher: mocks.NewMockPostFetcher(t), Loader: loader}
}
