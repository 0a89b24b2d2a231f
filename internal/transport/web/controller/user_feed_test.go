package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamehub/post-feed/internal/command"
	"github.com/gamehub/post-feed/internal/datasources/mocks"
	"github.com/gamehub/post-feed/internal/domain"
)

func feedCommandForUser(t *testing.T, userID int64, gameIDs []int64, posts []domain.Post, listErr error) *command.FeedPosts {
	followed := mocks.NewMockFollowedGameLister(t)
	followed.On("ListFollowedGameIDs", mock.Anything, userID).Return(gameIDs, nil)

	filters := mocks.NewMockFeedFilterGetter(t)
	filters.On("GetFeedFilter", mock.Anything, userID).Return(domain.FeedFilter{}, nil).Maybe()

	lister := mocks.NewMockFeedPostLister(t)
	lister.On("ListFeedPosts", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(posts, listErr).Maybe()

	loader := mocks.NewMockRelationLoader(t)
	loader.On("LoadPostRelations", relationLoadArgs()...).Return(nil).Maybe()
	loader.On("LoadGameLinks", mock.Anything, mock.Anything).Return(nil).Maybe()
	loader.On("LoadUserLinks", mock.Anything, mock.Anything).Return(nil).Maybe()

	return command.NewFeedPosts(followed, filters, lister, &command.ListAssembler{
		Fetcher: mocks.NewMockPostFetcher(t),
		Loader:  loader,
	})
}

func TestUserFeed_ServeHTTP(t *testing.T) {
	cases := []struct {
		name        string
		userIDVar   string
		queryString string
		gameIDs     []int64
		posts       []domain.Post
		listErr     error
		noCommand   bool
		wantStatus  int
		wantIDs     []int64
	}{
		{
			name:       "feed_with_posts",
			userIDVar:  "42",
			gameIDs:    []int64{3, 4},
			posts:      []domain.Post{{ID: 9}, {ID: 7}},
			wantStatus: http.StatusOK,
			wantIDs:    []int64{9, 7},
		},
		{
			name:       "no_followed_games",
			userIDVar:  "42",
			gameIDs:    []int64{},
			wantStatus: http.StatusOK,
			wantIDs:    []int64{},
		},
		{
			name:       "non_numeric_user_id",
			userIDVar:  "abc",
			noCommand:  true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "invalid_page_size",
			userIDVar:   "42",
			queryString: "page_size=0",
			noCommand:   true,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:       "store_error",
			userIDVar:  "42",
			gameIDs:    []int64{3},
			listErr:    errors.New("database gone"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var feedPosts *command.FeedPosts
			if tc.noCommand {
				feedPosts = command.NewFeedPosts(
					mocks.NewMockFollowedGameLister(t),
					mocks.NewMockFeedFilterGetter(t),
					mocks.NewMockFeedPostLister(t),
					&command.ListAssembler{},
				)
			} else {
				feedPosts = feedCommandForUser(t, 42, tc.gameIDs, tc.posts, tc.listErr)
			}

			c := UserFeed{Feed: feedPosts}

			r := httptest.NewRequest(http.MethodGet, "/v1/users/"+tc.userIDVar+"/feed?"+tc.queryString, nil)
			r = mux.SetURLVars(r, map[string]string{"user_id": tc.userIDVar})
			w := httptest.NewRecorder()
			c.ServeHTTP(w, testContext(r))

			assert.Equal(t, tc.wantStatus, w.Code)

			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp PostsListResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

			ids := make([]int64, 0, len(resp.Data))
			for _, post := range resp.Data {
				ids = append(ids, post.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}
