package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamehub/post-feed/internal/command"
	"github.com/gamehub/post-feed/internal/datasources/mocks"
	"github.com/gamehub/post-feed/internal/domain"
)

func TestPostsCount_ServeHTTP(t *testing.T) {
	cases := []struct {
		name        string
		queryString string
		count       int64
		countErr    error
		noCommand   bool
		wantStatus  int
	}{
		{
			name:        "count_with_filters",
			queryString: "filter_game_id=3&sort=popularity",
			count:       12,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "invalid_game_id_filter",
			queryString: "filter_game_id=abc",
			noCommand:   true,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "store_error",
			queryString: "",
			countErr:    errors.New("database gone"),
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			counter := mocks.NewMockPostCounter(t)
			if !tc.noCommand {
				counter.On("CountMatchingPosts", mock.Anything, mock.Anything).
					Return(tc.count, tc.countErr)
			}

			c := PostsCount{Count: command.NewCountPosts(counter, 30*24*time.Hour)}

			r := httptest.NewRequest(http.MethodGet, "/v1/posts/count?"+tc.queryString, nil)
			w := httptest.NewRecorder()
			c.ServeHTTP(w, testContext(r))

			assert.Equal(t, tc.wantStatus, w.Code)

			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp PostsCountResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tc.count, resp.Count)
		})
	}
}

func TestPostCriteriaFromQuery_DefaultsToPublicStatuses(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)

	criteria, err := postCriteriaFromQuery(r.URL.Query())
	require.NoError(t, err)

	fields := criteria.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "status", fields[0].Field)
	assert.Equal(t, domain.StatusValues(domain.PublicStatuses()), fields[0].Values)
}

func TestPostCriteriaFromQuery_ExplicitStatusReplacesDefault(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/posts?filter_status=draft&filter_type=article,guide", nil)

	criteria, err := postCriteriaFromQuery(r.URL.Query())
	require.NoError(t, err)

	fields := criteria.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "type", fields[0].Field)
	assert.Equal(t, []any{"article", "guide"}, fields[0].Values)
	assert.Equal(t, "status", fields[1].Field)
	assert.Equal(t, []any{"draft"}, fields[1].Values)
}
