package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gamehub/post-feed/internal/command"
	"github.com/gamehub/post-feed/internal/domain"
)

type PostsList struct {
	List        *command.ListPosts
	CacheMaxAge time.Duration
}

type PostsListResponse struct {
	Data     []domain.Post     `json:"data"`
	Metadata PostsListMetadata `json:"metadata"`
}

type PostsListMetadata struct{}

func (c PostsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	criteria, err := postCriteriaFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse post criteria in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	posts, err := c.List.Execute(ctx, command.ListPostsRequest{
		Criteria: criteria,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
		SortKey:  r.URL.Query().Get("sort"),
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to list posts", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(PostsListResponse{
		Data:     posts,
		Metadata: PostsListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write posts to response", "error", err)
	}
}
