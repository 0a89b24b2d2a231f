package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gamehub/post-feed/internal/command"
	"github.com/gamehub/post-feed/internal/domain"
)

type PostsCount struct {
	Count *command.CountPosts
}

type PostsCountResponse struct {
	Count int64 `json:"count"`
}

func (c PostsCount) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	criteria, err := postCriteriaFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse post criteria in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	count, err := c.Count.Execute(ctx, criteria, r.URL.Query().Get("sort"))
	if err != nil {
		logger.ErrorContext(ctx, "unable to count posts", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(PostsCountResponse{Count: count}); err != nil {
		logger.ErrorContext(ctx, "unable to write post count to response", "error", err)
	}
}
