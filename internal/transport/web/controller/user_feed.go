package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gamehub/post-feed/internal/command"
	"github.com/gamehub/post-feed/internal/domain"
)

type UserFeed struct {
	Feed *command.FeedPosts
}

func (c UserFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID, err := strconv.ParseInt(mux.Vars(r)["user_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse user id in path", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	posts, err := c.Feed.Execute(ctx, userID, page, pageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to assemble feed", "error", err, "user_id", userID)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(PostsListResponse{
		Data:     posts,
		Metadata: PostsListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
