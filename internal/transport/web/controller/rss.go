package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"

	"github.com/gamehub/post-feed/internal/command"
	"github.com/gamehub/post-feed/internal/domain"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	List            *command.ListPosts
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "Latest Posts",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of new posts across all games",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

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
		logger.ErrorContext(ctx, "unable to fetch posts for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, post := range posts {
		item := &feeds.Item{
			Id:          strconv.FormatInt(post.ID, 10),
			IsPermaLink: "false",
			Title:       post.Title,
			Created:     post.CreatedAt,
		}
		if post.Link != nil {
			item.Link = &feeds.Link{Href: *post.Link}
		}
		if post.Author != nil {
			item.Author = &feeds.Author{Name: post.Author.Name}
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
