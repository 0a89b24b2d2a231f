package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/gamehub/post-feed/internal/command"
	"github.com/gamehub/post-feed/internal/transport/web/controller"
)

func MakeRouter(
	listPosts *command.ListPosts,
	countPosts *command.CountPosts,
	feedPosts *command.FeedPosts,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.Handle("/v1/posts", controller.PostsList{
		List:        listPosts,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/posts/count", controller.PostsCount{
		Count: countPosts,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{user_id:[0-9]+}/feed", controller.UserFeed{
		Feed: feedPosts,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		List:            listPosts,
		CacheMaxAge:     latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
