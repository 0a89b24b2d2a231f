package app

import (
	"context"
	"fmt"

	"github.com/gamehub/post-feed/internal/command"
	"github.com/gamehub/post-feed/internal/datasources"
	"github.com/gamehub/post-feed/internal/datasources/mysql"
	"github.com/gamehub/post-feed/internal/transport/web/router"
	"github.com/gamehub/post-feed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	posts, err := setupPostRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up post repository: %w", err)
	}

	popularityWindow := MustGetEnvAsDuration(ctx, "POST_POPULARITY_WINDOW")

	assembler := &command.ListAssembler{
		Fetcher: posts,
		Loader:  posts,
	}

	listPosts := command.NewListPosts(posts, assembler, popularityWindow)
	countPosts := command.NewCountPosts(posts, popularityWindow)
	feedPosts := command.NewFeedPosts(posts, posts, posts, assembler)

	httpRouter, err := router.MakeRouter(
		listPosts,
		countPosts,
		feedPosts,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "LATEST_CACHE_MAX_AGE"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupPostRepository(ctx context.Context) (datasources.PostRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}
