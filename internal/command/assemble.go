package command

import (
	"context"
	"fmt"

	"github.com/gamehub/post-feed/internal/datasources"
	"github.com/gamehub/post-feed/internal/domain"
)

// ListAssembler turns ranked ids or raw rows into display-ready posts by
// eagerly loading the fixed relation set every rendered list needs, then
// the permalinks of every distinct referenced game and author.
type ListAssembler struct {
	Fetcher datasources.PostFetcher
	Loader  datasources.RelationLoader
}

func (a *ListAssembler) AssembleByID(ctx context.Context, ids []int64) ([]domain.Post, error) {
	posts, err := a.Fetcher.FetchPostsByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching posts by id: %w", err)
	}
	return a.Assemble(ctx, posts)
}

func (a *ListAssembler) Assemble(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	if err := a.Loader.LoadPostRelations(ctx, posts, domain.DisplayRelations...); err != nil {
		return nil, fmt.Errorf("loading post relations: %w", err)
	}

	gamesByID := map[int64]*domain.Game{}
	usersByID := map[int64]*domain.User{}
	for _, post := range posts {
		if post.Game != nil {
			gamesByID[post.Game.ID] = post.Game
		}
		if post.Author != nil {
			usersByID[post.Author.ID] = post.Author
		}
	}

	games := make([]*domain.Game, 0, len(gamesByID))
	for _, game := range gamesByID {
		games = append(games, game)
	}
	users := make([]*domain.User, 0, len(usersByID))
	for _, user := range usersByID {
		users = append(users, user)
	}

	if err := a.Loader.LoadGameLinks(ctx, games); err != nil {
		return nil, fmt.Errorf("loading game links: %w", err)
	}
	if err := a.Loader.LoadUserLinks(ctx, users); err != nil {
		return nil, fmt.Errorf("loading user links: %w", err)
	}

	return posts, nil
}
