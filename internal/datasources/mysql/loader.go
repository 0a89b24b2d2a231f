package mysql

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/gamehub/post-feed/internal/domain"
)

func (r *Repository) FetchPostsByID(ctx context.Context, ids []int64) ([]domain.Post, error) {
	if len(ids) == 0 {
		return []domain.Post{}, nil
	}

	sb := sqlbuilder.Select(postColumns...)
	sb.From("posts")
	sb.Where(sb.In("posts.id", domain.Int64Values(ids)...))

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching posts by id: %w", err)
	}
	defer func() { _ = rows.Close() }()

	postsByID := make(map[int64]domain.Post, len(ids))
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		postsByID[post.ID] = post
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating posts: %w", err)
	}

	// Rebuild in the order the ids were given; the ranking decided it and
	// an IN query does not preserve it.
	posts := make([]domain.Post, 0, len(ids))
	for _, id := range ids {
		if post, exists := postsByID[id]; exists {
			posts = append(posts, post)
		}
	}

	return posts, nil
}

func (r *Repository) LoadPostRelations(
	ctx context.Context,
	posts []domain.Post,
	relations ...domain.Relation,
) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int64, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
	}

	for _, relation := range relations {
		var err error
		switch relation {
		case domain.RelationGame:
			err = r.loadPostGames(ctx, posts)
		case domain.RelationAuthor:
			err = r.loadPostAuthors(ctx, posts)
		case domain.RelationCommentCount:
			err = r.loadCommentCounts(ctx, posts, ids)
		case domain.RelationRating:
			err = r.loadRatings(ctx, posts, ids)
		case domain.RelationLink:
			err = r.loadPostLinks(ctx, posts, ids)
		case domain.RelationLastEditor:
			err = r.loadLastEditors(ctx, posts)
		case domain.RelationAccess:
			err = r.loadAccess(ctx, posts, ids)
		case domain.RelationCategories:
			err = r.loadCategories(ctx, posts, ids)
		case domain.RelationDownloadCount:
			err = r.loadDownloadCounts(ctx, posts, ids)
		default:
			err = fmt.Errorf("unknown post relation: %s", relation)
		}
		if err != nil {
			return fmt.Errorf("loading post relation %s: %w", relation, err)
		}
	}

	return nil
}

func (r *Repository) loadPostGames(ctx context.Context, posts []domain.Post) error {
	gameIDs := distinctIDs(posts, func(p domain.Post) int64 { return p.GameID })
	if len(gameIDs) == 0 {
		return nil
	}

	sb := sqlbuilder.Select("id", "title")
	sb.From("games")
	sb.Where(sb.In("id", domain.Int64Values(gameIDs)...))

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("fetching games: %w", err)
	}
	defer func() { _ = rows.Close() }()

	gamesByID := make(map[int64]*domain.Game, len(gameIDs))
	for rows.Next() {
		var game domain.Game
		if err := rows.Scan(&game.ID, &game.Title); err != nil {
			return fmt.Errorf("scanning game: %w", err)
		}
		gamesByID[game.ID] = &game
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating games: %w", err)
	}

	// Posts of the same game share one *Game, so a later link load fills
	// every post at once.
	for i := range posts {
		posts[i].Game = gamesByID[posts[i].GameID]
	}
	return nil
}

func (r *Repository) loadPostAuthors(ctx context.Context, posts []domain.Post) error {
	userIDs := distinctIDs(posts, func(p domain.Post) int64 { return p.UserID })
	usersByID, err := r.fetchUsersByID(ctx, userIDs)
	if err != nil {
		return err
	}

	for i := range posts {
		posts[i].Author = usersByID[posts[i].UserID]
	}
	return nil
}

func (r *Repository) loadLastEditors(ctx context.Context, posts []domain.Post) error {
	editorIDs := distinctIDs(posts, func(p domain.Post) int64 { return p.EditorID })
	usersByID, err := r.fetchUsersByID(ctx, editorIDs)
	if err != nil {
		return err
	}

	for i := range posts {
		if posts[i].EditorID != 0 {
			posts[i].LastEditor = usersByID[posts[i].EditorID]
		}
	}
	return nil
}

func (r *Repository) fetchUsersByID(ctx context.Context, ids []int64) (map[int64]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select("id", "name")
	sb.From("users")
	sb.Where(sb.In("id", domain.Int64Values(ids)...))

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	usersByID := make(map[int64]*domain.User, len(ids))
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		usersByID[user.ID] = &user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return usersByID, nil
}

func (r *Repository) loadCommentCounts(ctx context.Context, posts []domain.Post, ids []int64) error {
	sb := sqlbuilder.Select("post_id", "COUNT(*)")
	sb.From("comments")
	sb.Where(sb.In("post_id", domain.Int64Values(ids)...))
	sb.GroupBy("post_id")

	counts, err := r.queryCountsByPost(ctx, sb)
	if err != nil {
		return err
	}

	for i := range posts {
		count := counts[posts[i].ID]
		posts[i].CommentCount = &count
	}
	return nil
}

func (r *Repository) loadRatings(ctx context.Context, posts []domain.Post, ids []int64) error {
	sb := sqlbuilder.Select("post_id", "COALESCE(SUM(value), 0)")
	sb.From("post_votes")
	sb.Where(sb.In("post_id", domain.Int64Values(ids)...))
	sb.GroupBy("post_id")

	ratings, err := r.queryCountsByPost(ctx, sb)
	if err != nil {
		return err
	}

	for i := range posts {
		rating := ratings[posts[i].ID]
		posts[i].Rating = &rating
	}
	return nil
}

func (r *Repository) loadDownloadCounts(ctx context.Context, posts []domain.Post, ids []int64) error {
	sb := sqlbuilder.Select("post_id", "COALESCE(SUM(download_count), 0)")
	sb.From("post_files")
	sb.Where(sb.In("post_id", domain.Int64Values(ids)...))
	sb.GroupBy("post_id")

	counts, err := r.queryCountsByPost(ctx, sb)
	if err != nil {
		return err
	}

	for i := range posts {
		count := counts[posts[i].ID]
		posts[i].DownloadCount = &count
	}
	return nil
}

func (r *Repository) queryCountsByPost(ctx context.Context, sb *sqlbuilder.SelectBuilder) (map[int64]int64, error) {
	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("running aggregate query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := map[int64]int64{}
	for rows.Next() {
		var postID, count int64
		if err := rows.Scan(&postID, &count); err != nil {
			return nil, fmt.Errorf("scanning aggregate row: %w", err)
		}
		counts[postID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating aggregate rows: %w", err)
	}

	return counts, nil
}

func (r *Repository) loadPostLinks(ctx context.Context, posts []domain.Post, ids []int64) error {
	links, err := r.fetchLinks(ctx, "post", ids)
	if err != nil {
		return err
	}

	for i := range posts {
		if url, exists := links[posts[i].ID]; exists {
			posts[i].Link = &url
		}
	}
	return nil
}

func (r *Repository) loadAccess(ctx context.Context, posts []domain.Post, ids []int64) error {
	sb := sqlbuilder.Select("post_id", "comments_enabled", "downloads_enabled")
	sb.From("post_access")
	sb.Where(sb.In("post_id", domain.Int64Values(ids)...))

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("fetching post access: %w", err)
	}
	defer func() { _ = rows.Close() }()

	accessByPost := map[int64]domain.PostAccess{}
	for rows.Next() {
		var postID int64
		var access domain.PostAccess
		if err := rows.Scan(&postID, &access.CommentsEnabled, &access.DownloadsEnabled); err != nil {
			return fmt.Errorf("scanning post access: %w", err)
		}
		accessByPost[postID] = access
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating post access: %w", err)
	}

	for i := range posts {
		access, exists := accessByPost[posts[i].ID]
		if !exists {
			// No row means default access.
			access = domain.PostAccess{CommentsEnabled: true, DownloadsEnabled: true}
		}
		posts[i].Access = &access
	}
	return nil
}

func (r *Repository) loadCategories(ctx context.Context, posts []domain.Post, ids []int64) error {
	sb := sqlbuilder.Select("pc.post_id", "c.id", "c.name")
	sb.From("post_category_rel pc")
	sb.Join("post_categories c", "c.id = pc.post_category_id")
	sb.Where(sb.In("pc.post_id", domain.Int64Values(ids)...))
	sb.OrderBy("c.name")

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("fetching post categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categoriesByPost := map[int64][]domain.Category{}
	for rows.Next() {
		var postID int64
		var category domain.Category
		if err := rows.Scan(&postID, &category.ID, &category.Name); err != nil {
			return fmt.Errorf("scanning post category: %w", err)
		}
		categoriesByPost[postID] = append(categoriesByPost[postID], category)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating post categories: %w", err)
	}

	for i := range posts {
		posts[i].Categories = categoriesByPost[posts[i].ID]
	}
	return nil
}

func (r *Repository) LoadGameLinks(ctx context.Context, games []*domain.Game) error {
	if len(games) == 0 {
		return nil
	}

	ids := make([]int64, len(games))
	for i, game := range games {
		ids[i] = game.ID
	}

	links, err := r.fetchLinks(ctx, "game", ids)
	if err != nil {
		return err
	}

	for _, game := range games {
		if url, exists := links[game.ID]; exists {
			game.Link = &url
		}
	}
	return nil
}

func (r *Repository) LoadUserLinks(ctx context.Context, users []*domain.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]int64, len(users))
	for i, user := range users {
		ids[i] = user.ID
	}

	links, err := r.fetchLinks(ctx, "user", ids)
	if err != nil {
		return err
	}

	for _, user := range users {
		if url, exists := links[user.ID]; exists {
			user.Link = &url
		}
	}
	return nil
}

func (r *Repository) fetchLinks(ctx context.Context, entityType string, ids []int64) (map[int64]string, error) {
	sb := sqlbuilder.Select("entity_id", "url")
	sb.From("links")
	sb.Where(
		sb.Equal("entity_type", entityType),
		sb.In("entity_id", domain.Int64Values(ids)...),
	)

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching %s links: %w", entityType, err)
	}
	defer func() { _ = rows.Close() }()

	links := map[int64]string{}
	for rows.Next() {
		var entityID int64
		var url string
		if err := rows.Scan(&entityID, &url); err != nil {
			return nil, fmt.Errorf("scanning %s link: %w", entityType, err)
		}
		links[entityID] = url
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s links: %w", entityType, err)
	}

	return links, nil
}

func distinctIDs(posts []domain.Post, id func(domain.Post) int64) []int64 {
	seen := make(map[int64]struct{}, len(posts))
	var ids []int64
	for _, post := range posts {
		v := id(post)
		if v == 0 {
			continue
		}
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		ids = append(ids, v)
	}
	return ids
}
