package mysql

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/gamehub/post-feed/internal/domain"
)

func (r *Repository) ListFollowedGameIDs(ctx context.Context, userID int64) ([]int64, error) {
	sb := sqlbuilder.Select("game_id")
	sb.From("game_followers")
	sb.Where(sb.Equal("user_id", userID))

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching followed game ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var gameIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning followed game id: %w", err)
		}
		gameIDs = append(gameIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating followed game ids: %w", err)
	}

	return gameIDs, nil
}

func (r *Repository) GetFeedFilter(ctx context.Context, userID int64) (domain.FeedFilter, error) {
	var filter domain.FeedFilter

	sb := sqlbuilder.Select("post_type")
	sb.From("user_feed_type_exclusions")
	sb.Where(sb.Equal("user_id", userID))

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return domain.FeedFilter{}, fmt.Errorf("fetching feed type exclusions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var postType string
		if err := rows.Scan(&postType); err != nil {
			return domain.FeedFilter{}, fmt.Errorf("scanning feed type exclusion: %w", err)
		}
		filter.ExcludedTypes = append(filter.ExcludedTypes, domain.PostType(postType))
	}
	if err := rows.Err(); err != nil {
		return domain.FeedFilter{}, fmt.Errorf("iterating feed type exclusions: %w", err)
	}

	sb = sqlbuilder.Select("post_category_id")
	sb.From("user_feed_category_inclusions")
	sb.Where(sb.Equal("user_id", userID))

	q, args = sb.Build()
	catRows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return domain.FeedFilter{}, fmt.Errorf("fetching feed category inclusions: %w", err)
	}
	defer func() { _ = catRows.Close() }()

	for catRows.Next() {
		var categoryID int64
		if err := catRows.Scan(&categoryID); err != nil {
			return domain.FeedFilter{}, fmt.Errorf("scanning feed category inclusion: %w", err)
		}
		filter.IncludedCategoryIDs = append(filter.IncludedCategoryIDs, categoryID)
	}
	if err := catRows.Err(); err != nil {
		return domain.FeedFilter{}, fmt.Errorf("iterating feed category inclusions: %w", err)
	}

	return filter, nil
}
