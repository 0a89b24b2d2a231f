package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/gamehub/post-feed/internal/datasources"
	"github.com/gamehub/post-feed/internal/domain"
)

var _ datasources.PostRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListCandidatePosts(
	ctx context.Context,
	criteria domain.Criteria,
	query datasources.CandidateQuery,
) ([]domain.PostCandidate, error) {
	cols := []string{"posts.id", "posts.sort_value"}
	if query.IncludeCreatedAt {
		cols = append(cols, "posts.created_at")
	}

	sb := sqlbuilder.Select(cols...)
	sb.From("posts")

	grouped := applyPostCriteria(sb, criteria)
	if grouped {
		sb.GroupBy("posts.id")
	}

	switch query.Ordering {
	case datasources.OrderBySortValueDesc:
		sb.OrderBy("posts.sort_value DESC", "posts.created_at DESC")
	case datasources.OrderByCreatedAtDesc:
		sb.OrderBy("posts.created_at DESC")
	}

	if query.Limit > 0 {
		sb.Limit(query.Limit)
		sb.Offset(query.Offset)
	}

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("running candidate posts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	candidates := []domain.PostCandidate{}
	for rows.Next() {
		var c domain.PostCandidate
		if query.IncludeCreatedAt {
			err = rows.Scan(&c.ID, &c.SortValue, &c.CreatedAt)
		} else {
			err = rows.Scan(&c.ID, &c.SortValue)
		}
		if err != nil {
			return nil, fmt.Errorf("scanning candidate post: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating candidate posts: %w", err)
	}

	return candidates, nil
}

func (r *Repository) CountMatchingPosts(ctx context.Context, criteria domain.Criteria) (int64, error) {
	sb := sqlbuilder.Select("COUNT(DISTINCT posts.id)")
	sb.From("posts")

	// Joins from criteria stay; grouping is dropped, the DISTINCT handles
	// duplicate rows the joins produce.
	applyPostCriteria(sb, criteria)

	q, args := sb.Build()

	var count int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting matching posts: %w", err)
	}
	return count, nil
}

func (r *Repository) ListFeedPosts(
	ctx context.Context,
	criteria domain.Criteria,
	page, pageSize int,
) ([]domain.Post, error) {
	sb := sqlbuilder.Select(postColumns...)
	sb.From("posts")

	grouped := applyPostCriteria(sb, criteria)
	if grouped {
		sb.GroupBy("posts.id")
	}

	sb.OrderBy("posts.created_at DESC")
	sb.Limit(pageSize)
	sb.Offset((page - 1) * pageSize)

	q, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("running feed posts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning feed post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feed posts: %w", err)
	}

	return posts, nil
}

var postColumns = []string{
	"posts.id",
	"posts.game_id",
	"posts.user_id",
	"posts.editor_id",
	"posts.title",
	"posts.type",
	"posts.status",
	"posts.sort_value",
	"posts.created_at",
}

func scanPost(rows *sql.Rows) (domain.Post, error) {
	var post domain.Post
	var editorID sql.NullInt64
	err := rows.Scan(
		&post.ID,
		&post.GameID,
		&post.UserID,
		&editorID,
		&post.Title,
		&post.Type,
		&post.Status,
		&post.SortValue,
		&post.CreatedAt,
	)
	if err != nil {
		return domain.Post{}, err
	}
	post.EditorID = editorID.Int64
	return post, nil
}

// applyPostCriteria translates criteria into WHERE conditions and category
// joins on sb. It reports whether a join was added; list queries must then
// group by post id to avoid duplicate rows, while count queries must not.
func applyPostCriteria(sb *sqlbuilder.SelectBuilder, criteria domain.Criteria) (joined bool) {
	var conds []string

	for _, fc := range criteria.Fields() {
		col := "posts." + fc.Field
		switch fc.Op {
		case domain.OpEqual:
			conds = append(conds, sb.Equal(col, fc.Value))
		case domain.OpIn:
			conds = append(conds, sb.In(col, fc.Values...))
		case domain.OpAtLeast:
			conds = append(conds, sb.GreaterEqualThan(col, fc.Value))
		}
	}

	if after, ok := criteria.CreatedAfter(); ok {
		conds = append(conds, sb.GreaterEqualThan("posts.created_at", after))
	}

	if ids := criteria.IncludedCategories(); len(ids) > 0 {
		sb.Join("post_category_rel pc", "pc.post_id = posts.id")
		conds = append(conds, sb.In("pc.post_category_id", domain.Int64Values(ids)...))
		joined = true
	}

	if ids := criteria.ExcludedCategories(); len(ids) > 0 {
		// The join only matches rows whose category is in the given set;
		// requiring the joined row to be absent drops every post that has
		// one.
		sb.JoinWithOption(sqlbuilder.LeftJoin, "post_category_rel pcx",
			"pcx.post_id = posts.id",
			sb.In("pcx.post_category_id", domain.Int64Values(ids)...))
		conds = append(conds, sb.IsNull("pcx.id"))
		joined = true
	}

	if len(conds) > 0 {
		sb.Where(conds...)
	}

	return joined
}
