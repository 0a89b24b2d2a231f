package domain

import (
	"time"
)

type Post struct {
	ID        int64      `json:"id"`
	GameID    int64      `json:"game_id"`
	UserID    int64      `json:"user_id"`
	EditorID  int64      `json:"editor_id,omitempty"`
	Title     string     `json:"title"`
	Type      PostType   `json:"type"`
	Status    PostStatus `json:"status"`
	SortValue int64      `json:"sort_value"`
	CreatedAt time.Time  `json:"created_at"`

	// Display relations, nil until loaded.
	Game          *Game       `json:"game,omitempty"`
	Author        *User       `json:"author,omitempty"`
	CommentCount  *int64      `json:"comment_count,omitempty"`
	Rating        *int64      `json:"rating,omitempty"`
	Link          *string     `json:"link,omitempty"`
	LastEditor    *User       `json:"last_editor,omitempty"`
	Access        *PostAccess `json:"access,omitempty"`
	Categories    []Category  `json:"categories,omitempty"`
	DownloadCount *int64      `json:"download_count,omitempty"`
}

type Game struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Link  *string `json:"link,omitempty"`
}

type User struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Link *string `json:"link,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PostAccess struct {
	CommentsEnabled  bool `json:"comments_enabled"`
	DownloadsEnabled bool `json:"downloads_enabled"`
}

type PostType string

const (
	PostTypeArticle PostType = "article"
	PostTypeNews    PostType = "news"
	PostTypeGuide   PostType = "guide"
	PostTypeVideo   PostType = "video"
)

// PostTypes lists every post type, in display order.
var PostTypes = []PostType{
	PostTypeArticle,
	PostTypeNews,
	PostTypeGuide,
	PostTypeVideo,
}

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
	PostStatusHidden    PostStatus = "hidden"
	PostStatusDeleted   PostStatus = "deleted"
)

// PublicStatuses returns the statuses visible to readers.
func PublicStatuses() []PostStatus {
	return []PostStatus{PostStatusPublished, PostStatusArchived}
}

// Relation names a loadable display relation of a post.
type Relation string

const (
	RelationGame          Relation = "game"
	RelationAuthor        Relation = "author"
	RelationCommentCount  Relation = "comment_count"
	RelationRating        Relation = "rating"
	RelationLink          Relation = "link"
	RelationLastEditor    Relation = "last_editor"
	RelationAccess        Relation = "access"
	RelationCategories    Relation = "categories"
	RelationDownloadCount Relation = "download_count"
)

// DisplayRelations is the relation set every rendered list needs.
var DisplayRelations = []Relation{
	RelationGame,
	RelationAuthor,
	RelationCommentCount,
	RelationRating,
	RelationLink,
	RelationLastEditor,
	RelationAccess,
	RelationCategories,
	RelationDownloadCount,
}

// FeedFilter holds a user's feed preferences. The zero value applies no
// restriction.
type FeedFilter struct {
	ExcludedTypes       []PostType
	IncludedCategoryIDs []int64
}
