package db

import (
	"context"

	"github.com/sidereusnuntius/zblog/internal/domain"
)

// PostFilter narrows post listings. Empty State matches all states; empty
// TagSlug skips the tag join.
type PostFilter struct {
	State   domain.PostState
	TagSlug string
}

type Content interface {
	ListPosts(ctx context.Context, filter PostFilter, page, size int) ([]domain.Post, int64, error)
	GetPostBySlug(ctx context.Context, slug string) (domain.Post, error)
	GetPostByID(ctx context.Context, id int64) (domain.Post, error)
	IncrementViewCount(ctx context.Context, id int64) error
	InsertPost(ctx context.Context, post domain.Post, tagIDs []int64) (domain.Post, error)
	UpdatePost(ctx context.Context, post domain.Post, tagIDs []int64) error
	DeletePost(ctx context.Context, id int64) error
	// SetPostState publishes or unpublishes a post, stamping the publication
	// time on the first transition to published.
	SetPostState(ctx context.Context, id int64, state domain.PostState) error

	ListTags(ctx context.Context) ([]domain.Tag, error)
	InsertTag(ctx context.Context, tag domain.Tag) (domain.Tag, error)
	DeleteTag(ctx context.Context, id int64) error

	GetPage(ctx context.Context, slug string) (domain.Page, error)
	UpsertPage(ctx context.Context, page domain.Page) (domain.Page, error)

	GetSiteConfig(ctx context.Context) (map[string]string, error)
	SetSiteConfig(ctx context.Context, values map[string]string) error

	GetStats(ctx context.Context) (domain.Stats, error)
}
