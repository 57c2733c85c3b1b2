package db

import (
	"context"

	"github.com/sidereusnuntius/zblog/internal/domain"
)

type Comment interface {
	// InsertComment persists a freshly submitted comment and returns it
	// with id and creation time filled in.
	InsertComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	GetComment(ctx context.Context, id int64) (domain.Comment, error)
	UpdateCommentState(ctx context.Context, id int64, state domain.CommentState) error
	// DeleteComment removes the comment unconditionally. Replies keep
	// their parent reference; the schema's cascade rule decides their
	// fate.
	DeleteComment(ctx context.Context, id int64) error
	// ListComments is the moderator view: any state, newest first,
	// narrowed by filter. Returns the page and the total match count.
	ListComments(ctx context.Context, filter domain.CommentFilter, page, size int) ([]domain.Comment, int64, error)
	// ListPublicComments returns approved comments on one target, oldest
	// first.
	ListPublicComments(ctx context.Context, target domain.CommentTarget, page, size int) ([]domain.Comment, int64, error)
}
