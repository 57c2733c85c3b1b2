package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/domain"
)

var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid")
	ErrUnauthorized = errors.New("unauthorized")
)

// RateLimitedError reports a throttled request. RetryAfter is the time
// until the source's window opens again; the HTTP layer turns it into a
// Retry-After header.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited; retry in %s", e.RetryAfter)
}

// CommentSubmission carries a visitor's comment through the submission
// pipeline. Exactly one of PostID and PageSlug must be set.
type CommentSubmission struct {
	PostID      int64
	PageSlug    string
	ParentID    int64
	AuthorName  string
	AuthorEmail string
	Body        string
	SourceAddr  string
	UserAgent   string
}

// PostInput is the admin-facing shape for creating or updating a post.
type PostInput struct {
	Title      string
	Slug       string
	Excerpt    string
	CoverImage string
	Content    string
	TagIDs     []int64
}

type Service interface {
	// Login rate-limits by source address, verifies the credentials and,
	// on success, returns a fresh session token. Authentication failures
	// never reveal whether the username exists; a 401-class error covers
	// both cases.
	Login(ctx context.Context, source, username, password string) (token string, err error)
	// VerifyToken validates a session token and confirms that its subject
	// still names an existing credential.
	VerifyToken(ctx context.Context, token string) (subject string, err error)
	// ChangePassword verifies the subject's current password before
	// replacing the stored digest with a hash of the new one.
	ChangePassword(ctx context.Context, subject, oldPassword, newPassword string) error

	// SubmitComment runs the public pipeline: throttle, resolve target,
	// check the parent, sanitize, persist as pending.
	SubmitComment(ctx context.Context, sub CommentSubmission) (domain.Comment, error)
	// ListPublicComments returns approved comments on one target, oldest
	// first.
	ListPublicComments(ctx context.Context, postID int64, pageSlug string, page, size int) ([]domain.Comment, int64, error)

	// Moderation. ListComments is the moderator view; SetCommentState
	// accepts approved or rejected only.
	ListComments(ctx context.Context, filter domain.CommentFilter, page, size int) ([]domain.Comment, int64, error)
	SetCommentState(ctx context.Context, id int64, state domain.CommentState) error
	DeleteComment(ctx context.Context, id int64) error

	// Public content reads.
	ListPosts(ctx context.Context, tagSlug string, page, size int) ([]domain.Post, int64, error)
	// GetPost returns a published post by slug and counts the view.
	GetPost(ctx context.Context, slug string) (domain.Post, error)
	GetPage(ctx context.Context, slug string) (domain.Page, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetSiteConfig(ctx context.Context) (map[string]string, error)

	// Admin content management.
	ListAllPosts(ctx context.Context, filter db.PostFilter, page, size int) ([]domain.Post, int64, error)
	CreatePost(ctx context.Context, input PostInput) (domain.Post, error)
	UpdatePost(ctx context.Context, id int64, input PostInput) error
	DeletePost(ctx context.Context, id int64) error
	SetPostPublished(ctx context.Context, id int64, published bool) error
	CreateTag(ctx context.Context, name, slug string) (domain.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
	SavePage(ctx context.Context, slug, title, content string) (domain.Page, error)
	SetSiteConfig(ctx context.Context, values map[string]string) error
	GetStats(ctx context.Context) (domain.Stats, error)
}
