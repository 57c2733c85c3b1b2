package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/domain"
	"github.com/sidereusnuntius/zblog/internal/sanitize"
	"github.com/sidereusnuntius/zblog/internal/service"
	"github.com/sidereusnuntius/zblog/internal/validate"
)

const maxUserAgentLen = 512

// resolveTarget maps the post-or-page reference of a submission onto a
// validated CommentTarget. Naming both or neither is a validation error;
// naming a missing page, or a post that is missing or unpublished, is a
// not-found error.
func (s *AppService) resolveTarget(ctx context.Context, postID int64, pageSlug string) (domain.CommentTarget, error) {
	switch {
	case postID != 0 && pageSlug != "":
		return domain.CommentTarget{}, fmt.Errorf("%w: a comment targets either a post or a page, not both", service.ErrInvalidInput)
	case postID == 0 && pageSlug == "":
		return domain.CommentTarget{}, fmt.Errorf("%w: a comment must target a post or a page", service.ErrInvalidInput)
	}

	if postID != 0 {
		post, err := s.DB.GetPostByID(ctx, postID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return domain.CommentTarget{}, fmt.Errorf("%w: post does not exist or is not published", db.ErrNotFound)
			}
			return domain.CommentTarget{}, err
		}
		if post.State != domain.PostPublished {
			return domain.CommentTarget{}, fmt.Errorf("%w: post does not exist or is not published", db.ErrNotFound)
		}
		return domain.PostTarget(postID), nil
	}

	if _, err := s.DB.GetPage(ctx, pageSlug); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return domain.CommentTarget{}, fmt.Errorf("%w: page does not exist", db.ErrNotFound)
		}
		return domain.CommentTarget{}, err
	}
	return domain.PageTarget(pageSlug), nil
}

// SubmitComment runs the public pipeline in fixed order: throttle first so
// abusive traffic is rejected before any storage work, then resolve the
// target, check the parent, sanitize and persist. The comment always starts
// out pending; nothing on the public path ever mutates it afterwards.
func (s *AppService) SubmitComment(ctx context.Context, sub service.CommentSubmission) (domain.Comment, error) {
	if d := s.CommentLimiter.CheckAndRecord(sub.SourceAddr); !d.Allowed {
		return domain.Comment{}, &service.RateLimitedError{RetryAfter: d.RetryAfter}
	}

	target, err := s.resolveTarget(ctx, sub.PostID, sub.PageSlug)
	if err != nil {
		return domain.Comment{}, err
	}

	if sub.ParentID != 0 {
		parent, err := s.DB.GetComment(ctx, sub.ParentID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return domain.Comment{}, fmt.Errorf("%w: parent comment does not exist", service.ErrInvalidInput)
			}
			return domain.Comment{}, err
		}
		// A reply stays on its parent's post or page.
		if parent.Target != target {
			return domain.Comment{}, fmt.Errorf("%w: parent comment belongs to a different target", service.ErrInvalidInput)
		}
	}

	email := strings.TrimSpace(sub.AuthorEmail)
	if err := validate.Email(email); err != nil {
		return domain.Comment{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}
	email = truncateRunes(email, validate.MaxEmailLen)

	name := sanitize.Clean(sub.AuthorName, sanitize.MaxAuthorName)
	body := sanitize.Clean(sub.Body, sanitize.MaxBody)
	if name == "" {
		return domain.Comment{}, fmt.Errorf("%w: author name is empty after sanitization", service.ErrInvalidInput)
	}
	if body == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment body is empty after sanitization", service.ErrInvalidInput)
	}

	return s.DB.InsertComment(ctx, domain.Comment{
		Target:      target,
		ParentID:    sub.ParentID,
		AuthorName:  name,
		AuthorEmail: email,
		Body:        body,
		State:       domain.CommentPending,
		SourceAddr:  sub.SourceAddr,
		UserAgent:   truncateRunes(sub.UserAgent, maxUserAgentLen),
	})
}

func (s *AppService) ListPublicComments(ctx context.Context, postID int64, pageSlug string, page, size int) ([]domain.Comment, int64, error) {
	target, err := s.resolveTarget(ctx, postID, pageSlug)
	if err != nil {
		return nil, 0, err
	}

	page, size = clampPage(page, size, 10, 50)
	return s.DB.ListPublicComments(ctx, target, page, size)
}

func (s *AppService) ListComments(ctx context.Context, filter domain.CommentFilter, page, size int) ([]domain.Comment, int64, error) {
	if filter.State != "" && !filter.State.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown comment state %q", service.ErrInvalidInput, filter.State)
	}

	page, size = clampPage(page, size, 50, 100)
	return s.DB.ListComments(ctx, filter, page, size)
}

// SetCommentState transitions a comment. Approved and rejected are the only
// reachable states; pending exists solely as the creation state, so asking
// for it (or anything else) is a validation error. Reapplying the current
// state is allowed and idempotent.
func (s *AppService) SetCommentState(ctx context.Context, id int64, state domain.CommentState) error {
	if !state.ModerationTarget() {
		return fmt.Errorf("%w: state must be %q or %q", service.ErrInvalidInput, domain.CommentApproved, domain.CommentRejected)
	}
	return s.DB.UpdateCommentState(ctx, id, state)
}

func (s *AppService) DeleteComment(ctx context.Context, id int64) error {
	return s.DB.DeleteComment(ctx, id)
}
