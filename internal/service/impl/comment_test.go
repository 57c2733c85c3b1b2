package core

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/domain"
	"github.com/sidereusnuntius/zblog/internal/service"
	"go.uber.org/mock/gomock"
)

func publishedPost(id int64) domain.Post {
	return domain.Post{ID: id, Title: "a post", Slug: "a-post", State: domain.PostPublished}
}

func submission(source string) service.CommentSubmission {
	return service.CommentSubmission{
		PostID:      1,
		AuthorName:  "Sarah",
		AuthorEmail: "sarah@example.org",
		Body:        "Lovely article.",
		SourceAddr:  source,
		UserAgent:   "Mozilla/5.0",
	}
}

func TestSubmitCommentToPost(t *testing.T) {
	svc, DB, _ := newTestService(t)

	DB.EXPECT().
		GetPostByID(gomock.Any(), int64(1)).
		Return(publishedPost(1), nil)
	DB.EXPECT().
		InsertComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.Comment) (domain.Comment, error) {
			c.ID = 42
			c.Created = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
			return c, nil
		})

	sub := submission("203.0.113.7")
	sub.AuthorName = "  <b>Sarah</b> "
	sub.Body = "Nice &amp; <a href=\"https://spam.example\">clickable</a> read."

	comment, err := svc.SubmitComment(ctx, sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := domain.Comment{
		ID:          42,
		Target:      domain.PostTarget(1),
		AuthorName:  "Sarah",
		AuthorEmail: "sarah@example.org",
		Body:        "Nice & clickable read.",
		State:       domain.CommentPending,
		SourceAddr:  "203.0.113.7",
		UserAgent:   "Mozilla/5.0",
		Created:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(expected, comment, cmp.AllowUnexported(domain.CommentTarget{})); diff != "" {
		t.Error(diff)
	}
}

func TestSubmitCommentToPage(t *testing.T) {
	svc, DB, _ := newTestService(t)

	DB.EXPECT().
		GetPage(gomock.Any(), "about").
		Return(domain.Page{ID: 1, Slug: "about", Title: "About"}, nil)
	DB.EXPECT().
		InsertComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.Comment) (domain.Comment, error) {
			if slug, ok := c.Target.PageSlug(); !ok || slug != "about" {
				t.Errorf("comment target = %+v, expected page %q", c.Target, "about")
			}
			c.ID = 7
			return c, nil
		})

	sub := submission("203.0.113.7")
	sub.PostID = 0
	sub.PageSlug = "about"

	if _, err := svc.SubmitComment(ctx, sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitCommentRejected(t *testing.T) {
	svc, DB, _ := newTestService(t)

	cases := []struct {
		name    string
		mutate  func(*service.CommentSubmission)
		expect  func(*storeResponses)
		wantErr error
	}{
		{
			name: "BothTargets",
			mutate: func(s *service.CommentSubmission) {
				s.PageSlug = "about"
			},
			wantErr: service.ErrInvalidInput,
		},
		{
			name: "NoTarget",
			mutate: func(s *service.CommentSubmission) {
				s.PostID = 0
			},
			wantErr: service.ErrInvalidInput,
		},
		{
			name:   "UnpublishedPost",
			mutate: func(s *service.CommentSubmission) {},
			expect: func(e *storeResponses) {
				e.post = &domain.Post{ID: 1, State: domain.PostDraft}
			},
			wantErr: db.ErrNotFound,
		},
		{
			name:   "MissingPost",
			mutate: func(s *service.CommentSubmission) {},
			expect: func(e *storeResponses) {
				e.postErr = db.ErrNotFound
			},
			wantErr: db.ErrNotFound,
		},
		{
			name: "MissingPage",
			mutate: func(s *service.CommentSubmission) {
				s.PostID = 0
				s.PageSlug = "nope"
			},
			expect: func(e *storeResponses) {
				e.pageErr = db.ErrNotFound
			},
			wantErr: db.ErrNotFound,
		},
		{
			name: "BadEmail",
			mutate: func(s *service.CommentSubmission) {
				s.AuthorEmail = "not-an-email"
			},
			expect: func(e *storeResponses) {
				e.post = &domain.Post{ID: 1, State: domain.PostPublished}
			},
			wantErr: service.ErrInvalidInput,
		},
		{
			name: "NameEmptyAfterSanitization",
			mutate: func(s *service.CommentSubmission) {
				s.AuthorName = "<script>alert(1)</script>"
			},
			expect: func(e *storeResponses) {
				e.post = &domain.Post{ID: 1, State: domain.PostPublished}
			},
			wantErr: service.ErrInvalidInput,
		},
		{
			name: "BodyEmptyAfterSanitization",
			mutate: func(s *service.CommentSubmission) {
				s.Body = "  <style>body{}</style>  "
			},
			expect: func(e *storeResponses) {
				e.post = &domain.Post{ID: 1, State: domain.PostPublished}
			},
			wantErr: service.ErrInvalidInput,
		},
	}

	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			exp := &storeResponses{}
			if c.expect != nil {
				c.expect(exp)
			}
			if exp.post != nil {
				DB.EXPECT().GetPostByID(gomock.Any(), int64(1)).Return(*exp.post, nil)
			}
			if exp.postErr != nil {
				DB.EXPECT().GetPostByID(gomock.Any(), int64(1)).Return(domain.Post{}, exp.postErr)
			}
			if exp.pageErr != nil {
				DB.EXPECT().GetPage(gomock.Any(), "nope").Return(domain.Page{}, exp.pageErr)
			}

			// A source per case keeps the limiter out of the picture.
			sub := submission("198.51.100." + strconv.Itoa(100+i))
			c.mutate(&sub)

			if _, err := svc.SubmitComment(ctx, sub); !errors.Is(err, c.wantErr) {
				t.Errorf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

// storeResponses bundles the optional store responses a rejection case
// needs before the pipeline fails.
type storeResponses struct {
	post    *domain.Post
	postErr error
	pageErr error
}

func TestSubmitCommentParent(t *testing.T) {
	svc, DB, _ := newTestService(t)

	t.Run("SameTarget", func(t *testing.T) {
		DB.EXPECT().GetPostByID(gomock.Any(), int64(1)).Return(publishedPost(1), nil)
		DB.EXPECT().
			GetComment(gomock.Any(), int64(9)).
			Return(domain.Comment{ID: 9, Target: domain.PostTarget(1), State: domain.CommentApproved}, nil)
		DB.EXPECT().
			InsertComment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c domain.Comment) (domain.Comment, error) {
				return c, nil
			})

		sub := submission("203.0.113.10")
		sub.ParentID = 9
		if _, err := svc.SubmitComment(ctx, sub); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DifferentTarget", func(t *testing.T) {
		DB.EXPECT().GetPostByID(gomock.Any(), int64(1)).Return(publishedPost(1), nil)
		DB.EXPECT().
			GetComment(gomock.Any(), int64(9)).
			Return(domain.Comment{ID: 9, Target: domain.PostTarget(2)}, nil)

		sub := submission("203.0.113.11")
		sub.ParentID = 9
		if _, err := svc.SubmitComment(ctx, sub); !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		DB.EXPECT().GetPostByID(gomock.Any(), int64(1)).Return(publishedPost(1), nil)
		DB.EXPECT().
			GetComment(gomock.Any(), int64(9)).
			Return(domain.Comment{}, db.ErrNotFound)

		sub := submission("203.0.113.12")
		sub.ParentID = 9
		if _, err := svc.SubmitComment(ctx, sub); !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestSubmitCommentEmailTruncation(t *testing.T) {
	svc, DB, _ := newTestService(t)

	// Valid format, longer than the storage column allows.
	local := strings.Repeat("x", 280)
	email := local + "@example.org"

	DB.EXPECT().GetPostByID(gomock.Any(), int64(1)).Return(publishedPost(1), nil)
	DB.EXPECT().
		InsertComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.Comment) (domain.Comment, error) {
			if len([]rune(c.AuthorEmail)) != 255 {
				t.Errorf("stored email is %d runes, expected 255", len([]rune(c.AuthorEmail)))
			}
			if !strings.HasPrefix(email, c.AuthorEmail) {
				t.Error("stored email is not a prefix of the submitted one")
			}
			return c, nil
		})

	sub := submission("203.0.113.13")
	sub.AuthorEmail = email
	if _, err := svc.SubmitComment(ctx, sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitCommentThrottle(t *testing.T) {
	svc, DB, clock := newTestService(t)
	source := "203.0.113.20"

	DB.EXPECT().GetPostByID(gomock.Any(), int64(1)).Return(publishedPost(1), nil).Times(6)
	DB.EXPECT().
		InsertComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.Comment) (domain.Comment, error) {
			return c, nil
		}).
		Times(6)

	for i := 0; i < 5; i++ {
		if _, err := svc.SubmitComment(ctx, submission(source)); err != nil {
			t.Fatalf("submission %d: unexpected error: %v", i+1, err)
		}
	}

	// The sixth submission in the window is refused before any storage
	// work happens.
	_, err := svc.SubmitComment(ctx, submission(source))
	var limited *service.RateLimitedError
	if !errors.As(err, &limited) {
		t.Fatalf("expected RateLimitedError, got %v", err)
	}
	if limited.RetryAfter <= 0 || limited.RetryAfter > time.Minute {
		t.Errorf("RetryAfter = %s, expected within (0, 1m]", limited.RetryAfter)
	}

	// Moderation never clears this window; only time does.
	clock.Advance(61 * time.Second)
	if _, err := svc.SubmitComment(ctx, submission(source)); err != nil {
		t.Fatalf("after window: unexpected error: %v", err)
	}
}

func TestListPublicComments(t *testing.T) {
	svc, DB, _ := newTestService(t)

	t.Run("ClampsPageSize", func(t *testing.T) {
		DB.EXPECT().GetPostByID(gomock.Any(), int64(1)).Return(publishedPost(1), nil)
		DB.EXPECT().
			ListPublicComments(gomock.Any(), domain.PostTarget(1), 1, 50).
			Return([]domain.Comment{}, int64(0), nil)

		if _, _, err := svc.ListPublicComments(ctx, 1, "", 0, 500); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UnknownTarget", func(t *testing.T) {
		DB.EXPECT().GetPostByID(gomock.Any(), int64(8)).Return(domain.Post{}, db.ErrNotFound)

		if _, _, err := svc.ListPublicComments(ctx, 8, "", 1, 10); !errors.Is(err, db.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestListCommentsRejectsUnknownState(t *testing.T) {
	svc, _, _ := newTestService(t)

	filter := domain.CommentFilter{State: domain.CommentState("bogus")}
	if _, _, err := svc.ListComments(ctx, filter, 1, 10); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSetCommentState(t *testing.T) {
	svc, DB, _ := newTestService(t)

	t.Run("Approve", func(t *testing.T) {
		DB.EXPECT().UpdateCommentState(gomock.Any(), int64(3), domain.CommentApproved).Return(nil)
		if err := svc.SetCommentState(ctx, 3, domain.CommentApproved); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Reject", func(t *testing.T) {
		DB.EXPECT().UpdateCommentState(gomock.Any(), int64(3), domain.CommentRejected).Return(nil)
		if err := svc.SetCommentState(ctx, 3, domain.CommentRejected); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("PendingIsNotATarget", func(t *testing.T) {
		err := svc.SetCommentState(ctx, 3, domain.CommentPending)
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("UnknownState", func(t *testing.T) {
		err := svc.SetCommentState(ctx, 3, domain.CommentState("archived"))
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}
