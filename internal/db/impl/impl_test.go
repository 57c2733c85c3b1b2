package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/zblog/internal/config"
	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/domain"
	"github.com/sidereusnuntius/zblog/internal/initialization"
)

var DB db.DB
var ctx = context.Background()

func TestMain(m *testing.M) {
	cfg := config.Configuration{
		AdminUsername: "admin",
		AdminPassword: "correct horse battery staple",
	}
	d, err := initialization.OpenDB("file:impltest?mode=memory&cache=shared")
	if err != nil {
		os.Exit(1)
	}
	d.SetMaxOpenConns(1)

	if err = initialization.SetupDB(d, "../../../migrations", "impltest"); err != nil {
		os.Exit(1)
	}
	if err = initialization.EnsureAdmin(d, &cfg); err != nil {
		os.Exit(1)
	}

	DB = New(cfg, d)
	os.Exit(m.Run())
}

func TestCredentialRoundTrip(t *testing.T) {
	c, err := DB.GetCredentialByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if c.Username != "admin" || c.PasswordDigest == "" {
		t.Errorf("unexpected credential: %+v", c)
	}

	if err := DB.ReplacePasswordDigest(ctx, "admin", "new-digest"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	c, err = DB.GetCredentialByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if c.PasswordDigest != "new-digest" {
		t.Errorf("digest not replaced, got %q", c.PasswordDigest)
	}

	if _, err := DB.GetCredentialByUsername(ctx, "nobody"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
	if err := DB.ReplacePasswordDigest(ctx, "nobody", "x"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound replacing digest of unknown user, got %v", err)
	}
}

func TestPostCRUD(t *testing.T) {
	tag, err := DB.InsertTag(ctx, domain.Tag{Name: "Go", Slug: "go"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	post, err := DB.InsertPost(ctx, domain.Post{
		Title:   "First post",
		Slug:    "first-post",
		Excerpt: "it begins",
		Content: "hello world",
	}, []int64{tag.ID})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if post.ID == 0 || post.State != domain.PostDraft {
		t.Errorf("unexpected post after insert: %+v", post)
	}
	if diff := cmp.Diff([]domain.Tag{tag}, post.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}

	// Slugs are unique.
	if _, err := DB.InsertPost(ctx, domain.Post{Title: "Dup", Slug: "first-post"}, nil); !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate slug, got %v", err)
	}

	if err := DB.SetPostState(ctx, post.ID, domain.PostPublished); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got, err := DB.GetPostBySlug(ctx, "first-post")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.State != domain.PostPublished || got.Published == nil {
		t.Errorf("expected published post with timestamp, got %+v", got)
	}

	if err := DB.IncrementViewCount(ctx, post.ID); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got, _ = DB.GetPostByID(ctx, post.ID)
	if got.ViewCount != 1 {
		t.Errorf("expected view count 1, got %d", got.ViewCount)
	}

	posts, total, err := DB.ListPosts(ctx, db.PostFilter{State: domain.PostPublished, TagSlug: "go"}, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].ID != post.ID {
		t.Errorf("unexpected listing: total=%d posts=%+v", total, posts)
	}
}

func TestCommentLifecycle(t *testing.T) {
	post, err := DB.InsertPost(ctx, domain.Post{Title: "Commented", Slug: "commented"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	comment, err := DB.InsertComment(ctx, domain.Comment{
		Target:      domain.PostTarget(post.ID),
		AuthorName:  "visitor",
		AuthorEmail: "guest@example.com",
		Body:        "nice post",
		State:       domain.CommentPending,
		SourceAddr:  "10.0.0.1",
		UserAgent:   "test-agent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if comment.ID == 0 || comment.Created.IsZero() {
		t.Errorf("expected id and creation time to be filled in: %+v", comment)
	}

	got, err := DB.GetComment(ctx, comment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.State != domain.CommentPending {
		t.Errorf("fresh comment should be pending, got %s", got.State)
	}
	if id, ok := got.Target.PostID(); !ok || id != post.ID {
		t.Errorf("target lost in round trip: %+v", got.Target)
	}

	// Pending comments are invisible publicly.
	public, total, err := DB.ListPublicComments(ctx, domain.PostTarget(post.ID), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if total != 0 || len(public) != 0 {
		t.Errorf("pending comment leaked into the public listing")
	}

	if err := DB.UpdateCommentState(ctx, comment.ID, domain.CommentApproved); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	public, total, _ = DB.ListPublicComments(ctx, domain.PostTarget(post.ID), 1, 10)
	if total != 1 || len(public) != 1 {
		t.Fatalf("approved comment missing from the public listing")
	}

	if err := DB.DeleteComment(ctx, comment.ID); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := DB.GetComment(ctx, comment.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := DB.DeleteComment(ctx, comment.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestCommentPageTarget(t *testing.T) {
	if _, err := DB.UpsertPage(ctx, domain.Page{Slug: "about", Title: "About", Content: "hi"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	comment, err := DB.InsertComment(ctx, domain.Comment{
		Target:      domain.PageTarget("about"),
		AuthorName:  "visitor",
		AuthorEmail: "guest@example.com",
		Body:        "nice page",
		State:       domain.CommentPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, err := DB.GetComment(ctx, comment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if slug, ok := got.Target.PageSlug(); !ok || slug != "about" {
		t.Errorf("page target lost in round trip: %+v", got.Target)
	}
	if _, ok := got.Target.PostID(); ok {
		t.Error("comment reports both a post and a page target")
	}

	// Moderator listing narrowed to the page.
	comments, total, err := DB.ListComments(ctx, domain.CommentFilter{Target: domain.PageTarget("about")}, 1, 50)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if total != 1 || len(comments) != 1 || comments[0].ID != comment.ID {
		t.Errorf("unexpected page listing: total=%d comments=%+v", total, comments)
	}
}

func TestListCommentsFilterAndPaging(t *testing.T) {
	post, err := DB.InsertPost(ctx, domain.Post{Title: "Busy", Slug: "busy"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	var last domain.Comment
	for i := 0; i < 3; i++ {
		last, err = DB.InsertComment(ctx, domain.Comment{
			Target:      domain.PostTarget(post.ID),
			AuthorName:  "visitor",
			AuthorEmail: "guest@example.com",
			Body:        "pending one",
			State:       domain.CommentPending,
		})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}
	if err := DB.UpdateCommentState(ctx, last.ID, domain.CommentRejected); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	pending, total, err := DB.ListComments(ctx, domain.CommentFilter{
		Target: domain.PostTarget(post.ID),
		State:  domain.CommentPending,
	}, 1, 50)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if total != 2 || len(pending) != 2 {
		t.Errorf("expected 2 pending comments, got total=%d len=%d", total, len(pending))
	}

	// Page size 1: totals stay stable, pages differ.
	first, total, err := DB.ListComments(ctx, domain.CommentFilter{Target: domain.PostTarget(post.ID)}, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	second, _, err := DB.ListComments(ctx, domain.CommentFilter{Target: domain.PostTarget(post.ID)}, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if total != 3 || len(first) != 1 || len(second) != 1 || first[0].ID == second[0].ID {
		t.Errorf("pagination misbehaved: total=%d first=%+v second=%+v", total, first, second)
	}
	// Moderator view is newest first.
	if first[0].ID < second[0].ID {
		t.Errorf("expected newest first, got ids %d then %d", first[0].ID, second[0].ID)
	}
}

func TestSiteConfigAndStats(t *testing.T) {
	err := DB.SetSiteConfig(ctx, map[string]string{"title": "zblog", "footer": "bye"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	err = DB.SetSiteConfig(ctx, map[string]string{"title": "zblog!"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	values, err := DB.GetSiteConfig(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := map[string]string{"title": "zblog!", "footer": "bye"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("site config mismatch (-want +got):\n%s", diff)
	}

	stats, err := DB.GetStats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if stats.PostCount == 0 || stats.TagCount == 0 {
		t.Errorf("stats look empty: %+v", stats)
	}
}

func TestHandleError(t *testing.T) {
	d := &dbImpl{}

	cases := []struct {
		name string
		in   error
		want error
	}{
		{name: "NoRows", in: sql.ErrNoRows, want: db.ErrNotFound},
		{name: "AlreadyNotFound", in: db.ErrNotFound, want: db.ErrNotFound},
		{name: "AlreadyConflict", in: fmt.Errorf("%w: duplicate slug", db.ErrConflict), want: db.ErrConflict},
		{name: "OpaqueDriverFailure", in: errors.New("disk I/O error"), want: db.ErrInternal},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := d.HandleError(c.in)
			if !errors.Is(got, c.want) {
				t.Errorf("HandleError(%v) = %v, expected %v", c.in, got, c.want)
			}
			// Mapped errors never pick up a second sentinel.
			if c.want != db.ErrInternal && errors.Is(got, db.ErrInternal) {
				t.Errorf("HandleError(%v) = %v, unexpectedly wraps an internal failure", c.in, got)
			}
		})
	}

	if d.HandleError(nil) != nil {
		t.Error("HandleError(nil) should be nil")
	}
}
