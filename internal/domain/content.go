package domain

import "time"

type PostState string

const (
	PostDraft     PostState = "draft"
	PostPublished PostState = "published"
)

type Post struct {
	ID         int64
	Title      string
	Slug       string
	Excerpt    string
	CoverImage string
	Content    string
	State      PostState
	ViewCount  int64
	Tags       []Tag
	Created    time.Time
	Updated    time.Time
	Published  *time.Time
}

type Tag struct {
	ID   int64
	Name string
	Slug string
}

type Page struct {
	ID      int64
	Slug    string
	Title   string
	Content string
	Updated time.Time
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalViews         int64
	PostCount          int64
	PublishedPostCount int64
	CommentCount       int64
	TagCount           int64
}
