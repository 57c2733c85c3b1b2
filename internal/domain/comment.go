package domain

import (
	"time"
)

type CommentState string

const (
	CommentPending  CommentState = "pending"
	CommentApproved CommentState = "approved"
	CommentRejected CommentState = "rejected"
)

// ModerationTarget reports whether s is a state a moderator may move a
// comment into. Comments are only ever pending at creation; pending is
// never a valid transition target.
func (s CommentState) ModerationTarget() bool {
	return s == CommentApproved || s == CommentRejected
}

func (s CommentState) Valid() bool {
	return s == CommentPending || s.ModerationTarget()
}

// CommentTarget is the entity a comment is attached to: a published post,
// identified by id, or a static page, identified by slug. The zero value
// means "no target" and is rejected everywhere a target is required, so a
// constructed target always names exactly one of the two.
type CommentTarget struct {
	postID   int64
	pageSlug string
}

func PostTarget(id int64) CommentTarget {
	return CommentTarget{postID: id}
}

func PageTarget(slug string) CommentTarget {
	return CommentTarget{pageSlug: slug}
}

func (t CommentTarget) PostID() (int64, bool) {
	return t.postID, t.postID != 0
}

func (t CommentTarget) PageSlug() (string, bool) {
	return t.pageSlug, t.pageSlug != ""
}

func (t CommentTarget) IsZero() bool {
	return t.postID == 0 && t.pageSlug == ""
}

type Comment struct {
	ID     int64
	Target CommentTarget
	// ParentID is the id of the comment this one replies to; zero for
	// top-level comments.
	ParentID    int64
	AuthorName  string
	AuthorEmail string
	Body        string
	State       CommentState
	// SourceAddr and UserAgent identify the submitter; kept for
	// moderation and auditing, never shown on the public side.
	SourceAddr string
	UserAgent  string
	Created    time.Time
}

// CommentFilter narrows moderator listings. A zero Target matches comments
// on any post or page; an empty State matches all states.
type CommentFilter struct {
	Target CommentTarget
	State  CommentState
}
