package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/zblog/internal/domain"
	"github.com/sidereusnuntius/zblog/internal/service"
)

// commentJSON is the public shape of a comment. The author's email and the
// submission metadata stay server-side.
type commentJSON struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"post_id,omitempty"`
	PageSlug   string    `json:"page_slug,omitempty"`
	ParentID   int64     `json:"parent_id,omitempty"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// adminCommentJSON extends the public shape with everything a moderator
// needs.
type adminCommentJSON struct {
	commentJSON
	AuthorEmail string `json:"author_email"`
	Status      string `json:"status"`
	IP          string `json:"ip,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
}

func toCommentJSON(c domain.Comment) commentJSON {
	out := commentJSON{
		ID:         c.ID,
		ParentID:   c.ParentID,
		AuthorName: c.AuthorName,
		Content:    c.Body,
		CreatedAt:  c.Created,
	}
	if id, ok := c.Target.PostID(); ok {
		out.PostID = id
	}
	if slug, ok := c.Target.PageSlug(); ok {
		out.PageSlug = slug
	}
	return out
}

func toAdminCommentJSON(c domain.Comment) adminCommentJSON {
	return adminCommentJSON{
		commentJSON: toCommentJSON(c),
		AuthorEmail: c.AuthorEmail,
		Status:      string(c.State),
		IP:          c.SourceAddr,
		UserAgent:   c.UserAgent,
	}
}

type listResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
}

// SubmitComment accepts a visitor comment on a post or a page. The comment
// enters moderation; the response reflects the pending state.
func SubmitComment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PostID      int64  `json:"post_id"`
			PageSlug    string `json:"page_slug"`
			ParentID    int64  `json:"parent_id"`
			AuthorName  string `json:"author_name"`
			AuthorEmail string `json:"author_email"`
			Content     string `json:"content"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		comment, err := h.service.SubmitComment(r.Context(), service.CommentSubmission{
			PostID:      body.PostID,
			PageSlug:    body.PageSlug,
			ParentID:    body.ParentID,
			AuthorName:  body.AuthorName,
			AuthorEmail: body.AuthorEmail,
			Body:        body.Content,
			SourceAddr:  h.ClientIP(r),
			UserAgent:   r.UserAgent(),
		})
		if err != nil {
			respondError(w, err)
			return
		}

		out := toCommentJSON(comment)
		writeJSON(w, http.StatusCreated, struct {
			commentJSON
			Status string `json:"status"`
		}{out, string(comment.State)})
	}
}

// ListComments returns the approved comments on one target, oldest first.
func ListComments(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := int64(queryInt(r, "post_id", 0))
		pageSlug := r.URL.Query().Get("page_slug")
		page, size := pagination(r)

		comments, total, err := h.service.ListPublicComments(r.Context(), postID, pageSlug, page, size)
		if err != nil {
			respondError(w, err)
			return
		}

		items := make([]commentJSON, 0, len(comments))
		for _, c := range comments {
			items = append(items, toCommentJSON(c))
		}
		writeJSON(w, http.StatusOK, listResponse[commentJSON]{Items: items, Total: total, Page: max(page, 1)})
	}
}

// AdminListComments is the moderation queue: every state, newest first,
// optionally narrowed to one target (a post or a page) or one state.
func AdminListComments(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.CommentFilter{
			State: domain.CommentState(r.URL.Query().Get("status")),
		}
		postID := int64(queryInt(r, "post_id", 0))
		pageSlug := r.URL.Query().Get("page_slug")
		switch {
		case postID != 0 && pageSlug != "":
			writeError(w, http.StatusBadRequest, "filter by either post_id or page_slug, not both")
			return
		case postID != 0:
			filter.Target = domain.PostTarget(postID)
		case pageSlug != "":
			filter.Target = domain.PageTarget(pageSlug)
		}
		page, size := pagination(r)

		comments, total, err := h.service.ListComments(r.Context(), filter, page, size)
		if err != nil {
			respondError(w, err)
			return
		}

		items := make([]adminCommentJSON, 0, len(comments))
		for _, c := range comments {
			items = append(items, toAdminCommentJSON(c))
		}
		writeJSON(w, http.StatusOK, listResponse[adminCommentJSON]{Items: items, Total: total, Page: max(page, 1)})
	}
}

// SetCommentStatus approves or rejects a comment.
func SetCommentStatus(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid comment id")
			return
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := h.service.SetCommentState(r.Context(), id, domain.CommentState(body.Status)); err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "comment " + body.Status})
	}
}

func DeleteComment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid comment id")
			return
		}

		if err := h.service.DeleteComment(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "comment deleted"})
	}
}
