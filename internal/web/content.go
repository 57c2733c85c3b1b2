package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/domain"
	"github.com/sidereusnuntius/zblog/internal/service"
)

type postJSON struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Content     string     `json:"content,omitempty"`
	Status      string     `json:"status"`
	ViewCount   int64      `json:"view_count"`
	Tags        []tagJSON  `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type tagJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type pageJSON struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPostJSON(p domain.Post, withContent bool) postJSON {
	out := postJSON{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		Status:      string(p.State),
		ViewCount:   p.ViewCount,
		Tags:        make([]tagJSON, 0, len(p.Tags)),
		CreatedAt:   p.Created,
		UpdatedAt:   p.Updated,
		PublishedAt: p.Published,
	}
	if withContent {
		out.Content = p.Content
	}
	for _, t := range p.Tags {
		out.Tags = append(out.Tags, tagJSON(t))
	}
	return out
}

func toPageJSON(p domain.Page) pageJSON {
	return pageJSON{ID: p.ID, Slug: p.Slug, Title: p.Title, Content: p.Content, UpdatedAt: p.Updated}
}

// ListPosts returns published posts, newest first, optionally narrowed to
// one tag. Listings omit the post bodies.
func ListPosts(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, size := pagination(r)
		posts, total, err := h.service.ListPosts(r.Context(), r.URL.Query().Get("tag"), page, size)
		if err != nil {
			respondError(w, err)
			return
		}

		items := make([]postJSON, 0, len(posts))
		for _, p := range posts {
			items = append(items, toPostJSON(p, false))
		}
		writeJSON(w, http.StatusOK, listResponse[postJSON]{Items: items, Total: total, Page: max(page, 1)})
	}
}

// GetPost returns one published post by slug and counts the view.
func GetPost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPostJSON(post, true))
	}
}

func GetPage(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.service.GetPage(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPageJSON(page))
	}
}

func ListTags(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.service.ListTags(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}

		items := make([]tagJSON, 0, len(tags))
		for _, t := range tags {
			items = append(items, tagJSON(t))
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func GetSiteConfig(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := h.service.GetSiteConfig(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, values)
	}
}

// Admin handlers.

type postBody struct {
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	Excerpt    string  `json:"excerpt"`
	CoverImage string  `json:"cover_image"`
	Content    string  `json:"content"`
	TagIDs     []int64 `json:"tag_ids"`
}

func (b postBody) toInput() service.PostInput {
	return service.PostInput{
		Title:      b.Title,
		Slug:       b.Slug,
		Excerpt:    b.Excerpt,
		CoverImage: b.CoverImage,
		Content:    b.Content,
		TagIDs:     b.TagIDs,
	}
}

// AdminListPosts lists posts in every state, with optional status and tag
// filters.
func AdminListPosts(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := db.PostFilter{
			State:   domain.PostState(r.URL.Query().Get("status")),
			TagSlug: r.URL.Query().Get("tag"),
		}
		page, size := pagination(r)

		posts, total, err := h.service.ListAllPosts(r.Context(), filter, page, size)
		if err != nil {
			respondError(w, err)
			return
		}

		items := make([]postJSON, 0, len(posts))
		for _, p := range posts {
			items = append(items, toPostJSON(p, false))
		}
		writeJSON(w, http.StatusOK, listResponse[postJSON]{Items: items, Total: total, Page: max(page, 1)})
	}
}

func CreatePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body postBody
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		post, err := h.service.CreatePost(r.Context(), body.toInput())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPostJSON(post, true))
	}
}

func UpdatePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post id")
			return
		}

		var body postBody
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := h.service.UpdatePost(r.Context(), id, body.toInput()); err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "post updated"})
	}
}

func DeletePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post id")
			return
		}

		if err := h.service.DeletePost(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "post deleted"})
	}
}

// SetPostPublished toggles a post between draft and published.
func SetPostPublished(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post id")
			return
		}

		var body struct {
			Published bool `json:"published"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := h.service.SetPostPublished(r.Context(), id, body.Published); err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "post updated"})
	}
}

func CreateTag(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
			Slug string `json:"slug"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		tag, err := h.service.CreateTag(r.Context(), body.Name, body.Slug)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, tagJSON(tag))
	}
}

func DeleteTag(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid tag id")
			return
		}

		if err := h.service.DeleteTag(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "tag deleted"})
	}
}

// SavePage creates or replaces the page at the slug in the URL.
func SavePage(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		page, err := h.service.SavePage(r.Context(), chi.URLParam(r, "slug"), body.Title, body.Content)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPageJSON(page))
	}
}

func SetSiteConfig(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := h.service.SetSiteConfig(r.Context(), body); err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "site config updated"})
	}
}

func GetStats(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.service.GetStats(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, struct {
			TotalViews     int64 `json:"total_views"`
			PostCount      int64 `json:"post_count"`
			PublishedCount int64 `json:"published_post_count"`
			CommentCount   int64 `json:"comment_count"`
			TagCount       int64 `json:"tag_count"`
		}{stats.TotalViews, stats.PostCount, stats.PublishedPostCount, stats.CommentCount, stats.TagCount})
	}
}
