package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	r.Use(Logging)

	r.Route("/api", func(r chi.Router) {
		r.Get("/posts", ListPosts(h))
		r.Get("/posts/{slug}", GetPost(h))
		r.Get("/pages/{slug}", GetPage(h))
		r.Get("/tags", ListTags(h))
		r.Get("/site", GetSiteConfig(h))

		r.Get("/comments", ListComments(h))
		r.Post("/comments", SubmitComment(h))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", Login(h))

		r.Group(func(r chi.Router) {
			r.Use(Authenticated(h))

			r.Get("/me", Me(h))
			r.Post("/change-password", ChangePassword(h))

			r.Get("/comments", AdminListComments(h))
			r.Put("/comments/{id}/status", SetCommentStatus(h))
			r.Delete("/comments/{id}", DeleteComment(h))

			r.Get("/posts", AdminListPosts(h))
			r.Post("/posts", CreatePost(h))
			r.Put("/posts/{id}", UpdatePost(h))
			r.Delete("/posts/{id}", DeletePost(h))
			r.Put("/posts/{id}/published", SetPostPublished(h))

			r.Post("/tags", CreateTag(h))
			r.Delete("/tags/{id}", DeleteTag(h))

			r.Put("/pages/{slug}", SavePage(h))
			r.Put("/site", SetSiteConfig(h))
			r.Get("/stats", GetStats(h))
		})
	})
}
