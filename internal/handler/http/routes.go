package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/paveldk/go-blog-api/models"
)

// Init assembles the chi router for the REST API.
//
// Three tiers of access:
//   - public: registration, login, health, the published feed, and all reads;
//   - authenticated: commenting, for any logged-in user;
//   - authors only: post creation and every post mutation. Ownership of the
//     specific post or comment is enforced one level down, in the services.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/", h.health)

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)

			r.Get("/posts", h.listPosts)
			r.Get("/posts/{postID}", h.getPost)
			r.Get("/posts/{postID}/comments", h.listComments)
			r.Get("/comments/{commentID}", h.getComment)
		})

		// routes that require a valid token
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/posts/{postID}/comments", h.createComment)
			r.Put("/comments/{commentID}", h.updateComment)
			r.Delete("/comments/{commentID}", h.deleteComment)

			// routes that additionally require the AUTHOR role
			r.Group(func(authorOnly chi.Router) {
				authorOnly.Use(h.requireRole(models.RoleAuthor))

				authorOnly.Post("/posts", h.createPost)
				authorOnly.Put("/posts/{postID}", h.updatePost)
				authorOnly.Patch("/posts/{postID}/publish", h.togglePublish)
				authorOnly.Delete("/posts/{postID}", h.deletePost)
			})
		})
	})

	return router
}
