package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/taijii-c/portfolio-site-backend/authz"
)

// setupRoutes wires the public browsing surface and the gated mutation
// surface. Ownership checks beyond the coarse role gates live inside the
// handlers, evaluated against the stored records.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	// Public routes: anyone may browse.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/home", handlers.homeHandler.getHome())
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/articles", handlers.articleHandler.listArticles())
		r.Get("/article/{articleID}", handlers.articleHandler.getArticle())
	})

	// Authenticated routes.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.authenticate)

		// Projects are ownerless; mutation is Admin-only.
		r.Group(func(r chi.Router) {
			r.Use(requireRoles(authz.RoleAdmin))

			r.Post("/project", handlers.projectHandler.createProject())
			r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		})

		// Articles require an elevated role; edits and deletes additionally
		// pass the ownership check in the handler.
		r.Group(func(r chi.Router) {
			r.Use(requireRoles(authz.RoleAdmin, authz.RoleAuthor))

			r.Post("/article", handlers.articleHandler.createArticle())
			r.Put("/article/{articleID}", handlers.articleHandler.updateArticle())
			r.Delete("/article/{articleID}", handlers.articleHandler.deleteArticle())
		})

		// Any authenticated user may comment; deletion is owner-or-Admin,
		// checked in the handler.
		r.Post("/article/{articleID}/comments", handlers.commentHandler.createComment())
		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())
	})
}
