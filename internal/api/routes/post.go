package routes

import (
	"net/http"

	"Agora/internal/api/handlers/post"
	"Agora/internal/api/middleware"
	"Agora/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post endpoints on the router.
// Every route resolves the caller optionally; the service decides whether an identity is required.
// Extra middlewares run after identity resolution, so per-user limits can see the caller.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware, after ...func(http.Handler) http.Handler) {
	createHandler := post.NewCreateHandler(service)
	getHandler := post.NewGetHandler(service)
	listHandler := post.NewListHandler(service)
	likeHandler := post.NewLikeHandler(service)
	editHandler := post.NewEditHandler(service)
	saveHandler := post.NewSaveHandler(service)

	r.Route("/api/v1/post", func(r chi.Router) {
		r.Use(authMiddleware.OptionalAuth)
		r.Use(after...)

		r.Get("/", getHandler.HandleGet)
		r.Get("/list", listHandler.HandleList)

		r.Post("/", createHandler.HandleCreate)
		r.Put("/", editHandler.HandleEdit)
		r.Post("/like", likeHandler.HandleLike)
		r.Put("/save", saveHandler.HandleSave)
	})
}
