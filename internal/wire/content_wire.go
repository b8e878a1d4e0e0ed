package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireContent configures site settings, sights and blog routes
func wireContent(
	r chi.Router,
	handler *adaptor.ContentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/content", handler.GetContent)
	r.Get("/api/sights", handler.ListSights)
	r.Get("/api/blogs", handler.ListPosts)
	r.Get("/api/blogs/{id}", handler.GetPost)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(admin(repo, log)...)

		r.Put("/api/admin/content", handler.UpdateContent)

		r.Post("/api/admin/sights", handler.CreateSight)
		r.Put("/api/admin/sights/{id}", handler.UpdateSight)
		r.Delete("/api/admin/sights/{id}", handler.DeleteSight)

		r.Post("/api/admin/blogs", handler.CreatePost)
		r.Put("/api/admin/blogs/{id}", handler.UpdatePost)
		r.Delete("/api/admin/blogs/{id}", handler.DeletePost)
	})
}
