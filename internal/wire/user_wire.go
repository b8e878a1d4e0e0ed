package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures profile and user management routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED USER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Get("/api/user/profile", userHandler.GetProfile)
		r.Put("/api/user/profile", userHandler.SaveProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(admin(repo, log)...).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)         // GET /api/admin/users?page=1&per_page=10
		r.Put("/{id}/role", userHandler.UpdateRole) // PUT /api/admin/users/{id}/role
	})
}
