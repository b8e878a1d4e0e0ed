package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomRequest(
	r chi.Router,
	handler *adaptor.CustomRequestHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Post("/api/custom-requests", handler.Submit)
		r.Get("/api/user/custom-requests", handler.ListMine)
	})

	r.With(admin(repo, log)...).Route("/api/admin/custom-requests", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Put("/{id}/status", handler.UpdateStatus)
	})
}
