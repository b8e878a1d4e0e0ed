package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSubmission(
	r chi.Router,
	handler *adaptor.SubmissionHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST is open so proposals can be kept locally without a backend; the
	// service still demands an owner once one is configured
	r.With(middleware.OptionalAuth(repo.Session, log)).Post("/api/seller/submissions", handler.Submit)
	r.With(middleware.AuthSession(repo.Session, log)).Get("/api/seller/submissions", handler.ListMine)

	r.With(admin(repo, log)...).Route("/api/admin/submissions", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Put("/{id}/status", handler.UpdateStatus)
		r.Post("/{id}/approve", handler.Approve)
	})
}
