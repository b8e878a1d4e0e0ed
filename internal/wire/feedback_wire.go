package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFeedback(
	r chi.Router,
	handler *adaptor.FeedbackHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Get("/api/feedback", handler.List)
	r.Post("/api/feedback", handler.Submit)

	r.With(admin(repo, log)...).Put("/api/admin/feedback/{id}/response", handler.Respond)
}
