package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStream(
	r chi.Router,
	handler *adaptor.StreamHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(middleware.AuthSession(repo.Session, log)).Get("/api/stream/{collection}", handler.Stream)
}
