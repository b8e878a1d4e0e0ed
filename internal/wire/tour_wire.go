package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTour(
	r chi.Router,
	tourHandler *adaptor.TourHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/tours", tourHandler.ListTours)
	r.Get("/api/tours/{id}", tourHandler.GetTour)
	r.Post("/api/tours/{id}/quote", tourHandler.Quote)

	// ==================== ADMIN ROUTES ====================
	r.With(admin(repo, log)...).Route("/api/admin/tours", func(r chi.Router) {
		r.Post("/", tourHandler.CreateTour)
		r.Put("/{id}", tourHandler.UpdateTour)
		r.Delete("/{id}", tourHandler.DeleteTour)
	})
}
