package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - submit a booking request
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - own bookings, local copy when the server is down
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(admin(repo, log)...).Route("/api/admin/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.ListBookings)
		r.Put("/{id}/status", bookingHandler.UpdateStatus)
	})
}
