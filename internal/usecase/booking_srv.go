package usecase

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/bookingflow"
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/subscription"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgSynced             = "Synced from the server."
	msgLocalBookings      = "Showing locally saved bookings."
	msgLocalBookingsError = "Showing locally saved bookings. Server sync unavailable."
)

type BookingService interface {
	Quote(ctx context.Context, tourID int64, participants int) (*response.QuoteResponse, error)
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*entity.Booking, error)
	GetUserBookings(ctx context.Context, userID string) (*response.FallbackList[entity.Booking], error)
	ListBookings(ctx context.Context) ([]entity.Booking, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateStatusRequest) error
}

type bookingService struct {
	repo       *repository.Repository
	tours      TourService
	infra      Infra
	configured bool
	log        *zap.Logger
}

func NewBookingService(repo *repository.Repository, tours TourService, infra Infra, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:       repo,
		tours:      tours,
		infra:      infra,
		configured: config.Database.Configured(),
		log:        log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Quote(ctx context.Context, tourID int64, participants int) (*response.QuoteResponse, error) {
	tour, err := s.tours.GetTour(ctx, tourID)
	if err != nil {
		return nil, err
	}

	flow := bookingflow.New(*tour, bookingflow.Deps{})
	if err := flow.SetParticipants(participants); err != nil {
		return nil, err
	}

	return &response.QuoteResponse{
		TourID:         tour.ID,
		Participants:   flow.Participants(),
		PricePerPerson: tour.Price,
		UnitPrice:      flow.UnitPrice(),
		TotalAmount:    flow.Total(),
		TotalPrice:     bookingflow.FormatTotal(flow.Total(), tour.Price),
	}, nil
}

// CreateBooking walks one booking flow from details to done
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*entity.Booking, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	tour, err := s.tours.GetTour(ctx, req.TourID)
	if err != nil {
		return nil, err
	}

	flow := bookingflow.New(*tour, bookingflow.Deps{
		Configured: s.configured,
		UserID:     userID,
		Submitter:  s.repo.Booking,
		Mirror:     s.infra.Local,
		Log:        s.log,
		Now:        s.infra.Now,
	})

	if err := flow.SubmitDetails(req.Details); err != nil {
		s.log.Warn("Booking details rejected", zap.Error(err), zap.Int64("tour_id", tour.ID))
		return nil, err
	}

	booking, err := flow.SubmitPayment(ctx, req.Payment)
	if err != nil {
		s.log.Warn("Booking payment step failed", zap.Error(err), zap.Int64("tour_id", tour.ID))
		return nil, err
	}

	s.syncBuyerProfile(ctx, booking)
	s.infra.Changes.Notify(subscription.Bookings)
	s.infra.Events.BookingCreated(*booking)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.Int64("tour_id", booking.TourID),
		zap.String("user_id", userID),
		zap.Int("participants", booking.Participants),
	)
	return booking, nil
}

// syncBuyerProfile records the booker on the server profile. An empty role
// keeps whatever role the profile already has.
func (s *bookingService) syncBuyerProfile(ctx context.Context, b *entity.Booking) {
	_, err := s.repo.User.Upsert(ctx, &entity.User{ID: b.UserID, Name: b.Name, Email: b.Email})
	if err != nil {
		s.log.Warn("Profile sync after booking failed", zap.Error(err), zap.String("user_id", b.UserID))
	}
}

// GetUserBookings prefers the server copy and degrades to the local one
func (s *bookingService) GetUserBookings(ctx context.Context, userID string) (*response.FallbackList[entity.Booking], error) {
	local, err := s.infra.Local.LoadBookings(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to load local bookings", zap.Error(err), zap.String("user_id", userID))
	}
	localItems := make([]entity.Booking, len(local))
	for i, b := range local {
		localItems[i] = b.Booking
		if localItems[i].CreatedAt.IsZero() {
			localItems[i].CreatedAt = b.SubmittedAt
		}
	}

	remote, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Warn("Serving local bookings", zap.Error(err), zap.String("user_id", userID))
		return response.NewFallbackList(localItems, true, msgLocalBookingsError), nil
	}
	if len(remote) > 0 || len(localItems) == 0 {
		return response.NewFallbackList(remote, false, msgSynced), nil
	}
	return response.NewFallbackList(localItems, true, msgLocalBookings), nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]entity.Booking, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, req *request.UpdateStatusRequest) error {
	if err := utils.Validate(req); err != nil {
		return err
	}
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid booking ID")
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.Status(req.Status)); err != nil {
		return err
	}
	s.infra.Changes.Notify(subscription.Bookings)

	s.log.Info("Booking status updated",
		zap.String("booking_id", id),
		zap.String("status", req.Status),
	)
	return nil
}
