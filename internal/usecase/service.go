package usecase

import (
	"context"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/localstore"
	"tourism-booking/internal/subscription"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

// TourCache is the read-through cache in front of the tours table
type TourCache interface {
	GetTours(ctx context.Context) ([]entity.Tour, error)
	SetTours(ctx context.Context, tours []entity.Tour) error
	InvalidateTours(ctx context.Context) error
}

// LocalStore is the per-owner fallback copy
type LocalStore interface {
	LoadProfile(ctx context.Context, owner string) (*entity.User, error)
	SaveProfile(ctx context.Context, owner string, profile entity.User) error
	LoadBookings(ctx context.Context, owner string) ([]localstore.LocalBooking, error)
	AppendBooking(ctx context.Context, owner string, booking entity.Booking) error
	LoadSubmissions(ctx context.Context, owner string) ([]localstore.LocalSubmission, error)
	AppendSubmission(ctx context.Context, owner string, sub entity.SellerSubmission) (localstore.LocalSubmission, error)
}

// ChangeNotifier tells live subscribers that a collection changed
type ChangeNotifier interface {
	Notify(c subscription.Collection)
}

// EventNotifier hands creation events to the email side channel
type EventNotifier interface {
	BookingCreated(b entity.Booking)
	CustomRequestCreated(r entity.CustomTourRequest)
}

// Infra groups the non-database collaborators shared by the services
type Infra struct {
	Cache   TourCache
	Local   LocalStore
	Changes ChangeNotifier
	Events  EventNotifier
	Now     func() time.Time
}

type Service struct {
	Auth          AuthService
	User          UserService
	Tour          TourService
	Booking       BookingService
	CustomRequest CustomRequestService
	Submission    SubmissionService
	Feedback      FeedbackService
	Content       ContentService
}

func NewService(repo *repository.Repository, infra Infra, config *utils.Config, log *zap.Logger) *Service {
	if infra.Now == nil {
		infra.Now = time.Now
	}
	tours := NewTourService(repo.Tour, infra, config, log)
	return &Service{
		Auth:          NewAuthService(repo, infra, config, log),
		User:          NewUserService(repo, infra, log),
		Tour:          tours,
		Booking:       NewBookingService(repo, tours, infra, config, log),
		CustomRequest: NewCustomRequestService(repo.CustomRequest, infra, config, log),
		Submission:    NewSubmissionService(repo, tours, infra, config, log),
		Feedback:      NewFeedbackService(repo.Feedback, infra, log),
		Content:       NewContentService(repo, infra, log),
	}
}
