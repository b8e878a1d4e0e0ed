package repository

import (
	"errors"

	"tourism-booking/pkg/database"

	"go.uber.org/zap"
)

// ErrSignInRequired is returned by creates that need an owning identity
var ErrSignInRequired = errors.New("unauthorized: sign in required to submit a request")

type Repository struct {
	User          UserRepository
	Session       SessionRepository
	Tour          TourRepository
	Sight         SightRepository
	Blog          BlogRepository
	Booking       BookingRepository
	CustomRequest CustomRequestRepository
	Submission    SubmissionRepository
	Feedback      FeedbackRepository
	Content       ContentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Session:       NewSessionRepository(db, log),
		Tour:          NewTourRepository(db, log),
		Sight:         NewSightRepository(db, log),
		Blog:          NewBlogRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		CustomRequest: NewCustomRequestRepository(db, log),
		Submission:    NewSubmissionRepository(db, log),
		Feedback:      NewFeedbackRepository(db, log),
		Content:       NewContentRepository(db, log),
	}
}

// nonNil keeps text[] columns out of NULL
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
