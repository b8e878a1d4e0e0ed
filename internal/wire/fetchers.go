package wire

import (
	"context"

	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/subscription"
)

// registerFetchers gives the hub one snapshot loader per live collection.
// An empty owner loads every record.
func registerFetchers(hub *subscription.Hub, repo *repository.Repository) {
	hub.Register(subscription.Bookings, func(ctx context.Context, f subscription.Filter) (any, error) {
		if f.OwnerID == "" {
			return repo.Booking.FindAll(ctx)
		}
		return repo.Booking.FindByUserID(ctx, f.OwnerID)
	})
	hub.Register(subscription.CustomRequests, func(ctx context.Context, f subscription.Filter) (any, error) {
		if f.OwnerID == "" {
			return repo.CustomRequest.FindAll(ctx)
		}
		return repo.CustomRequest.FindByUserID(ctx, f.OwnerID)
	})
	hub.Register(subscription.Submissions, func(ctx context.Context, f subscription.Filter) (any, error) {
		if f.OwnerID == "" {
			return repo.Submission.FindAll(ctx)
		}
		return repo.Submission.FindByOwnerID(ctx, f.OwnerID)
	})
	hub.Register(subscription.Feedback, func(ctx context.Context, _ subscription.Filter) (any, error) {
		return repo.Feedback.FindAll(ctx)
	})
}
