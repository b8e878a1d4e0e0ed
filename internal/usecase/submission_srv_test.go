package usecase

import (
	"context"
	"testing"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/subscription"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func submissionRequest() *request.CreateSubmissionRequest {
	return &request.CreateSubmissionRequest{
		Title:        "Eagle hunting weekend",
		Description:  "Meet the berkutchi of Bokonbaevo.",
		Highlights:   []string{"Falconry show", " ", ""},
		Itinerary:    []string{"Drive to the lake", "", "Hunt demo"},
		ContactName:  "Nurlan",
		ContactEmail: "nurlan@example.com",
	}
}

func newSubmissionService(f *fixture) SubmissionService {
	return NewSubmissionService(f.repo, NewTourService(f.tours, f.infra, f.config, f.log), f.infra, f.config, f.log)
}

func TestPromoteSubmission_Defaults(t *testing.T) {
	tour := PromoteSubmission(entity.SellerSubmission{
		Description: "desc",
		Itinerary:   []string{"Arrive", "Ride"},
	}, testNow)

	assert.Equal(t, testNow.UnixMilli(), tour.ID)
	assert.Equal(t, "New Tour", tour.Title)
	assert.Equal(t, "TBD", tour.Duration)
	assert.Equal(t, "Custom", tour.TourType)
	assert.Equal(t, "All seasons", tour.Season)
	assert.Equal(t, "To be confirmed", tour.PracticalInfo.Accommodation)
	assert.Equal(t, "Moderate", tour.PracticalInfo.Difficulty)
	assert.Equal(t, "4-10 participants", tour.PracticalInfo.GroupSize)
	assert.NotNil(t, tour.Highlights)
	assert.NotNil(t, tour.PackingList)

	require.Len(t, tour.Itinerary, 2)
	assert.Equal(t, entity.ItineraryDay{Day: 2, Title: "Day 2", Description: "Ride"}, tour.Itinerary[1])
	assert.True(t, tour.ItineraryContiguous())
}

func TestSubmissionService_SubmitRemote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.subs.On("Create", ctx, mock.MatchedBy(func(s *entity.SellerSubmission) bool {
		return s.OwnerID == "seller-1" && len(s.Highlights) == 1 && len(s.Itinerary) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.SellerSubmission).ID = "sub-1"
	}).Return(nil).Once()

	sub, err := newSubmissionService(f).Submit(ctx, "seller-1", submissionRequest())
	require.NoError(t, err)
	assert.Equal(t, "sub-1", sub.ID)
	assert.Equal(t, []subscription.Collection{subscription.Submissions}, f.rec.changes)

	local, err := f.local.LoadSubmissions(ctx, "seller-1")
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, "sub-1", local[0].ID)

	profile, err := f.local.LoadProfile(ctx, "seller-1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, entity.RoleSeller, profile.Role)
}

func TestSubmissionService_SubmitRequiresOwnerWhenConfigured(t *testing.T) {
	f := newFixture(t)
	f.subs.On("Create", mock.Anything, mock.Anything).Return(repository.ErrSignInRequired)

	_, err := newSubmissionService(f).Submit(context.Background(), "", submissionRequest())
	assert.ErrorIs(t, err, repository.ErrSignInRequired)
	assert.Empty(t, f.rec.changes)
}

func TestSubmissionService_SubmitLocalOnly(t *testing.T) {
	f := newFixture(t)
	f.unconfigured()
	ctx := context.Background()

	sub, err := newSubmissionService(f).Submit(ctx, "", submissionRequest())
	require.NoError(t, err)
	assert.Equal(t, "1714555800000", sub.ID)
	f.subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	local, err := f.local.LoadSubmissions(ctx, "nurlan@example.com")
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, "Eagle hunting weekend", local[0].Title)
	assert.Equal(t, entity.StatusPending, local[0].Status)
	assert.Equal(t, sub.ID, local[0].ID)
	assert.Equal(t, testNow, sub.CreatedAt)
	assert.True(t, testNow.Equal(local[0].SubmittedAt))
}

func TestSubmissionService_ListMineFallsBackToLocal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.local.AppendSubmission(ctx, "seller-1", entity.SellerSubmission{Title: "Draft"})
	require.NoError(t, err)
	f.subs.On("FindByOwnerID", ctx, "seller-1").Return([]entity.SellerSubmission{}, nil)

	list, err := newSubmissionService(f).ListMine(ctx, "seller-1")
	require.NoError(t, err)
	assert.True(t, list.UsingFallback)
	assert.Equal(t, msgLocalSubmissions, list.Message)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Draft", list.Items[0].Title)
}

func TestSubmissionService_Approve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := &entity.SellerSubmission{ID: "sub-9", Title: "Yurt camp", Price: "$120", Itinerary: []string{"Arrive"}}

	f.subs.On("FindByID", ctx, "sub-9").Return(stored, nil)
	f.subs.On("UpdateStatus", ctx, "sub-9", entity.StatusApproved).Return(nil).Once()
	f.tours.On("Create", ctx, mock.MatchedBy(func(tr *entity.Tour) bool {
		return tr.Title == "Yurt camp" && tr.Price == "$120"
	})).Return(nil).Once()
	f.cache.On("InvalidateTours", ctx).Return(nil)

	tour, err := newSubmissionService(f).Approve(ctx, "sub-9")
	require.NoError(t, err)
	assert.Equal(t, testNow.UnixMilli(), tour.ID)
	assert.Equal(t, []subscription.Collection{subscription.Submissions}, f.rec.changes)
	f.subs.AssertExpectations(t)
	f.tours.AssertExpectations(t)
}

func TestSubmissionService_ApproveMissing(t *testing.T) {
	f := newFixture(t)
	f.subs.On("FindByID", mock.Anything, "gone").Return(nil, nil)

	_, err := newSubmissionService(f).Approve(context.Background(), "gone")
	assert.ErrorContains(t, err, "not found")
	f.subs.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
