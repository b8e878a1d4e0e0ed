package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/subscription"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContentService_GetSettingsDefaults(t *testing.T) {
	f := newFixture(t)
	content := &MockContentRepo{}
	f.repo.Content = content
	content.On("Get", mock.Anything).Return(nil, errors.New("offline")).Once()

	srv := NewContentService(f.repo, f.infra, f.log)
	settings, err := srv.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultContent, *settings)
}

func TestContentService_GetSettingsMergesStored(t *testing.T) {
	f := newFixture(t)
	content := &MockContentRepo{}
	f.repo.Content = content
	updated := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	content.On("Get", mock.Anything).Return(&entity.ContentSettings{HeroHeadline: "Welcome", UpdatedAt: updated}, nil)

	settings, err := NewContentService(f.repo, f.infra, f.log).GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Welcome", settings.HeroHeadline)
	assert.Equal(t, DefaultContent.ContactEmail, settings.ContactEmail)
	assert.Equal(t, updated, settings.UpdatedAt)
}

func TestContentService_InvalidIDs(t *testing.T) {
	f := newFixture(t)
	srv := NewContentService(f.repo, f.infra, f.log)

	assert.ErrorContains(t, srv.DeleteSight(context.Background(), "x"), "invalid sight ID")
	_, err := srv.GetPost(context.Background(), "x")
	assert.ErrorContains(t, err, "invalid blog post ID")
}

func TestFeedbackService_SubmitAndRespond(t *testing.T) {
	f := newFixture(t)
	repo := &MockFeedbackRepo{}
	ctx := context.Background()
	repo.On("Create", ctx, mock.MatchedBy(func(fb *entity.Feedback) bool {
		return fb.Rating == 5 && fb.CreatedAt.Equal(testNow)
	})).Return(nil).Once()

	srv := NewFeedbackService(repo, f.infra, f.log)
	fb, err := srv.Submit(ctx, &request.CreateFeedbackRequest{Name: "Aida", Rating: 5, Comments: "Wonderful guides and food."})
	require.NoError(t, err)

	repo.On("UpdateResponse", ctx, fb.ID, "Thank you!").Return(nil).Once()
	require.NoError(t, srv.Respond(ctx, fb.ID.String(), &request.RespondFeedbackRequest{Response: "Thank you!"}))

	assert.Equal(t, []subscription.Collection{subscription.Feedback, subscription.Feedback}, f.rec.changes)
	repo.AssertExpectations(t)
}

func TestFeedbackService_RejectsShortComments(t *testing.T) {
	f := newFixture(t)
	repo := &MockFeedbackRepo{}

	_, err := NewFeedbackService(repo, f.infra, f.log).Submit(context.Background(), &request.CreateFeedbackRequest{Name: "A", Rating: 6, Comments: "meh"})
	assert.ErrorContains(t, err, "validation failed")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
