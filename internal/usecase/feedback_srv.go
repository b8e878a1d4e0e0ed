package usecase

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/subscription"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackService interface {
	Submit(ctx context.Context, req *request.CreateFeedbackRequest) (*entity.Feedback, error)
	List(ctx context.Context) ([]entity.Feedback, error)
	Respond(ctx context.Context, id string, req *request.RespondFeedbackRequest) error
}

type feedbackService struct {
	repo  repository.FeedbackRepository
	infra Infra
	log   *zap.Logger
}

func NewFeedbackService(repo repository.FeedbackRepository, infra Infra, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo:  repo,
		infra: infra,
		log:   log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) Submit(ctx context.Context, req *request.CreateFeedbackRequest) (*entity.Feedback, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	fb := &entity.Feedback{
		ID:        uuid.New(),
		Name:      req.Name,
		Rating:    req.Rating,
		Comments:  req.Comments,
		CreatedAt: s.infra.Now(),
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	s.infra.Changes.Notify(subscription.Feedback)

	s.log.Info("Feedback received", zap.String("feedback_id", fb.ID.String()), zap.Int("rating", fb.Rating))
	return fb, nil
}

func (s *feedbackService) List(ctx context.Context) ([]entity.Feedback, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	return entries, nil
}

func (s *feedbackService) Respond(ctx context.Context, id string, req *request.RespondFeedbackRequest) error {
	if err := utils.Validate(req); err != nil {
		return err
	}
	feedbackID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid feedback ID")
	}

	if err := s.repo.UpdateResponse(ctx, feedbackID, req.Response); err != nil {
		return err
	}
	s.infra.Changes.Notify(subscription.Feedback)
	return nil
}
