package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/subscription"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomRequestService interface {
	Submit(ctx context.Context, userID string, req *request.CreateCustomRequest) (*entity.CustomTourRequest, error)
	ListMine(ctx context.Context, userID string) ([]entity.CustomTourRequest, error)
	List(ctx context.Context) ([]entity.CustomTourRequest, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateStatusRequest) error
}

type customRequestService struct {
	repo       repository.CustomRequestRepository
	infra      Infra
	configured bool
	log        *zap.Logger
}

func NewCustomRequestService(repo repository.CustomRequestRepository, infra Infra, config *utils.Config, log *zap.Logger) CustomRequestService {
	return &customRequestService{
		repo:       repo,
		infra:      infra,
		configured: config.Database.Configured(),
		log:        log.With(zap.String("service", "custom_request")),
	}
}

func (s *customRequestService) Submit(ctx context.Context, userID string, req *request.CreateCustomRequest) (*entity.CustomTourRequest, error) {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Custom request validation failed", zap.Error(err))
		return nil, err
	}
	if !s.configured {
		return nil, database.ErrNotConfigured
	}
	if userID == "" {
		return nil, repository.ErrSignInRequired
	}

	now := s.infra.Now()
	cr := &entity.CustomTourRequest{
		ID:              uuid.New(),
		GroupSize:       req.GroupSize,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		StartLocation:   req.StartLocation,
		EndLocation:     req.EndLocation,
		Sights:          uniqueStrings(req.Sights),
		Activities:      uniqueStrings(req.Activities),
		Pace:            req.Pace,
		Accommodation:   req.Accommodation,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Budget:          req.Budget,
		SpecialRequests: req.SpecialRequests,
		UserID:          userID,
		Status:          entity.StatusPending,
		Timestamps:      entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.repo.Create(ctx, cr); err != nil {
		return nil, fmt.Errorf("failed to submit custom request: %w", err)
	}

	s.infra.Changes.Notify(subscription.CustomRequests)
	s.infra.Events.CustomRequestCreated(*cr)

	s.log.Info("Custom request submitted",
		zap.String("request_id", cr.ID.String()),
		zap.String("user_id", userID),
		zap.Int("group_size", cr.GroupSize),
	)
	return cr, nil
}

func (s *customRequestService) ListMine(ctx context.Context, userID string) ([]entity.CustomTourRequest, error) {
	items, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom requests: %w", err)
	}
	return items, nil
}

func (s *customRequestService) List(ctx context.Context) ([]entity.CustomTourRequest, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom requests: %w", err)
	}
	return items, nil
}

func (s *customRequestService) UpdateStatus(ctx context.Context, id string, req *request.UpdateStatusRequest) error {
	if err := utils.Validate(req); err != nil {
		return err
	}
	requestID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid custom request ID")
	}

	if err := s.repo.UpdateStatus(ctx, requestID, entity.Status(req.Status)); err != nil {
		return err
	}
	s.infra.Changes.Notify(subscription.CustomRequests)
	return nil
}

// uniqueStrings trims, drops blanks and removes repeats, keeping first order
func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
