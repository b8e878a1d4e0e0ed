package usecase

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/catalog"
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgToursNotConfigured = "Backend is not configured. Showing the built-in tour catalog."
	msgToursEmpty         = "No tours published yet. Showing the built-in tour catalog."
	msgToursUnavailable   = "Unable to load tours. Showing the built-in tour catalog."
)

type TourService interface {
	ListTours(ctx context.Context, c catalog.Criteria) (*response.TourListResponse, error)
	GetTour(ctx context.Context, id int64) (*entity.Tour, error)
	CreateTour(ctx context.Context, req *request.TourRequest) (*entity.Tour, error)
	UpdateTour(ctx context.Context, id int64, req *request.UpdateTourRequest) (*entity.Tour, error)
	DeleteTour(ctx context.Context, id int64) error
	Promote(ctx context.Context, tour *entity.Tour) error
	SeedCatalog(ctx context.Context) (int, error)
}

type tourService struct {
	repo       repository.TourRepository
	infra      Infra
	configured bool
	log        *zap.Logger
}

func NewTourService(repo repository.TourRepository, infra Infra, config *utils.Config, log *zap.Logger) TourService {
	return &tourService{
		repo:       repo,
		infra:      infra,
		configured: config.Database.Configured(),
		log:        log.With(zap.String("service", "tour")),
	}
}

// ListTours applies c to the current catalog. The catalog comes from the
// cache, then the store, then the built-in seed; any fallback is reported
// in the response instead of failing the request.
func (s *tourService) ListTours(ctx context.Context, c catalog.Criteria) (*response.TourListResponse, error) {
	tours, fallback, msg := s.loadCatalog(ctx)
	visible := catalog.Apply(tours, c)

	return &response.TourListResponse{
		Tours:         visible,
		Options:       catalog.DeriveOptions(tours),
		Total:         len(visible),
		UsingFallback: fallback,
		Message:       msg,
	}, nil
}

func (s *tourService) GetTour(ctx context.Context, id int64) (*entity.Tour, error) {
	tours, _, _ := s.loadCatalog(ctx)
	for i := range tours {
		if tours[i].ID == id {
			t := tours[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("tour %d not found", id)
}

func (s *tourService) CreateTour(ctx context.Context, req *request.TourRequest) (*entity.Tour, error) {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Create tour validation failed", zap.Error(err))
		return nil, err
	}

	now := s.infra.Now()
	tour := &entity.Tour{
		ID:            req.ID,
		Title:         req.Title,
		Duration:      req.Duration,
		TourType:      req.TourType,
		Season:        req.Season,
		Description:   req.Description,
		Image:         req.Image,
		Price:         req.Price,
		Highlights:    req.Highlights,
		Itinerary:     req.Itinerary,
		PackingList:   req.PackingList,
		PracticalInfo: req.PracticalInfo,
		Locations:     req.Locations,
		Timestamps:    entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if tour.ID == 0 {
		tour.ID = utils.TimestampID(now)
	}
	if !tour.ItineraryContiguous() {
		return nil, &utils.ValidationError{Fields: map[string]string{
			"Itinerary": "Days must be numbered 1..n in order",
		}}
	}

	existing, err := s.repo.FindByID(ctx, tour.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check tour: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("invalid tour: id %d already exists", tour.ID)
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info("Tour created", zap.Int64("tour_id", tour.ID), zap.String("title", tour.Title))
	return tour, nil
}

func (s *tourService) UpdateTour(ctx context.Context, id int64, req *request.UpdateTourRequest) (*entity.Tour, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	tour, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %d not found", id)
	}

	applyTourUpdate(tour, req)
	if !tour.ItineraryContiguous() {
		return nil, &utils.ValidationError{Fields: map[string]string{
			"Itinerary": "Days must be numbered 1..n in order",
		}}
	}
	tour.UpdatedAt = s.infra.Now()

	if err := s.repo.Update(ctx, tour); err != nil {
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info("Tour updated", zap.Int64("tour_id", id))
	return tour, nil
}

func (s *tourService) DeleteTour(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Promote stores a tour synthesized elsewhere, such as an approved submission
func (s *tourService) Promote(ctx context.Context, tour *entity.Tour) error {
	if err := s.repo.Create(ctx, tour); err != nil {
		return fmt.Errorf("failed to promote tour: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// SeedCatalog writes the built-in tours into an empty store
func (s *tourService) SeedCatalog(ctx context.Context) (int, error) {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check catalog: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	now := s.infra.Now()
	seeded := 0
	for _, t := range catalog.Seed() {
		t.CreatedAt, t.UpdatedAt = now, now
		if err := s.repo.Create(ctx, &t); err != nil {
			return seeded, fmt.Errorf("failed to seed tour %d: %w", t.ID, err)
		}
		seeded++
	}
	s.invalidate(ctx)

	s.log.Info("Catalog seeded", zap.Int("tours", seeded))
	return seeded, nil
}

func (s *tourService) loadCatalog(ctx context.Context) ([]entity.Tour, bool, string) {
	if cached, err := s.infra.Cache.GetTours(ctx); err != nil {
		s.log.Warn("Tour cache read failed", zap.Error(err))
	} else if len(cached) > 0 {
		return cached, false, ""
	}

	if !s.configured {
		return catalog.Seed(), true, msgToursNotConfigured
	}

	tours, err := s.repo.FindAll(ctx)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		return catalog.Seed(), true, msgToursNotConfigured
	case err != nil:
		s.log.Warn("Falling back to built-in catalog", zap.Error(err))
		return catalog.Seed(), true, msgToursUnavailable
	case len(tours) == 0:
		return catalog.Seed(), true, msgToursEmpty
	}

	if err := s.infra.Cache.SetTours(ctx, tours); err != nil {
		s.log.Warn("Tour cache write failed", zap.Error(err))
	}
	return tours, false, ""
}

func (s *tourService) invalidate(ctx context.Context) {
	if err := s.infra.Cache.InvalidateTours(ctx); err != nil {
		s.log.Warn("Tour cache invalidation failed", zap.Error(err))
	}
}

func applyTourUpdate(t *entity.Tour, req *request.UpdateTourRequest) {
	setIf := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setIf(&t.Title, req.Title)
	setIf(&t.Duration, req.Duration)
	setIf(&t.TourType, req.TourType)
	setIf(&t.Season, req.Season)
	setIf(&t.Description, req.Description)
	setIf(&t.Image, req.Image)
	setIf(&t.Price, req.Price)

	if req.Highlights != nil {
		t.Highlights = req.Highlights
	}
	if req.Itinerary != nil {
		t.Itinerary = req.Itinerary
	}
	if req.PackingList != nil {
		t.PackingList = req.PackingList
	}
	if req.PracticalInfo != nil {
		t.PracticalInfo = *req.PracticalInfo
	}
	if req.Locations != nil {
		t.Locations = req.Locations
	}
}
