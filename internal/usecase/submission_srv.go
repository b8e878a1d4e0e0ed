package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/subscription"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgLocalSubmissions      = "Showing locally saved submissions."
	msgLocalSubmissionsError = "Showing locally saved submissions. Server sync unavailable."
)

type SubmissionService interface {
	Submit(ctx context.Context, userID string, req *request.CreateSubmissionRequest) (*entity.SellerSubmission, error)
	ListMine(ctx context.Context, userID string) (*response.FallbackList[entity.SellerSubmission], error)
	List(ctx context.Context) ([]entity.SellerSubmission, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateSubmissionStatusRequest) error
	Approve(ctx context.Context, id string) (*entity.Tour, error)
}

type submissionService struct {
	repo       *repository.Repository
	tours      TourService
	infra      Infra
	configured bool
	log        *zap.Logger
}

func NewSubmissionService(repo *repository.Repository, tours TourService, infra Infra, config *utils.Config, log *zap.Logger) SubmissionService {
	return &submissionService{
		repo:       repo,
		tours:      tours,
		infra:      infra,
		configured: config.Database.Configured(),
		log:        log.With(zap.String("service", "submission")),
	}
}

// Submit stores the proposal remotely when a backend is configured, then
// keeps a local copy. Without a backend only the local copy is written.
func (s *submissionService) Submit(ctx context.Context, userID string, req *request.CreateSubmissionRequest) (*entity.SellerSubmission, error) {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Submission validation failed", zap.Error(err))
		return nil, err
	}

	now := s.infra.Now()
	sub := &entity.SellerSubmission{
		Title:        req.Title,
		Duration:     req.Duration,
		Price:        req.Price,
		Season:       req.Season,
		TourType:     req.TourType,
		Description:  req.Description,
		Highlights:   nonBlank(req.Highlights),
		Itinerary:    nonBlank(req.Itinerary),
		Image:        req.Image,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		OwnerID:      userID,
		Status:       entity.StatusPending,
		Timestamps:   entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	owner := userID
	if s.configured {
		if err := s.repo.Submission.Create(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to submit tour: %w", err)
		}
		s.infra.Changes.Notify(subscription.Submissions)
	} else {
		sub.ID = utils.TimestampIDString(now)
		if owner == "" {
			owner = utils.UserIDFromEmail(req.ContactEmail)
		}
	}

	local, err := s.infra.Local.AppendSubmission(ctx, owner, *sub)
	if err != nil {
		s.log.Warn("Failed to mirror submission locally", zap.Error(err))
	} else if sub.ID == "" {
		sub.ID = local.ID
	}
	s.seedSellerProfile(ctx, owner, req)

	s.log.Info("Seller submission received",
		zap.String("submission_id", sub.ID),
		zap.String("owner", owner),
		zap.Bool("remote", s.configured),
	)
	return sub, nil
}

func (s *submissionService) seedSellerProfile(ctx context.Context, owner string, req *request.CreateSubmissionRequest) {
	existing, err := s.infra.Local.LoadProfile(ctx, owner)
	if err != nil {
		s.log.Warn("Failed to load local profile", zap.Error(err))
		return
	}
	if existing != nil {
		return
	}
	profile := entity.User{Name: req.ContactName, Email: req.ContactEmail, Role: entity.RoleSeller}
	if err := s.infra.Local.SaveProfile(ctx, owner, profile); err != nil {
		s.log.Warn("Failed to save local profile", zap.Error(err))
	}
}

func (s *submissionService) ListMine(ctx context.Context, userID string) (*response.FallbackList[entity.SellerSubmission], error) {
	local, err := s.infra.Local.LoadSubmissions(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to load local submissions", zap.Error(err), zap.String("user_id", userID))
	}
	localItems := make([]entity.SellerSubmission, len(local))
	for i, l := range local {
		localItems[i] = l.SellerSubmission
		if localItems[i].CreatedAt.IsZero() {
			localItems[i].CreatedAt = l.SubmittedAt
		}
	}

	remote, err := s.repo.Submission.FindByOwnerID(ctx, userID)
	if err != nil {
		s.log.Warn("Serving local submissions", zap.Error(err), zap.String("user_id", userID))
		return response.NewFallbackList(localItems, true, msgLocalSubmissionsError), nil
	}
	if len(remote) > 0 || len(localItems) == 0 {
		return response.NewFallbackList(remote, false, msgSynced), nil
	}
	return response.NewFallbackList(localItems, true, msgLocalSubmissions), nil
}

func (s *submissionService) List(ctx context.Context) ([]entity.SellerSubmission, error) {
	items, err := s.repo.Submission.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return items, nil
}

func (s *submissionService) UpdateStatus(ctx context.Context, id string, req *request.UpdateSubmissionStatusRequest) error {
	if err := utils.Validate(req); err != nil {
		return err
	}
	if err := s.repo.Submission.UpdateStatus(ctx, id, entity.Status(req.Status)); err != nil {
		return err
	}
	s.infra.Changes.Notify(subscription.Submissions)
	return nil
}

// Approve marks the submission approved and publishes it as a new tour
func (s *submissionService) Approve(ctx context.Context, id string) (*entity.Tour, error) {
	sub, err := s.repo.Submission.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("seller submission %s not found", id)
	}

	if err := s.repo.Submission.UpdateStatus(ctx, id, entity.StatusApproved); err != nil {
		return nil, err
	}
	s.infra.Changes.Notify(subscription.Submissions)

	tour := PromoteSubmission(*sub, s.infra.Now())
	if err := s.tours.Promote(ctx, &tour); err != nil {
		return nil, err
	}

	s.log.Info("Submission promoted to tour",
		zap.String("submission_id", id),
		zap.Int64("tour_id", tour.ID),
	)
	return &tour, nil
}

// PromoteSubmission builds the catalog tour for an approved submission
func PromoteSubmission(sub entity.SellerSubmission, now time.Time) entity.Tour {
	itinerary := make([]entity.ItineraryDay, len(sub.Itinerary))
	for i, line := range sub.Itinerary {
		itinerary[i] = entity.ItineraryDay{
			Day:         i + 1,
			Title:       fmt.Sprintf("Day %d", i+1),
			Description: line,
		}
	}

	highlights := sub.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return entity.Tour{
		ID:          utils.TimestampID(now),
		Title:       orDefault(sub.Title, "New Tour"),
		Duration:    orDefault(sub.Duration, "TBD"),
		TourType:    orDefault(sub.TourType, "Custom"),
		Season:      orDefault(sub.Season, "All seasons"),
		Description: sub.Description,
		Image:       sub.Image,
		Price:       sub.Price,
		Highlights:  highlights,
		Itinerary:   itinerary,
		PackingList: []string{},
		PracticalInfo: entity.PracticalInfo{
			Accommodation: "To be confirmed",
			Meals:         "To be confirmed",
			Difficulty:    "Moderate",
			GroupSize:     "4-10 participants",
			Included:      []string{},
			NotIncluded:   []string{},
		},
		Timestamps: entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// nonBlank drops empty lines, mirroring the one-item-per-line form fields
func nonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
