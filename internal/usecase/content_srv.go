package usecase

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultContent is served until an admin saves the site settings
var DefaultContent = entity.ContentSettings{
	HeroHeadline:    "Discover Kyrgyzstan",
	HeroSubheadline: "Small-group treks, lakes and yurt stays across the Tien Shan.",
	ContactEmail:    "hello@example.com",
	ContactPhone:    "+996 555 000 000",
}

// ContentService owns the editable site content: settings, sights and posts
type ContentService interface {
	GetSettings(ctx context.Context) (*entity.ContentSettings, error)
	UpdateSettings(ctx context.Context, req *request.UpdateContentRequest) (*entity.ContentSettings, error)

	ListSights(ctx context.Context) ([]entity.Sight, error)
	CreateSight(ctx context.Context, req *request.SightRequest) (*entity.Sight, error)
	UpdateSight(ctx context.Context, id string, req *request.SightRequest) (*entity.Sight, error)
	DeleteSight(ctx context.Context, id string) error

	ListPosts(ctx context.Context) ([]entity.BlogPost, error)
	GetPost(ctx context.Context, id string) (*entity.BlogPost, error)
	CreatePost(ctx context.Context, req *request.BlogPostRequest) (*entity.BlogPost, error)
	UpdatePost(ctx context.Context, id string, req *request.BlogPostRequest) (*entity.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
}

type contentService struct {
	repo  *repository.Repository
	infra Infra
	log   *zap.Logger
}

func NewContentService(repo *repository.Repository, infra Infra, log *zap.Logger) ContentService {
	return &contentService{
		repo:  repo,
		infra: infra,
		log:   log.With(zap.String("service", "content")),
	}
}

// GetSettings falls back to DefaultContent when nothing is stored or the
// store cannot be reached
func (s *contentService) GetSettings(ctx context.Context) (*entity.ContentSettings, error) {
	stored, err := s.repo.Content.Get(ctx)
	if err != nil {
		s.log.Warn("Serving default content", zap.Error(err))
	}
	settings := DefaultContent
	if stored != nil {
		settings.Merge(*stored)
		settings.UpdatedAt = stored.UpdatedAt
	}
	return &settings, nil
}

func (s *contentService) UpdateSettings(ctx context.Context, req *request.UpdateContentRequest) (*entity.ContentSettings, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	saved, err := s.repo.Content.Upsert(ctx, entity.ContentSettings{
		HeroHeadline:    req.HeroHeadline,
		HeroSubheadline: req.HeroSubheadline,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save content: %w", err)
	}

	s.log.Info("Site content updated")
	return saved, nil
}

func (s *contentService) ListSights(ctx context.Context) ([]entity.Sight, error) {
	sights, err := s.repo.Sight.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sights: %w", err)
	}
	return sights, nil
}

func (s *contentService) CreateSight(ctx context.Context, req *request.SightRequest) (*entity.Sight, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	now := s.infra.Now()
	sight := &entity.Sight{
		ID:          uuid.New(),
		Name:        req.Name,
		Region:      req.Region,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Timestamps:  entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.repo.Sight.Create(ctx, sight); err != nil {
		return nil, fmt.Errorf("failed to create sight: %w", err)
	}
	return sight, nil
}

func (s *contentService) UpdateSight(ctx context.Context, id string, req *request.SightRequest) (*entity.Sight, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	sightID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid sight ID")
	}

	sight, err := s.repo.Sight.FindByID(ctx, sightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sight: %w", err)
	}
	if sight == nil {
		return nil, fmt.Errorf("sight %s not found", id)
	}

	sight.Name = req.Name
	sight.Region = req.Region
	sight.Description = req.Description
	sight.ImageURL = req.ImageURL
	sight.UpdatedAt = s.infra.Now()

	if err := s.repo.Sight.Update(ctx, sight); err != nil {
		return nil, err
	}
	return sight, nil
}

func (s *contentService) DeleteSight(ctx context.Context, id string) error {
	sightID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid sight ID")
	}
	return s.repo.Sight.Delete(ctx, sightID)
}

func (s *contentService) ListPosts(ctx context.Context) ([]entity.BlogPost, error) {
	posts, err := s.repo.Blog.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

func (s *contentService) GetPost(ctx context.Context, id string) (*entity.BlogPost, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid blog post ID")
	}

	post, err := s.repo.Blog.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	if post == nil {
		return nil, fmt.Errorf("blog post %s not found", id)
	}
	return post, nil
}

func (s *contentService) CreatePost(ctx context.Context, req *request.BlogPostRequest) (*entity.BlogPost, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	now := s.infra.Now()
	post := &entity.BlogPost{
		ID:         uuid.New(),
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Timestamps: entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.repo.Blog.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return post, nil
}

func (s *contentService) UpdatePost(ctx context.Context, id string, req *request.BlogPostRequest) (*entity.BlogPost, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.CoverImage = req.CoverImage
	post.UpdatedAt = s.infra.Now()

	if err := s.repo.Blog.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *contentService) DeletePost(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid blog post ID")
	}
	return s.repo.Blog.Delete(ctx, postID)
}
