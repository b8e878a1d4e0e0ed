package usecase

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

// ProfileResult is a profile read or write together with where it landed
type ProfileResult struct {
	Profile response.UserResponse `json:"profile"`
	Synced  bool                  `json:"synced"`
	Message string                `json:"message,omitempty"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*ProfileResult, error)
	SaveProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*ProfileResult, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateRole(ctx context.Context, userID string, req *request.UpdateRoleRequest) error
}

type userService struct {
	repo  *repository.Repository
	infra Infra
	log   *zap.Logger
}

func NewUserService(repo *repository.Repository, infra Infra, log *zap.Logger) UserService {
	return &userService{
		repo:  repo,
		infra: infra,
		log:   log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*ProfileResult, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err == nil && user != nil {
		return &ProfileResult{Profile: response.UserToResponse(user), Synced: true}, nil
	}
	if err != nil {
		us.log.Warn("Remote profile unavailable", zap.Error(err), zap.String("user_id", userID))
	}

	local, lerr := us.infra.Local.LoadProfile(ctx, userID)
	if lerr != nil {
		us.log.Warn("Local profile unavailable", zap.Error(lerr), zap.String("user_id", userID))
	}
	if local != nil {
		return &ProfileResult{
			Profile: response.UserToResponse(local),
			Message: "Showing locally saved profile.",
		}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return nil, errors.New("user not found")
}

// SaveProfile merges the update into the server profile and mirrors the
// result locally. A server failure still leaves the local copy saved.
func (us *userService) SaveProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*ProfileResult, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	current, err := us.infra.Local.LoadProfile(ctx, userID)
	if err != nil {
		us.log.Warn("Local profile unavailable", zap.Error(err), zap.String("user_id", userID))
	}
	merged := entity.User{ID: userID, Role: entity.RoleBuyer}
	if current != nil {
		merged.Merge(*current)
		merged.ID = userID
	}
	merged.Merge(entity.User{Name: req.Name, Email: req.Email, Role: entity.Role(req.Role)})

	if merged.Name == "" || merged.Email == "" {
		return nil, &utils.ValidationError{Fields: map[string]string{
			"Name":  "Please add your name and email.",
			"Email": "Please add your name and email.",
		}}
	}

	if err := us.infra.Local.SaveProfile(ctx, userID, merged); err != nil {
		us.log.Warn("Failed to save local profile", zap.Error(err), zap.String("user_id", userID))
	}

	stored, err := us.repo.User.Upsert(ctx, &entity.User{
		ID:    userID,
		Name:  req.Name,
		Email: req.Email,
		Role:  entity.Role(req.Role),
	})
	if err != nil {
		us.log.Warn("Profile sync failed", zap.Error(err), zap.String("user_id", userID))
		return &ProfileResult{
			Profile: response.UserToResponse(&merged),
			Message: "Profile saved locally. Server sync failed.",
		}, nil
	}

	us.log.Info("Profile saved", zap.String("user_id", userID))
	return &ProfileResult{
		Profile: response.UserToResponse(stored),
		Synced:  true,
		Message: "Profile saved and synced.",
	}, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	perPage := req.Limit()
	req.PerPage = perPage

	users, err := us.repo.User.FindAll(ctx, perPage, req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err), zap.Int("page", req.Page))
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	total, err := us.repo.User.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, perPage, total), nil
}

// UpdateRole changes the stored role and signs the user out everywhere, so
// the next session carries the new role
func (us *userService) UpdateRole(ctx context.Context, userID string, req *request.UpdateRoleRequest) error {
	if err := utils.Validate(req); err != nil {
		return err
	}

	if err := us.repo.User.UpdateRole(ctx, userID, entity.Role(req.Role)); err != nil {
		return err
	}

	if err := us.repo.Session.RevokeAllUserSessions(ctx, userID); err != nil {
		us.log.Warn("Failed to revoke sessions after role change", zap.Error(err), zap.String("user_id", userID))
	}

	us.log.Info("User role updated", zap.String("user_id", userID), zap.String("role", req.Role))
	return nil
}
