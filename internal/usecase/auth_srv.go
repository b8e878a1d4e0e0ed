package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("unauthorized: invalid credentials")

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	AdminLogin(ctx context.Context, req *request.AdminLoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	infra  Infra
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, infra Infra, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		infra:  infra,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}
	email := req.Email

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil && (existing.PasswordHash != "" || existing.Role == entity.RoleAdmin) {
		return nil, errors.New("invalid registration: email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, errors.New("failed to process password")
	}

	role := entity.Role(req.Role)
	if role == "" {
		role = entity.RoleBuyer
	}
	id := uuid.NewString()
	if existing != nil {
		// a profile created by an earlier booking or submission is claimed
		// and keeps its role
		id = existing.ID
		role = ""
	}

	user, err := s.repo.User.Upsert(ctx, &entity.User{
		ID:           id,
		Name:         req.Name,
		Email:        email,
		Role:         role,
		PasswordHash: hashed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		s.log.Warn("Failed to create session after register", zap.Error(err), zap.String("user_id", user.ID))
	}
	s.mirrorProfile(ctx, user)

	s.log.Info("User registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		s.log.Warn("Login for unknown account", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.mirrorProfile(ctx, user)

	s.log.Info("User logged in", zap.String("user_id", user.ID))
	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

// AdminLogin checks the configured admin credential in constant time and
// upserts the admin profile before issuing a session
func (s *authService) AdminLogin(ctx context.Context, req *request.AdminLoginRequest) (*response.AuthResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	cfg := s.config.Admin
	userOK := utils.SecureCompare(req.Username, cfg.Username)
	passOK := utils.SecureCompare(req.Password, cfg.Password)
	if !userOK || !passOK || cfg.Password == "" {
		s.log.Warn("Rejected admin login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	admin, err := s.repo.User.Upsert(ctx, &entity.User{
		ID:    utils.UserIDFromEmail(cfg.Email),
		Name:  "Administrator",
		Email: cfg.Email,
		Role:  entity.RoleAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save admin profile: %w", err)
	}

	session, err := s.createSession(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Info("Admin logged in", zap.String("user_id", admin.ID))
	resp := response.AuthToResponse(admin, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return errors.New("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

func (s *authService) createSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	hours := s.config.Session.ExpiryHours
	if hours <= 0 {
		hours = 24
	}
	now := s.infra.Now()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Role:      user.Role,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(hours) * time.Hour),
		CreatedAt: now,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *authService) mirrorProfile(ctx context.Context, user *entity.User) {
	if s.infra.Local == nil {
		return
	}
	if err := s.infra.Local.SaveProfile(ctx, user.ID, *user); err != nil {
		s.log.Warn("Failed to save local profile", zap.Error(err), zap.String("user_id", user.ID))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
