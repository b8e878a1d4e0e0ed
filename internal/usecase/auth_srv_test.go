package usecase

import (
	"context"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/request"
	"tourism-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(f *fixture) AuthService {
	return NewAuthService(f.repo, f.infra, f.config, f.log)
}

func TestAuthService_AdminLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := &entity.User{ID: "ops@example.com", Name: "Administrator", Email: "ops@example.com", Role: entity.RoleAdmin}

	f.users.On("Upsert", ctx, admin).Return(admin, nil).Once()
	f.sessions.On("Create", ctx, mock.MatchedBy(func(s *entity.Session) bool {
		return s.Role == entity.RoleAdmin && s.ExpiresAt.Equal(testNow.Add(2*time.Hour))
	})).Return(nil).Once()

	resp, err := newAuthService(f).AdminLogin(ctx, &request.AdminLoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
	assert.NotEmpty(t, resp.Token)
	f.users.AssertExpectations(t)
	f.sessions.AssertExpectations(t)
}

func TestAuthService_AdminLoginRejects(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		config   string
	}{
		{name: "wrong password", username: "admin", password: "guess", config: "s3cret"},
		{name: "wrong username", username: "root", password: "s3cret", config: "s3cret"},
		{name: "no password configured", username: "admin", password: "x", config: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.config.Admin.Password = tc.config

			_, err := newAuthService(f).AdminLogin(context.Background(), &request.AdminLoginRequest{Username: tc.username, Password: tc.password})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			f.users.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_RegisterNewAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.On("FindByEmail", ctx, "aida@example.com").Return(nil, nil)
	f.users.On("Upsert", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleSeller && u.Email == "aida@example.com" &&
			utils.CheckPasswordHash("secret1", u.PasswordHash)
	})).Return(&entity.User{ID: "new-id", Name: "Aida", Email: "aida@example.com", Role: entity.RoleSeller}, nil)
	f.sessions.On("Create", ctx, mock.Anything).Return(nil)

	resp, err := newAuthService(f).Register(ctx, &request.RegisterRequest{
		Name: "Aida", Email: " Aida@Example.com ", Password: "secret1", Role: "seller",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, resp.Role)
	assert.Equal(t, "new-id", resp.UserID)
}

func TestAuthService_RegisterClaimsProfileAndKeepsRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	existing := &entity.User{ID: "aida@example.com", Email: "aida@example.com", Role: entity.RoleSeller}
	f.users.On("FindByEmail", ctx, "aida@example.com").Return(existing, nil)
	f.users.On("Upsert", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == "aida@example.com" && u.Role == ""
	})).Return(&entity.User{ID: "aida@example.com", Name: "Aida", Email: "aida@example.com", Role: entity.RoleSeller}, nil).Once()
	f.sessions.On("Create", ctx, mock.Anything).Return(nil)

	resp, err := newAuthService(f).Register(ctx, &request.RegisterRequest{Name: "Aida", Email: "aida@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, resp.Role)
	f.users.AssertExpectations(t)
}

func TestAuthService_RegisterRefusesTakenEmail(t *testing.T) {
	for _, existing := range []*entity.User{
		{ID: "a", Email: "a@example.com", PasswordHash: "hash"},
		{ID: "a", Email: "a@example.com", Role: entity.RoleAdmin},
	} {
		f := newFixture(t)
		f.users.On("FindByEmail", mock.Anything, "a@example.com").Return(existing, nil)

		_, err := newAuthService(f).Register(context.Background(), &request.RegisterRequest{Name: "Al", Email: "a@example.com", Password: "secret1"})
		assert.ErrorContains(t, err, "already registered")
		f.users.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	}
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	user := &entity.User{ID: "u1", Name: "Aida", Email: "aida@example.com", Role: entity.RoleBuyer, PasswordHash: hash}
	f.users.On("FindByEmail", ctx, "aida@example.com").Return(user, nil)
	f.sessions.On("Create", ctx, mock.Anything).Return(nil).Once()

	srv := newAuthService(f)
	_, err = srv.Login(ctx, &request.LoginRequest{Email: "aida@example.com", Password: "wrong-1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := srv.Login(ctx, &request.LoginRequest{Email: "aida@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.UserID)
	f.sessions.AssertExpectations(t)
}

func TestAuthService_LoginNormalizesEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	user := &entity.User{ID: "u1", Name: "Aida", Email: "aida@example.com", Role: entity.RoleBuyer, PasswordHash: hash}
	f.users.On("FindByEmail", ctx, "aida@example.com").Return(user, nil).Once()
	f.sessions.On("Create", ctx, mock.Anything).Return(nil).Once()

	resp, err := newAuthService(f).Login(ctx, &request.LoginRequest{Email: "  Aida@Example.COM ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.UserID)
	f.users.AssertExpectations(t)
}

func TestAuthService_LogoutRejectsMalformedToken(t *testing.T) {
	f := newFixture(t)
	err := newAuthService(f).Logout(context.Background(), "not-a-token")
	assert.ErrorContains(t, err, "invalid token")
	f.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}
