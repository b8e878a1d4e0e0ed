package usecase

import (
	"context"
	"errors"
	"testing"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/request"
	"tourism-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_SaveProfileSynced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.On("Upsert", ctx, &entity.User{ID: "u1", Name: "Aida", Email: "aida@example.com"}).
		Return(&entity.User{ID: "u1", Name: "Aida", Email: "aida@example.com", Role: entity.RoleBuyer}, nil)

	res, err := NewUserService(f.repo, f.infra, f.log).SaveProfile(ctx, "u1", &request.UpdateProfileRequest{Name: "Aida", Email: "aida@example.com"})
	require.NoError(t, err)
	assert.True(t, res.Synced)
	assert.Equal(t, "Profile saved and synced.", res.Message)

	local, err := f.local.LoadProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, local)
	assert.Equal(t, entity.RoleBuyer, local.Role)
}

func TestUserService_SaveProfileMergesLocalAndSurvivesSyncFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.local.SaveProfile(ctx, "u1", entity.User{Name: "Aida", Email: "aida@example.com", Role: entity.RoleSeller}))
	f.users.On("Upsert", ctx, mock.Anything).Return(nil, errors.New("unreachable"))

	res, err := NewUserService(f.repo, f.infra, f.log).SaveProfile(ctx, "u1", &request.UpdateProfileRequest{Name: "Aida K"})
	require.NoError(t, err)
	assert.False(t, res.Synced)
	assert.Equal(t, "Profile saved locally. Server sync failed.", res.Message)
	assert.Equal(t, "Aida K", res.Profile.Name)
	assert.Equal(t, "aida@example.com", res.Profile.Email)
	assert.Equal(t, entity.RoleSeller, res.Profile.Role)
}

func TestUserService_SaveProfileNeedsNameAndEmail(t *testing.T) {
	f := newFixture(t)

	_, err := NewUserService(f.repo, f.infra, f.log).SaveProfile(context.Background(), "u1", &request.UpdateProfileRequest{Name: "Only name"})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Email")
	f.users.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUserService_GetProfileFallsBackToLocal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.On("FindByID", ctx, "u1").Return(nil, errors.New("offline"))

	srv := NewUserService(f.repo, f.infra, f.log)
	_, err := srv.GetProfile(ctx, "u1")
	assert.Error(t, err)

	require.NoError(t, f.local.SaveProfile(ctx, "u1", entity.User{Name: "Aida", Email: "aida@example.com", Role: entity.RoleBuyer}))
	res, err := srv.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, res.Synced)
	assert.Equal(t, "Aida", res.Profile.Name)
}

func TestUserService_UpdateRoleRevokesSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.On("UpdateRole", ctx, "u1", entity.RoleSeller).Return(nil).Once()
	f.sessions.On("RevokeAllUserSessions", ctx, "u1").Return(errors.New("ignored")).Once()

	err := NewUserService(f.repo, f.infra, f.log).UpdateRole(ctx, "u1", &request.UpdateRoleRequest{Role: "seller"})
	require.NoError(t, err)
	f.users.AssertExpectations(t)
	f.sessions.AssertExpectations(t)
}

func TestUserService_GetAllUsersPaginates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.On("FindAll", ctx, 10, 10).Return([]*entity.User{{ID: "u11"}}, nil)
	f.users.On("CountAll", ctx).Return(int64(11), nil)

	resp, err := NewUserService(f.repo, f.infra, f.log).GetAllUsers(ctx, &request.PaginatedRequest{Page: 2, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "u11", resp.Data[0].ID)
}
