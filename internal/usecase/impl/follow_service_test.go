package impl

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	mockRepo "atlas/internal/mocks/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type followServiceMocks struct {
	followRepo  *mockRepo.MockFollowRepository
	profileRepo *mockRepo.MockProfileRepository
	userRepo    *mockRepo.MockUserRepository
}

func newFollowServiceForTest(t *testing.T) (usecase.FollowUsecase, *followServiceMocks) {
	t.Helper()

	m := &followServiceMocks{
		followRepo:  mockRepo.NewMockFollowRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
	}
	service := NewFollowService(m.followRepo, m.profileRepo, m.userRepo, testLogger())

	return service, m
}

func regularUser(id uuid.UUID) *entity.User {
	return &entity.User{ID: id, Roles: entity.Roles{entity.RoleUser}}
}

func TestFollowService_FollowProfile_New(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := activeProfile("shop", 0, 0)

	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(regularUser(userID), nil)
	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.followRepo.EXPECT().FindFollow(ctx, userID, profile.ID).Return(nil, repository.ErrFollowNotFound)
	m.followRepo.EXPECT().CreateFollow(ctx, mock.AnythingOfType("*entity.UserFollow")).Return(nil)

	follow, err := service.FollowProfile(ctx, userID, profile.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, userID, follow.UserID)
	assert.Equal(t, profile.ID, follow.ProfileID)
	// Nil preferences select the defaults.
	assert.Equal(t, entity.DefaultNotificationPreferences(), follow.Preferences)
}

func TestFollowService_FollowProfile_ExistingOverwritesPreferences(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := activeProfile("shop", 0, 0)

	existing := &entity.UserFollow{
		ID:          uuid.New(),
		UserID:      userID,
		ProfileID:   profile.ID,
		Preferences: entity.NotificationPreferences{Email: true, Push: true},
	}
	newPrefs := entity.NotificationPreferences{SMS: true}

	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(regularUser(userID), nil)
	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.followRepo.EXPECT().FindFollow(ctx, userID, profile.ID).Return(existing, nil)
	m.followRepo.EXPECT().UpdateFollowPreferences(ctx, existing.ID, newPrefs).Return(nil)

	follow, err := service.FollowProfile(ctx, userID, profile.ID, &newPrefs)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, follow.ID)
	assert.Equal(t, newPrefs, follow.Preferences)
}

func TestFollowService_FollowProfile_LostCreateRace(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := activeProfile("shop", 0, 0)

	existing := &entity.UserFollow{ID: uuid.New(), UserID: userID, ProfileID: profile.ID}
	prefs := entity.NotificationPreferences{Email: true}

	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(regularUser(userID), nil)
	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.followRepo.EXPECT().FindFollow(ctx, userID, profile.ID).Return(nil, repository.ErrFollowNotFound).Once()
	m.followRepo.EXPECT().
		CreateFollow(ctx, mock.AnythingOfType("*entity.UserFollow")).
		Return(repository.ErrDuplicateFollow)
	m.followRepo.EXPECT().FindFollow(ctx, userID, profile.ID).Return(existing, nil).Once()
	m.followRepo.EXPECT().UpdateFollowPreferences(ctx, existing.ID, prefs).Return(nil)

	follow, err := service.FollowProfile(ctx, userID, profile.ID, &prefs)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, follow.ID)
}

func TestFollowService_FollowProfile_InactiveProfile(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := activeProfile("shop", 0, 0)
	profile.IsActive = false

	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(regularUser(userID), nil)
	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)

	_, err := service.FollowProfile(ctx, userID, profile.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestFollowService_FollowProfile_RequiresUserRole(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Roles: entity.Roles{entity.RoleBusiness}}, nil)

	_, err := service.FollowProfile(ctx, userID, uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestFollowService_UnfollowProfile(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	m.followRepo.EXPECT().DeleteFollow(ctx, userID, profileID).Return(true, nil)

	existed, err := service.UnfollowProfile(ctx, userID, profileID)
	require.NoError(t, err)
	assert.True(t, existed)
}

func TestFollowService_UnfollowProfile_NotFollowing(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	m.followRepo.EXPECT().DeleteFollow(ctx, userID, profileID).Return(false, nil)

	existed, err := service.UnfollowProfile(ctx, userID, profileID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestFollowService_IsFollowing(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	m.followRepo.EXPECT().
		FindFollow(ctx, userID, profileID).
		Return(&entity.UserFollow{ID: uuid.New()}, nil).Once()
	following, err := service.IsFollowing(ctx, userID, profileID)
	require.NoError(t, err)
	assert.True(t, following)

	m.followRepo.EXPECT().
		FindFollow(ctx, userID, profileID).
		Return(nil, repository.ErrFollowNotFound).Once()
	following, err = service.IsFollowing(ctx, userID, profileID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowService_UpdatePreferences_NotFound(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	m.followRepo.EXPECT().
		FindFollow(ctx, userID, profileID).
		Return(nil, repository.ErrFollowNotFound)

	_, err := service.UpdatePreferences(ctx, userID, profileID, entity.NotificationPreferences{Email: true})
	assert.ErrorIs(t, err, domainerrors.ErrFollowNotFound)
}

func TestFollowService_ListFollowedProfiles(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	kept := activeProfile("kept", 0, 0)
	removedID := uuid.New()
	follows := []*entity.UserFollow{
		{ID: uuid.New(), UserID: userID, ProfileID: kept.ID},
		{ID: uuid.New(), UserID: userID, ProfileID: removedID},
	}

	m.followRepo.EXPECT().CountFollowsByUser(ctx, userID).Return(int64(2), nil)
	m.followRepo.EXPECT().FindFollowsByUser(ctx, userID, usecase.DefaultPageSize, 0).Return(follows, nil)
	m.profileRepo.EXPECT().FindProfileByID(ctx, kept.ID).Return(kept, nil)
	m.profileRepo.EXPECT().FindProfileByID(ctx, removedID).Return(nil, repository.ErrProfileNotFound)

	result, err := service.ListFollowedProfiles(ctx, userID, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, kept.ID, result.Items[0].Profile.ID)
}

func TestFollowService_ListFollowers_OwnerOnly(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)

	_, err := service.ListFollowers(ctx, uuid.New(), profile.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileOwnershipViolation)
}

func TestFollowService_ListFollowers(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	follows := []*entity.UserFollow{
		{ID: uuid.New(), ProfileID: profile.ID},
		{ID: uuid.New(), ProfileID: profile.ID},
	}
	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.followRepo.EXPECT().FindFollowsByProfile(ctx, profile.ID).Return(follows, nil)

	result, err := service.ListFollowers(ctx, profile.OwnerID, profile.ID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestFollowService_UpdateAllPreferences(t *testing.T) {
	service, m := newFollowServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	prefs := entity.NotificationPreferences{Push: true}

	m.followRepo.EXPECT().UpdateAllPreferencesForUser(ctx, userID, prefs).Return(int64(4), nil)

	affected, err := service.UpdateAllPreferences(ctx, userID, prefs)
	require.NoError(t, err)
	assert.Equal(t, int64(4), affected)
}
