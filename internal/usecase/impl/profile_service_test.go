package impl

import (
	"context"
	"fmt"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	domainservice "atlas/internal/domain/service"
	mockRepo "atlas/internal/mocks/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeProfile(name string, lat, lng float64) *entity.BusinessProfile {
	return &entity.BusinessProfile{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      name,
		Slug:      name,
		Latitude:  floatPtr(lat),
		Longitude: floatPtr(lng),
		IsActive:  true,
	}
}

func TestProfileService_Search_NoCenter(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	candidates := []*entity.BusinessProfile{
		activeProfile("alpha", 0, 0),
		activeProfile("beta", 0, 0.01),
		activeProfile("gamma", 0, 0.02),
	}
	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{Text: "shop"}).
		Return(candidates, nil)

	result, err := service.Search(ctx, usecase.SearchFilters{Text: "  shop  "})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, usecase.DefaultPageSize, result.PerPage)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.Items, 3)
	for _, hit := range result.Items {
		assert.Nil(t, hit.DistanceKm)
	}
}

func TestProfileService_Search_RadiusIsExclusive(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	// At the equator 0.01 degrees of longitude is roughly 1.11 km, so with a
	// 1 km radius the second profile sits just outside the boundary.
	near := activeProfile("near", 0, 0.005)
	outside := activeProfile("outside", 0, 0.01)
	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{}).
		Return([]*entity.BusinessProfile{outside, near}, nil)

	result, err := service.Search(ctx, usecase.SearchFilters{
		Latitude:  floatPtr(0),
		Longitude: floatPtr(0),
		RadiusKm:  floatPtr(1),
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, near.ID, result.Items[0].Profile.ID)
	require.NotNil(t, result.Items[0].DistanceKm)
	assert.InDelta(t, 0.556, *result.Items[0].DistanceKm, 0.01)
}

func TestProfileService_Search_SortsByDistance(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	far := activeProfile("far", 0, 0.05)
	mid := activeProfile("mid", 0, 0.03)
	near := activeProfile("near", 0, 0.01)
	noLocation := &entity.BusinessProfile{ID: uuid.New(), Name: "nowhere", IsActive: true}
	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{}).
		Return([]*entity.BusinessProfile{far, noLocation, near, mid}, nil)

	result, err := service.Search(ctx, usecase.SearchFilters{
		Latitude:  floatPtr(0),
		Longitude: floatPtr(0),
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, near.ID, result.Items[0].Profile.ID)
	assert.Equal(t, mid.ID, result.Items[1].Profile.ID)
	assert.Equal(t, far.ID, result.Items[2].Profile.ID)
	assert.LessOrEqual(t, *result.Items[0].DistanceKm, *result.Items[1].DistanceKm)
	assert.LessOrEqual(t, *result.Items[1].DistanceKm, *result.Items[2].DistanceKm)
}

func TestProfileService_Search_DefaultRadius(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	// Roughly 5.5 km and 16.7 km from the center; only the first is inside
	// the 10 km default.
	inside := activeProfile("inside", 0, 0.05)
	outside := activeProfile("outside", 0, 0.15)
	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{}).
		Return([]*entity.BusinessProfile{inside, outside}, nil)

	result, err := service.Search(ctx, usecase.SearchFilters{
		Latitude:  floatPtr(0),
		Longitude: floatPtr(0),
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, inside.ID, result.Items[0].Profile.ID)
}

func TestProfileService_Search_ClampsRadiusAndPageSize(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	// Roughly 44.5 km and 66.7 km away; a clamped 50 km radius keeps only
	// the first.
	within := activeProfile("within", 0, 0.4)
	beyond := activeProfile("beyond", 0, 0.6)
	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{}).
		Return([]*entity.BusinessProfile{within, beyond}, nil)

	result, err := service.Search(ctx, usecase.SearchFilters{
		Latitude:  floatPtr(0),
		Longitude: floatPtr(0),
		RadiusKm:  floatPtr(500),
		PageSize:  intPtr(200),
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, within.ID, result.Items[0].Profile.ID)
	assert.Equal(t, usecase.MaxPageSize, result.PerPage)
}

func TestProfileService_Search_SmallPageSizeClampedUp(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{}).
		Return(nil, nil)

	result, err := service.Search(ctx, usecase.SearchFilters{PageSize: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, usecase.MinPageSize, result.PerPage)
}

func TestProfileService_Search_ZeroPageSizeClampedUp(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{}).
		Return(nil, nil)

	// An explicit zero clamps to the minimum instead of taking the default.
	result, err := service.Search(ctx, usecase.SearchFilters{PageSize: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, usecase.MinPageSize, result.PerPage)
}

func TestProfileService_Search_Pagination(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	candidates := make([]*entity.BusinessProfile, 0, 15)
	for i := range 15 {
		candidates = append(candidates, activeProfile(fmt.Sprintf("profile-%d", i), 0, 0))
	}
	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{}).
		Return(candidates, nil)

	result, err := service.Search(ctx, usecase.SearchFilters{Page: 2, PageSize: intPtr(6)})
	require.NoError(t, err)
	assert.Equal(t, 15, result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 2, result.Page)
	assert.Len(t, result.Items, 6)
}

func TestProfileService_Search_PageBeyondEnd(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{}).
		Return([]*entity.BusinessProfile{activeProfile("solo", 0, 0)}, nil)

	result, err := service.Search(ctx, usecase.SearchFilters{Page: 9})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Empty(t, result.Items)
}

func TestProfileService_Search_InvalidCenter(t *testing.T) {
	service, _ := newProfileServiceForTest(t)

	_, err := service.Search(context.Background(), usecase.SearchFilters{
		Latitude:  floatPtr(95),
		Longitude: floatPtr(0),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestProfileService_Nearby_CapsResults(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	candidates := make([]*entity.BusinessProfile, 0, 150)
	for i := range 150 {
		candidates = append(candidates, activeProfile(fmt.Sprintf("profile-%d", i), 0, float64(i)*0.0001))
	}
	m.profileRepo.EXPECT().
		FindActiveProfiles(ctx, repository.ProfileFilter{}).
		Return(candidates, nil)

	hits, err := service.Nearby(ctx, 0, 0, floatPtr(50))
	require.NoError(t, err)
	assert.Len(t, hits, usecase.NearbyLimit)
	// Closest first even after capping.
	assert.InDelta(t, 0, *hits[0].DistanceKm, 0.001)
}

func TestProfileService_GetBySlug(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	profile := activeProfile("corner-bakery", 25.033, 121.565)
	profile.Categories = []*entity.Category{{ID: uuid.New(), Name: "Bakery"}}
	links := []*entity.SocialNetwork{
		{ID: uuid.New(), ProfileID: profile.ID, Platform: entity.PlatformFacebook},
	}

	m.profileRepo.EXPECT().FindProfileBySlug(ctx, "corner-bakery").Return(profile, nil)
	m.socialRepo.EXPECT().FindSocialNetworksByProfile(ctx, profile.ID).Return(links, nil)
	m.followRepo.EXPECT().CountFollowersByProfile(ctx, profile.ID).Return(int64(7), nil)

	detail, err := service.GetBySlug(ctx, "corner-bakery")
	require.NoError(t, err)
	assert.Equal(t, profile, detail.Profile)
	assert.Equal(t, int64(7), detail.FollowerCount)
	assert.Equal(t, 1, detail.SocialLinkCount)
	assert.Equal(t, 1, detail.CategoryCount)
}

func TestProfileService_GetBySlug_NotFound(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	m.profileRepo.EXPECT().
		FindProfileBySlug(ctx, "missing").
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func expectTransaction(t *testing.T, m *profileServiceMocks, ctx context.Context) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(m.profileRepo)
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestProfileService_CreateProfile(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	categoryID := uuid.New()

	m.userRepo.EXPECT().
		FindUserByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Roles: entity.Roles{entity.RoleBusiness}}, nil)
	m.profileRepo.EXPECT().
		FindProfileByOwner(ctx, ownerID).
		Return(nil, repository.ErrProfileNotFound)
	m.categoryRepo.EXPECT().
		FindCategoriesByIDs(ctx, []uuid.UUID{categoryID}).
		Return([]*entity.Category{{ID: categoryID, Name: "Bakery", IsActive: true}}, nil)
	m.profileRepo.EXPECT().SlugExists(ctx, "corner-bakery").Return(false, nil)

	expectTransaction(t, m, ctx)
	m.profileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.BusinessProfile"), []uuid.UUID{categoryID}).
		Return(nil)

	m.notificationUC.EXPECT().
		NotifyProfileEvent(ctx, mock.AnythingOfType("*entity.BusinessProfile"), entity.ActionProfileCreated).
		Return(&usecase.DispatchSummary{}, nil)
	m.publisher.EXPECT().
		PublishProfileEvent(ctx, mock.AnythingOfType("*service.ProfileEvent")).
		Return(nil)

	profile, err := service.CreateProfile(ctx, ownerID, &usecase.ProfileInput{
		Name:        "Corner Bakery",
		City:        "Taipei",
		Latitude:    floatPtr(25.033),
		Longitude:   floatPtr(121.565),
		CategoryIDs: []uuid.UUID{categoryID},
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, profile.OwnerID)
	assert.Equal(t, "corner-bakery", profile.Slug)
	assert.True(t, profile.IsActive)
}

func TestProfileService_CreateProfile_SlugCollision(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.userRepo.EXPECT().
		FindUserByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Roles: entity.Roles{entity.RoleBusiness}}, nil)
	m.profileRepo.EXPECT().
		FindProfileByOwner(ctx, ownerID).
		Return(nil, repository.ErrProfileNotFound)
	m.profileRepo.EXPECT().SlugExists(ctx, "corner-bakery").Return(true, nil)
	m.profileRepo.EXPECT().SlugExists(ctx, "corner-bakery-2").Return(true, nil)
	m.profileRepo.EXPECT().SlugExists(ctx, "corner-bakery-3").Return(false, nil)

	expectTransaction(t, m, ctx)
	m.profileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.BusinessProfile"), []uuid.UUID(nil)).
		Return(nil)
	m.notificationUC.EXPECT().
		NotifyProfileEvent(ctx, mock.Anything, entity.ActionProfileCreated).
		Return(&usecase.DispatchSummary{}, nil)
	m.publisher.EXPECT().
		PublishProfileEvent(ctx, mock.Anything).
		Return(nil)

	profile, err := service.CreateProfile(ctx, ownerID, &usecase.ProfileInput{Name: "Corner Bakery"})
	require.NoError(t, err)
	assert.Equal(t, "corner-bakery-3", profile.Slug)
}

func TestProfileService_CreateProfile_OwnerAlreadyHasProfile(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.userRepo.EXPECT().
		FindUserByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Roles: entity.Roles{entity.RoleBusiness}}, nil)
	m.profileRepo.EXPECT().
		FindProfileByOwner(ctx, ownerID).
		Return(activeProfile("existing", 0, 0), nil)

	_, err := service.CreateProfile(ctx, ownerID, &usecase.ProfileInput{Name: "Another"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestProfileService_CreateProfile_RequiresBusinessRole(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.userRepo.EXPECT().
		FindUserByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Roles: entity.Roles{entity.RoleUser}}, nil)

	_, err := service.CreateProfile(ctx, ownerID, &usecase.ProfileInput{Name: "Shop"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfileService_CreateProfile_PartialCoordinates(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.userRepo.EXPECT().
		FindUserByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Roles: entity.Roles{entity.RoleBusiness}}, nil)
	m.profileRepo.EXPECT().
		FindProfileByOwner(ctx, ownerID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.CreateProfile(ctx, ownerID, &usecase.ProfileInput{
		Name:     "Shop",
		Latitude: floatPtr(25.0),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestProfileService_CreateProfile_UnknownCategory(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	categoryID := uuid.New()

	m.userRepo.EXPECT().
		FindUserByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Roles: entity.Roles{entity.RoleBusiness}}, nil)
	m.profileRepo.EXPECT().
		FindProfileByOwner(ctx, ownerID).
		Return(nil, repository.ErrProfileNotFound)
	m.categoryRepo.EXPECT().
		FindCategoriesByIDs(ctx, []uuid.UUID{categoryID}).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := service.CreateProfile(ctx, ownerID, &usecase.ProfileInput{
		Name:        "Shop",
		CategoryIDs: []uuid.UUID{categoryID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProfileService_UpdateProfile_OwnershipViolation(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)

	_, err := service.UpdateProfile(ctx, uuid.New(), profile.ID, &usecase.ProfileInput{Name: "shop"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileOwnershipViolation)
}

func TestProfileService_UpdateProfile_RenameRegeneratesSlug(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("old-name", 0, 0)
	profile.Name = "Old Name"
	profile.Slug = "old-name"

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.profileRepo.EXPECT().SlugExists(ctx, "new-name").Return(false, nil)

	expectTransaction(t, m, ctx)
	m.profileRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.BusinessProfile"), []uuid.UUID(nil)).
		Return(nil)
	m.notificationUC.EXPECT().
		NotifyProfileEvent(ctx, mock.Anything, entity.ActionProfileUpdated).
		Return(&usecase.DispatchSummary{}, nil)
	m.publisher.EXPECT().
		PublishProfileEvent(ctx, mock.Anything).
		Return(nil)

	updated, err := service.UpdateProfile(ctx, profile.OwnerID, profile.ID, &usecase.ProfileInput{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Slug)
	assert.Equal(t, "New Name", updated.Name)
}

func TestProfileService_DeleteProfile(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)

	expectTransaction(t, m, ctx)
	m.profileRepo.EXPECT().DeleteProfile(ctx, profile.ID).Return(nil)
	m.notificationUC.EXPECT().
		NotifyProfileEvent(ctx, mock.Anything, entity.ActionProfileDeleted).
		Return(&usecase.DispatchSummary{}, nil)
	m.publisher.EXPECT().
		PublishProfileEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *domainservice.ProfileEvent) {
			assert.Equal(t, profile.ID.String(), event.ProfileID)
			assert.Equal(t, profile.Name, event.ProfileName)
			assert.Equal(t, entity.ActionProfileDeleted.String(), event.Action)
		}).
		Return(nil)

	err := service.DeleteProfile(ctx, profile.OwnerID, profile.ID)
	require.NoError(t, err)
}

func TestProfileService_DeleteProfile_FanOutFailureIsNotSurfaced(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)

	expectTransaction(t, m, ctx)
	m.profileRepo.EXPECT().DeleteProfile(ctx, profile.ID).Return(nil)
	m.notificationUC.EXPECT().
		NotifyProfileEvent(ctx, mock.Anything, entity.ActionProfileDeleted).
		Return(nil, errors.New("dispatch exploded"))
	m.publisher.EXPECT().
		PublishProfileEvent(ctx, mock.Anything).
		Return(errors.New("broker unavailable"))

	err := service.DeleteProfile(ctx, profile.OwnerID, profile.ID)
	require.NoError(t, err)
}

func TestProfileService_GenerateProfileQR(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileBySlug(ctx, "shop").Return(profile, nil)
	m.qrcodeService.EXPECT().GenerateProfileQR("shop").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := service.GenerateProfileQR(ctx, "shop")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestProfileService_GenerateProfileQR_NotFound(t *testing.T) {
	service, m := newProfileServiceForTest(t)
	ctx := context.Background()

	m.profileRepo.EXPECT().
		FindProfileBySlug(ctx, "missing").
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.GenerateProfileQR(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
