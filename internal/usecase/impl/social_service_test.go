package impl

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	mockRepo "atlas/internal/mocks/repository"
	mockSvc "atlas/internal/mocks/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type socialServiceMocks struct {
	socialRepo  *mockRepo.MockSocialNetworkRepository
	profileRepo *mockRepo.MockProfileRepository
	validator   *mockSvc.MockLinkValidator
}

func newSocialServiceForTest(t *testing.T) (usecase.SocialUsecase, *socialServiceMocks) {
	t.Helper()

	m := &socialServiceMocks{
		socialRepo:  mockRepo.NewMockSocialNetworkRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		validator:   mockSvc.NewMockLinkValidator(t),
	}
	service := NewSocialService(m.socialRepo, m.profileRepo, m.validator, testLogger())

	return service, m
}

func TestSocialService_AttachLink(t *testing.T) {
	service, m := newSocialServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)
	url := "https://www.facebook.com/cornerbakery"

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.validator.EXPECT().Validate(ctx, entity.PlatformFacebook, url).Return(nil)
	m.socialRepo.EXPECT().UpsertSocialNetwork(ctx, mock.AnythingOfType("*entity.SocialNetwork")).Return(nil)

	link, err := service.AttachLink(ctx, profile.OwnerID, profile.ID, entity.PlatformFacebook, url)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, link.ProfileID)
	assert.Equal(t, entity.PlatformFacebook, link.Platform)
	assert.Equal(t, url, link.URL)
}

func TestSocialService_AttachLink_UnsupportedPlatform(t *testing.T) {
	service, _ := newSocialServiceForTest(t)

	_, err := service.AttachLink(context.Background(), uuid.New(), uuid.New(), "myspace", "https://myspace.com/x")
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedPlatform)
}

func TestSocialService_AttachLink_InvalidURL(t *testing.T) {
	service, m := newSocialServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.validator.EXPECT().
		Validate(ctx, entity.PlatformInstagram, "https://example.com/not-instagram").
		Return(errors.New("host does not match platform"))

	_, err := service.AttachLink(ctx, profile.OwnerID, profile.ID, entity.PlatformInstagram, "https://example.com/not-instagram")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidSocialURL.ErrorCode(), appErr.ErrorCode())
}

func TestSocialService_AttachLink_OwnershipViolation(t *testing.T) {
	service, m := newSocialServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)

	_, err := service.AttachLink(ctx, uuid.New(), profile.ID, entity.PlatformFacebook, "https://www.facebook.com/x")
	assert.ErrorIs(t, err, domainerrors.ErrProfileOwnershipViolation)
}

func TestSocialService_RemoveLink(t *testing.T) {
	service, m := newSocialServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.socialRepo.EXPECT().DeleteSocialNetwork(ctx, profile.ID, entity.PlatformTikTok).Return(true, nil)

	err := service.RemoveLink(ctx, profile.OwnerID, profile.ID, entity.PlatformTikTok)
	require.NoError(t, err)
}

func TestSocialService_RemoveLink_NotAttached(t *testing.T) {
	service, m := newSocialServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.socialRepo.EXPECT().DeleteSocialNetwork(ctx, profile.ID, entity.PlatformYouTube).Return(false, nil)

	err := service.RemoveLink(ctx, profile.OwnerID, profile.ID, entity.PlatformYouTube)
	assert.ErrorIs(t, err, domainerrors.ErrSocialLinkNotFound)
}

func TestSocialService_ListLinks(t *testing.T) {
	service, m := newSocialServiceForTest(t)
	ctx := context.Background()
	profileID := uuid.New()

	links := []*entity.SocialNetwork{
		{ID: uuid.New(), ProfileID: profileID, Platform: entity.PlatformFacebook},
		{ID: uuid.New(), ProfileID: profileID, Platform: entity.PlatformInstagram},
	}
	m.socialRepo.EXPECT().FindSocialNetworksByProfile(ctx, profileID).Return(links, nil)

	result, err := service.ListLinks(ctx, profileID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestSocialService_RemoveLink_RepositoryError(t *testing.T) {
	service, m := newSocialServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("shop", 0, 0)

	m.profileRepo.EXPECT().FindProfileByID(ctx, profile.ID).Return(profile, nil)
	m.socialRepo.EXPECT().
		DeleteSocialNetwork(ctx, profile.ID, entity.PlatformWhatsApp).
		Return(false, repository.ErrSocialNetworkNotFound)

	err := service.RemoveLink(ctx, profile.OwnerID, profile.ID, entity.PlatformWhatsApp)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrSocialLinkNotFound)
}
