package handler

import (
	"net/http"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	mockusecase "atlas/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialHandler_AttachLink(t *testing.T) {
	uc := mockusecase.NewMockSocialUsecase(t)
	handler := NewSocialHandler(uc, testHandlerLogger())

	ownerID := uuid.New()
	profileID := uuid.New()
	c, rec := newTestContext(t, http.MethodPut,
		"/business/profiles/"+profileID.String()+"/social/instagram",
		`{"url":"https://instagram.com/corner_bakery"}`)
	c.Set("userID", ownerID)
	c.SetParamNames("id", "platform")
	c.SetParamValues(profileID.String(), "instagram")

	uc.EXPECT().
		AttachLink(c.Request().Context(), ownerID, profileID, entity.PlatformInstagram, "https://instagram.com/corner_bakery").
		Return(&entity.SocialNetwork{
			ID:        uuid.New(),
			ProfileID: profileID,
			Platform:  entity.PlatformInstagram,
			URL:       "https://instagram.com/corner_bakery",
		}, nil)

	require.NoError(t, handler.AttachLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSocialHandler_AttachLink_InvalidURL(t *testing.T) {
	uc := mockusecase.NewMockSocialUsecase(t)
	handler := NewSocialHandler(uc, testHandlerLogger())

	profileID := uuid.New()
	c, rec := newTestContext(t, http.MethodPut,
		"/business/profiles/"+profileID.String()+"/social/instagram", `{"url":"not a url"}`)
	c.Set("userID", uuid.New())
	c.SetParamNames("id", "platform")
	c.SetParamValues(profileID.String(), "instagram")

	require.NoError(t, handler.AttachLink(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSocialHandler_RemoveLink_NotAttached(t *testing.T) {
	uc := mockusecase.NewMockSocialUsecase(t)
	handler := NewSocialHandler(uc, testHandlerLogger())

	ownerID := uuid.New()
	profileID := uuid.New()
	c, rec := newTestContext(t, http.MethodDelete,
		"/business/profiles/"+profileID.String()+"/social/tiktok", "")
	c.Set("userID", ownerID)
	c.SetParamNames("id", "platform")
	c.SetParamValues(profileID.String(), "tiktok")

	uc.EXPECT().
		RemoveLink(c.Request().Context(), ownerID, profileID, entity.PlatformTikTok).
		Return(domainerrors.ErrSocialLinkNotFound)

	require.NoError(t, handler.RemoveLink(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SOCIAL_LINK_NOT_FOUND")
}

func TestCategoryHandler_ListAndStats(t *testing.T) {
	uc := mockusecase.NewMockCategoryUsecase(t)
	handler := NewCategoryHandler(uc, testHandlerLogger())

	c, rec := newTestContext(t, http.MethodGet, "/categories", "")
	uc.EXPECT().
		ListCategories(c.Request().Context()).
		Return([]*entity.Category{{ID: uuid.New(), Name: "Bakeries"}}, nil)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bakeries")

	c2, rec2 := newTestContext(t, http.MethodGet, "/stats", "")
	uc.EXPECT().
		GetDirectoryStats(c2.Request().Context()).
		Return(&entity.DirectoryStats{ProfileCount: 12, CategoryCount: 4, FollowCount: 97}, nil)

	require.NoError(t, handler.Stats(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Contains(t, rec2.Body.String(), `"follow_count":97`)
}
