package handler

import (
	"net/http"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	mockusecase "atlas/internal/mocks/usecase"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowHandler_Follow_WithPreferences(t *testing.T) {
	uc := mockusecase.NewMockFollowUsecase(t)
	handler := NewFollowHandler(uc, testHandlerLogger())

	userID := uuid.New()
	profileID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/user/follows/"+profileID.String(),
		`{"preferences":{"email":true,"sms":true,"push":false}}`)
	c.Set("userID", userID)
	c.SetParamNames("profileID")
	c.SetParamValues(profileID.String())

	uc.EXPECT().
		FollowProfile(c.Request().Context(), userID, profileID,
			&entity.NotificationPreferences{Email: true, SMS: true, Push: false}).
		Return(&entity.UserFollow{ID: uuid.New(), UserID: userID, ProfileID: profileID}, nil)

	require.NoError(t, handler.Follow(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFollowHandler_Follow_DefaultPreferences(t *testing.T) {
	uc := mockusecase.NewMockFollowUsecase(t)
	handler := NewFollowHandler(uc, testHandlerLogger())

	userID := uuid.New()
	profileID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/user/follows/"+profileID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("profileID")
	c.SetParamValues(profileID.String())

	uc.EXPECT().
		FollowProfile(c.Request().Context(), userID, profileID, (*entity.NotificationPreferences)(nil)).
		Return(&entity.UserFollow{ID: uuid.New(), UserID: userID, ProfileID: profileID}, nil)

	require.NoError(t, handler.Follow(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFollowHandler_Follow_InactiveProfile(t *testing.T) {
	uc := mockusecase.NewMockFollowUsecase(t)
	handler := NewFollowHandler(uc, testHandlerLogger())

	userID := uuid.New()
	profileID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/user/follows/"+profileID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("profileID")
	c.SetParamValues(profileID.String())

	uc.EXPECT().
		FollowProfile(c.Request().Context(), userID, profileID, (*entity.NotificationPreferences)(nil)).
		Return(nil, domainerrors.ErrProfileNotFound)

	require.NoError(t, handler.Follow(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_NOT_FOUND")
}

func TestFollowHandler_Unfollow(t *testing.T) {
	uc := mockusecase.NewMockFollowUsecase(t)
	handler := NewFollowHandler(uc, testHandlerLogger())

	userID := uuid.New()
	profileID := uuid.New()
	c, rec := newTestContext(t, http.MethodDelete, "/user/follows/"+profileID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("profileID")
	c.SetParamValues(profileID.String())

	uc.EXPECT().
		UnfollowProfile(c.Request().Context(), userID, profileID).
		Return(false, nil)

	require.NoError(t, handler.Unfollow(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"existed":false`)
}

func TestFollowHandler_ListFollowed(t *testing.T) {
	uc := mockusecase.NewMockFollowUsecase(t)
	handler := NewFollowHandler(uc, testHandlerLogger())

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/user/follows?page=2&page_size=6", "")
	c.Set("userID", userID)

	uc.EXPECT().
		ListFollowedProfiles(c.Request().Context(), userID, 2, 6).
		Return(&usecase.FollowedProfilesResult{Items: []*usecase.FollowedProfile{}, Page: 2, PerPage: 6}, nil)

	require.NoError(t, handler.ListFollowed(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFollowHandler_UpdateAllPreferences(t *testing.T) {
	uc := mockusecase.NewMockFollowUsecase(t)
	handler := NewFollowHandler(uc, testHandlerLogger())

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodPut, "/user/preferences", `{"email":false,"sms":false,"push":true}`)
	c.Set("userID", userID)

	uc.EXPECT().
		UpdateAllPreferences(c.Request().Context(), userID,
			entity.NotificationPreferences{Email: false, SMS: false, Push: true}).
		Return(int64(3), nil)

	require.NoError(t, handler.UpdateAllPreferences(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":3`)
}

func TestFollowHandler_ListFollowers_OwnershipViolation(t *testing.T) {
	uc := mockusecase.NewMockFollowUsecase(t)
	handler := NewFollowHandler(uc, testHandlerLogger())

	ownerID := uuid.New()
	profileID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/business/profiles/"+profileID.String()+"/followers", "")
	c.Set("userID", ownerID)
	c.SetParamNames("id")
	c.SetParamValues(profileID.String())

	uc.EXPECT().
		ListFollowers(c.Request().Context(), ownerID, profileID).
		Return(nil, domainerrors.ErrProfileOwnershipViolation)

	require.NoError(t, handler.ListFollowers(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_OWNERSHIP_VIOLATION")
}
