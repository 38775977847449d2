package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/domain/entity"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FollowHandler holds dependencies for follow management handlers
type FollowHandler struct {
	uc     usecase.FollowUsecase
	logger *slog.Logger
}

// NewFollowHandler is the constructor for FollowHandler
func NewFollowHandler(uc usecase.FollowUsecase, logger *slog.Logger) *FollowHandler {
	return &FollowHandler{
		uc:     uc,
		logger: logger,
	}
}

// PreferencesRequest represents channel preferences in request bodies
type PreferencesRequest struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

func (r *PreferencesRequest) toEntity() entity.NotificationPreferences {
	return entity.NotificationPreferences{
		Email: r.Email,
		SMS:   r.SMS,
		Push:  r.Push,
	}
}

// FollowRequest represents the optional body of a follow request
type FollowRequest struct {
	Preferences *PreferencesRequest `json:"preferences,omitempty"`
}

// Follow handles following a profile
func (h *FollowHandler) Follow(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profileID, err := parseIDParam(c, "profileID")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FollowRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid follow input")
	}

	var prefs *entity.NotificationPreferences
	if req.Preferences != nil {
		p := req.Preferences.toEntity()
		prefs = &p
	}

	follow, err := h.uc.FollowProfile(c.Request().Context(), userID, profileID, prefs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, follow, "Profile followed successfully")
}

// Unfollow handles unfollowing a profile
func (h *FollowHandler) Unfollow(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profileID, err := parseIDParam(c, "profileID")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	existed, err := h.uc.UnfollowProfile(c.Request().Context(), userID, profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"existed": existed}, "Profile unfollowed successfully")
}

// GetFollow handles retrieving one follow with its preferences
func (h *FollowHandler) GetFollow(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profileID, err := parseIDParam(c, "profileID")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	follow, err := h.uc.GetFollow(c.Request().Context(), userID, profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, follow, "Follow retrieved successfully")
}

// ListFollowed handles listing the profiles the user follows
func (h *FollowHandler) ListFollowed(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page := parseIntParam(c, "page", 1)
	pageSize := parseIntParam(c, "page_size", 0)

	result, err := h.uc.ListFollowedProfiles(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Followed profiles retrieved successfully")
}

// UpdatePreferences handles overwriting the preferences of one follow
func (h *FollowHandler) UpdatePreferences(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profileID, err := parseIDParam(c, "profileID")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	follow, err := h.uc.UpdatePreferences(c.Request().Context(), userID, profileID, req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, follow, "Preferences updated successfully")
}

// UpdateAllPreferences handles overwriting the preferences of every follow the user holds
func (h *FollowHandler) UpdateAllPreferences(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	updated, err := h.uc.UpdateAllPreferences(c.Request().Context(), userID, req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated}, "Preferences updated successfully")
}

// ListFollowers handles listing the followers of the owner's profile
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profileID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	followers, err := h.uc.ListFollowers(c.Request().Context(), ownerID, profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, followers, "Followers retrieved successfully")
}
