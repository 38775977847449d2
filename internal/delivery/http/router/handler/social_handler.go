package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/domain/entity"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SocialHandler holds dependencies for profile social link handlers
type SocialHandler struct {
	uc     usecase.SocialUsecase
	logger *slog.Logger
}

// NewSocialHandler is the constructor for SocialHandler
func NewSocialHandler(uc usecase.SocialUsecase, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{
		uc:     uc,
		logger: logger,
	}
}

// AttachLinkRequest represents the request body for attaching a social link
type AttachLinkRequest struct {
	URL string `json:"url" validate:"required,url,max=500"`
}

// AttachLink handles attaching or replacing a platform link on the owner's profile
func (h *SocialHandler) AttachLink(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profileID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AttachLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	platform := entity.SocialPlatform(c.Param("platform"))

	link, err := h.uc.AttachLink(c.Request().Context(), ownerID, profileID, platform, req.URL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link, "Social link attached successfully")
}

// RemoveLink handles detaching a platform link from the owner's profile
func (h *SocialHandler) RemoveLink(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profileID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	platform := entity.SocialPlatform(c.Param("platform"))

	if err := h.uc.RemoveLink(c.Request().Context(), ownerID, profileID, platform); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Social link removed successfully")
}

// ListLinks handles listing the links attached to the owner's profile
func (h *SocialHandler) ListLinks(c echo.Context) error {
	profileID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	links, err := h.uc.ListLinks(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, links, "Social links retrieved successfully")
}
