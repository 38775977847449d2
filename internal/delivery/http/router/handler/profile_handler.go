package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"atlas/internal/delivery/http/response"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProfileHandler holds dependencies for directory profile handlers
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// ProfileRequest represents the request body for creating or updating a profile
type ProfileRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=120"`
	Description string      `json:"description" validate:"max=2000"`
	Email       string      `json:"email" validate:"omitempty,email"`
	Phone       string      `json:"phone" validate:"omitempty,max=32"`
	Address     string      `json:"address" validate:"max=255"`
	City        string      `json:"city" validate:"max=120"`
	Latitude    *float64    `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64    `json:"longitude" validate:"omitempty,longitude"`
	CategoryIDs []uuid.UUID `json:"category_ids" validate:"max=10"`
}

func (r *ProfileRequest) toInput() *usecase.ProfileInput {
	return &usecase.ProfileInput{
		Name:        r.Name,
		Description: r.Description,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		City:        r.City,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		CategoryIDs: r.CategoryIDs,
	}
}

// Search handles the public directory search
func (h *ProfileHandler) Search(c echo.Context) error {
	filters := usecase.SearchFilters{
		Text: c.QueryParam("q"),
	}

	if categoryStr := c.QueryParam("category_id"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "category_id must be a valid UUID")
		}
		filters.CategoryID = &categoryID
	}

	lat, lng, err := parseOptionalCenter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	filters.Latitude = lat
	filters.Longitude = lng

	if radius, err := parseOptionalFloat(c, "radius_km"); err != nil {
		return response.HandleAppError(c, err)
	} else if radius != nil {
		filters.RadiusKm = radius
	}

	filters.Page = parseIntParam(c, "page", 1)
	filters.PageSize = parseOptionalInt(c, "page_size")

	result, err := h.uc.Search(c.Request().Context(), filters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Profiles retrieved successfully")
}

// Nearby handles the capped nearby lookup
func (h *ProfileHandler) Nearby(c echo.Context) error {
	lat, err := parseRequiredFloat(c, "lat")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	lng, err := parseRequiredFloat(c, "lng")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	radius, err := parseOptionalFloat(c, "radius_km")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	hits, err := h.uc.Nearby(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hits, "Nearby profiles retrieved successfully")
}

// GetBySlug handles the public profile detail page
func (h *ProfileHandler) GetBySlug(c echo.Context) error {
	detail, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Profile retrieved successfully")
}

// GetQRCode handles rendering the profile share QR code
func (h *ProfileHandler) GetQRCode(c echo.Context) error {
	png, err := h.uc.GenerateProfileQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Create handles registering a new business profile
func (h *ProfileHandler) Create(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.uc.CreateProfile(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile, "Profile created successfully")
}

// Update handles modifying the owner's business profile
func (h *ProfileHandler) Update(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profileID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), ownerID, profileID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// Delete handles removing the owner's business profile
func (h *ProfileHandler) Delete(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profileID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), ownerID, profileID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile deleted successfully")
}

// getUserID extracts the authenticated user ID placed on the context by the auth middleware
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.NewBaseError(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid user ID in token", nil)
	}

	return userID, nil
}

// badParam builds the 400 returned for malformed query or path input.
func badParam(message string) error {
	return domainerrors.NewBaseError(http.StatusBadRequest, "VALIDATION_ERROR", message, nil)
}

// parseIDParam parses a UUID path parameter
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, badParam(name + " must be a valid UUID")
	}

	return id, nil
}

// parseIntParam parses an optional integer query parameter
func parseIntParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// parseOptionalInt parses an optional integer query parameter, nil when
// absent or malformed
func parseOptionalInt(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &value
}

// parseOptionalFloat parses an optional float query parameter
func parseOptionalFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, badParam(name + " must be a number")
	}

	return &value, nil
}

// parseRequiredFloat parses a required float query parameter
func parseRequiredFloat(c echo.Context, name string) (float64, error) {
	value, err := parseOptionalFloat(c, name)
	if err != nil {
		return 0, err
	}
	if value == nil {
		return 0, badParam(name + " is required")
	}

	return *value, nil
}

// parseOptionalCenter parses the lat/lng pair, requiring both or neither
func parseOptionalCenter(c echo.Context) (*float64, *float64, error) {
	lat, err := parseOptionalFloat(c, "lat")
	if err != nil {
		return nil, nil, err
	}
	lng, err := parseOptionalFloat(c, "lng")
	if err != nil {
		return nil, nil, err
	}

	if (lat == nil) != (lng == nil) {
		return nil, nil, badParam("lat and lng must be provided together")
	}

	return lat, lng, nil
}
