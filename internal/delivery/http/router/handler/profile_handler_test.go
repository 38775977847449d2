package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atlas/internal/delivery/http/validator"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	mockusecase "atlas/internal/mocks/usecase"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestProfileHandler_Search_ParsesFilters(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	categoryID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet,
		"/profiles?q=bakery&category_id="+categoryID.String()+"&lat=40.4&lng=-3.7&radius_km=5&page=2&page_size=24", "")

	uc.EXPECT().
		Search(c.Request().Context(), usecase.SearchFilters{
			Text:       "bakery",
			CategoryID: &categoryID,
			Latitude:   floatPtr(40.4),
			Longitude:  floatPtr(-3.7),
			RadiusKm:   floatPtr(5),
			Page:       2,
			PageSize:   intPtr(24),
		}).
		Return(&usecase.SearchResult{Items: []*usecase.ProfileHit{}, Page: 2, PerPage: 24}, nil)

	require.NoError(t, handler.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestProfileHandler_Search_InvalidCategoryID(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	c, rec := newTestContext(t, http.MethodGet, "/profiles?category_id=not-a-uuid", "")

	require.NoError(t, handler.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "category_id must be a valid UUID")
}

func TestProfileHandler_Search_PartialCenter(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	c, rec := newTestContext(t, http.MethodGet, "/profiles?lat=40.4", "")

	require.NoError(t, handler.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "lat and lng must be provided together")
}

func TestProfileHandler_Nearby_RequiresCoordinates(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	c, rec := newTestContext(t, http.MethodGet, "/profiles/nearby?lat=40.4", "")

	require.NoError(t, handler.Nearby(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "lng is required")
}

func TestProfileHandler_GetBySlug(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	c, rec := newTestContext(t, http.MethodGet, "/profiles/corner-bakery", "")
	c.SetParamNames("slug")
	c.SetParamValues("corner-bakery")

	uc.EXPECT().
		GetBySlug(c.Request().Context(), "corner-bakery").
		Return(&entity.ProfileDetail{
			Profile: &entity.BusinessProfile{Name: "Corner Bakery", Slug: "corner-bakery"},
		}, nil)

	require.NoError(t, handler.GetBySlug(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "corner-bakery")
}

func TestProfileHandler_GetBySlug_NotFound(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	c, rec := newTestContext(t, http.MethodGet, "/profiles/ghost", "")
	c.SetParamNames("slug")
	c.SetParamValues("ghost")

	uc.EXPECT().
		GetBySlug(c.Request().Context(), "ghost").
		Return(nil, domainerrors.ErrProfileNotFound)

	require.NoError(t, handler.GetBySlug(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_NOT_FOUND")
}

func TestProfileHandler_GetQRCode(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	c, rec := newTestContext(t, http.MethodGet, "/profiles/corner-bakery/qr", "")
	c.SetParamNames("slug")
	c.SetParamValues("corner-bakery")

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	uc.EXPECT().
		GenerateProfileQR(c.Request().Context(), "corner-bakery").
		Return(png, nil)

	require.NoError(t, handler.GetQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProfileHandler_Create(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	ownerID := uuid.New()
	body := `{"name":"Corner Bakery","description":"Fresh bread daily","email":"hello@corner.example","latitude":40.4,"longitude":-3.7}`
	c, rec := newTestContext(t, http.MethodPost, "/business/profiles", body)
	c.Set("userID", ownerID)

	uc.EXPECT().
		CreateProfile(c.Request().Context(), ownerID, &usecase.ProfileInput{
			Name:        "Corner Bakery",
			Description: "Fresh bread daily",
			Email:       "hello@corner.example",
			Latitude:    floatPtr(40.4),
			Longitude:   floatPtr(-3.7),
		}).
		Return(&entity.BusinessProfile{ID: uuid.New(), Name: "Corner Bakery", Slug: "corner-bakery"}, nil)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProfileHandler_Create_ValidationFailure(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	c, rec := newTestContext(t, http.MethodPost, "/business/profiles", `{"name":"","email":"not-an-email"}`)
	c.Set("userID", uuid.New())

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "is required")
}

func TestProfileHandler_Create_MissingUser(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	c, rec := newTestContext(t, http.MethodPost, "/business/profiles", `{"name":"Corner Bakery"}`)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestProfileHandler_Delete(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	handler := NewProfileHandler(uc, testHandlerLogger())

	ownerID := uuid.New()
	profileID := uuid.New()
	c, rec := newTestContext(t, http.MethodDelete, "/business/profiles/"+profileID.String(), "")
	c.Set("userID", ownerID)
	c.SetParamNames("id")
	c.SetParamValues(profileID.String())

	uc.EXPECT().
		DeleteProfile(c.Request().Context(), ownerID, profileID).
		Return(nil)

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
