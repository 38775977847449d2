package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CategoryHandler holds dependencies for category and stats handlers
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing the selectable categories
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// Stats handles the public directory counters
func (h *CategoryHandler) Stats(c echo.Context) error {
	stats, err := h.uc.GetDirectoryStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Directory stats retrieved successfully")
}
