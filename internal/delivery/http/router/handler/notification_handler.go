package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetHistory handles retrieving the authenticated user's notification history
func (h *NotificationHandler) GetHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page := parseIntParam(c, "page", 1)
	pageSize := parseIntParam(c, "page_size", 0)

	result, err := h.uc.GetHistory(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Notification history retrieved successfully")
}
