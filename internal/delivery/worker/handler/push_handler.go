package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"atlas/config"
	deliverycontext "atlas/internal/delivery/context"
	"atlas/internal/domain/constants"
	"atlas/internal/domain/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler drains pending notifications when profile events arrive
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages carrying profile events
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse profile event
	var event service.ProfileEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse profile event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing profile event",
		slog.String("profile_id", event.ProfileID),
		slog.String("action", event.Action),
	)

	// The API dispatched inline at event time; here we drain whatever is
	// still pending, which covers crashes between create and deliver.
	summary, err := h.notificationUC.ProcessPending(ctx, 0)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process pending notifications",
			slog.String("profile_id", event.ProfileID),
			slog.Any("error", err),
		)
		// Return 503 to trigger a Pub/Sub retry; pending rows stay pending.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Profile event processed",
		slog.String("profile_id", event.ProfileID),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
	)

	return c.NoContent(http.StatusOK)
}

// HandleDrain drains pending notifications on demand
func (h *PushHandler) HandleDrain(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be an integer"})
		}
		limit = parsed
	}

	summary, err := h.notificationUC.ProcessPending(ctx, limit)
	if err != nil {
		h.logger.Error("[Worker] Drain failed", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, summary)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ProfileEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
