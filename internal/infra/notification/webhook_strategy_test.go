package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atlas/internal/domain/entity"
	mockrepo "atlas/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotification(userID uuid.UUID, channel entity.NotificationChannel) *entity.Notification {
	return &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		ProfileID: uuid.New(),
		Channel:   channel,
		Action:    entity.ActionProfileUpdated,
		Subject:   "Update on: Corner Bakery",
		Body:      "Corner Bakery has updated its information. Check the news.",
		Status:    entity.StatusPending,
		Metadata:  map[string]any{"profile_slug": "corner-bakery"},
	}
}

func TestWebhookStrategy_Send_Email(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{
		ID:    userID,
		Email: "jane@example.com",
	}, nil)

	strategy := NewWebhookStrategy(entity.ChannelEmail, server.URL, time.Second, userRepo)

	err := strategy.Send(ctx, testNotification(userID, entity.ChannelEmail))
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", received.Recipient)
	assert.Equal(t, "Update on: Corner Bakery", received.Subject)
	assert.Equal(t, "Corner Bakery has updated its information. Check the news.", received.Body)
	assert.Equal(t, "email", received.Channel)
	assert.Equal(t, "corner-bakery", received.Metadata["profile_slug"])
}

func TestWebhookStrategy_Send_SMSUsesPhone(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{
		ID:    userID,
		Phone: "+34600111222",
	}, nil)

	strategy := NewWebhookStrategy(entity.ChannelSMS, server.URL, time.Second, userRepo)

	err := strategy.Send(ctx, testNotification(userID, entity.ChannelSMS))
	require.NoError(t, err)
	assert.Equal(t, "+34600111222", received.Recipient)
	assert.Equal(t, "sms", received.Channel)
}

func TestWebhookStrategy_Send_RelayFailure(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{
		ID:    userID,
		Email: "jane@example.com",
	}, nil)

	strategy := NewWebhookStrategy(entity.ChannelEmail, server.URL, time.Second, userRepo)

	err := strategy.Send(ctx, testNotification(userID, entity.ChannelEmail))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status: 502")
}

func TestWebhookStrategy_Send_MissingRecipient(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	strategy := NewWebhookStrategy(entity.ChannelEmail, "http://relay.invalid", time.Second, userRepo)

	err := strategy.Send(ctx, testNotification(userID, entity.ChannelEmail))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no email address")
}

func TestWebhookStrategy_Send_NoEndpoint(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	strategy := NewWebhookStrategy(entity.ChannelSMS, "", time.Second, userRepo)

	err := strategy.Send(context.Background(), testNotification(uuid.New(), entity.ChannelSMS))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no relay endpoint configured")
}
