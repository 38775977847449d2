package notification

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	mockrepo "atlas/internal/mocks/repository"
	mockservice "atlas/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushStrategy_Send(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notification := testNotification(userID, entity.ChannelPush)

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{
		ID:       userID,
		FCMToken: "device-token-1",
	}, nil)

	sender := mockservice.NewMockPushSender(t)
	sender.EXPECT().
		Send(ctx, "device-token-1", notification.Subject, notification.Body, map[string]string{"profile_slug": "corner-bakery"}).
		Return(nil)

	strategy := NewPushStrategy(sender, userRepo)

	require.NoError(t, strategy.Send(ctx, notification))
}

func TestPushStrategy_Send_NoDeviceToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	strategy := NewPushStrategy(mockservice.NewMockPushSender(t), userRepo)

	err := strategy.Send(ctx, testNotification(userID, entity.ChannelPush))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no registered device token")
}

func TestPushStrategy_Send_SenderFailure(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notification := testNotification(userID, entity.ChannelPush)

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{
		ID:       userID,
		FCMToken: "device-token-1",
	}, nil)

	sender := mockservice.NewMockPushSender(t)
	sender.EXPECT().
		Send(ctx, "device-token-1", notification.Subject, notification.Body, map[string]string{"profile_slug": "corner-bakery"}).
		Return(errors.New("fcm unavailable"))

	strategy := NewPushStrategy(sender, userRepo)

	err := strategy.Send(ctx, notification)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fcm unavailable")
}

func TestStrategyRegistry_Lookup(t *testing.T) {
	push := mockservice.NewMockDeliveryStrategy(t)
	email := mockservice.NewMockDeliveryStrategy(t)

	registry := NewStrategyRegistry(email, nil, push)

	got, ok := registry.Lookup(entity.ChannelPush)
	require.True(t, ok)
	assert.Same(t, push, got)

	got, ok = registry.Lookup(entity.ChannelEmail)
	require.True(t, ok)
	assert.Same(t, email, got)

	_, ok = registry.Lookup(entity.ChannelSMS)
	assert.False(t, ok)
}
