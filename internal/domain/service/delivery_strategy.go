package service

import (
	"context"

	"atlas/internal/domain/entity"
)

// DeliveryStrategy sends one notification over one concrete channel.
// Implementations live in the infrastructure layer (FCM, webhook relay, ...).
type DeliveryStrategy interface {
	// Send delivers the notification. A returned error marks the notification failed.
	Send(ctx context.Context, notification *entity.Notification) error
}

// StrategyRegistry resolves the delivery strategy for a channel.
type StrategyRegistry interface {
	// Lookup returns the strategy for the channel and whether one is registered.
	Lookup(channel entity.NotificationChannel) (DeliveryStrategy, bool)
}
