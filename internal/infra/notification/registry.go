// Package notification contains the concrete delivery channels behind the dispatcher.
package notification

import (
	"atlas/internal/domain/entity"
	"atlas/internal/domain/service"
)

// strategyRegistry is a fixed map from channel to delivery strategy.
type strategyRegistry struct {
	strategies map[entity.NotificationChannel]service.DeliveryStrategy
}

// NewStrategyRegistry wires one strategy per supported channel.
// A nil strategy leaves the channel unregistered, so dispatch marks its
// notifications failed instead of panicking.
func NewStrategyRegistry(email, sms, push service.DeliveryStrategy) service.StrategyRegistry {
	strategies := make(map[entity.NotificationChannel]service.DeliveryStrategy, 3)
	if email != nil {
		strategies[entity.ChannelEmail] = email
	}
	if sms != nil {
		strategies[entity.ChannelSMS] = sms
	}
	if push != nil {
		strategies[entity.ChannelPush] = push
	}

	return &strategyRegistry{strategies: strategies}
}

// Lookup returns the strategy for the channel and whether one is registered.
func (r *strategyRegistry) Lookup(channel entity.NotificationChannel) (service.DeliveryStrategy, bool) {
	strategy, ok := r.strategies[channel]

	return strategy, ok
}
