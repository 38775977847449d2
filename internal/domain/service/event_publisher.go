package service

import (
	"context"
	"time"
)

// ProfileEvent represents a profile lifecycle event fanned out to followers.
type ProfileEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	ProfileID   string    `json:"profile_id"`
	ProfileName string    `json:"profile_name"`
	Action      string    `json:"action"` // created, updated, deleted
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfileEvent publishes a profile lifecycle event for async processing
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
