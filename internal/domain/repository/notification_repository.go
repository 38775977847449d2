// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotificationNotPending is returned when a status transition targets a
	// notification that already left the pending state.
	ErrNotificationNotPending = errors.New("notification is not pending")
)

// NotificationRepository defines the interface for notification database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification in the pending state.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindPendingNotifications retrieves the oldest pending notifications up to limit.
	FindPendingNotifications(ctx context.Context, limit int) ([]*entity.Notification, error)

	// FindNotificationsByUser retrieves a page of the user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountNotificationsByUser counts the user's notifications.
	CountNotificationsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkNotificationSent transitions a pending notification to sent.
	// Returns ErrNotificationNotPending when the notification already left pending.
	MarkNotificationSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error

	// MarkNotificationFailed transitions a pending notification to failed with a reason.
	// Returns ErrNotificationNotPending when the notification already left pending.
	MarkNotificationFailed(ctx context.Context, id uuid.UUID, reason string) error
}
