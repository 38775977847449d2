// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for follow persistence.
var (
	// ErrFollowNotFound is returned when a follow relationship is not found.
	ErrFollowNotFound = errors.New("follow not found")
	// ErrDuplicateFollow is returned when a concurrent insert hits the unique (user, profile) index.
	ErrDuplicateFollow = errors.New("follow already exists")
)

// FollowRepository defines the interface for follow-related database operations.
type FollowRepository interface {
	// CreateFollow persists a new follow relationship.
	CreateFollow(ctx context.Context, follow *entity.UserFollow) error

	// FindFollow retrieves the follow for a (user, profile) pair.
	FindFollow(ctx context.Context, userID, profileID uuid.UUID) (*entity.UserFollow, error)

	// FindFollowsByProfile retrieves every follow of a profile, newest first.
	FindFollowsByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.UserFollow, error)

	// FindFollowsByUser retrieves a page of the user's follows, newest first.
	FindFollowsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserFollow, error)

	// UpdateFollowPreferences overwrites the channel preferences of a follow.
	UpdateFollowPreferences(ctx context.Context, id uuid.UUID, prefs entity.NotificationPreferences) error

	// UpdateAllPreferencesForUser overwrites the preferences of every follow the user holds.
	// Returns the number of follows updated.
	UpdateAllPreferencesForUser(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) (int64, error)

	// DeleteFollow hard-deletes the follow for a (user, profile) pair.
	// Returns false when no follow existed.
	DeleteFollow(ctx context.Context, userID, profileID uuid.UUID) (bool, error)

	// CountFollowersByProfile counts users following a profile.
	CountFollowersByProfile(ctx context.Context, profileID uuid.UUID) (int64, error)

	// CountFollowsByUser counts profiles the user follows.
	CountFollowsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountFollows counts all follow relationships.
	CountFollows(ctx context.Context) (int64, error)
}
