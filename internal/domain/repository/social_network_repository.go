// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// ErrSocialNetworkNotFound is returned when a social link is not found.
var ErrSocialNetworkNotFound = errors.New("social network link not found")

// SocialNetworkRepository defines the interface for social link database operations.
type SocialNetworkRepository interface {
	// UpsertSocialNetwork creates the link or, when the (profile, platform)
	// pair already exists, overwrites its URL.
	UpsertSocialNetwork(ctx context.Context, link *entity.SocialNetwork) error

	// FindSocialNetworksByProfile retrieves all links of a profile ordered by platform.
	FindSocialNetworksByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.SocialNetwork, error)

	// DeleteSocialNetwork removes the link for a (profile, platform) pair.
	// Returns false when no link existed.
	DeleteSocialNetwork(ctx context.Context, profileID uuid.UUID, platform entity.SocialPlatform) (bool, error)
}
