package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialUsecase defines the interface for profile social link use cases.
type SocialUsecase interface {
	// AttachLink validates the URL for the platform and upserts the link on
	// the owner's profile. Attaching an existing platform replaces its URL.
	AttachLink(ctx context.Context, ownerID, profileID uuid.UUID, platform entity.SocialPlatform, url string) (*entity.SocialNetwork, error)

	// RemoveLink detaches the platform link from the owner's profile.
	RemoveLink(ctx context.Context, ownerID, profileID uuid.UUID, platform entity.SocialPlatform) error

	// ListLinks retrieves all links attached to a profile.
	ListLinks(ctx context.Context, profileID uuid.UUID) ([]*entity.SocialNetwork, error)
}
