package service

import (
	"context"

	"atlas/internal/domain/entity"
)

// LinkValidator checks that a URL belongs to the claimed social platform.
type LinkValidator interface {
	// Validate returns nil when the URL is acceptable for the platform.
	Validate(ctx context.Context, platform entity.SocialPlatform, url string) error
}
