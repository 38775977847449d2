// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a business profile is not found.
	ErrProfileNotFound = errors.New("business profile not found")
	// ErrDuplicateProfile is returned when the owner already has a profile.
	ErrDuplicateProfile = errors.New("business profile already exists for owner")
	// ErrDuplicateSlug is returned when the generated slug collides with an existing one.
	ErrDuplicateSlug = errors.New("profile slug already exists")
)

// ProfileFilter narrows the candidate set returned by FindActiveProfiles.
// Geographic filtering happens in the use case layer on the returned candidates.
type ProfileFilter struct {
	// Text is matched case-insensitively against name and description.
	Text string
	// CategoryID restricts results to profiles in the category when set.
	CategoryID *uuid.UUID
}

// ProfileRepository defines the interface for business profile database operations.
type ProfileRepository interface {
	// CreateProfile persists a new business profile with its category links.
	CreateProfile(ctx context.Context, profile *entity.BusinessProfile, categoryIDs []uuid.UUID) error

	// FindProfileByID retrieves a profile by its unique ID, including soft-deleted exclusion.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// FindProfileBySlug retrieves an active profile by its slug with categories preloaded.
	FindProfileBySlug(ctx context.Context, slug string) (*entity.BusinessProfile, error)

	// FindProfileByOwner retrieves the profile owned by the given user.
	FindProfileByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error)

	// FindActiveProfiles retrieves active profiles matching the filter, categories preloaded.
	FindActiveProfiles(ctx context.Context, filter ProfileFilter) ([]*entity.BusinessProfile, error)

	// UpdateProfile persists changes to a profile and replaces its category links.
	UpdateProfile(ctx context.Context, profile *entity.BusinessProfile, categoryIDs []uuid.UUID) error

	// DeleteProfile soft-deletes a profile so historical notifications keep a valid reference.
	DeleteProfile(ctx context.Context, id uuid.UUID) error

	// SlugExists reports whether any profile, including soft-deleted ones, uses the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// CountActiveProfiles counts publicly visible profiles.
	CountActiveProfiles(ctx context.Context) (int64, error)
}
