// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// Search and pagination bounds applied silently by the profile use case.
const (
	DefaultRadiusKm = 10.0
	MinRadiusKm     = 1.0
	MaxRadiusKm     = 50.0

	DefaultPageSize = 12
	MinPageSize     = 6
	MaxPageSize     = 50

	// NearbyLimit caps the result count of the nearby lookup.
	NearbyLimit = 100
)

// SearchFilters narrows a directory search. Zero values mean "no filter".
type SearchFilters struct {
	// Text is matched case-insensitively against profile name and description.
	Text string

	// CategoryID restricts results to one category.
	CategoryID *uuid.UUID

	// Latitude and Longitude form the search center. Both must be set for the
	// geographic filter to apply.
	Latitude  *float64
	Longitude *float64

	// RadiusKm bounds the geographic filter. Clamped to [MinRadiusKm, MaxRadiusKm],
	// defaulting to DefaultRadiusKm when unset.
	RadiusKm *float64

	// Page is 1-based. Values below 1 are treated as 1.
	Page int

	// PageSize is clamped to [MinPageSize, MaxPageSize]. Nil means
	// DefaultPageSize; an explicit out-of-range value clamps, including zero.
	PageSize *int
}

// ProfileHit is one search result, with the distance from the search center
// when a geographic filter was applied.
type ProfileHit struct {
	Profile    *entity.BusinessProfile `json:"profile"`
	DistanceKm *float64                `json:"distance_km,omitempty"`
}

// SearchResult is one page of directory search results.
type SearchResult struct {
	Items      []*ProfileHit `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
}

// ProfileInput carries the writable fields of a business profile.
type ProfileInput struct {
	Name        string
	Description string
	Email       string
	Phone       string
	Address     string
	City        string
	Latitude    *float64
	Longitude   *float64
	CategoryIDs []uuid.UUID
}

// ProfileUsecase defines the interface for directory profile use cases.
type ProfileUsecase interface {
	// Search returns a page of active profiles matching the filters,
	// ordered by ascending distance when a geographic filter applies.
	Search(ctx context.Context, filters SearchFilters) (*SearchResult, error)

	// Nearby returns the active profiles within radiusKm of the given point,
	// ordered by ascending distance and capped at NearbyLimit.
	Nearby(ctx context.Context, lat, lng float64, radiusKm *float64) ([]*ProfileHit, error)

	// GetBySlug retrieves the public detail view of an active profile.
	GetBySlug(ctx context.Context, slug string) (*entity.ProfileDetail, error)

	// CreateProfile registers a new business profile for the owner.
	CreateProfile(ctx context.Context, ownerID uuid.UUID, input *ProfileInput) (*entity.BusinessProfile, error)

	// UpdateProfile modifies the owner's profile and fans out the update event.
	UpdateProfile(ctx context.Context, ownerID, profileID uuid.UUID, input *ProfileInput) (*entity.BusinessProfile, error)

	// DeleteProfile removes the owner's profile and fans out the removal event.
	DeleteProfile(ctx context.Context, ownerID, profileID uuid.UUID) error

	// GenerateProfileQR renders a PNG QR code pointing at the public profile page.
	GenerateProfileQR(ctx context.Context, slug string) ([]byte, error)
}
