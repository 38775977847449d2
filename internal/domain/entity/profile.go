// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile represents a business listed in the directory.
type BusinessProfile struct {
	ID          uuid.UUID   `json:"id"`                   // The Global Unique Identifier (GUID) for the profile.
	OwnerID     uuid.UUID   `json:"owner_id"`             // The ID of the user who owns this profile.
	Name        string      `json:"name"`                 // The business display name.
	Slug        string      `json:"slug"`                 // URL-safe unique identifier derived from the name.
	Description string      `json:"description"`          // Free-text description of the business.
	Email       string      `json:"email"`                // Public contact email.
	Phone       string      `json:"phone"`                // Public contact phone number.
	Address     string      `json:"address"`              // Street address as displayed to visitors.
	City        string      `json:"city"`                 // City of the business location.
	Latitude    *float64    `json:"latitude"`             // Geographic latitude. Nil when the profile has no location.
	Longitude   *float64    `json:"longitude"`            // Geographic longitude. Nil when the profile has no location.
	IsActive    bool        `json:"is_active"`            // Indicates if the profile is publicly visible.
	Categories  []*Category `json:"categories,omitempty"` // Categories this profile belongs to.
	CreatedAt   time.Time   `json:"created_at"`           // Timestamp of when this profile was created.
	UpdatedAt   time.Time   `json:"updated_at"`           // Timestamp of the last modification.
}

// HasLocation reports whether the profile carries a usable coordinate pair.
func (p *BusinessProfile) HasLocation() bool {
	return p != nil && p.Latitude != nil && p.Longitude != nil
}

// ProfileDetail bundles a profile with the aggregates shown on its public page.
type ProfileDetail struct {
	Profile         *BusinessProfile `json:"profile"`
	SocialNetworks  []*SocialNetwork `json:"social_networks"`
	FollowerCount   int64            `json:"follower_count"`
	SocialLinkCount int              `json:"social_link_count"`
	CategoryCount   int              `json:"category_count"`
}

// DirectoryStats holds the public counters shown on the landing page.
type DirectoryStats struct {
	ProfileCount  int64 `json:"profile_count"`
	CategoryCount int64 `json:"category_count"`
	FollowCount   int64 `json:"follow_count"`
}
