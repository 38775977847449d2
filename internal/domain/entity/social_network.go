// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// SocialPlatform identifies a supported social network platform.
type SocialPlatform string

const (
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformYouTube   SocialPlatform = "youtube"
	PlatformTikTok    SocialPlatform = "tiktok"
	PlatformWhatsApp  SocialPlatform = "whatsapp"
)

// SocialPlatforms lists every supported platform.
//
//nolint:gochecknoglobals
var SocialPlatforms = []SocialPlatform{
	PlatformFacebook,
	PlatformInstagram,
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformYouTube,
	PlatformTikTok,
	PlatformWhatsApp,
}

// String returns the string representation of the platform.
func (p SocialPlatform) String() string {
	return string(p)
}

// IsValid checks if the platform is a supported value.
func (p SocialPlatform) IsValid() bool {
	return slices.Contains(SocialPlatforms, p)
}

// SocialNetwork represents a social media link attached to a business profile.
// A profile holds at most one link per platform.
type SocialNetwork struct {
	ID        uuid.UUID      `json:"id"`         // The Global Unique Identifier (GUID) for the link.
	ProfileID uuid.UUID      `json:"profile_id"` // The ID of the profile the link belongs to.
	Platform  SocialPlatform `json:"platform"`   // The platform this link points to.
	URL       string         `json:"url"`        // The validated profile URL on the platform.
	CreatedAt time.Time      `json:"created_at"` // Timestamp of when this link was attached.
	UpdatedAt time.Time      `json:"updated_at"` // Timestamp of the last modification.
}
