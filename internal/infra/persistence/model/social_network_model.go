package model

import (
	"time"

	"github.com/google/uuid"
)

// SocialNetworkModel is the GORM-specific struct for the 'social_networks' table.
// A profile holds at most one link per platform, enforced by the composite
// unique index.
type SocialNetworkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_social_networks_profile_platform"`
	Platform  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_social_networks_profile_platform"`
	URL       string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialNetworkModel) TableName() string {
	return "social_networks"
}
