package model

import (
	"time"

	"github.com/google/uuid"
)

// UserFollowModel is the GORM-specific struct for the 'user_follows' table.
// The (user_id, profile_id) pair is unique; unfollow removes the row outright,
// so there is no soft delete here.
type UserFollowModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_follows_user_profile"`
	ProfileID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_follows_user_profile;index"`
	EmailEnabled bool      `gorm:"not null;default:true"`
	SMSEnabled   bool      `gorm:"not null;default:false"`
	PushEnabled  bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserFollowModel) TableName() string {
	return "user_follows"
}
