package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// One row is one message for one user on one channel. Status moves from
// pending to sent or failed and never back.
type NotificationModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProfileID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	Channel       string            `gorm:"type:varchar(10);not null"`
	Action        string            `gorm:"type:varchar(10);not null"`
	Subject       string            `gorm:"type:text;not null"`
	Body          string            `gorm:"type:text;not null"`
	Status        string            `gorm:"type:varchar(10);not null;default:'pending';index"`
	FailureReason string            `gorm:"type:text"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time         `gorm:"index"`
	SentAt        *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
