package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. The table is owned by the external
// identity service; this system only reads from it.
type UserModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string                      `gorm:"type:varchar(255);unique;not null"`
	Phone     string                      `gorm:"type:varchar(50)"`
	Name      string                      `gorm:"type:varchar(100)"`
	FCMToken  string                      `gorm:"type:text"`
	Roles     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
