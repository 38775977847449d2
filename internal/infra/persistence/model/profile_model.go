package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessProfileModel is the GORM-specific struct for the 'business_profiles' table.
// PostgreSQL generates UUIDs via uuid_generate_v7(). Profiles are soft-deleted so
// historical notifications keep a valid reference.
type BusinessProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	Email       string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Address     string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(100);index"`
	Latitude    *float64  `gorm:"type:decimal(10,8)"`
	Longitude   *float64  `gorm:"type:decimal(11,8)"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Categories []CategoryModel `gorm:"many2many:profile_categories;joinForeignKey:ProfileID;joinReferences:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
