package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
