// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a directory category a business profile can belong to.
type Category struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the category.
	Name        string    `json:"name"`        // The category display name.
	Slug        string    `json:"slug"`        // URL-safe unique identifier derived from the name.
	Description string    `json:"description"` // Optional description of the category.
	IsActive    bool      `json:"is_active"`   // Indicates if the category is selectable.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this category was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
