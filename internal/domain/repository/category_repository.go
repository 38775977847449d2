// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a referenced category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category database operations.
type CategoryRepository interface {
	// FindActiveCategories retrieves all selectable categories ordered by name.
	FindActiveCategories(ctx context.Context) ([]*entity.Category, error)

	// FindCategoriesByIDs retrieves the active categories matching the given IDs.
	// Returns ErrCategoryNotFound when any ID is missing or inactive.
	FindCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error)

	// CountActiveCategories counts selectable categories.
	CountActiveCategories(ctx context.Context) (int64, error)
}
