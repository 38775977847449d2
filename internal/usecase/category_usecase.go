package usecase

import (
	"context"

	"atlas/internal/domain/entity"
)

// CategoryUsecase defines the interface for category and stats use cases.
type CategoryUsecase interface {
	// ListCategories retrieves the selectable categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetDirectoryStats retrieves the public directory counters. The snapshot
	// is cached for the configured TTL.
	GetDirectoryStats(ctx context.Context) (*entity.DirectoryStats, error)
}
