// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the read-only interface for user records.
// Account management is owned by the external identity service.
type UserRepository interface {
	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUsersByIDs retrieves all users matching the given IDs.
	// Missing IDs are silently skipped.
	FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)
}
