// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the read-only repository.UserRepository interface.
// The users table is owned by the external identity service.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a user by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUsersByIDs retrieves all users matching the given IDs.
// Missing IDs are silently skipped.
func (repo *userRepository) FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by IDs")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Phone:     data.Phone,
		Name:      data.Name,
		FCMToken:  data.FCMToken,
		Roles:     entity.RolesFromStrings(data.Roles),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
