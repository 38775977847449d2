package postgres

import (
	"context"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// followRepository implements the repository.FollowRepository interface.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{
		db: db,
	}
}

// CreateFollow persists a new follow relationship.
func (repo *followRepository) CreateFollow(ctx context.Context, follow *entity.UserFollow) error {
	followM := fromFollowDomain(follow)

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFollow
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow")
	}

	// Update the entity with generated values
	follow.ID = followM.ID
	follow.CreatedAt = followM.CreatedAt
	follow.UpdatedAt = followM.UpdatedAt

	return nil
}

// FindFollow retrieves the follow for a (user, profile) pair.
func (repo *followRepository) FindFollow(ctx context.Context, userID, profileID uuid.UUID) (*entity.UserFollow, error) {
	var followM model.UserFollowModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND profile_id = ?", userID, profileID).
		First(&followM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFollowNotFound
		}

		return nil, errors.Wrap(err, "failed to find follow")
	}

	return toFollowDomain(&followM), nil
}

// FindFollowsByProfile retrieves every follow of a profile, newest first.
func (repo *followRepository) FindFollowsByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.UserFollow, error) {
	var followModels []*model.UserFollowModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&followModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find follows by profile")
	}

	return toFollowDomainSlice(followModels), nil
}

// FindFollowsByUser retrieves a page of the user's follows, newest first.
func (repo *followRepository) FindFollowsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserFollow, error) {
	var followModels []*model.UserFollowModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&followModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find follows by user")
	}

	return toFollowDomainSlice(followModels), nil
}

// UpdateFollowPreferences overwrites the channel preferences of a follow.
func (repo *followRepository) UpdateFollowPreferences(ctx context.Context, id uuid.UUID, prefs entity.NotificationPreferences) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("id = ?", id).
		Updates(preferenceColumns(prefs))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update follow preferences")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFollowNotFound
	}

	return nil
}

// UpdateAllPreferencesForUser overwrites the preferences of every follow the user holds.
func (repo *followRepository) UpdateAllPreferencesForUser(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("user_id = ?", userID).
		Updates(preferenceColumns(prefs))
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update preferences for user")
	}

	return result.RowsAffected, nil
}

// DeleteFollow hard-deletes the follow for a (user, profile) pair.
func (repo *followRepository) DeleteFollow(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND profile_id = ?", userID, profileID).
		Delete(&model.UserFollowModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete follow")
	}

	return result.RowsAffected > 0, nil
}

// CountFollowersByProfile counts users following a profile.
func (repo *followRepository) CountFollowersByProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count followers")
	}

	return count, nil
}

// CountFollowsByUser counts profiles the user follows.
func (repo *followRepository) CountFollowsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count follows by user")
	}

	return count, nil
}

// CountFollows counts all follow relationships.
func (repo *followRepository) CountFollows(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count follows")
	}

	return count, nil
}

// preferenceColumns maps channel preferences onto their table columns.
func preferenceColumns(prefs entity.NotificationPreferences) map[string]any {
	return map[string]any{
		"email_enabled": prefs.Email,
		"sms_enabled":   prefs.SMS,
		"push_enabled":  prefs.Push,
		"updated_at":    time.Now(),
	}
}

// toFollowDomain converts a GORM UserFollowModel to a domain UserFollow entity.
func toFollowDomain(data *model.UserFollowModel) *entity.UserFollow {
	if data == nil {
		return nil
	}

	return &entity.UserFollow{
		ID:        data.ID,
		UserID:    data.UserID,
		ProfileID: data.ProfileID,
		Preferences: entity.NotificationPreferences{
			Email: data.EmailEnabled,
			SMS:   data.SMSEnabled,
			Push:  data.PushEnabled,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toFollowDomainSlice(models []*model.UserFollowModel) []*entity.UserFollow {
	follows := make([]*entity.UserFollow, 0, len(models))
	for _, followM := range models {
		follows = append(follows, toFollowDomain(followM))
	}

	return follows
}

// fromFollowDomain converts a domain UserFollow entity to a GORM UserFollowModel.
func fromFollowDomain(data *entity.UserFollow) *model.UserFollowModel {
	if data == nil {
		return nil
	}

	return &model.UserFollowModel{
		ID:           data.ID,
		UserID:       data.UserID,
		ProfileID:    data.ProfileID,
		EmailEnabled: data.Preferences.Email,
		SMSEnabled:   data.Preferences.SMS,
		PushEnabled:  data.Preferences.Push,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
