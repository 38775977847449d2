// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// CreateProfile persists a new business profile with its category links.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.BusinessProfile, categoryIDs []uuid.UUID) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(err.Error(), "slug") {
				return repository.ErrDuplicateSlug
			}
			return repository.ErrDuplicateProfile
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	if err := repo.replaceCategories(ctx, profileM, categoryIDs); err != nil {
		return err
	}

	// Update the entity with generated values
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfileByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfileBySlug retrieves an active profile by its slug.
func (repo *profileRepository) FindProfileBySlug(ctx context.Context, slug string) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by slug")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfileByOwner retrieves the profile owned by the given user.
func (repo *profileRepository) FindProfileByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("owner_id = ?", ownerID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by owner")
	}

	return toProfileDomain(&profileM), nil
}

// FindActiveProfiles retrieves active profiles matching the filter.
// Text matches name and description case-insensitively; the geographic filter
// is applied by the use case layer on the returned candidates.
func (repo *profileRepository) FindActiveProfiles(ctx context.Context, filter repository.ProfileFilter) ([]*entity.BusinessProfile, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Preload("Categories").
		Where("business_profiles.is_active = ?", true)

	if filter.Text != "" {
		pattern := "%" + escapeLikePattern(filter.Text) + "%"
		query = query.Where("business_profiles.name ILIKE ? OR business_profiles.description ILIKE ?", pattern, pattern)
	}

	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN profile_categories ON profile_categories.profile_id = business_profiles.id").
			Where("profile_categories.category_id = ?", *filter.CategoryID)
	}

	var profileModels []*model.BusinessProfileModel
	if err := query.Order("business_profiles.name ASC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active profiles")
	}

	profiles := make([]*entity.BusinessProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// UpdateProfile persists changes to a profile and replaces its category links.
func (repo *profileRepository) UpdateProfile(ctx context.Context, profile *entity.BusinessProfile, categoryIDs []uuid.UUID) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("id = ?", profileM.ID).
		Select("Name", "Slug", "Description", "Email", "Phone", "Address", "City", "Latitude", "Longitude", "UpdatedAt").
		Updates(profileM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return repo.replaceCategories(ctx, profileM, categoryIDs)
}

// DeleteProfile soft-deletes a profile so historical notifications keep a valid reference.
func (repo *profileRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessProfileModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// SlugExists reports whether any profile, including soft-deleted ones, uses the slug.
func (repo *profileRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Unscoped().
		Model(&model.BusinessProfileModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slug")
	}

	return count > 0, nil
}

// CountActiveProfiles counts publicly visible profiles.
func (repo *profileRepository) CountActiveProfiles(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active profiles")
	}

	return count, nil
}

// replaceCategories rewrites the profile's category links. Only the join rows
// are touched; category rows themselves are never upserted from here.
func (repo *profileRepository) replaceCategories(ctx context.Context, profileM *model.BusinessProfileModel, categoryIDs []uuid.UUID) error {
	categories := make([]model.CategoryModel, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		categories = append(categories, model.CategoryModel{ID: id})
	}

	if err := repo.db.WithContext(ctx).
		Model(profileM).
		Omit("Categories.*").
		Association("Categories").
		Replace(&categories); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace profile categories")
	}

	return nil
}

// toProfileDomain converts a GORM BusinessProfileModel to a domain BusinessProfile entity.
// escapeLikePattern neutralizes LIKE wildcards so user text matches literally.
func escapeLikePattern(text string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(text)
}

func toProfileDomain(data *model.BusinessProfileModel) *entity.BusinessProfile {
	if data == nil {
		return nil
	}

	categories := make([]*entity.Category, 0, len(data.Categories))
	for i := range data.Categories {
		categories = append(categories, toCategoryDomain(&data.Categories[i]))
	}

	return &entity.BusinessProfile{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Email:       data.Email,
		Phone:       data.Phone,
		Address:     data.Address,
		City:        data.City,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsActive:    data.IsActive,
		Categories:  categories,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain BusinessProfile entity to a GORM BusinessProfileModel.
func fromProfileDomain(data *entity.BusinessProfile) *model.BusinessProfileModel {
	if data == nil {
		return nil
	}

	return &model.BusinessProfileModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Email:       data.Email,
		Phone:       data.Phone,
		Address:     data.Address,
		City:        data.City,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
