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

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindActiveCategories retrieves all selectable categories ordered by name.
func (repo *categoryRepository) FindActiveCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindCategoriesByIDs retrieves the active categories matching the given IDs.
// Any missing or inactive ID makes the whole lookup fail.
func (repo *categoryRepository) FindCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return []*entity.Category{}, nil
	}

	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories by IDs")
	}

	if len(categoryModels) != len(ids) {
		return nil, repository.ErrCategoryNotFound
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// CountActiveCategories counts selectable categories.
func (repo *categoryRepository) CountActiveCategories(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active categories")
	}

	return count, nil
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
