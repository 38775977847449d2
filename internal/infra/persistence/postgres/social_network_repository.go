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
	"gorm.io/gorm/clause"
)

// socialNetworkRepository implements the repository.SocialNetworkRepository interface.
type socialNetworkRepository struct {
	db *gorm.DB
}

// NewSocialNetworkRepository is the constructor for socialNetworkRepository.
func NewSocialNetworkRepository(db *gorm.DB) repository.SocialNetworkRepository {
	return &socialNetworkRepository{
		db: db,
	}
}

// UpsertSocialNetwork creates the link or overwrites the URL when the
// (profile, platform) pair already exists.
func (repo *socialNetworkRepository) UpsertSocialNetwork(ctx context.Context, link *entity.SocialNetwork) error {
	linkM := fromSocialNetworkDomain(link)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "platform"}},
			DoUpdates: clause.AssignmentColumns([]string{"url", "updated_at"}),
		}).
		Create(linkM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert social network")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindSocialNetworksByProfile retrieves all links of a profile ordered by platform.
func (repo *socialNetworkRepository) FindSocialNetworksByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.SocialNetwork, error) {
	var linkModels []*model.SocialNetworkModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("platform ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find social networks by profile")
	}

	links := make([]*entity.SocialNetwork, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toSocialNetworkDomain(linkM))
	}

	return links, nil
}

// DeleteSocialNetwork removes the link for a (profile, platform) pair.
func (repo *socialNetworkRepository) DeleteSocialNetwork(ctx context.Context, profileID uuid.UUID, platform entity.SocialPlatform) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("profile_id = ? AND platform = ?", profileID, platform.String()).
		Delete(&model.SocialNetworkModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete social network")
	}

	return result.RowsAffected > 0, nil
}

// toSocialNetworkDomain converts a GORM SocialNetworkModel to a domain SocialNetwork entity.
func toSocialNetworkDomain(data *model.SocialNetworkModel) *entity.SocialNetwork {
	if data == nil {
		return nil
	}

	return &entity.SocialNetwork{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Platform:  entity.SocialPlatform(data.Platform),
		URL:       data.URL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSocialNetworkDomain converts a domain SocialNetwork entity to a GORM SocialNetworkModel.
func fromSocialNetworkDomain(data *entity.SocialNetwork) *model.SocialNetworkModel {
	if data == nil {
		return nil
	}

	now := time.Now()
	createdAt := data.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	return &model.SocialNetworkModel{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Platform:  data.Platform.String(),
		URL:       data.URL,
		CreatedAt: createdAt,
		UpdatedAt: now,
	}
}
