// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification in the pending state.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindPendingNotifications retrieves the oldest pending notifications up to limit.
func (repo *notificationRepository) FindPendingNotifications(ctx context.Context, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.StatusPending.String()).
		Order("created_at ASC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending notifications")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// FindNotificationsByUser retrieves a page of the user's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// CountNotificationsByUser counts the user's notifications.
func (repo *notificationRepository) CountNotificationsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notifications by user")
	}

	return count, nil
}

// MarkNotificationSent transitions a pending notification to sent.
// The status guard in the WHERE clause keeps the transition one-way.
func (repo *notificationRepository) MarkNotificationSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, entity.StatusPending.String()).
		Updates(map[string]any{
			"status":  entity.StatusSent.String(),
			"sent_at": sentAt,
		})

	return repo.transitionResult(ctx, result, id)
}

// MarkNotificationFailed transitions a pending notification to failed with a reason.
func (repo *notificationRepository) MarkNotificationFailed(ctx context.Context, id uuid.UUID, reason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, entity.StatusPending.String()).
		Updates(map[string]any{
			"status":         entity.StatusFailed.String(),
			"failure_reason": reason,
		})

	return repo.transitionResult(ctx, result, id)
}

// transitionResult distinguishes a missing notification from one that already
// left the pending state.
func (repo *notificationRepository) transitionResult(ctx context.Context, result *gorm.DB, id uuid.UUID) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check notification existence")
	}
	if count == 0 {
		return repository.ErrNotificationNotFound
	}

	return repository.ErrNotificationNotPending
}

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:            data.ID,
		UserID:        data.UserID,
		ProfileID:     data.ProfileID,
		Channel:       entity.NotificationChannel(data.Channel),
		Action:        entity.ProfileAction(data.Action),
		Subject:       data.Subject,
		Body:          data.Body,
		Status:        entity.NotificationStatus(data.Status),
		FailureReason: data.FailureReason,
		Metadata:      data.Metadata,
		CreatedAt:     data.CreatedAt,
		SentAt:        data.SentAt,
	}
}

func toNotificationDomainSlice(models []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(models))
	for _, notificationM := range models {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:            data.ID,
		UserID:        data.UserID,
		ProfileID:     data.ProfileID,
		Channel:       data.Channel.String(),
		Action:        data.Action.String(),
		Subject:       data.Subject,
		Body:          data.Body,
		Status:        data.Status.String(),
		FailureReason: data.FailureReason,
		Metadata:      data.Metadata,
		CreatedAt:     data.CreatedAt,
		SentAt:        data.SentAt,
	}
}
