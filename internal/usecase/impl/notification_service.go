package impl

import (
	"context"
	"log/slog"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/infra/metrics"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	followRepo       repository.FollowRepository
	registry         service.StrategyRegistry
	metrics          *metrics.Metrics
	logger           *slog.Logger
}

// NewNotificationService creates a new notification dispatch service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	followRepo repository.FollowRepository,
	registry service.StrategyRegistry,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		followRepo:       followRepo,
		registry:         registry,
		metrics:          m,
		logger:           logger,
	}
}

// NotifyProfileEvent creates one pending notification per follower and enabled
// channel, then attempts delivery inline
func (s *notificationService) NotifyProfileEvent(ctx context.Context, profile *entity.BusinessProfile, action entity.ProfileAction) (*usecase.DispatchSummary, error) {
	if !action.IsValid() {
		return nil, errors.Errorf("unknown profile action: %s", action)
	}

	follows, err := s.followRepo.FindFollowsByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find followers")
	}

	subject := action.Subject(profile.Name)
	body := action.Body(profile.Name)

	summary := &usecase.DispatchSummary{}
	for _, follow := range follows {
		for _, channel := range follow.Preferences.EnabledChannels() {
			notification := &entity.Notification{
				ID:        uuid.New(),
				UserID:    follow.UserID,
				ProfileID: profile.ID,
				Channel:   channel,
				Action:    action,
				Subject:   subject,
				Body:      body,
				Status:    entity.StatusPending,
				Metadata: map[string]any{
					"profile_id":   profile.ID.String(),
					"profile_slug": profile.Slug,
					"action":       action.String(),
				},
				CreatedAt: time.Now(),
			}

			if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
				s.logger.Error("failed to create notification",
					slog.String("user_id", follow.UserID.String()),
					slog.String("channel", channel.String()),
					slog.Any("error", err))
				continue
			}
			summary.Created++

			if s.deliver(ctx, notification) {
				summary.Sent++
			} else {
				summary.Failed++
			}
		}
	}

	return summary, nil
}

// ProcessPending drains up to limit pending notifications through their
// channel strategies
func (s *notificationService) ProcessPending(ctx context.Context, limit int) (*usecase.DispatchSummary, error) {
	if limit < 1 {
		limit = usecase.DefaultPendingBatch
	}

	pending, err := s.notificationRepo.FindPendingNotifications(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending notifications")
	}

	summary := &usecase.DispatchSummary{}
	for _, notification := range pending {
		if s.deliver(ctx, notification) {
			summary.Sent++
		} else {
			summary.Failed++
		}
	}

	return summary, nil
}

// GetHistory retrieves a page of the user's notifications, newest first
func (s *notificationService) GetHistory(ctx context.Context, userID uuid.UUID, page, pageSize int) (*usecase.HistoryResult, error) {
	if page < 1 {
		page = 1
	}
	pageSize = clampListPageSize(pageSize)

	total, err := s.notificationRepo.CountNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	items, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications")
	}

	return &usecase.HistoryResult{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: pageSize,
	}, nil
}

// deliver routes the notification through its channel strategy and records
// the final status. It reports whether delivery succeeded.
func (s *notificationService) deliver(ctx context.Context, notification *entity.Notification) bool {
	if err := s.attempt(ctx, notification); err != nil {
		s.markFailed(ctx, notification, err.Error())
		return false
	}

	sentAt := time.Now()
	if err := s.notificationRepo.MarkNotificationSent(ctx, notification.ID, sentAt); err != nil {
		s.logger.Error("failed to mark notification sent",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err))
		return false
	}

	notification.Status = entity.StatusSent
	notification.SentAt = &sentAt
	s.metrics.ObserveNotification(notification.Channel, entity.StatusSent)
	return true
}

// attempt invokes the channel strategy. A panicking strategy is converted
// into a delivery error so one bad channel cannot take down the dispatch.
func (s *notificationService) attempt(ctx context.Context, notification *entity.Notification) (err error) {
	strategy, ok := s.registry.Lookup(notification.Channel)
	if !ok {
		return errors.Errorf("unsupported channel: %s", notification.Channel)
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("delivery panic: %v", r)
		}
	}()

	return strategy.Send(ctx, notification)
}

func (s *notificationService) markFailed(ctx context.Context, notification *entity.Notification, reason string) {
	if err := s.notificationRepo.MarkNotificationFailed(ctx, notification.ID, reason); err != nil {
		s.logger.Error("failed to mark notification failed",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err))
	}

	notification.Status = entity.StatusFailed
	notification.FailureReason = reason
	s.metrics.ObserveNotification(notification.Channel, entity.StatusFailed)
}
