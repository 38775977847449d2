package notification

import (
	"context"
	"fmt"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"

	"github.com/pkg/errors"
)

// pushStrategy delivers notifications to the user's registered device token.
type pushStrategy struct {
	sender   service.PushSender
	userRepo repository.UserRepository
}

// NewPushStrategy creates the push delivery strategy.
func NewPushStrategy(sender service.PushSender, userRepo repository.UserRepository) service.DeliveryStrategy {
	return &pushStrategy{
		sender:   sender,
		userRepo: userRepo,
	}
}

// Send delivers the notification through FCM.
func (s *pushStrategy) Send(ctx context.Context, notification *entity.Notification) error {
	user, err := s.userRepo.FindUserByID(ctx, notification.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve push recipient")
	}

	if user.FCMToken == "" {
		return errors.Errorf("user %s has no registered device token", user.ID)
	}

	return s.sender.Send(ctx, user.FCMToken, notification.Subject, notification.Body, stringifyMetadata(notification.Metadata))
}

// stringifyMetadata flattens notification metadata into the string map FCM expects.
func stringifyMetadata(metadata map[string]any) map[string]string {
	if len(metadata) == 0 {
		return nil
	}

	data := make(map[string]string, len(metadata))
	for key, value := range metadata {
		data[key] = fmt.Sprint(value)
	}

	return data
}
