package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultWebhookTimeout = 10 * time.Second

// webhookPayload is the JSON body posted to the external relay.
type webhookPayload struct {
	Recipient string         `json:"recipient"`
	Subject   string         `json:"subject"`
	Body      string         `json:"body"`
	Channel   string         `json:"channel"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// webhookStrategy delivers email and sms notifications through an external
// HTTP relay. The relay owns the actual SMTP/SMS provider integration.
type webhookStrategy struct {
	channel    entity.NotificationChannel
	endpoint   string
	httpClient *http.Client
	userRepo   repository.UserRepository
}

// NewWebhookStrategy creates a relay-backed delivery strategy for the channel.
func NewWebhookStrategy(channel entity.NotificationChannel, endpoint string, timeout time.Duration, userRepo repository.UserRepository) service.DeliveryStrategy {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}

	return &webhookStrategy{
		channel:  channel,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userRepo: userRepo,
	}
}

// Send posts the rendered notification to the relay endpoint.
func (s *webhookStrategy) Send(ctx context.Context, notification *entity.Notification) error {
	if s.endpoint == "" {
		return errors.Errorf("no relay endpoint configured for channel %s", s.channel)
	}

	recipient, err := s.resolveRecipient(ctx, notification)
	if err != nil {
		return err
	}

	body, err := json.Marshal(webhookPayload{
		Recipient: recipient,
		Subject:   notification.Subject,
		Body:      notification.Body,
		Channel:   s.channel.String(),
		Metadata:  notification.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("relay returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// resolveRecipient picks the address matching the channel from the user record.
func (s *webhookStrategy) resolveRecipient(ctx context.Context, notification *entity.Notification) (string, error) {
	user, err := s.userRepo.FindUserByID(ctx, notification.UserID)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s recipient", s.channel)
	}

	switch s.channel {
	case entity.ChannelEmail:
		if user.Email == "" {
			return "", errors.Errorf("user %s has no email address", user.ID)
		}

		return user.Email, nil
	case entity.ChannelSMS:
		if user.Phone == "" {
			return "", errors.Errorf("user %s has no phone number", user.ID)
		}

		return user.Phone, nil
	default:
		return "", errors.Errorf("webhook relay does not support channel %s", s.channel)
	}
}
