package service

import "context"

// PushSender abstracts the push messaging backend (FCM).
type PushSender interface {
	// Send pushes a message to a single device token.
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
