// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationChannel identifies the delivery channel of a notification.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
	ChannelPush  NotificationChannel = "push"
)

// String returns the string representation of the channel.
func (c NotificationChannel) String() string {
	return string(c)
}

// IsValid checks if the channel is a supported value.
func (c NotificationChannel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelPush:
		return true
	default:
		return false
	}
}

// NotificationStatus tracks the delivery state of a notification.
// Transitions are one-way: pending moves to sent or failed, never back.
type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
)

// String returns the string representation of the status.
func (s NotificationStatus) String() string {
	return string(s)
}

// ProfileAction identifies the lifecycle event that triggered a notification.
type ProfileAction string

const (
	ActionProfileCreated ProfileAction = "created"
	ActionProfileUpdated ProfileAction = "updated"
	ActionProfileDeleted ProfileAction = "deleted"
)

// String returns the string representation of the action.
func (a ProfileAction) String() string {
	return string(a)
}

// IsValid checks if the action is a supported value.
func (a ProfileAction) IsValid() bool {
	switch a {
	case ActionProfileCreated, ActionProfileUpdated, ActionProfileDeleted:
		return true
	default:
		return false
	}
}

// Subject renders the notification subject line for a profile name.
func (a ProfileAction) Subject(profileName string) string {
	switch a {
	case ActionProfileCreated:
		return fmt.Sprintf("New profile: %s", profileName)
	case ActionProfileUpdated:
		return fmt.Sprintf("Update on: %s", profileName)
	case ActionProfileDeleted:
		return fmt.Sprintf("Profile removed: %s", profileName)
	default:
		return profileName
	}
}

// Body renders the notification body for a profile name.
func (a ProfileAction) Body(profileName string) string {
	switch a {
	case ActionProfileCreated:
		return fmt.Sprintf("%s has registered in the directory. Take a look!", profileName)
	case ActionProfileUpdated:
		return fmt.Sprintf("%s has updated its information. Check the news.", profileName)
	case ActionProfileDeleted:
		return fmt.Sprintf("%s is no longer available in the directory.", profileName)
	default:
		return profileName
	}
}

// Notification represents a single message queued for one user on one channel.
type Notification struct {
	ID            uuid.UUID           `json:"id"`             // The Global Unique Identifier (GUID) for the notification.
	UserID        uuid.UUID           `json:"user_id"`        // The ID of the receiving user.
	ProfileID     uuid.UUID           `json:"profile_id"`     // The ID of the profile the notification is about.
	Channel       NotificationChannel `json:"channel"`        // The delivery channel.
	Action        ProfileAction       `json:"action"`         // The profile lifecycle event that produced this notification.
	Subject       string              `json:"subject"`        // Rendered subject line.
	Body          string              `json:"body"`           // Rendered message body.
	Status        NotificationStatus  `json:"status"`         // Current delivery state.
	FailureReason string              `json:"failure_reason"` // Reason recorded when delivery failed.
	Metadata      map[string]any      `json:"metadata"`       // Extra payload forwarded to the delivery channel.
	CreatedAt     time.Time           `json:"created_at"`     // Timestamp of when this notification was created.
	SentAt        *time.Time          `json:"sent_at"`        // Timestamp of successful delivery, nil otherwise.
}
