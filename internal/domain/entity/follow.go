// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferences holds the per-channel delivery switches of a follow.
type NotificationPreferences struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

// DefaultNotificationPreferences returns the preferences applied when a user
// follows a profile without specifying channels.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{Email: true, SMS: false, Push: true}
}

// EnabledChannels returns the channels switched on by these preferences.
func (p NotificationPreferences) EnabledChannels() []NotificationChannel {
	channels := make([]NotificationChannel, 0, 3)
	if p.Email {
		channels = append(channels, ChannelEmail)
	}
	if p.SMS {
		channels = append(channels, ChannelSMS)
	}
	if p.Push {
		channels = append(channels, ChannelPush)
	}

	return channels
}

// UserFollow represents a user following a business profile.
// The (user, profile) pair is unique; following twice updates preferences.
type UserFollow struct {
	ID          uuid.UUID               `json:"id"`          // The Global Unique Identifier (GUID) for the follow.
	UserID      uuid.UUID               `json:"user_id"`     // The ID of the following user.
	ProfileID   uuid.UUID               `json:"profile_id"`  // The ID of the followed profile.
	Preferences NotificationPreferences `json:"preferences"` // Per-channel notification switches.
	CreatedAt   time.Time               `json:"created_at"`  // Timestamp of when the follow was created.
	UpdatedAt   time.Time               `json:"updated_at"`  // Timestamp of the last modification.
}
