// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record referenced by follows and notifications.
// Account issuance and credential handling live in a separate identity service;
// this system only reads users.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's contact email, target of the email channel.
	Phone     string    // The user's phone number, target of the sms channel.
	Name      string    // The user's display name.
	FCMToken  string    // Device token for the push channel. Empty when the user has no registered device.
	Roles     Roles     // Roles granted to this user.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// CanFollow reports whether the user may follow directory profiles.
func (u *User) CanFollow() bool {
	return u != nil && u.Roles.Contains(RoleUser)
}

// CanOwnProfile reports whether the user may own a business profile.
func (u *User) CanOwnProfile() bool {
	return u != nil && u.Roles.Contains(RoleBusiness)
}
