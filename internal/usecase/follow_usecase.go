package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowedProfile pairs a follow with the profile it points at.
type FollowedProfile struct {
	Follow  *entity.UserFollow      `json:"follow"`
	Profile *entity.BusinessProfile `json:"profile"`
}

// FollowedProfilesResult is one page of a user's followed profiles.
type FollowedProfilesResult struct {
	Items   []*FollowedProfile `json:"items"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
}

// FollowUsecase defines the interface for follow management use cases.
type FollowUsecase interface {
	// FollowProfile makes the user follow an active profile. Following an
	// already followed profile overwrites the preferences instead of failing.
	// Nil preferences select the defaults.
	FollowProfile(ctx context.Context, userID, profileID uuid.UUID, prefs *entity.NotificationPreferences) (*entity.UserFollow, error)

	// UnfollowProfile removes the follow. Returns false when none existed.
	UnfollowProfile(ctx context.Context, userID, profileID uuid.UUID) (bool, error)

	// IsFollowing reports whether the user follows the profile.
	IsFollowing(ctx context.Context, userID, profileID uuid.UUID) (bool, error)

	// GetFollow retrieves the follow with its preferences.
	GetFollow(ctx context.Context, userID, profileID uuid.UUID) (*entity.UserFollow, error)

	// UpdatePreferences overwrites the channel preferences of an existing follow.
	UpdatePreferences(ctx context.Context, userID, profileID uuid.UUID, prefs entity.NotificationPreferences) (*entity.UserFollow, error)

	// ListFollowedProfiles retrieves a page of the profiles the user follows.
	ListFollowedProfiles(ctx context.Context, userID uuid.UUID, page, pageSize int) (*FollowedProfilesResult, error)

	// ListFollowers retrieves every follower of a profile, for its owner.
	ListFollowers(ctx context.Context, ownerID, profileID uuid.UUID) ([]*entity.UserFollow, error)

	// UpdateAllPreferences overwrites the preferences of every follow the user
	// holds. Returns the number of follows updated.
	UpdateAllPreferences(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) (int64, error)
}
