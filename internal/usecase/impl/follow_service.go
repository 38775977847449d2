package impl

import (
	"context"
	"log/slog"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type followService struct {
	followRepo  repository.FollowRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewFollowService creates a new follow service instance
func NewFollowService(
	followRepo repository.FollowRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.FollowUsecase {
	return &followService{
		followRepo:  followRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// FollowProfile creates or updates a follow relationship. Following an
// already-followed profile overwrites the channel preferences.
func (s *followService) FollowProfile(ctx context.Context, userID, profileID uuid.UUID, prefs *entity.NotificationPreferences) (*entity.UserFollow, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.CanFollow() {
		return nil, domainerrors.ErrForbidden
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "failed to find profile")
	}
	if !profile.IsActive {
		return nil, domainerrors.ErrProfileNotFound
	}

	preferences := entity.DefaultNotificationPreferences()
	if prefs != nil {
		preferences = *prefs
	}

	existing, err := s.followRepo.FindFollow(ctx, userID, profileID)
	if err == nil {
		return s.overwritePreferences(ctx, existing, preferences)
	}
	if !errors.Is(err, repository.ErrFollowNotFound) {
		return nil, errors.Wrap(err, "failed to find follow")
	}

	now := time.Now()
	follow := &entity.UserFollow{
		ID:          uuid.New(),
		UserID:      userID,
		ProfileID:   profileID,
		Preferences: preferences,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.followRepo.CreateFollow(ctx, follow); err != nil {
		// Lost a race with a concurrent follow; fall back to the update path.
		if errors.Is(err, repository.ErrDuplicateFollow) {
			existing, findErr := s.followRepo.FindFollow(ctx, userID, profileID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to find follow after duplicate")
			}
			return s.overwritePreferences(ctx, existing, preferences)
		}
		return nil, errors.Wrap(err, "failed to create follow")
	}

	return follow, nil
}

func (s *followService) overwritePreferences(ctx context.Context, follow *entity.UserFollow, prefs entity.NotificationPreferences) (*entity.UserFollow, error) {
	if err := s.followRepo.UpdateFollowPreferences(ctx, follow.ID, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to update follow preferences")
	}
	follow.Preferences = prefs
	follow.UpdatedAt = time.Now()
	return follow, nil
}

// UnfollowProfile removes the follow relationship. It reports whether a
// relationship existed.
func (s *followService) UnfollowProfile(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	existed, err := s.followRepo.DeleteFollow(ctx, userID, profileID)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete follow")
	}
	return existed, nil
}

// IsFollowing reports whether the user follows the profile
func (s *followService) IsFollowing(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	_, err := s.followRepo.FindFollow(ctx, userID, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to find follow")
	}
	return true, nil
}

// GetFollow retrieves the follow relationship with its preferences
func (s *followService) GetFollow(ctx context.Context, userID, profileID uuid.UUID) (*entity.UserFollow, error) {
	follow, err := s.followRepo.FindFollow(ctx, userID, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return nil, domainerrors.ErrFollowNotFound
		}
		return nil, errors.Wrap(err, "failed to find follow")
	}
	return follow, nil
}

// UpdatePreferences overwrites the channel preferences of one follow
func (s *followService) UpdatePreferences(ctx context.Context, userID, profileID uuid.UUID, prefs entity.NotificationPreferences) (*entity.UserFollow, error) {
	follow, err := s.followRepo.FindFollow(ctx, userID, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return nil, domainerrors.ErrFollowNotFound
		}
		return nil, errors.Wrap(err, "failed to find follow")
	}
	return s.overwritePreferences(ctx, follow, prefs)
}

// ListFollowedProfiles retrieves a page of the profiles the user follows
func (s *followService) ListFollowedProfiles(ctx context.Context, userID uuid.UUID, page, pageSize int) (*usecase.FollowedProfilesResult, error) {
	if page < 1 {
		page = 1
	}
	pageSize = clampListPageSize(pageSize)

	total, err := s.followRepo.CountFollowsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count follows")
	}

	follows, err := s.followRepo.FindFollowsByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find follows")
	}

	items := make([]*usecase.FollowedProfile, 0, len(follows))
	for _, follow := range follows {
		profile, err := s.profileRepo.FindProfileByID(ctx, follow.ProfileID)
		if err != nil {
			// Profile removed since the follow was created; skip the row.
			if errors.Is(err, repository.ErrProfileNotFound) {
				continue
			}
			return nil, errors.Wrap(err, "failed to find followed profile")
		}
		items = append(items, &usecase.FollowedProfile{
			Follow:  follow,
			Profile: profile,
		})
	}

	return &usecase.FollowedProfilesResult{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: pageSize,
	}, nil
}

// ListFollowers retrieves the followers of a profile, owner only
func (s *followService) ListFollowers(ctx context.Context, ownerID, profileID uuid.UUID) ([]*entity.UserFollow, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "failed to find profile")
	}
	if profile.OwnerID != ownerID {
		return nil, domainerrors.ErrProfileOwnershipViolation
	}

	follows, err := s.followRepo.FindFollowsByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find followers")
	}
	return follows, nil
}

// UpdateAllPreferences overwrites the preferences of every follow the user
// has. It returns the number of affected rows.
func (s *followService) UpdateAllPreferences(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) (int64, error) {
	affected, err := s.followRepo.UpdateAllPreferencesForUser(ctx, userID, prefs)
	if err != nil {
		return 0, errors.Wrap(err, "failed to update preferences")
	}
	return affected, nil
}
