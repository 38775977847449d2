package impl

import (
	"context"
	"log/slog"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type socialService struct {
	socialRepo  repository.SocialNetworkRepository
	profileRepo repository.ProfileRepository
	validator   service.LinkValidator
	logger      *slog.Logger
}

// NewSocialService creates a new social link service instance
func NewSocialService(
	socialRepo repository.SocialNetworkRepository,
	profileRepo repository.ProfileRepository,
	validator service.LinkValidator,
	logger *slog.Logger,
) usecase.SocialUsecase {
	return &socialService{
		socialRepo:  socialRepo,
		profileRepo: profileRepo,
		validator:   validator,
		logger:      logger,
	}
}

// AttachLink validates the URL for the platform and upserts the link on the
// owner's profile
func (s *socialService) AttachLink(ctx context.Context, ownerID, profileID uuid.UUID, platform entity.SocialPlatform, url string) (*entity.SocialNetwork, error) {
	if !platform.IsValid() {
		return nil, domainerrors.ErrUnsupportedPlatform
	}

	if err := s.checkOwnership(ctx, ownerID, profileID); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(ctx, platform, url); err != nil {
		return nil, domainerrors.ErrInvalidSocialURL.WithDetails(err.Error())
	}

	now := time.Now()
	link := &entity.SocialNetwork{
		ID:        uuid.New(),
		ProfileID: profileID,
		Platform:  platform,
		URL:       url,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.socialRepo.UpsertSocialNetwork(ctx, link); err != nil {
		return nil, errors.Wrap(err, "failed to upsert social network")
	}
	return link, nil
}

// RemoveLink detaches the platform link from the owner's profile
func (s *socialService) RemoveLink(ctx context.Context, ownerID, profileID uuid.UUID, platform entity.SocialPlatform) error {
	if !platform.IsValid() {
		return domainerrors.ErrUnsupportedPlatform
	}

	if err := s.checkOwnership(ctx, ownerID, profileID); err != nil {
		return err
	}

	existed, err := s.socialRepo.DeleteSocialNetwork(ctx, profileID, platform)
	if err != nil {
		return errors.Wrap(err, "failed to delete social network")
	}
	if !existed {
		return domainerrors.ErrSocialLinkNotFound
	}
	return nil
}

// ListLinks retrieves all links attached to a profile
func (s *socialService) ListLinks(ctx context.Context, profileID uuid.UUID) ([]*entity.SocialNetwork, error) {
	links, err := s.socialRepo.FindSocialNetworksByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find social networks")
	}
	return links, nil
}

func (s *socialService) checkOwnership(ctx context.Context, ownerID, profileID uuid.UUID) error {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}
		return errors.Wrap(err, "failed to find profile")
	}
	if profile.OwnerID != ownerID {
		return domainerrors.ErrProfileOwnershipViolation
	}
	return nil
}
