// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/geo"
	"atlas/internal/infra/metrics"
	"atlas/internal/usecase"
	"atlas/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo    repository.ProfileRepository
	categoryRepo   repository.CategoryRepository
	followRepo     repository.FollowRepository
	socialRepo     repository.SocialNetworkRepository
	userRepo       repository.UserRepository
	txManager      repository.TransactionManager
	notificationUC usecase.NotificationUsecase
	publisher      service.EventPublisher
	qrcodeService  service.QRCodeService
	metrics        *metrics.Metrics
	logger         *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	profileRepo repository.ProfileRepository,
	categoryRepo repository.CategoryRepository,
	followRepo repository.FollowRepository,
	socialRepo repository.SocialNetworkRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	notificationUC usecase.NotificationUsecase,
	publisher service.EventPublisher,
	qrcodeService service.QRCodeService,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:    profileRepo,
		categoryRepo:   categoryRepo,
		followRepo:     followRepo,
		socialRepo:     socialRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		notificationUC: notificationUC,
		publisher:      publisher,
		qrcodeService:  qrcodeService,
		metrics:        m,
		logger:         logger,
	}
}

// Search returns a page of active profiles matching the filters
func (s *profileService) Search(ctx context.Context, filters usecase.SearchFilters) (*usecase.SearchResult, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := clampPageSize(filters.PageSize)

	hits, err := s.collectHits(ctx, filters)
	if err != nil {
		return nil, err
	}

	total := len(hits)
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	s.metrics.ObserveSearch()

	return &usecase.SearchResult{
		Items:      hits[start:end],
		Total:      total,
		Page:       page,
		PerPage:    pageSize,
		TotalPages: totalPages,
	}, nil
}

// Nearby returns the active profiles within radiusKm of the given point
func (s *profileService) Nearby(ctx context.Context, lat, lng float64, radiusKm *float64) ([]*usecase.ProfileHit, error) {
	hits, err := s.collectHits(ctx, usecase.SearchFilters{
		Latitude:  &lat,
		Longitude: &lng,
		RadiusKm:  radiusKm,
	})
	if err != nil {
		return nil, err
	}

	if len(hits) > usecase.NearbyLimit {
		hits = hits[:usecase.NearbyLimit]
	}
	return hits, nil
}

// collectHits loads the matching active profiles and applies the geographic
// filter. Results are sorted by ascending distance when a center is given.
func (s *profileService) collectHits(ctx context.Context, filters usecase.SearchFilters) ([]*usecase.ProfileHit, error) {
	hasCenter := filters.Latitude != nil && filters.Longitude != nil
	if hasCenter && !geo.ValidCoordinate(*filters.Latitude, *filters.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	candidates, err := s.profileRepo.FindActiveProfiles(ctx, repository.ProfileFilter{
		Text:       strings.TrimSpace(filters.Text),
		CategoryID: filters.CategoryID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active profiles")
	}

	hits := make([]*usecase.ProfileHit, 0, len(candidates))
	if !hasCenter {
		for _, profile := range candidates {
			hits = append(hits, &usecase.ProfileHit{Profile: profile})
		}
		return hits, nil
	}

	radius := clampRadius(filters.RadiusKm)
	for _, profile := range candidates {
		if !profile.HasLocation() {
			continue
		}
		distance := geo.Distance(*filters.Latitude, *filters.Longitude, *profile.Latitude, *profile.Longitude)
		if distance < radius {
			d := distance
			hits = append(hits, &usecase.ProfileHit{Profile: profile, DistanceKm: &d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return *hits[i].DistanceKm < *hits[j].DistanceKm
	})

	return hits, nil
}

// GetBySlug retrieves the public detail view of an active profile
func (s *profileService) GetBySlug(ctx context.Context, slug string) (*entity.ProfileDetail, error) {
	profile, err := s.profileRepo.FindProfileBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "failed to find profile by slug")
	}

	links, err := s.socialRepo.FindSocialNetworksByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find social networks")
	}

	followers, err := s.followRepo.CountFollowersByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count followers")
	}

	return &entity.ProfileDetail{
		Profile:         profile,
		SocialNetworks:  links,
		FollowerCount:   followers,
		SocialLinkCount: len(links),
		CategoryCount:   len(profile.Categories),
	}, nil
}

// CreateProfile registers a new business profile for the owner
func (s *profileService) CreateProfile(ctx context.Context, ownerID uuid.UUID, input *usecase.ProfileInput) (*entity.BusinessProfile, error) {
	owner, err := s.userRepo.FindUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find owner")
	}
	if !owner.CanOwnProfile() {
		return nil, domainerrors.ErrForbidden
	}

	// One profile per owner.
	if _, err := s.profileRepo.FindProfileByOwner(ctx, ownerID); err == nil {
		return nil, domainerrors.ErrProfileAlreadyExists
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile by owner")
	}

	if err := validateLocation(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}
	if err := s.checkCategories(ctx, input.CategoryIDs); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, input.Name, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entity.BusinessProfile{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		City:        input.City,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewProfileRepository().CreateProfile(ctx, profile, input.CategoryIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) || errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrProfileAlreadyExists
		}
		return nil, errors.Wrap(err, "failed to create profile")
	}

	s.fanOut(ctx, profile, entity.ActionProfileCreated)
	return profile, nil
}

// UpdateProfile modifies the owner's profile and fans out the update event
func (s *profileService) UpdateProfile(ctx context.Context, ownerID, profileID uuid.UUID, input *usecase.ProfileInput) (*entity.BusinessProfile, error) {
	profile, err := s.ownedProfile(ctx, ownerID, profileID)
	if err != nil {
		return nil, err
	}

	if err := validateLocation(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}
	if err := s.checkCategories(ctx, input.CategoryIDs); err != nil {
		return nil, err
	}

	if input.Name != profile.Name {
		slug, err := s.uniqueSlug(ctx, input.Name, profile.Slug)
		if err != nil {
			return nil, err
		}
		profile.Slug = slug
	}

	profile.Name = input.Name
	profile.Description = input.Description
	profile.Email = input.Email
	profile.Phone = input.Phone
	profile.Address = input.Address
	profile.City = input.City
	profile.Latitude = input.Latitude
	profile.Longitude = input.Longitude
	profile.UpdatedAt = time.Now()

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewProfileRepository().UpdateProfile(ctx, profile, input.CategoryIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrProfileAlreadyExists
		}
		return nil, errors.Wrap(err, "failed to update profile")
	}

	s.fanOut(ctx, profile, entity.ActionProfileUpdated)
	return profile, nil
}

// DeleteProfile removes the owner's profile and fans out the removal event
func (s *profileService) DeleteProfile(ctx context.Context, ownerID, profileID uuid.UUID) error {
	profile, err := s.ownedProfile(ctx, ownerID, profileID)
	if err != nil {
		return err
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewProfileRepository().DeleteProfile(ctx, profileID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	s.fanOut(ctx, profile, entity.ActionProfileDeleted)
	return nil
}

// GenerateProfileQR renders a PNG QR code pointing at the public profile page
func (s *profileService) GenerateProfileQR(ctx context.Context, slug string) ([]byte, error) {
	if _, err := s.profileRepo.FindProfileBySlug(ctx, slug); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "failed to find profile by slug")
	}

	png, err := s.qrcodeService.GenerateProfileQR(slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}
	return png, nil
}

// ownedProfile loads a profile and verifies the caller owns it.
func (s *profileService) ownedProfile(ctx context.Context, ownerID, profileID uuid.UUID) (*entity.BusinessProfile, error) {
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
	return profile, nil
}

// checkCategories verifies every referenced category exists and is active.
func (s *profileService) checkCategories(ctx context.Context, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	if _, err := s.categoryRepo.FindCategoriesByIDs(ctx, categoryIDs); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}
		return errors.Wrap(err, "failed to find categories")
	}
	return nil
}

// uniqueSlug derives a slug from the profile name and appends a numeric
// suffix until it no longer collides. current is the profile's existing
// slug on update, so renaming back to the same slug is not a collision.
func (s *profileService) uniqueSlug(ctx context.Context, name, current string) (string, error) {
	base := util.Slugify(name)
	if base == "" {
		base = "profile"
	}

	candidate := base
	for i := 2; ; i++ {
		if candidate == current {
			return candidate, nil
		}
		exists, err := s.profileRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug")
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// fanOut dispatches follower notifications and publishes the lifecycle event.
// Failures here are logged and never surfaced to the write path.
func (s *profileService) fanOut(ctx context.Context, profile *entity.BusinessProfile, action entity.ProfileAction) {
	if s.notificationUC != nil {
		if _, err := s.notificationUC.NotifyProfileEvent(ctx, profile, action); err != nil {
			s.logger.Error("failed to notify followers",
				slog.String("profile_id", profile.ID.String()),
				slog.String("action", action.String()),
				slog.Any("error", err))
		}
	}

	if s.publisher != nil {
		event := &service.ProfileEvent{
			ProfileID:   profile.ID.String(),
			ProfileName: profile.Name,
			Action:      action.String(),
			OccurredAt:  time.Now(),
		}
		if err := s.publisher.PublishProfileEvent(ctx, event); err != nil {
			s.logger.Error("failed to publish profile event",
				slog.String("profile_id", profile.ID.String()),
				slog.String("action", action.String()),
				slog.Any("error", err))
		}
	}
}

// validateLocation requires latitude and longitude to be set together and
// within range.
func validateLocation(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return domainerrors.ErrInvalidCoordinates
	}
	if lat != nil && !geo.ValidCoordinate(*lat, *lng) {
		return domainerrors.ErrInvalidCoordinates
	}
	return nil
}

// clampRadius bounds the search radius, defaulting when unset.
func clampRadius(radiusKm *float64) float64 {
	if radiusKm == nil {
		return usecase.DefaultRadiusKm
	}
	switch {
	case *radiusKm < usecase.MinRadiusKm:
		return usecase.MinRadiusKm
	case *radiusKm > usecase.MaxRadiusKm:
		return usecase.MaxRadiusKm
	default:
		return *radiusKm
	}
}

// clampPageSize bounds the page size, defaulting when unset. An explicit
// value below the minimum clamps up, zero included.
func clampPageSize(pageSize *int) int {
	if pageSize == nil {
		return usecase.DefaultPageSize
	}
	switch {
	case *pageSize < usecase.MinPageSize:
		return usecase.MinPageSize
	case *pageSize > usecase.MaxPageSize:
		return usecase.MaxPageSize
	default:
		return *pageSize
	}
}

// clampListPageSize is the plain-int variant used by the listing endpoints,
// where zero means unset.
func clampListPageSize(pageSize int) int {
	if pageSize == 0 {
		return usecase.DefaultPageSize
	}

	return clampPageSize(&pageSize)
}
