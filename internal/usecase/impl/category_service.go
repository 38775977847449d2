package impl

import (
	"context"
	"sync"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/pkg/errors"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	profileRepo  repository.ProfileRepository
	followRepo   repository.FollowRepository
	statsTTL     time.Duration

	mu        sync.Mutex
	cached    *entity.DirectoryStats
	fetchedAt time.Time
}

// NewCategoryService creates a new category service instance
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	profileRepo repository.ProfileRepository,
	followRepo repository.FollowRepository,
	cfg *config.Config,
) usecase.CategoryUsecase {
	statsTTL := 5 * time.Minute
	if cfg != nil && cfg.Directory != nil && cfg.Directory.StatsTTL > 0 {
		statsTTL = cfg.Directory.StatsTTL
	}
	return &categoryService{
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		followRepo:   followRepo,
		statsTTL:     statsTTL,
	}
}

// ListCategories retrieves the selectable categories ordered by name
func (s *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindActiveCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}
	return categories, nil
}

// GetDirectoryStats retrieves the public directory counters, cached for the
// configured TTL
func (s *categoryService) GetDirectoryStats(ctx context.Context) (*entity.DirectoryStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < s.statsTTL {
		snapshot := *s.cached
		return &snapshot, nil
	}

	profiles, err := s.profileRepo.CountActiveProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count profiles")
	}
	categories, err := s.categoryRepo.CountActiveCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}
	follows, err := s.followRepo.CountFollows(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count follows")
	}

	s.cached = &entity.DirectoryStats{
		ProfileCount:  profiles,
		CategoryCount: categories,
		FollowCount:   follows,
	}
	s.fetchedAt = time.Now()

	snapshot := *s.cached
	return &snapshot, nil
}
