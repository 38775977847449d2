package impl

import (
	"context"
	"testing"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"
	mockRepo "atlas/internal/mocks/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryServiceMocks struct {
	categoryRepo *mockRepo.MockCategoryRepository
	profileRepo  *mockRepo.MockProfileRepository
	followRepo   *mockRepo.MockFollowRepository
}

func newCategoryServiceForTest(t *testing.T, statsTTL time.Duration) (usecase.CategoryUsecase, *categoryServiceMocks) {
	t.Helper()

	m := &categoryServiceMocks{
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		followRepo:   mockRepo.NewMockFollowRepository(t),
	}
	cfg := &config.Config{Directory: &config.DirectoryConfig{StatsTTL: statsTTL}}
	service := NewCategoryService(m.categoryRepo, m.profileRepo, m.followRepo, cfg)

	return service, m
}

func TestCategoryService_ListCategories(t *testing.T) {
	service, m := newCategoryServiceForTest(t, time.Minute)
	ctx := context.Background()

	categories := []*entity.Category{
		{ID: uuid.New(), Name: "Bakery", Slug: "bakery", IsActive: true},
		{ID: uuid.New(), Name: "Cafe", Slug: "cafe", IsActive: true},
	}
	m.categoryRepo.EXPECT().FindActiveCategories(ctx).Return(categories, nil)

	result, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestCategoryService_GetDirectoryStats_CachesWithinTTL(t *testing.T) {
	service, m := newCategoryServiceForTest(t, time.Minute)
	ctx := context.Background()

	m.profileRepo.EXPECT().CountActiveProfiles(ctx).Return(int64(12), nil).Once()
	m.categoryRepo.EXPECT().CountActiveCategories(ctx).Return(int64(4), nil).Once()
	m.followRepo.EXPECT().CountFollows(ctx).Return(int64(88), nil).Once()

	first, err := service.GetDirectoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), first.ProfileCount)
	assert.Equal(t, int64(4), first.CategoryCount)
	assert.Equal(t, int64(88), first.FollowCount)

	// Second call inside the TTL must not hit the repositories again.
	second, err := service.GetDirectoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCategoryService_GetDirectoryStats_RefreshesAfterTTL(t *testing.T) {
	service, m := newCategoryServiceForTest(t, time.Nanosecond)
	ctx := context.Background()

	m.profileRepo.EXPECT().CountActiveProfiles(ctx).Return(int64(1), nil).Twice()
	m.categoryRepo.EXPECT().CountActiveCategories(ctx).Return(int64(1), nil).Twice()
	m.followRepo.EXPECT().CountFollows(ctx).Return(int64(1), nil).Twice()

	_, err := service.GetDirectoryStats(ctx)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = service.GetDirectoryStats(ctx)
	require.NoError(t, err)
}
