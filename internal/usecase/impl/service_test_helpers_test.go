package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "atlas/internal/mocks/repository"
	mockSvc "atlas/internal/mocks/service"
	mockUC "atlas/internal/mocks/usecase"
	"atlas/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

// profileServiceMocks bundles every dependency of the profile service so
// individual tests only set expectations on what they exercise.
type profileServiceMocks struct {
	profileRepo    *mockRepo.MockProfileRepository
	categoryRepo   *mockRepo.MockCategoryRepository
	followRepo     *mockRepo.MockFollowRepository
	socialRepo     *mockRepo.MockSocialNetworkRepository
	userRepo       *mockRepo.MockUserRepository
	txManager      *mockRepo.MockTransactionManager
	notificationUC *mockUC.MockNotificationUsecase
	publisher      *mockSvc.MockEventPublisher
	qrcodeService  *mockSvc.MockQRCodeService
}

func newProfileServiceForTest(t *testing.T) (usecase.ProfileUsecase, *profileServiceMocks) {
	t.Helper()

	m := &profileServiceMocks{
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		categoryRepo:   mockRepo.NewMockCategoryRepository(t),
		followRepo:     mockRepo.NewMockFollowRepository(t),
		socialRepo:     mockRepo.NewMockSocialNetworkRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
		notificationUC: mockUC.NewMockNotificationUsecase(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		qrcodeService:  mockSvc.NewMockQRCodeService(t),
	}

	service := NewProfileService(
		m.profileRepo,
		m.categoryRepo,
		m.followRepo,
		m.socialRepo,
		m.userRepo,
		m.txManager,
		m.notificationUC,
		m.publisher,
		m.qrcodeService,
		nil,
		testLogger(),
	)

	return service, m
}
