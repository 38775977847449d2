package impl

import (
	"context"
	"testing"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	mockRepo "atlas/internal/mocks/repository"
	mockSvc "atlas/internal/mocks/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceMocks struct {
	notificationRepo *mockRepo.MockNotificationRepository
	followRepo       *mockRepo.MockFollowRepository
	registry         *mockSvc.MockStrategyRegistry
}

func newNotificationServiceForTest(t *testing.T) (usecase.NotificationUsecase, *notificationServiceMocks) {
	t.Helper()

	m := &notificationServiceMocks{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		followRepo:       mockRepo.NewMockFollowRepository(t),
		registry:         mockSvc.NewMockStrategyRegistry(t),
	}
	service := NewNotificationService(m.notificationRepo, m.followRepo, m.registry, nil, testLogger())

	return service, m
}

func follower(profileID uuid.UUID, prefs entity.NotificationPreferences) *entity.UserFollow {
	return &entity.UserFollow{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ProfileID:   profileID,
		Preferences: prefs,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestNotificationService_NotifyProfileEvent_AllChannels(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("Corner Bakery", 0, 0)

	allOn := entity.NotificationPreferences{Email: true, SMS: true, Push: true}
	follows := []*entity.UserFollow{
		follower(profile.ID, allOn),
		follower(profile.ID, allOn),
		follower(profile.ID, allOn),
	}
	m.followRepo.EXPECT().FindFollowsByProfile(ctx, profile.ID).Return(follows, nil)

	strategy := mockSvc.NewMockDeliveryStrategy(t)
	m.registry.EXPECT().Lookup(mock.AnythingOfType("entity.NotificationChannel")).Return(strategy, true)
	strategy.EXPECT().Send(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)

	m.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	m.notificationRepo.EXPECT().
		MarkNotificationSent(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).
		Return(nil)

	summary, err := service.NotifyProfileEvent(ctx, profile, entity.ActionProfileCreated)
	require.NoError(t, err)
	assert.Equal(t, 9, summary.Created)
	assert.Equal(t, 9, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
}

func TestNotificationService_NotifyProfileEvent_RespectsPreferences(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("Corner Bakery", 0, 0)

	follows := []*entity.UserFollow{
		follower(profile.ID, entity.NotificationPreferences{Email: true}),
		follower(profile.ID, entity.NotificationPreferences{}),
	}
	m.followRepo.EXPECT().FindFollowsByProfile(ctx, profile.ID).Return(follows, nil)

	strategy := mockSvc.NewMockDeliveryStrategy(t)
	m.registry.EXPECT().Lookup(entity.ChannelEmail).Return(strategy, true)
	strategy.EXPECT().Send(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)

	var created *entity.Notification
	m.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			created = notification
		}).
		Return(nil)
	m.notificationRepo.EXPECT().
		MarkNotificationSent(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).
		Return(nil)

	summary, err := service.NotifyProfileEvent(ctx, profile, entity.ActionProfileCreated)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Sent)

	require.NotNil(t, created)
	assert.Equal(t, entity.ChannelEmail, created.Channel)
	assert.Equal(t, "New profile: Corner Bakery", created.Subject)
	assert.Equal(t, "Corner Bakery has registered in the directory. Take a look!", created.Body)
}

func TestNotificationService_NotifyProfileEvent_Templates(t *testing.T) {
	tests := []struct {
		name    string
		action  entity.ProfileAction
		subject string
		body    string
	}{
		{
			name:    "updated",
			action:  entity.ActionProfileUpdated,
			subject: "Update on: Corner Bakery",
			body:    "Corner Bakery has updated its information. Check the news.",
		},
		{
			name:    "deleted",
			action:  entity.ActionProfileDeleted,
			subject: "Profile removed: Corner Bakery",
			body:    "Corner Bakery is no longer available in the directory.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newNotificationServiceForTest(t)
			ctx := context.Background()
			profile := activeProfile("Corner Bakery", 0, 0)

			follows := []*entity.UserFollow{
				follower(profile.ID, entity.NotificationPreferences{Push: true}),
			}
			m.followRepo.EXPECT().FindFollowsByProfile(ctx, profile.ID).Return(follows, nil)

			strategy := mockSvc.NewMockDeliveryStrategy(t)
			m.registry.EXPECT().Lookup(entity.ChannelPush).Return(strategy, true)
			strategy.EXPECT().Send(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)

			var created *entity.Notification
			m.notificationRepo.EXPECT().
				CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(_ context.Context, notification *entity.Notification) {
					created = notification
				}).
				Return(nil)
			m.notificationRepo.EXPECT().
				MarkNotificationSent(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).
				Return(nil)

			_, err := service.NotifyProfileEvent(ctx, profile, tt.action)
			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tt.subject, created.Subject)
			assert.Equal(t, tt.body, created.Body)
		})
	}
}

func TestNotificationService_NotifyProfileEvent_DeliveryFailureDoesNotPropagate(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("Corner Bakery", 0, 0)

	allOn := entity.NotificationPreferences{Email: true, SMS: true, Push: true}
	follows := []*entity.UserFollow{
		follower(profile.ID, allOn),
		follower(profile.ID, allOn),
		follower(profile.ID, allOn),
	}
	m.followRepo.EXPECT().FindFollowsByProfile(ctx, profile.ID).Return(follows, nil)

	strategy := mockSvc.NewMockDeliveryStrategy(t)
	m.registry.EXPECT().Lookup(mock.AnythingOfType("entity.NotificationChannel")).Return(strategy, true)
	strategy.EXPECT().
		Send(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("provider rejected the message"))

	m.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	m.notificationRepo.EXPECT().
		MarkNotificationFailed(ctx, mock.AnythingOfType("uuid.UUID"), "provider rejected the message").
		Return(nil)

	summary, err := service.NotifyProfileEvent(ctx, profile, entity.ActionProfileUpdated)
	require.NoError(t, err)
	assert.Equal(t, 9, summary.Created)
	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 9, summary.Failed)
}

func TestNotificationService_NotifyProfileEvent_PanicIsContained(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("Corner Bakery", 0, 0)

	follows := []*entity.UserFollow{
		follower(profile.ID, entity.NotificationPreferences{Email: true}),
	}
	m.followRepo.EXPECT().FindFollowsByProfile(ctx, profile.ID).Return(follows, nil)

	strategy := mockSvc.NewMockDeliveryStrategy(t)
	m.registry.EXPECT().Lookup(entity.ChannelEmail).Return(strategy, true)
	strategy.EXPECT().
		Send(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(context.Context, *entity.Notification) error {
			panic("smtp client lost its mind")
		})

	m.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	m.notificationRepo.EXPECT().
		MarkNotificationFailed(ctx, mock.AnythingOfType("uuid.UUID"), mock.MatchedBy(func(reason string) bool {
			return reason == "delivery panic: smtp client lost its mind"
		})).
		Return(nil)

	summary, err := service.NotifyProfileEvent(ctx, profile, entity.ActionProfileCreated)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Failed)
}

func TestNotificationService_NotifyProfileEvent_UnsupportedChannel(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("Corner Bakery", 0, 0)

	follows := []*entity.UserFollow{
		follower(profile.ID, entity.NotificationPreferences{SMS: true}),
	}
	m.followRepo.EXPECT().FindFollowsByProfile(ctx, profile.ID).Return(follows, nil)
	m.registry.EXPECT().Lookup(entity.ChannelSMS).Return(nil, false)

	m.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	m.notificationRepo.EXPECT().
		MarkNotificationFailed(ctx, mock.AnythingOfType("uuid.UUID"), "unsupported channel: sms").
		Return(nil)

	summary, err := service.NotifyProfileEvent(ctx, profile, entity.ActionProfileCreated)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
}

func TestNotificationService_NotifyProfileEvent_NoFollowers(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()
	profile := activeProfile("Corner Bakery", 0, 0)

	m.followRepo.EXPECT().FindFollowsByProfile(ctx, profile.ID).Return(nil, nil)

	summary, err := service.NotifyProfileEvent(ctx, profile, entity.ActionProfileCreated)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
}

func TestNotificationService_NotifyProfileEvent_UnknownAction(t *testing.T) {
	service, _ := newNotificationServiceForTest(t)
	profile := activeProfile("Corner Bakery", 0, 0)

	_, err := service.NotifyProfileEvent(context.Background(), profile, entity.ProfileAction("renamed"))
	assert.Error(t, err)
}

func TestNotificationService_ProcessPending(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()

	good := &entity.Notification{ID: uuid.New(), Channel: entity.ChannelEmail, Status: entity.StatusPending}
	bad := &entity.Notification{ID: uuid.New(), Channel: entity.ChannelPush, Status: entity.StatusPending}
	m.notificationRepo.EXPECT().FindPendingNotifications(ctx, 10).Return([]*entity.Notification{good, bad}, nil)

	emailStrategy := mockSvc.NewMockDeliveryStrategy(t)
	pushStrategy := mockSvc.NewMockDeliveryStrategy(t)
	m.registry.EXPECT().Lookup(entity.ChannelEmail).Return(emailStrategy, true)
	m.registry.EXPECT().Lookup(entity.ChannelPush).Return(pushStrategy, true)
	emailStrategy.EXPECT().Send(ctx, good).Return(nil)
	pushStrategy.EXPECT().Send(ctx, bad).Return(errors.New("token expired"))

	m.notificationRepo.EXPECT().
		MarkNotificationSent(ctx, good.ID, mock.AnythingOfType("time.Time")).
		Return(nil)
	m.notificationRepo.EXPECT().
		MarkNotificationFailed(ctx, bad.ID, "token expired").
		Return(nil)

	summary, err := service.ProcessPending(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, entity.StatusSent, good.Status)
	assert.Equal(t, entity.StatusFailed, bad.Status)
	assert.Equal(t, "token expired", bad.FailureReason)
}

func TestNotificationService_ProcessPending_DefaultBatch(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()

	m.notificationRepo.EXPECT().
		FindPendingNotifications(ctx, usecase.DefaultPendingBatch).
		Return(nil, nil)

	summary, err := service.ProcessPending(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Sent)
}

func TestNotificationService_GetHistory(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	items := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Status: entity.StatusSent},
	}
	m.notificationRepo.EXPECT().CountNotificationsByUser(ctx, userID).Return(int64(25), nil)
	m.notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, usecase.DefaultPageSize, usecase.DefaultPageSize).
		Return(items, nil)

	result, err := service.GetHistory(ctx, userID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, usecase.DefaultPageSize, result.PerPage)
	assert.Len(t, result.Items, 1)
}

func TestNotificationService_GetHistory_RepositoryError(t *testing.T) {
	service, m := newNotificationServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	m.notificationRepo.EXPECT().
		CountNotificationsByUser(ctx, userID).
		Return(int64(0), repository.ErrNotificationNotFound)

	_, err := service.GetHistory(ctx, userID, 1, 12)
	assert.Error(t, err)
}
