package service

import (
	"context"
	"testing"
	"time"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/mock"
	"github.com/chatnest/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotificationSvc(t *testing.T, ctrl *gomock.Controller) (*notificationService, *mock.MockNotificationRepository) {
	t.Helper()
	mockNotifications := mock.NewMockNotificationRepository(ctrl)
	svc := NewNotificationService(mockNotifications, logger.Nop()).(*notificationService)
	return svc, mockNotifications
}

func TestNotificationService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotifications := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	before := time.Now()
	mockNotifications.EXPECT().CreateNotification(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Notification) (models.Notification, error) {
			assert.Equal(t, int64(7), n.UserID)
			assert.Equal(t, "new message from bob", n.Message)
			assert.WithinDuration(t, before.Add(time.Hour), n.ExpiresAt, time.Minute)

			n.NotificationID = 1
			return n, nil
		},
	)

	created, err := svc.Create(ctx, 7, "new message from bob", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.NotificationID)
}

func TestNotificationService_Create_DefaultTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotifications := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	before := time.Now()
	mockNotifications.EXPECT().CreateNotification(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Notification) (models.Notification, error) {
			assert.WithinDuration(t, before.Add(defaultNotificationTTL), n.ExpiresAt, time.Minute)
			return n, nil
		},
	)

	_, err := svc.Create(ctx, 7, "hello", 0)
	require.NoError(t, err)
}

func TestNotificationService_Create_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNotificationSvc(t, ctrl)

	_, err := svc.Create(context.Background(), 7, "", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNotificationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotifications := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Notification{{NotificationID: 2}, {NotificationID: 1}}
	mockNotifications.EXPECT().ListNotifications(ctx, int64(7)).Return(want, nil)

	got, err := svc.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNotificationService_PurgeExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotifications := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	mockNotifications.EXPECT().DeleteExpired(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, olderThan time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now(), olderThan, time.Minute)
			return 3, nil
		},
	)

	deleted, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
