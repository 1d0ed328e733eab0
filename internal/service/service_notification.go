package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/store"
	"github.com/chatnest/api/models"
)

// defaultNotificationTTL applies when a caller does not specify how long a
// notification should live.
const defaultNotificationTTL = 30 * 24 * time.Hour

// notificationService is the concrete implementation of NotificationService.
type notificationService struct {
	notificationRepository store.NotificationRepository
	logger                 *logger.Logger
}

// NewNotificationService constructs a NotificationService wired to the
// given repository.
func NewNotificationService(notificationRepository store.NotificationRepository, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

// Create stores a notification for the user. An empty message fails with
// ErrInvalidDataProvided; a zero ttl falls back to the default.
func (n *notificationService) Create(ctx context.Context, userID int64, message string, ttl time.Duration) (models.Notification, error) {
	log := logger.FromContext(ctx)

	if message == "" {
		log.Error().Int64("user_id", userID).Msg("empty notification message")
		return models.Notification{}, ErrInvalidDataProvided
	}
	if ttl <= 0 {
		ttl = defaultNotificationTTL
	}

	created, err := n.notificationRepository.CreateNotification(ctx, models.Notification{
		UserID:    userID,
		Message:   message,
		ExpiresAt: time.Now().Add(ttl),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("notification creation ended with error")
		return models.Notification{}, fmt.Errorf("notification creation ended with error: %w", err)
	}

	return created, nil
}

// List returns the user's notifications, newest first.
func (n *notificationService) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	return n.notificationRepository.ListNotifications(ctx, userID)
}

// PurgeExpired removes every notification past its expiry and reports how
// many were deleted. The background purge worker calls it on a schedule.
func (n *notificationService) PurgeExpired(ctx context.Context) (int64, error) {
	return n.notificationRepository.DeleteExpired(ctx, time.Now())
}
