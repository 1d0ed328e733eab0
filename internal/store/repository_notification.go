package store

import (
	"context"
	"fmt"
	"time"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/models"
)

// notificationRepository is the PostgreSQL-backed implementation of
// [NotificationRepository].
type notificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNotification persists a notification and returns it with
// server-assigned fields populated.
func (r *notificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNotification, notification.UserID, notification.Message, notification.ExpiresAt)

	var created models.Notification
	if err := row.Scan(&created.NotificationID, &created.UserID, &created.Message, &created.ExpiresAt, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*notificationRepository.CreateNotification").Msg("error creating notification")
		return models.Notification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListNotifications returns the user's notifications, newest first.
func (r *notificationRepository) ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	query, args, err := listNotificationsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.ListNotifications").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.ListNotifications").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.NotificationID, &n.UserID, &n.Message, &n.ExpiresAt, &n.CreatedAt); err != nil {
			log.Err(err).Str("func", "*notificationRepository.ListNotifications").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notifications, nil
}

// DeleteExpired removes every notification whose expiry is at or before
// olderThan and reports how many rows were deleted.
func (r *notificationRepository) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredNotifications, olderThan)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.DeleteExpired").Msg("error deleting expired notifications")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}
