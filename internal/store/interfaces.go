// Package store implements the persistence layer of the chatnest API
// server on top of PostgreSQL. Repositories translate between domain
// models and SQL rows and normalise driver errors into package sentinels.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/chatnest/api/models"
)

// UserRepository is the credential store: it persists and looks up user
// account records.
//
// FindUserByEmail excludes the password column by default; pass
// withPassword=true only when the digest is needed for credential
// verification.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string, withPassword bool) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// NotificationRepository persists per-user notifications and removes the
// ones whose expiry has passed.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error)
	ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error)
	DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error)
}

// ConversationRepository persists conversations and their messages.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error)
	ListConversations(ctx context.Context, userID int64) ([]models.Conversation, error)
	FindConversationByID(ctx context.Context, conversationID int64) (models.Conversation, error)
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
	ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error)
}
