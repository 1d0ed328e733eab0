package service

import (
	"context"
	"time"

	"github.com/chatnest/api/models"
)

// AuthService is the authentication core: credential verification,
// session-token issuance/validation, and resolution of the current user
// for protected requests.
type AuthService interface {
	// SignUp validates and creates a new account, returning the persisted
	// user with the password digest stripped.
	SignUp(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the email/password pair and returns the account with
	// the password digest stripped.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw session token and returns the decoded form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// CurrentUser re-fetches the account behind a verified token, failing
	// with ErrTokenUserGone when the account has since been deleted.
	CurrentUser(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns every account, passwords excluded.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// NotificationService manages per-user notifications.
type NotificationService interface {
	Create(ctx context.Context, userID int64, message string, ttl time.Duration) (models.Notification, error)
	List(ctx context.Context, userID int64) ([]models.Notification, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

// ConversationService manages conversations and their messages.
type ConversationService interface {
	Create(ctx context.Context, creatorID int64, name string, participants []int64) (models.Conversation, error)
	List(ctx context.Context, userID int64) ([]models.Conversation, error)
	PostMessage(ctx context.Context, senderID, conversationID int64, body string) (models.Message, error)
	ListMessages(ctx context.Context, userID, conversationID int64) ([]models.Message, error)
}
