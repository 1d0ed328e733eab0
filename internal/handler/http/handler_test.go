package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/chatnest/api/internal/config"
	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
	"github.com/chatnest/api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn      func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	currentUserFn func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn   func(ctx context.Context) ([]models.User, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	return m.signUpFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	return m.currentUserFn(ctx, userID)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

// mockNotificationService implements service.NotificationService.
type mockNotificationService struct {
	createFn       func(ctx context.Context, userID int64, message string, ttl time.Duration) (models.Notification, error)
	listFn         func(ctx context.Context, userID int64) ([]models.Notification, error)
	purgeExpiredFn func(ctx context.Context) (int64, error)
}

func (m *mockNotificationService) Create(ctx context.Context, userID int64, message string, ttl time.Duration) (models.Notification, error) {
	return m.createFn(ctx, userID, message, ttl)
}

func (m *mockNotificationService) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	return m.listFn(ctx, userID)
}

func (m *mockNotificationService) PurgeExpired(ctx context.Context) (int64, error) {
	return m.purgeExpiredFn(ctx)
}

// mockConversationService implements service.ConversationService.
type mockConversationService struct {
	createFn       func(ctx context.Context, creatorID int64, name string, participants []int64) (models.Conversation, error)
	listFn         func(ctx context.Context, userID int64) ([]models.Conversation, error)
	postMessageFn  func(ctx context.Context, senderID, conversationID int64, body string) (models.Message, error)
	listMessagesFn func(ctx context.Context, userID, conversationID int64) ([]models.Message, error)
}

func (m *mockConversationService) Create(ctx context.Context, creatorID int64, name string, participants []int64) (models.Conversation, error) {
	return m.createFn(ctx, creatorID, name, participants)
}

func (m *mockConversationService) List(ctx context.Context, userID int64) ([]models.Conversation, error) {
	return m.listFn(ctx, userID)
}

func (m *mockConversationService) PostMessage(ctx context.Context, senderID, conversationID int64, body string) (models.Message, error) {
	return m.postMessageFn(ctx, senderID, conversationID, body)
}

func (m *mockConversationService) ListMessages(ctx context.Context, userID, conversationID int64) ([]models.Message, error) {
	return m.listMessagesFn(ctx, userID, conversationID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given services with test
// configuration defaults.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, &config.StructuredConfig{
		Auth:   config.Auth{TokenDuration: time.Hour},
		Server: config.Server{CORSAllowedOrigin: "*"},
	}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string and owner.
func stubToken(signed string, userID int64) models.Token {
	return models.Token{SignedString: signed, UserID: userID}
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	UserID: 7,
	Name:   "Alice",
	Email:  "alice@example.com",
	Role:   models.RoleUser,
}
