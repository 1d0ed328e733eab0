package service

import (
	"github.com/chatnest/api/internal/config"
	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/store"
)

// Services bundles every business-logic service exposed to the transport
// layer.
type Services struct {
	AuthService         AuthService
	NotificationService NotificationService
	ConversationService ConversationService
}

// NewServices wires all services to the given repositories and configuration.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		NotificationService: NewNotificationService(repositories.NotificationRepository, logger),
		ConversationService: NewConversationService(repositories.ConversationRepository, logger),
	}
}
