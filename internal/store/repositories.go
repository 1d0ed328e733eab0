package store

import (
	"github.com/chatnest/api/internal/logger"
)

// Repositories bundles every repository backed by the shared database
// connection.
type Repositories struct {
	UserRepository         UserRepository
	NotificationRepository NotificationRepository
	ConversationRepository ConversationRepository
}

// NewRepositories wires all repositories to the given database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db, logger),
		NotificationRepository: NewNotificationRepository(db, logger),
		ConversationRepository: NewConversationRepository(db, logger),
	}
}
