package store

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (name, email, password, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, role, created_at;`

	findUserByEmail = `SELECT user_id, name, email, role, created_at
    FROM users
    WHERE email = $1;`

	// findUserByEmailWithPassword explicitly includes the password column,
	// which every other user query leaves out of its projection.
	findUserByEmailWithPassword = `SELECT user_id, name, email, password, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, role, created_at
    FROM users
    WHERE user_id = $1;`

	createNotification = `INSERT INTO notifications (user_id, message, expires_at)
    VALUES ($1, $2, $3)
    RETURNING notification_id, user_id, message, expires_at, created_at;`

	deleteExpiredNotifications = `DELETE FROM notifications
    WHERE expires_at <= $1;`

	createConversation = `INSERT INTO conversations (name, creator_id, participants)
    VALUES ($1, $2, $3)
    RETURNING conversation_id, name, creator_id, participants, created_at;`

	findConversationByID = `SELECT conversation_id, name, creator_id, participants, created_at
    FROM conversations
    WHERE conversation_id = $1;`

	createMessage = `INSERT INTO messages (conversation_id, sender_id, body)
    VALUES ($1, $2, $3)
    RETURNING message_id, conversation_id, sender_id, body, created_at;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func listUsersQuery() (string, []any, error) {
	return psql.
		Select("user_id", "name", "email", "role", "created_at").
		From("users").
		OrderBy("user_id").
		ToSql()
}

func listNotificationsQuery(userID int64) (string, []any, error) {
	return psql.
		Select("notification_id", "user_id", "message", "expires_at", "created_at").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func listConversationsQuery(userID int64) (string, []any, error) {
	participantsJSON, err := json.Marshal([]int64{userID})
	if err != nil {
		return "", nil, err
	}

	return psql.
		Select("conversation_id", "name", "creator_id", "participants", "created_at").
		From("conversations").
		Where(sq.Or{
			sq.Eq{"creator_id": userID},
			sq.Expr("participants @> ?", participantsJSON),
		}).
		OrderBy("created_at DESC").
		ToSql()
}

func listMessagesQuery(conversationID int64) (string, []any, error) {
	return psql.
		Select("message_id", "conversation_id", "sender_id", "body", "created_at").
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("created_at").
		ToSql()
}
