package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/models"
)

// conversationRepository is the PostgreSQL-backed implementation of
// [ConversationRepository]. Participant ids are stored in a JSONB column and
// marshalled through encoding/json on both sides.
type conversationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewConversationRepository constructs a [ConversationRepository] backed by
// the provided database connection and logger.
func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateConversation persists a conversation and returns it with
// server-assigned fields populated.
func (r *conversationRepository) CreateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	participants := conversation.Participants
	if participants == nil {
		participants = []int64{}
	}
	participantsJSON, err := json.Marshal(participants)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("error marshalling participants: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createConversation, conversation.Name, conversation.CreatorID, participantsJSON)

	created, err := scanConversation(row)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.CreateConversation").Msg("error creating conversation")
		return models.Conversation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListConversations returns every conversation the user created or
// participates in, newest first.
func (r *conversationRepository) ListConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	query, args, err := listConversationsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.ListConversations").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.ListConversations").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var conversations []models.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			log.Err(err).Str("func", "*conversationRepository.ListConversations").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return conversations, nil
}

// FindConversationByID retrieves one conversation by its primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrConversationNotFound].
func (r *conversationRepository) FindConversationByID(ctx context.Context, conversationID int64) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findConversationByID, conversationID)

	found, err := scanConversation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Conversation{}, ErrConversationNotFound
		}
		log.Err(err).Str("func", "*conversationRepository.FindConversationByID").Msg("error finding conversation")
		return models.Conversation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// CreateMessage appends a message to a conversation.
func (r *conversationRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMessage, message.ConversationID, message.SenderID, message.Body)

	var created models.Message
	if err := row.Scan(&created.MessageID, &created.ConversationID, &created.SenderID, &created.Body, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*conversationRepository.CreateMessage").Msg("error creating message")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListMessages returns the conversation's messages in chronological order.
func (r *conversationRepository) ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := listMessagesQuery(conversationID)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.ListMessages").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.ListMessages").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.MessageID, &m.ConversationID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			log.Err(err).Str("func", "*conversationRepository.ListMessages").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// rowScanner is the subset of *sql.Row / *sql.Rows needed by scanConversation.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversation(row rowScanner) (models.Conversation, error) {
	var c models.Conversation
	var participantsJSON []byte

	if err := row.Scan(&c.ConversationID, &c.Name, &c.CreatorID, &participantsJSON, &c.CreatedAt); err != nil {
		return models.Conversation{}, err
	}

	if len(participantsJSON) > 0 {
		if err := json.Unmarshal(participantsJSON, &c.Participants); err != nil {
			return models.Conversation{}, fmt.Errorf("error unmarshalling participants: %w", err)
		}
	}

	return c, nil
}
