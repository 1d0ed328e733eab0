package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/store"
	"github.com/chatnest/api/models"
)

// conversationService is the concrete implementation of ConversationService.
type conversationService struct {
	conversationRepository store.ConversationRepository
	logger                 *logger.Logger
}

// NewConversationService constructs a ConversationService wired to the
// given repository.
func NewConversationService(conversationRepository store.ConversationRepository, logger *logger.Logger) ConversationService {
	return &conversationService{
		conversationRepository: conversationRepository,
		logger:                 logger,
	}
}

// Create starts a new conversation owned by creatorID. The creator is
// always included in the participant set.
func (c *conversationService) Create(ctx context.Context, creatorID int64, name string, participants []int64) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Int64("creator_id", creatorID).Msg("empty conversation name")
		return models.Conversation{}, ErrInvalidDataProvided
	}

	if !slices.Contains(participants, creatorID) {
		participants = append(participants, creatorID)
	}

	created, err := c.conversationRepository.CreateConversation(ctx, models.Conversation{
		Name:         name,
		CreatorID:    creatorID,
		Participants: participants,
	})
	if err != nil {
		log.Err(err).Int64("creator_id", creatorID).Msg("conversation creation ended with error")
		return models.Conversation{}, fmt.Errorf("conversation creation ended with error: %w", err)
	}

	return created, nil
}

// List returns every conversation the user created or participates in.
func (c *conversationService) List(ctx context.Context, userID int64) ([]models.Conversation, error) {
	return c.conversationRepository.ListConversations(ctx, userID)
}

// PostMessage appends a message to a conversation the sender belongs to.
//
// Returns store.ErrConversationNotFound (propagated) when the conversation
// does not exist and ErrNotConversationMember when the sender is neither
// the creator nor a participant.
func (c *conversationService) PostMessage(ctx context.Context, senderID, conversationID int64, body string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if body == "" {
		log.Error().Int64("sender_id", senderID).Msg("empty message body")
		return models.Message{}, ErrInvalidDataProvided
	}

	if err := c.requireMembership(ctx, senderID, conversationID); err != nil {
		return models.Message{}, err
	}

	created, err := c.conversationRepository.CreateMessage(ctx, models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
	})
	if err != nil {
		log.Err(err).Int64("conversation_id", conversationID).Msg("message creation ended with error")
		return models.Message{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	return created, nil
}

// ListMessages returns the conversation's messages in chronological order,
// subject to the same membership rule as PostMessage.
func (c *conversationService) ListMessages(ctx context.Context, userID, conversationID int64) ([]models.Message, error) {
	if err := c.requireMembership(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	return c.conversationRepository.ListMessages(ctx, conversationID)
}

func (c *conversationService) requireMembership(ctx context.Context, userID, conversationID int64) error {
	conversation, err := c.conversationRepository.FindConversationByID(ctx, conversationID)
	if err != nil {
		return err
	}

	if conversation.CreatorID != userID && !slices.Contains(conversation.Participants, userID) {
		return ErrNotConversationMember
	}

	return nil
}
