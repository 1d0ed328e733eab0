package models

import "time"

// Conversation groups a set of participants exchanging messages.
type Conversation struct {
	ConversationID int64     `json:"id"`
	Name           string    `json:"name"`
	CreatorID      int64     `json:"creator_id"`
	Participants   []int64   `json:"participants"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Conversation model.
func (c Conversation) TableName() string {
	return "conversations"
}

// Message is a single chat message inside a conversation.
type Message struct {
	MessageID      int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	SenderID       int64     `json:"sender_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
