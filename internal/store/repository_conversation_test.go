package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/models"
)

func newTestConversationRepo(t *testing.T) (*conversationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &conversationRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateConversation_Success(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"conversation_id", "name", "creator_id", "participants", "created_at"}).
		AddRow(1, "team", 7, []byte(`[7,8]`), now)

	mock.ExpectQuery("INSERT INTO conversations").
		WithArgs("team", int64(7), []byte(`[7,8]`)).
		WillReturnRows(rows)

	created, err := repo.CreateConversation(context.Background(), models.Conversation{
		Name:         "team",
		CreatorID:    7,
		Participants: []int64{7, 8},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ConversationID != 1 {
		t.Errorf("expected ConversationID=1, got %d", created.ConversationID)
	}
	if len(created.Participants) != 2 || created.Participants[1] != 8 {
		t.Errorf("expected participants [7 8], got %v", created.Participants)
	}
}

func TestCreateConversation_NilParticipants(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"conversation_id", "name", "creator_id", "participants", "created_at"}).
		AddRow(2, "solo", 7, []byte(`[]`), now)

	mock.ExpectQuery("INSERT INTO conversations").
		WithArgs("solo", int64(7), []byte(`[]`)).
		WillReturnRows(rows)

	created, err := repo.CreateConversation(context.Background(), models.Conversation{
		Name:      "solo",
		CreatorID: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.Participants) != 0 {
		t.Errorf("expected no participants, got %v", created.Participants)
	}
}

func TestFindConversationByID_NotFound(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT conversation_id, name, creator_id, participants, created_at FROM conversations").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindConversationByID(context.Background(), 404)
	if !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestListConversations_Success(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"conversation_id", "name", "creator_id", "participants", "created_at"}).
		AddRow(1, "team", 7, []byte(`[7,8]`), now).
		AddRow(2, "friends", 8, []byte(`[7]`), now)

	mock.ExpectQuery("SELECT conversation_id, name, creator_id, participants, created_at FROM conversations").
		WillReturnRows(rows)

	conversations, err := repo.ListConversations(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(conversations))
	}
}

func TestCreateMessage_Success(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"message_id", "conversation_id", "sender_id", "body", "created_at"}).
		AddRow(10, 1, 7, "hello", now)

	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(int64(1), int64(7), "hello").
		WillReturnRows(rows)

	created, err := repo.CreateMessage(context.Background(), models.Message{
		ConversationID: 1,
		SenderID:       7,
		Body:           "hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.MessageID != 10 {
		t.Errorf("expected MessageID=10, got %d", created.MessageID)
	}
}

func TestListMessages_ScanError(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"message_id", "conversation_id", "sender_id", "body", "created_at"}).
		AddRow("not-an-int", 1, 7, "hello", "not-a-time")

	mock.ExpectQuery("SELECT message_id, conversation_id, sender_id, body, created_at FROM messages").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	_, err := repo.ListMessages(context.Background(), 1)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}
