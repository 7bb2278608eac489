package domain

import (
	"context"
	"time"
)

// OpenerSubject marks the synthetic message that bootstraps a conversation.
const OpenerSubject = "Conversation started"

// NoMessagesMarker is the preview shown for an application with no thread yet.
const NoMessagesMarker = "(No messages yet)"

// Message belongs to exactly one application thread. Sender and receiver are
// always the application's two parties; the receiver is computed server-side.
type Message struct {
	ID             int64     `json:"id"`
	ApplicationID  int64     `json:"application_id"`
	SenderUserID   string    `json:"sender_user_id"`
	ReceiverUserID string    `json:"receiver_user_id"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ConversationSummary is one row of the user's conversation list. The
// conversation id is the application id; threads are not stored separately.
type ConversationSummary struct {
	ApplicationID int64  `json:"application_id"`
	JobTitle      string `json:"job_title"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	LastMessage   string `json:"last_message"`
}

type MessageRepository interface {
	// CreateOpener inserts the thread-bootstrap message if none exists yet for
	// the application. Returns true when a row was inserted. Idempotent under
	// concurrent calls via a partial unique index.
	CreateOpener(ctx context.Context, applicationID int64, senderUserID, receiverUserID string) (bool, error)
	Create(ctx context.Context, msg *Message) error
	GetByApplicationID(ctx context.Context, applicationID int64) ([]Message, error)
}

// ConversationRepository aggregates per-application previews across every
// application where the user is a party.
type ConversationRepository interface {
	ListForUser(ctx context.Context, userID string) ([]ConversationSummary, error)
}

type ConversationUsecase interface {
	Start(ctx context.Context, actor *Actor, applicationID int64) (int64, error)
	ListMessages(ctx context.Context, actor *Actor, applicationID int64) ([]Message, error)
	Send(ctx context.Context, actor *Actor, applicationID int64, subject, body string) (*Message, error)
	ListConversations(ctx context.Context, actor *Actor) ([]ConversationSummary, error)
}
