package repository

import (
	"context"

	messaging "github.com/Ricky944902/classmate-web/internal/pkg/messaging/domain"
)

// MessageRepository defines persistence operations for the message log.
type MessageRepository interface {
	// Save persists a message and returns its generated id.
	Save(ctx context.Context, m messaging.Message) (string, error)

	// GetConversation returns every message exchanged between the two users in
	// either direction, ascending by creation time.
	GetConversation(ctx context.Context, userID, peerID string) ([]messaging.Message, error)
}
