package messaging

import (
	"errors"
	"time"
)

// Message is an immutable, append-only record of one delivered chat message.
// Content holds ciphertext whenever IsEncrypted is set; plaintext never
// reaches persistence on the send path.
type Message struct {
	ID          string    `db:"id"`
	SenderID    string    `db:"sender_id"`
	RecipientID string    `db:"recipient_id"`
	Content     string    `db:"content"`
	IsEncrypted bool      `db:"is_encrypted"`
	CreatedAt   time.Time `db:"created_at"`
}

var (
	ErrMissingParticipants = errors.New("messaging: sender and recipient are required")
	ErrSelfMessage         = errors.New("messaging: sender and recipient must differ")
	ErrEmptyContent        = errors.New("messaging: message content is empty")
)

// NewMessage validates and normalizes a message prior to persistence.
func NewMessage(m Message) (*Message, error) {
	if m.SenderID == "" || m.RecipientID == "" {
		return nil, ErrMissingParticipants
	}
	if m.SenderID == m.RecipientID {
		return nil, ErrSelfMessage
	}
	if m.Content == "" {
		return nil, ErrEmptyContent
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return &m, nil
}
