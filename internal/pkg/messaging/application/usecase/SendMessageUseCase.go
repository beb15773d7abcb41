package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ricky944902/classmate-web/internal/pkg/messaging/cipher"
	messaging "github.com/Ricky944902/classmate-web/internal/pkg/messaging/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/messaging/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/internal/pkg/moderation/filter"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// Event names pushed on the realtime transport.
const (
	EventMessageReceived = "messageReceived"
	EventMessageSent     = "messageSent"
)

// SendMessageInput carries one outgoing message and the caller-supplied key.
type SendMessageInput struct {
	SenderID      string
	RecipientID   string
	Content       string
	EncryptionKey string
}

// MessageEvent is the payload pushed to channel members. Content always holds
// ciphertext; decryption is a client-side concern.
type MessageEvent struct {
	Type        string    `json:"type"`
	Sender      string    `json:"sender"`
	Recipient   string    `json:"recipient"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	IsEncrypted bool      `json:"isEncrypted"`
}

// SendMessageUseCase runs the message pipeline: moderation, encryption,
// persistence, then fan-out. Persistence happens-before fan-out; any failure
// up to and including the save suppresses both pushes.
type SendMessageUseCase struct {
	Repo   repository.MessageRepository
	Words  WordSource
	Fabric Publisher
}

func NewSendMessageUseCase(repo repository.MessageRepository, words WordSource, fabric Publisher) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Words: words, Fabric: fabric}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*messaging.Message, error) {
	if in.Content == "" {
		return nil, apperrors.InvalidArg("message content is required")
	}

	words, err := uc.Words.Words(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("load moderation words", err)
	}
	if filter.Contains(in.Content, words) {
		return nil, apperrors.Moderated("message contains a blocked word")
	}

	ciphertext, err := cipher.Encrypt(in.Content, in.EncryptionKey)
	if err != nil {
		return nil, err
	}

	msg, err := messaging.NewMessage(messaging.Message{
		SenderID:    in.SenderID,
		RecipientID: in.RecipientID,
		Content:     ciphertext,
		IsEncrypted: true,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid message", err)
	}

	id, err := uc.Repo.Save(ctx, *msg)
	if err != nil {
		return nil, apperrors.Unavailable("persist message", err)
	}
	msg.ID = id

	uc.publish(*msg)
	return msg, nil
}

// publish pushes the persisted record to the recipient's channel and echoes
// it to the sender's own channel. Both payloads carry the ciphertext.
func (uc *SendMessageUseCase) publish(msg messaging.Message) {
	base := MessageEvent{
		Sender:      msg.SenderID,
		Recipient:   msg.RecipientID,
		Content:     msg.Content,
		CreatedAt:   msg.CreatedAt,
		IsEncrypted: msg.IsEncrypted,
	}

	received := base
	received.Type = EventMessageReceived
	if payload, err := json.Marshal(received); err == nil {
		uc.Fabric.Publish(msg.RecipientID, payload)
	}

	sent := base
	sent.Type = EventMessageSent
	if payload, err := json.Marshal(sent); err == nil {
		uc.Fabric.Publish(msg.SenderID, payload)
	}
}
