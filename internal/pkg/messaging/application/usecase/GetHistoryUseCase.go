package usecase

import (
	"context"

	messaging "github.com/Ricky944902/classmate-web/internal/pkg/messaging/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/messaging/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// GetHistoryInput identifies the conversation pair.
type GetHistoryInput struct {
	UserID string
	PeerID string
}

// GetHistoryUseCase fetches the full message history between two users,
// ascending by creation time. Records stay encrypted; decryption is the
// caller's step.
type GetHistoryUseCase struct {
	Repo repository.MessageRepository
}

func NewGetHistoryUseCase(repo repository.MessageRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{Repo: repo}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, in GetHistoryInput) ([]messaging.Message, error) {
	if in.UserID == "" || in.PeerID == "" {
		return nil, apperrors.InvalidArg("both conversation participants are required")
	}
	msgs, err := uc.Repo.GetConversation(ctx, in.UserID, in.PeerID)
	if err != nil {
		return nil, apperrors.Unavailable("load message history", err)
	}
	return msgs, nil
}
