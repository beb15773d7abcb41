package usecase

import (
	"context"

	contacts "github.com/Ricky944902/classmate-web/internal/pkg/contacts/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/contacts/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// RejectRequestInput identifies a pending request and the user acting on it.
type RejectRequestInput struct {
	UserID    string
	RequestID string
}

// RejectRequestUseCase deletes a pending request addressed to the user. The
// requester may try again later; no tombstone is kept.
type RejectRequestUseCase struct {
	Repo repository.ContactRepository
}

func NewRejectRequestUseCase(repo repository.ContactRepository) *RejectRequestUseCase {
	return &RejectRequestUseCase{Repo: repo}
}

func (uc *RejectRequestUseCase) Execute(ctx context.Context, in RejectRequestInput) error {
	if in.UserID == "" || in.RequestID == "" {
		return apperrors.InvalidArg("user and request id are required")
	}

	edge, err := uc.Repo.FindByID(ctx, in.RequestID)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return err
		}
		return apperrors.Unavailable("load contact request", err)
	}
	if edge.ContactID != in.UserID {
		return apperrors.Forbidden("only the request recipient can reject it")
	}
	if edge.Status != contacts.StatusPending {
		return apperrors.InvalidArg("contact request is not pending")
	}

	if err := uc.Repo.Delete(ctx, edge.ID); err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return err
		}
		return apperrors.Unavailable("reject contact request", err)
	}
	return nil
}
