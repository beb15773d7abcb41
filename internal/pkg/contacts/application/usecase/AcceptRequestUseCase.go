package usecase

import (
	"context"

	contacts "github.com/Ricky944902/classmate-web/internal/pkg/contacts/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/contacts/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// AcceptRequestInput identifies a pending request and the user acting on it.
type AcceptRequestInput struct {
	UserID    string
	RequestID string
}

// AcceptRequestUseCase accepts a pending request addressed to the user. On
// success both directed edges exist with status accepted, so each side lists
// the other as a contact.
type AcceptRequestUseCase struct {
	Repo repository.ContactRepository
}

func NewAcceptRequestUseCase(repo repository.ContactRepository) *AcceptRequestUseCase {
	return &AcceptRequestUseCase{Repo: repo}
}

func (uc *AcceptRequestUseCase) Execute(ctx context.Context, in AcceptRequestInput) error {
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
		return apperrors.Forbidden("only the request recipient can accept it")
	}
	if edge.Status != contacts.StatusPending {
		return apperrors.InvalidArg("contact request is not pending")
	}

	if err := uc.Repo.Accept(ctx, *edge); err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return err
		}
		return apperrors.Unavailable("accept contact request", err)
	}
	return nil
}
