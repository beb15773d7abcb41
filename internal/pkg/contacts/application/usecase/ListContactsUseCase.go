package usecase

import (
	"context"

	contacts "github.com/Ricky944902/classmate-web/internal/pkg/contacts/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/contacts/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// ListContactsUseCase returns the user's accepted contacts with peer details.
type ListContactsUseCase struct {
	Repo repository.ContactRepository
}

func NewListContactsUseCase(repo repository.ContactRepository) *ListContactsUseCase {
	return &ListContactsUseCase{Repo: repo}
}

func (uc *ListContactsUseCase) Execute(ctx context.Context, userID string) ([]contacts.ContactView, error) {
	if userID == "" {
		return nil, apperrors.InvalidArg("user id is required")
	}
	views, err := uc.Repo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, apperrors.Unavailable("list contacts", err)
	}
	return views, nil
}
