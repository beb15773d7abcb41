package usecase

import (
	"context"

	contacts "github.com/Ricky944902/classmate-web/internal/pkg/contacts/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/contacts/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// ListPendingRequestsUseCase returns pending requests waiting on the user,
// joined with each requester's details.
type ListPendingRequestsUseCase struct {
	Repo repository.ContactRepository
}

func NewListPendingRequestsUseCase(repo repository.ContactRepository) *ListPendingRequestsUseCase {
	return &ListPendingRequestsUseCase{Repo: repo}
}

func (uc *ListPendingRequestsUseCase) Execute(ctx context.Context, userID string) ([]contacts.ContactView, error) {
	if userID == "" {
		return nil, apperrors.InvalidArg("user id is required")
	}
	views, err := uc.Repo.ListPendingIncoming(ctx, userID)
	if err != nil {
		return nil, apperrors.Unavailable("list pending requests", err)
	}
	return views, nil
}
