package usecase

import (
	"context"

	repository "github.com/Ricky944902/classmate-web/internal/pkg/contacts/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// RemoveContactInput names the authenticated user and the edge to drop.
type RemoveContactInput struct {
	UserID string
	EdgeID string
}

// RemoveContactUseCase removes the relationship behind an edge, both
// directions. Either endpoint of the edge may remove it; anyone else is
// refused.
type RemoveContactUseCase struct {
	Repo repository.ContactRepository
}

func NewRemoveContactUseCase(repo repository.ContactRepository) *RemoveContactUseCase {
	return &RemoveContactUseCase{Repo: repo}
}

func (uc *RemoveContactUseCase) Execute(ctx context.Context, in RemoveContactInput) error {
	if in.UserID == "" || in.EdgeID == "" {
		return apperrors.InvalidArg("user and edge id are required")
	}

	edge, err := uc.Repo.FindByID(ctx, in.EdgeID)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return err
		}
		return apperrors.Unavailable("load contact", err)
	}
	if in.UserID != edge.UserID && in.UserID != edge.ContactID {
		return apperrors.Forbidden("only a participant can remove this contact")
	}

	if err := uc.Repo.DeletePair(ctx, edge.UserID, edge.ContactID); err != nil {
		return apperrors.Unavailable("remove contact", err)
	}
	return nil
}
