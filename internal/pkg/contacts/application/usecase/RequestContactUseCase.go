package usecase

import (
	"context"

	contacts "github.com/Ricky944902/classmate-web/internal/pkg/contacts/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/contacts/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// RequestContactInput carries a new contact request from the authenticated
// requester towards a target user.
type RequestContactInput struct {
	RequesterID string
	TargetID    string
}

// RequestContactUseCase creates a pending directed edge requester -> target.
// A request is refused when the target does not exist, when requester and
// target are the same user, or when any edge already links the pair in either
// direction.
type RequestContactUseCase struct {
	Repo  repository.ContactRepository
	Users UserFinder
}

func NewRequestContactUseCase(repo repository.ContactRepository, users UserFinder) *RequestContactUseCase {
	return &RequestContactUseCase{Repo: repo, Users: users}
}

func (uc *RequestContactUseCase) Execute(ctx context.Context, in RequestContactInput) (*contacts.ContactEdge, error) {
	if in.RequesterID == "" || in.TargetID == "" {
		return nil, apperrors.InvalidArg("requester and target are required")
	}
	if in.RequesterID == in.TargetID {
		return nil, apperrors.InvalidArg("cannot add yourself as a contact")
	}

	exists, err := uc.Users.Exists(ctx, in.TargetID)
	if err != nil {
		return nil, apperrors.Unavailable("look up contact target", err)
	}
	if !exists {
		return nil, apperrors.NotFound("user not found")
	}

	edge, err := uc.Repo.CreateRequest(ctx, in.RequesterID, in.TargetID)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeAlreadyExists) {
			return nil, err
		}
		return nil, apperrors.Unavailable("create contact request", err)
	}
	return edge, nil
}
