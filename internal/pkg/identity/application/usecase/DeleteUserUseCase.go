package usecase

import (
	"context"

	repository "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

type DeleteUserInput struct {
	ActorID  string
	TargetID string
}

// DeleteUserUseCase removes an account. Admins cannot delete themselves.
type DeleteUserUseCase struct {
	Repo repository.UserRepository
}

func NewDeleteUserUseCase(repo repository.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{Repo: repo}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, in DeleteUserInput) error {
	if in.TargetID == "" {
		return apperrors.InvalidArg("target user id is required")
	}
	if in.ActorID == in.TargetID {
		return apperrors.InvalidArg("cannot delete your own account")
	}
	if err := uc.Repo.Delete(ctx, in.TargetID); err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return err
		}
		return apperrors.Unavailable("delete user", err)
	}
	return nil
}
