package usecase

import (
	"context"

	repository "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

type SetUserRoleInput struct {
	ActorID  string
	TargetID string
	IsAdmin  bool
}

// SetUserRoleUseCase grants or revokes the admin role. Admins cannot revoke
// their own role, so the system always keeps at least the acting admin.
type SetUserRoleUseCase struct {
	Repo repository.UserRepository
}

func NewSetUserRoleUseCase(repo repository.UserRepository) *SetUserRoleUseCase {
	return &SetUserRoleUseCase{Repo: repo}
}

func (uc *SetUserRoleUseCase) Execute(ctx context.Context, in SetUserRoleInput) error {
	if in.TargetID == "" {
		return apperrors.InvalidArg("target user id is required")
	}
	if in.ActorID == in.TargetID && !in.IsAdmin {
		return apperrors.InvalidArg("cannot revoke your own admin role")
	}
	if err := uc.Repo.SetRole(ctx, in.TargetID, in.IsAdmin); err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return err
		}
		return apperrors.Unavailable("set user role", err)
	}
	return nil
}
