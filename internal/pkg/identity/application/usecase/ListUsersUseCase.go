package usecase

import (
	"context"

	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// ListUsersUseCase returns every account, for the admin user table.
type ListUsersUseCase struct {
	Repo repository.UserRepository
}

func NewListUsersUseCase(repo repository.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{Repo: repo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]identity.Profile, error) {
	users, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("list users", err)
	}
	return profiles(users), nil
}
