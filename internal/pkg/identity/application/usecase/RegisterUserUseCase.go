package usecase

import (
	"context"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// RegisterUserUseCase creates a new account with an argon2id password hash.
// Username and email must both be unique.
type RegisterUserUseCase struct {
	Repo repository.UserRepository
}

func NewRegisterUserUseCase(repo repository.UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{Repo: repo}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, in RegisterUserInput) (*identity.Profile, error) {
	u, err := identity.NewUser(in.Username, in.Email, in.Password)
	if err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, apperrors.Unavailable("hash password", err)
	}
	u.PasswordHash = hash

	id, err := uc.Repo.Create(ctx, u)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeAlreadyExists) {
			return nil, err
		}
		return nil, apperrors.Unavailable("create user", err)
	}
	u.ID = id

	profile := u.Profile()
	return &profile, nil
}
