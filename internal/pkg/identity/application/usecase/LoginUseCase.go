package usecase

import (
	"context"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// LoginInput carries the password plus one identifier. Email wins when both
// are set.
type LoginInput struct {
	Email    string
	Username string
	Password string
}

type LoginOutput struct {
	Token string
	User  identity.Profile
}

// LoginUseCase checks the password and issues a session token. An unknown
// identifier and a wrong password return the same error so login cannot be
// used to probe which accounts exist.
type LoginUseCase struct {
	Repo   repository.UserRepository
	Tokens TokenIssuer
}

func NewLoginUseCase(repo repository.UserRepository, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{Repo: repo, Tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if (in.Email == "" && in.Username == "") || in.Password == "" {
		return nil, apperrors.InvalidArg("an email or username and a password are required")
	}

	var (
		u   *identity.User
		err error
	)
	if in.Email != "" {
		u, err = uc.Repo.FindByEmail(ctx, in.Email)
	} else {
		u, err = uc.Repo.FindByUsername(ctx, in.Username)
	}
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return nil, apperrors.Unauthorized("invalid credentials")
		}
		return nil, apperrors.Unavailable("load user", err)
	}

	ok, err := security.CheckPassword(u.PasswordHash, in.Password)
	if err != nil {
		return nil, apperrors.Unavailable("check password", err)
	}
	if !ok {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	token, err := uc.Tokens.Issue(u.ID, u.IsAdmin)
	if err != nil {
		return nil, apperrors.Unavailable("issue session token", err)
	}
	return &LoginOutput{Token: token, User: u.Profile()}, nil
}
