package usecase

import (
	"context"
	"time"

	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
	identityrepo "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/port"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/verification/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// TokenIssuer signs a session token once the code checks out.
type TokenIssuer interface {
	Issue(userID string, isAdmin bool) (string, error)
}

type VerifyCodeInput struct {
	Email string
	Code  string
}

type VerifyCodeOutput struct {
	Token string
	User  identity.Profile
}

// VerifyCodeUseCase redeems a one-time code. The code row is consumed on
// every lookup hit, so neither a successful nor an expired code can be
// replayed. On success the user is marked verified and gets a session token.
type VerifyCodeUseCase struct {
	Codes  repository.CodeRepository
	Users  identityrepo.UserRepository
	Tokens TokenIssuer

	Now func() time.Time
}

func NewVerifyCodeUseCase(codes repository.CodeRepository, users identityrepo.UserRepository, tokens TokenIssuer) *VerifyCodeUseCase {
	return &VerifyCodeUseCase{Codes: codes, Users: users, Tokens: tokens, Now: time.Now}
}

func (uc *VerifyCodeUseCase) Execute(ctx context.Context, in VerifyCodeInput) (*VerifyCodeOutput, error) {
	if in.Email == "" || in.Code == "" {
		return nil, apperrors.InvalidArg("email and code are required")
	}

	vc, err := uc.Codes.Consume(ctx, in.Email, in.Code)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return nil, apperrors.InvalidArg("invalid code")
		}
		return nil, apperrors.Unavailable("look up verification code", err)
	}
	if vc.ExpiredAt(uc.Now().UTC()) {
		return nil, apperrors.Expired("verification code expired")
	}

	if err := uc.Users.SetVerified(ctx, vc.UserID, true); err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return nil, err
		}
		return nil, apperrors.Unavailable("mark user verified", err)
	}

	u, err := uc.Users.FindByID(ctx, vc.UserID)
	if err != nil {
		return nil, apperrors.Unavailable("load user", err)
	}

	token, err := uc.Tokens.Issue(u.ID, u.IsAdmin)
	if err != nil {
		return nil, apperrors.Unavailable("issue session token", err)
	}
	return &VerifyCodeOutput{Token: token, User: u.Profile()}, nil
}
