package usecase

import (
	"context"
	"strings"

	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// SearchUsersUseCase matches the query against usernames and emails. The
// query must be non-empty; password hashes never reach the result.
type SearchUsersUseCase struct {
	Repo repository.UserRepository
}

func NewSearchUsersUseCase(repo repository.UserRepository) *SearchUsersUseCase {
	return &SearchUsersUseCase{Repo: repo}
}

func (uc *SearchUsersUseCase) Execute(ctx context.Context, query string) ([]identity.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.InvalidArg("search query is required")
	}
	users, err := uc.Repo.Search(ctx, query)
	if err != nil {
		return nil, apperrors.Unavailable("search users", err)
	}
	return profiles(users), nil
}

func profiles(users []identity.User) []identity.Profile {
	out := make([]identity.Profile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile())
	}
	return out
}
