package usecase

import (
	"context"

	moderation "github.com/Ricky944902/classmate-web/internal/pkg/moderation/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/moderation/persistence/repository/port"
)

// ListWordsUseCase returns the full blocked-word list for the admin surface.
// This is the uncached read; the message pipeline uses WordSource instead.
type ListWordsUseCase struct {
	Repo repository.WordRepository
}

func NewListWordsUseCase(repo repository.WordRepository) *ListWordsUseCase {
	return &ListWordsUseCase{Repo: repo}
}

func (uc *ListWordsUseCase) Execute(ctx context.Context) ([]moderation.Word, error) {
	return uc.Repo.List(ctx)
}
