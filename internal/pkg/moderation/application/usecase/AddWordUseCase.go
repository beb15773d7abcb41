package usecase

import (
	"context"
	"strings"

	moderation "github.com/Ricky944902/classmate-web/internal/pkg/moderation/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/moderation/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// AddWordInput carries the word to block.
type AddWordInput struct {
	Word string
}

// AddWordUseCase adds a word to the blocked list and invalidates the cached
// word set so the message pipeline picks it up promptly.
type AddWordUseCase struct {
	Repo  repository.WordRepository
	Cache WordCache
}

func NewAddWordUseCase(repo repository.WordRepository, cache WordCache) *AddWordUseCase {
	return &AddWordUseCase{Repo: repo, Cache: cache}
}

func (uc *AddWordUseCase) Execute(ctx context.Context, in AddWordInput) (*moderation.Word, error) {
	word := strings.ToLower(strings.TrimSpace(in.Word))
	if word == "" {
		return nil, apperrors.InvalidArg("word is required")
	}
	if len(strings.Fields(word)) != 1 {
		return nil, apperrors.InvalidArg("word must be a single token")
	}

	w, err := uc.Repo.Add(ctx, word)
	if err != nil {
		return nil, err
	}

	invalidateWordCache(ctx, uc.Cache)
	return w, nil
}
