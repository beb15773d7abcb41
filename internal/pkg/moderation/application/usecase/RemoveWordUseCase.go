package usecase

import (
	"context"

	repository "github.com/Ricky944902/classmate-web/internal/pkg/moderation/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// RemoveWordInput identifies the word entry to delete.
type RemoveWordInput struct {
	ID string
}

// RemoveWordUseCase deletes a blocked word and invalidates the cached word set.
type RemoveWordUseCase struct {
	Repo  repository.WordRepository
	Cache WordCache
}

func NewRemoveWordUseCase(repo repository.WordRepository, cache WordCache) *RemoveWordUseCase {
	return &RemoveWordUseCase{Repo: repo, Cache: cache}
}

func (uc *RemoveWordUseCase) Execute(ctx context.Context, in RemoveWordInput) error {
	if in.ID == "" {
		return apperrors.InvalidArg("word id is required")
	}
	if err := uc.Repo.Delete(ctx, in.ID); err != nil {
		return err
	}
	invalidateWordCache(ctx, uc.Cache)
	return nil
}
