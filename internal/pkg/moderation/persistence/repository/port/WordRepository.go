package repository

import (
	"context"

	moderation "github.com/Ricky944902/classmate-web/internal/pkg/moderation/domain"
)

// WordRepository defines persistence operations for the blocked-word list.
type WordRepository interface {
	// Add inserts a new word. Duplicate words fail with ALREADY_EXISTS.
	Add(ctx context.Context, word string) (*moderation.Word, error)

	// Delete removes a word by id. Missing ids fail with NOT_FOUND.
	Delete(ctx context.Context, id string) error

	// List returns all words.
	List(ctx context.Context) ([]moderation.Word, error)
}
