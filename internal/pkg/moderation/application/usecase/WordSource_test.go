package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moderation "github.com/Ricky944902/classmate-web/internal/pkg/moderation/domain"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

type fakeWordRepo struct {
	words    []moderation.Word
	listHits int
	nextID   int
}

func (f *fakeWordRepo) Add(_ context.Context, word string) (*moderation.Word, error) {
	for _, w := range f.words {
		if w.Word == word {
			return nil, apperrors.AlreadyExists("word already blocked")
		}
	}
	f.nextID++
	w := moderation.Word{ID: fmt.Sprintf("word-%d", f.nextID), Word: word, CreatedAt: time.Now().UTC()}
	f.words = append(f.words, w)
	return &w, nil
}

func (f *fakeWordRepo) Delete(_ context.Context, id string) error {
	for i, w := range f.words {
		if w.ID == id {
			f.words = append(f.words[:i], f.words[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("word not found")
}

func (f *fakeWordRepo) List(_ context.Context) ([]moderation.Word, error) {
	f.listHits++
	return append([]moderation.Word(nil), f.words...), nil
}

// fakeWordCache is a TTL-less in-memory cache with togglable failure.
type fakeWordCache struct {
	entries map[string]string
	broken  bool
}

func newFakeWordCache() *fakeWordCache {
	return &fakeWordCache{entries: map[string]string{}}
}

func (f *fakeWordCache) Get(_ context.Context, key string) (string, error) {
	if f.broken {
		return "", errors.New("cache down")
	}
	v, ok := f.entries[key]
	if !ok {
		return "", errors.New("miss")
	}
	return v, nil
}

func (f *fakeWordCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if f.broken {
		return errors.New("cache down")
	}
	f.entries[key] = value
	return nil
}

func (f *fakeWordCache) Del(_ context.Context, keys ...string) (int64, error) {
	if f.broken {
		return 0, errors.New("cache down")
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.entries[k]; ok {
			delete(f.entries, k)
			n++
		}
	}
	return n, nil
}

func TestWordSource(t *testing.T) {
	ctx := context.Background()

	t.Run("second read is served from the cache", func(t *testing.T) {
		repo := &fakeWordRepo{}
		_, err := repo.Add(ctx, "badword")
		require.NoError(t, err)

		src := NewWordSource(repo, newFakeWordCache())

		words, err := src.Words(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"badword"}, words)

		words, err = src.Words(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"badword"}, words)
		assert.Equal(t, 1, repo.listHits)
	})

	t.Run("mutations invalidate the cache", func(t *testing.T) {
		repo := &fakeWordRepo{}
		cache := newFakeWordCache()
		src := NewWordSource(repo, cache)

		w, err := NewAddWordUseCase(repo, cache).Execute(ctx, AddWordInput{Word: "badword"})
		require.NoError(t, err)

		words, err := src.Words(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"badword"}, words)

		require.NoError(t, NewRemoveWordUseCase(repo, cache).Execute(ctx, RemoveWordInput{ID: w.ID}))

		words, err = src.Words(ctx)
		require.NoError(t, err)
		assert.Empty(t, words)
	})

	t.Run("cache failure degrades to the database", func(t *testing.T) {
		repo := &fakeWordRepo{}
		_, err := repo.Add(ctx, "badword")
		require.NoError(t, err)

		cache := newFakeWordCache()
		cache.broken = true
		src := NewWordSource(repo, cache)

		words, err := src.Words(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"badword"}, words)
	})

	t.Run("nil cache works", func(t *testing.T) {
		repo := &fakeWordRepo{}
		src := NewWordSource(repo, nil)

		words, err := src.Words(ctx)
		require.NoError(t, err)
		assert.Empty(t, words)
	})
}

func TestAddWord(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes to lower case", func(t *testing.T) {
		repo := &fakeWordRepo{}
		w, err := NewAddWordUseCase(repo, nil).Execute(ctx, AddWordInput{Word: "  BadWord "})
		require.NoError(t, err)
		assert.Equal(t, "badword", w.Word)
	})

	t.Run("duplicate word conflicts", func(t *testing.T) {
		repo := &fakeWordRepo{}
		uc := NewAddWordUseCase(repo, nil)
		_, err := uc.Execute(ctx, AddWordInput{Word: "badword"})
		require.NoError(t, err)
		_, err = uc.Execute(ctx, AddWordInput{Word: "BADWORD"})
		assert.Equal(t, apperrors.CodeAlreadyExists, apperrors.CodeOf(err))
	})

	t.Run("multi-token input is rejected", func(t *testing.T) {
		repo := &fakeWordRepo{}
		_, err := NewAddWordUseCase(repo, nil).Execute(ctx, AddWordInput{Word: "two words"})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})
}
