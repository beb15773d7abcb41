package usecase

import (
	"context"
	"encoding/json"
	"time"

	repository "github.com/Ricky944902/classmate-web/internal/pkg/moderation/persistence/repository/port"
)

const (
	wordCacheKey = "moderation:words"
	wordCacheTTL = 30 * time.Second
)

// WordCache is the slice of the cache port this package needs.
type WordCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) (int64, error)
}

// WordSource serves the blocked-word list to the message pipeline, reading
// through a short-lived cache entry. Cache failures degrade to the database
// read; the send path never fails because Redis is down.
type WordSource struct {
	Repo  repository.WordRepository
	Cache WordCache
}

func NewWordSource(repo repository.WordRepository, cache WordCache) *WordSource {
	return &WordSource{Repo: repo, Cache: cache}
}

// Words returns the current blocked words as stored. Admin mutations
// normalize entries to lower case on write, and the filter matches
// case-insensitively either way.
func (s *WordSource) Words(ctx context.Context) ([]string, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, wordCacheKey); err == nil {
			var words []string
			if err := json.Unmarshal([]byte(raw), &words); err == nil {
				return words, nil
			}
		}
	}

	entries, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		words = append(words, e.Word)
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(words); err == nil {
			_ = s.Cache.Set(ctx, wordCacheKey, string(raw), wordCacheTTL)
		}
	}
	return words, nil
}

func invalidateWordCache(ctx context.Context, cache WordCache) {
	if cache != nil {
		_, _ = cache.Del(ctx, wordCacheKey)
	}
}
