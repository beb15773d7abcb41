package adapter

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	moderation "github.com/Ricky944902/classmate-web/internal/pkg/moderation/domain"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

const uniqueViolation = "23505"

type PgWordRepository struct {
	pool *pgxpool.Pool
}

func NewPgWordRepository(pool *pgxpool.Pool) *PgWordRepository {
	return &PgWordRepository{pool: pool}
}

func (r *PgWordRepository) Add(ctx context.Context, word string) (*moderation.Word, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgWordRepository: nil pool")
	}
	var w moderation.Word
	err := r.pool.QueryRow(ctx, `
		INSERT INTO profanity_words (word)
		VALUES ($1)
		RETURNING id::text, word, created_at
	`, word).Scan(&w.ID, &w.Word, &w.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.AlreadyExists("word is already listed")
		}
		return nil, errors.Wrap(err, "PgWordRepository.Add")
	}
	return &w, nil
}

func (r *PgWordRepository) Delete(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgWordRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM profanity_words WHERE id = $1::uuid`, id)
	if err != nil {
		return errors.Wrap(err, "PgWordRepository.Delete")
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("word not found")
	}
	return nil
}

func (r *PgWordRepository) List(ctx context.Context) ([]moderation.Word, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgWordRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, word, created_at
		FROM profanity_words
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "PgWordRepository.List")
	}
	defer rows.Close()

	var words []moderation.Word
	for rows.Next() {
		var w moderation.Word
		if err := rows.Scan(&w.ID, &w.Word, &w.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "PgWordRepository.List scan")
		}
		words = append(words, w)
	}
	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "PgWordRepository.List rows")
	}
	return words, nil
}
