package adapter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	verification "github.com/Ricky944902/classmate-web/internal/pkg/verification/domain"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

type PgCodeRepository struct {
	pool *pgxpool.Pool
}

func NewPgCodeRepository(pool *pgxpool.Pool) *PgCodeRepository {
	return &PgCodeRepository{pool: pool}
}

func (r *PgCodeRepository) Replace(ctx context.Context, code *verification.VerificationCode) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgCodeRepository: nil pool")
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", errors.Wrap(err, "PgCodeRepository.Replace begin")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM verification_codes WHERE user_id = $1::uuid`, code.UserID); err != nil {
		return "", errors.Wrap(err, "PgCodeRepository.Replace delete")
	}

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO verification_codes (user_id, email, code, expires_at)
		VALUES ($1::uuid, $2, $3, $4)
		RETURNING id::text
	`, code.UserID, code.Email, code.Code, code.ExpiresAt).Scan(&id)
	if err != nil {
		return "", errors.Wrap(err, "PgCodeRepository.Replace insert")
	}

	if err := tx.Commit(ctx); err != nil {
		return "", errors.Wrap(err, "PgCodeRepository.Replace commit")
	}
	return id, nil
}

func (r *PgCodeRepository) Consume(ctx context.Context, email, code string) (*verification.VerificationCode, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgCodeRepository: nil pool")
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "PgCodeRepository.Consume begin")
	}
	defer tx.Rollback(ctx)

	var vc verification.VerificationCode
	err = tx.QueryRow(ctx, `
		SELECT id::text, user_id::text, email, code, expires_at, created_at
		FROM verification_codes
		WHERE email = $1 AND code = $2
		FOR UPDATE
	`, email, code).Scan(&vc.ID, &vc.UserID, &vc.Email, &vc.Code, &vc.ExpiresAt, &vc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("verification code not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "PgCodeRepository.Consume select")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM verification_codes WHERE id = $1::uuid`, vc.ID); err != nil {
		return nil, errors.Wrap(err, "PgCodeRepository.Consume delete")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "PgCodeRepository.Consume commit")
	}
	return &vc, nil
}
