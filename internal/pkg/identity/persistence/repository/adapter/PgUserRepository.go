package adapter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

const uniqueViolation = "23505"

const userColumns = `id::text, username, email, password_hash, is_admin, is_verified, created_at`

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, u *identity.User) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgUserRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, is_admin, is_verified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text
	`, u.Username, u.Email, u.PasswordHash, u.IsAdmin, u.IsVerified).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", apperrors.AlreadyExists("username or email already in use")
		}
		return "", errors.Wrap(err, "PgUserRepository.Create")
	}
	return id, nil
}

func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*identity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1::uuid`, id)
}

func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PgUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *PgUserRepository) findOne(ctx context.Context, query, arg string) (*identity.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	var u identity.User
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.IsVerified, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "PgUserRepository.findOne")
	}
	return &u, nil
}

func (r *PgUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgUserRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT FROM users WHERE id = $1::uuid)`, id).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "PgUserRepository.Exists")
	}
	return exists, nil
}

func (r *PgUserRepository) Search(ctx context.Context, query string) ([]identity.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	return r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY username ASC
	`, query)
}

func (r *PgUserRepository) List(ctx context.Context) ([]identity.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
}

func (r *PgUserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]identity.User, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "PgUserRepository.queryUsers")
	}
	defer rows.Close()

	var users []identity.User
	for rows.Next() {
		var u identity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.IsVerified, &u.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "PgUserRepository.queryUsers scan")
		}
		users = append(users, u)
	}
	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "PgUserRepository.queryUsers rows")
	}
	return users, nil
}

func (r *PgUserRepository) SetRole(ctx context.Context, id string, isAdmin bool) error {
	return r.update(ctx, `UPDATE users SET is_admin = $2 WHERE id = $1::uuid`, id, isAdmin)
}

func (r *PgUserRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.update(ctx, `UPDATE users SET is_verified = $2 WHERE id = $1::uuid`, id, verified)
}

func (r *PgUserRepository) update(ctx context.Context, query, id string, flag bool) error {
	if r == nil || r.pool == nil {
		return errors.New("PgUserRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, query, id, flag)
	if err != nil {
		return errors.Wrap(err, "PgUserRepository.update")
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("user not found")
	}
	return nil
}

func (r *PgUserRepository) Delete(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgUserRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1::uuid`, id)
	if err != nil {
		return errors.Wrap(err, "PgUserRepository.Delete")
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("user not found")
	}
	return nil
}
