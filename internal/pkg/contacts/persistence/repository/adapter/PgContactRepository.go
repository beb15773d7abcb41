package adapter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	contacts "github.com/Ricky944902/classmate-web/internal/pkg/contacts/domain"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

const uniqueViolation = "23505"

type PgContactRepository struct {
	pool *pgxpool.Pool
}

func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// CreateRequest runs the duplicate check and the insert in one transaction.
// Both user rows are locked first (in sorted order to avoid deadlocks) so two
// concurrent requests for the same pair serialize instead of both passing the
// check.
func (r *PgContactRepository) CreateRequest(ctx context.Context, userID, contactID string) (*contacts.ContactEdge, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgContactRepository: nil pool")
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "PgContactRepository.CreateRequest begin")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		SELECT FROM users
		WHERE id IN ($1::uuid, $2::uuid)
		ORDER BY id
		FOR UPDATE
	`, userID, contactID); err != nil {
		return nil, errors.Wrap(err, "PgContactRepository.CreateRequest lock")
	}

	var existing string
	err = tx.QueryRow(ctx, `
		SELECT id::text FROM contacts
		WHERE (user_id = $1::uuid AND contact_id = $2::uuid)
		   OR (user_id = $2::uuid AND contact_id = $1::uuid)
		LIMIT 1
	`, userID, contactID).Scan(&existing)
	if err == nil {
		return nil, apperrors.AlreadyExists("a contact request already exists between these users")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.Wrap(err, "PgContactRepository.CreateRequest check")
	}

	var edge contacts.ContactEdge
	err = tx.QueryRow(ctx, `
		INSERT INTO contacts (user_id, contact_id, status)
		VALUES ($1::uuid, $2::uuid, $3)
		RETURNING id::text, user_id::text, contact_id::text, status, created_at
	`, userID, contactID, contacts.StatusPending).
		Scan(&edge.ID, &edge.UserID, &edge.ContactID, &edge.Status, &edge.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.AlreadyExists("a contact request already exists between these users")
		}
		return nil, errors.Wrap(err, "PgContactRepository.CreateRequest insert")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "PgContactRepository.CreateRequest commit")
	}
	return &edge, nil
}

func (r *PgContactRepository) FindByID(ctx context.Context, id string) (*contacts.ContactEdge, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgContactRepository: nil pool")
	}
	var edge contacts.ContactEdge
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, user_id::text, contact_id::text, status, created_at
		FROM contacts
		WHERE id = $1::uuid
	`, id).Scan(&edge.ID, &edge.UserID, &edge.ContactID, &edge.Status, &edge.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("contact request not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "PgContactRepository.FindByID")
	}
	return &edge, nil
}

// Accept flips the edge and inserts the reciprocal accepted edge in one
// transaction. The reciprocal insert is idempotent: it is internally
// generated, so an existing reverse row is updated rather than rejected.
func (r *PgContactRepository) Accept(ctx context.Context, edge contacts.ContactEdge) error {
	if r == nil || r.pool == nil {
		return errors.New("PgContactRepository: nil pool")
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "PgContactRepository.Accept begin")
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `
		UPDATE contacts SET status = $2 WHERE id = $1::uuid
	`, edge.ID, contacts.StatusAccepted)
	if err != nil {
		return errors.Wrap(err, "PgContactRepository.Accept update")
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("contact request not found")
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO contacts (user_id, contact_id, status)
		VALUES ($1::uuid, $2::uuid, $3)
		ON CONFLICT (user_id, contact_id) DO UPDATE SET status = EXCLUDED.status
	`, edge.ContactID, edge.UserID, contacts.StatusAccepted); err != nil {
		return errors.Wrap(err, "PgContactRepository.Accept reciprocal")
	}

	return errors.Wrap(tx.Commit(ctx), "PgContactRepository.Accept commit")
}

func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgContactRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1::uuid`, id)
	if err != nil {
		return errors.Wrap(err, "PgContactRepository.Delete")
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("contact request not found")
	}
	return nil
}

func (r *PgContactRepository) DeletePair(ctx context.Context, userID, contactID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgContactRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM contacts
		WHERE (user_id = $1::uuid AND contact_id = $2::uuid)
		   OR (user_id = $2::uuid AND contact_id = $1::uuid)
	`, userID, contactID)
	return errors.Wrap(err, "PgContactRepository.DeletePair")
}

func (r *PgContactRepository) ListAccepted(ctx context.Context, userID string) ([]contacts.ContactView, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgContactRepository: nil pool")
	}
	return r.list(ctx, `
		SELECT c.id::text, c.user_id::text, c.contact_id::text, c.status, c.created_at,
		       u.username, u.email
		FROM contacts c
		JOIN users u ON u.id = c.contact_id
		WHERE c.user_id = $1::uuid AND c.status = 'accepted'
		ORDER BY u.username ASC
	`, userID)
}

func (r *PgContactRepository) ListPendingIncoming(ctx context.Context, userID string) ([]contacts.ContactView, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgContactRepository: nil pool")
	}
	return r.list(ctx, `
		SELECT c.id::text, c.user_id::text, c.contact_id::text, c.status, c.created_at,
		       u.username, u.email
		FROM contacts c
		JOIN users u ON u.id = c.user_id
		WHERE c.contact_id = $1::uuid AND c.status = 'pending'
		ORDER BY c.created_at ASC
	`, userID)
}

func (r *PgContactRepository) list(ctx context.Context, query, userID string) ([]contacts.ContactView, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, errors.Wrap(err, "PgContactRepository.list")
	}
	defer rows.Close()

	var views []contacts.ContactView
	for rows.Next() {
		var v contacts.ContactView
		if err := rows.Scan(&v.ID, &v.UserID, &v.ContactID, &v.Status, &v.CreatedAt, &v.PeerUsername, &v.PeerEmail); err != nil {
			return nil, errors.Wrap(err, "PgContactRepository.list scan")
		}
		views = append(views, v)
	}
	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "PgContactRepository.list rows")
	}
	return views, nil
}
