package adapter

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	messaging "github.com/Ricky944902/classmate-web/internal/pkg/messaging/domain"
)

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Save(ctx context.Context, m messaging.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgMessageRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (sender_id, recipient_id, content, is_encrypted, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5)
		RETURNING id::text
	`, m.SenderID, m.RecipientID, m.Content, m.IsEncrypted, m.CreatedAt).Scan(&id)
	if err != nil {
		return "", errors.Wrap(err, "PgMessageRepository.Save")
	}
	return id, nil
}

func (r *PgMessageRepository) GetConversation(ctx context.Context, userID, peerID string) ([]messaging.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, sender_id::text, recipient_id::text, content, is_encrypted, created_at
		FROM messages
		WHERE (sender_id = $1::uuid AND recipient_id = $2::uuid)
		   OR (sender_id = $2::uuid AND recipient_id = $1::uuid)
		ORDER BY created_at ASC
	`, userID, peerID)
	if err != nil {
		return nil, errors.Wrap(err, "PgMessageRepository.GetConversation")
	}
	defer rows.Close()

	var msgs []messaging.Message
	for rows.Next() {
		var m messaging.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.IsEncrypted, &m.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "PgMessageRepository.GetConversation scan")
		}
		msgs = append(msgs, m)
	}
	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "PgMessageRepository.GetConversation rows")
	}
	return msgs, nil
}
