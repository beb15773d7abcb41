package repository

import (
	"context"

	verification "github.com/Ricky944902/classmate-web/internal/pkg/verification/domain"
)

// CodeRepository defines persistence operations for one-time codes.
type CodeRepository interface {
	// Replace deletes any existing code rows for the user and inserts the
	// new one, all in a single transaction, and returns the generated id.
	Replace(ctx context.Context, code *verification.VerificationCode) (string, error)

	// Consume looks up the exact (email, code) pair with a row lock, deletes
	// the row and returns it. The caller checks expiry; the row is gone
	// either way so a code can never be redeemed twice. Absent pairs fail
	// with NOT_FOUND.
	Consume(ctx context.Context, email, code string) (*verification.VerificationCode, error)
}
