package verification

import "time"

// CodeTTL is how long an issued code stays valid.
const CodeTTL = 10 * time.Minute

// VerificationCode is a single-use 6-digit login code. A user holds at most
// one live code; issuing a new one replaces any previous row.
type VerificationCode struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// ExpiredAt reports whether the code is no longer redeemable at the given
// instant. The expiry moment itself counts as expired.
func (c VerificationCode) ExpiredAt(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
