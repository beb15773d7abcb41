package moderation

import "time"

// Word is one entry in the blocked-word list. Words are unique and matched
// case-insensitively against whitespace-separated message tokens.
type Word struct {
	ID        string    `db:"id"`
	Word      string    `db:"word"`
	CreatedAt time.Time `db:"created_at"`
}
