package identity

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrMissingCredentials = errors.New("username, email and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// User is an account record. PasswordHash never leaves the persistence and
// application layers; presentation renders Profile instead.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	IsVerified   bool      `db:"is_verified"`
	CreatedAt    time.Time `db:"created_at"`
}

// Profile is the externally visible projection of a user.
type Profile struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	IsAdmin    bool      `json:"isAdmin"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		IsAdmin:    u.IsAdmin,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

// NewUser normalizes and validates registration input. The password arrives
// in the clear here; hashing happens in the use case.
func NewUser(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	return &User{
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}, nil
}
