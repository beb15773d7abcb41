package repository

import (
	"context"

	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create inserts the user and returns the generated id. A username or
	// email collision fails with ALREADY_EXISTS.
	Create(ctx context.Context, u *identity.User) (string, error)

	// FindByID loads a user, failing with NOT_FOUND if absent.
	FindByID(ctx context.Context, id string) (*identity.User, error)

	// FindByEmail loads a user by email, failing with NOT_FOUND if absent.
	FindByEmail(ctx context.Context, email string) (*identity.User, error)

	// FindByUsername loads a user by username, failing with NOT_FOUND if absent.
	FindByUsername(ctx context.Context, username string) (*identity.User, error)

	// Exists reports whether a user id is present.
	Exists(ctx context.Context, id string) (bool, error)

	// Search matches the query as a case-insensitive substring of username
	// or email, ordered by username.
	Search(ctx context.Context, query string) ([]identity.User, error)

	// List returns every user ordered by creation time.
	List(ctx context.Context) ([]identity.User, error)

	// SetRole updates the admin flag, failing with NOT_FOUND if absent.
	SetRole(ctx context.Context, id string, isAdmin bool) error

	// SetVerified flips the verified flag, failing with NOT_FOUND if absent.
	SetVerified(ctx context.Context, id string, verified bool) error

	// Delete removes the user, failing with NOT_FOUND if absent.
	Delete(ctx context.Context, id string) error
}
