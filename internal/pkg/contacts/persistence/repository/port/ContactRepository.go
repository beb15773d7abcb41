package repository

import (
	"context"

	contacts "github.com/Ricky944902/classmate-web/internal/pkg/contacts/domain"
)

// ContactRepository defines persistence operations for the contact graph.
type ContactRepository interface {
	// CreateRequest inserts a pending edge (userID -> contactID) after
	// verifying no edge exists between the pair in either direction. The
	// check and insert run in one transaction; a duplicate in either
	// direction fails with ALREADY_EXISTS.
	CreateRequest(ctx context.Context, userID, contactID string) (*contacts.ContactEdge, error)

	// FindByID loads an edge, failing with NOT_FOUND if absent.
	FindByID(ctx context.Context, id string) (*contacts.ContactEdge, error)

	// Accept flips the edge to accepted and inserts the reciprocal accepted
	// edge in one transaction. The reciprocal insert is idempotent and not
	// subject to the duplicate check.
	Accept(ctx context.Context, edge contacts.ContactEdge) error

	// Delete removes a single edge by id.
	Delete(ctx context.Context, id string) error

	// DeletePair removes every edge between the two users, both directions.
	DeletePair(ctx context.Context, userID, contactID string) error

	// ListAccepted returns the user's accepted edges joined with peer attributes.
	ListAccepted(ctx context.Context, userID string) ([]contacts.ContactView, error)

	// ListPendingIncoming returns pending requests targeting the user, joined
	// with the requester's attributes.
	ListPendingIncoming(ctx context.Context, userID string) ([]contacts.ContactView, error)
}
