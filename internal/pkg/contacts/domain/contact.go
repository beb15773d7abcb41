package contacts

import "time"

// Status of a directed contact edge.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// ContactEdge is one directed relationship record: a request from UserID to
// ContactID. An accepted relationship is represented as a maintained pair of
// directed edges, one per direction; the pairing invariant lives in the
// repository and use cases, never in callers.
type ContactEdge struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ContactID string    `db:"contact_id"`
	Status    Status    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// ContactView is an edge joined with the peer's display attributes for list
// endpoints. For accepted contacts the peer is the edge's ContactID; for
// incoming pending requests it is the requesting UserID.
type ContactView struct {
	ContactEdge
	PeerUsername string `db:"peer_username"`
	PeerEmail    string `db:"peer_email"`
}
