package usecase

import "context"

// UserFinder resolves whether a user id exists. Implemented by the identity
// repository; contacts never reads user rows beyond existence.
type UserFinder interface {
	Exists(ctx context.Context, id string) (bool, error)
}
