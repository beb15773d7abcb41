package usecase

// TokenIssuer signs a session token for an authenticated user. Satisfied by
// the security JWTManager.
type TokenIssuer interface {
	Issue(userID string, isAdmin bool) (string, error)
}
