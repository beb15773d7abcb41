package security

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 24 * time.Hour

// JWTManager issues and verifies the HS256 bearer tokens used as the session
// identity for every authenticated request.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManagerFromEnv reads JWT_SECRET; an empty secret falls back to a dev
// default the same way the rest of the env-driven adapters do.
func NewJWTManagerFromEnv() *JWTManager {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret"
	}
	return &JWTManager{secret: []byte(secret), ttl: defaultTokenTTL}
}

// Claims is the verified identity extracted from a token.
type Claims struct {
	UserID  string
	IsAdmin bool
}

// Issue signs a token carrying the user id and admin flag.
func (j *JWTManager) Issue(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":      userID,
		"isAdmin": isAdmin,
		"iat":     now.Unix(),
		"exp":     now.Add(j.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}

// Verify parses and validates a token string.
func (j *JWTManager) Verify(tokenStr string) (*Claims, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return nil, errors.New("token missing user id")
	}
	isAdmin, _ := claims["isAdmin"].(bool)
	return &Claims{UserID: id, IsAdmin: isAdmin}, nil
}
