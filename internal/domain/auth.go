package domain

import (
	"context"
	"time"
)

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for the authenticated admin.
type TokenIssuer interface {
	Issue(subject, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated email.
type TokenVerifier interface {
	Verify(token string) (email string, err error)
}

// AdminService guards the administrative area. Exactly one identity is
// authorized; every other identity, authenticated or not, is denied with
// the same generic ErrUnauthorized.
type AdminService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	// Authorize checks that the session token belongs to the whitelisted
	// admin identity.
	Authorize(ctx context.Context, token string) error
}
