package services

import (
	"context"
	"strings"
	"time"

	"invitepages/internal/domain"
)

const adminTokenExpiry = 12 * time.Hour

type adminService struct {
	adminEmail   string
	passwordHash string
	passwordSalt string
	hasher       domain.PasswordHasher
	issuer       domain.TokenIssuer
	verifier     domain.TokenVerifier
}

// NewAdminService creates an AdminService guarding the admin area with a
// single whitelisted identity. adminEmail is compared case-insensitively.
func NewAdminService(adminEmail, passwordHash, passwordSalt string, hasher domain.PasswordHasher, issuer domain.TokenIssuer, verifier domain.TokenVerifier) domain.AdminService {
	return &adminService{
		adminEmail:   strings.ToLower(strings.TrimSpace(adminEmail)),
		passwordHash: passwordHash,
		passwordSalt: passwordSalt,
		hasher:       hasher,
		issuer:       issuer,
		verifier:     verifier,
	}
}

// Login authenticates the one authorized identity. A wrong email and a
// wrong password produce the same ErrUnauthorized; which check failed is
// never revealed.
func (s *adminService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.adminEmail == "" || email != s.adminEmail {
		return "", domain.ErrUnauthorized
	}
	if err := s.hasher.Compare(s.passwordHash, s.passwordSalt, password); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := s.issuer.Issue("admin", s.adminEmail, adminTokenExpiry)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	return token, nil
}

func (s *adminService) Authorize(ctx context.Context, token string) error {
	email, err := s.verifier.Verify(token)
	if err != nil {
		return domain.ErrUnauthorized
	}
	if strings.ToLower(email) != s.adminEmail || s.adminEmail == "" {
		return domain.ErrUnauthorized
	}
	return nil
}
