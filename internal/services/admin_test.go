package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitepages/internal/domain"
)

type fakeHasher struct {
	password string
}

func (f *fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (f *fakeHasher) Hash(salt, password string) (string, error) { return "hash:" + password, nil }

func (f *fakeHasher) Compare(hash, salt, password string) error {
	if password != f.password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct {
	issued string
	email  string
	err    error
}

func (f *fakeTokens) Issue(subject, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.issued, nil
}

func (f *fakeTokens) Verify(token string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if token != f.issued {
		return "", errors.New("invalid token")
	}
	return f.email, nil
}

func newTestAdminService(tokens *fakeTokens) domain.AdminService {
	return NewAdminService(
		"Owner@Example.com",
		"hash", "salt",
		&fakeHasher{password: "correct-horse"},
		tokens, tokens,
	)
}

func TestAdminLogin_success(t *testing.T) {
	tokens := &fakeTokens{issued: "token-1", email: "owner@example.com"}
	svc := newTestAdminService(tokens)

	token, err := svc.Login(context.Background(), "  owner@example.com ", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
}

func TestAdminLogin_denies_uniformly(t *testing.T) {
	// Wrong email and wrong password must be indistinguishable.
	tokens := &fakeTokens{issued: "token-1", email: "owner@example.com"}
	svc := newTestAdminService(tokens)

	_, errEmail := svc.Login(context.Background(), "someone-else@example.com", "correct-horse")
	_, errPassword := svc.Login(context.Background(), "owner@example.com", "wrong")

	assert.True(t, errors.Is(errEmail, domain.ErrUnauthorized))
	assert.True(t, errors.Is(errPassword, domain.ErrUnauthorized))
	assert.Equal(t, errEmail, errPassword)
}

func TestAdminLogin_no_admin_configured(t *testing.T) {
	tokens := &fakeTokens{issued: "token-1", email: ""}
	svc := NewAdminService("", "", "", &fakeHasher{}, tokens, tokens)

	_, err := svc.Login(context.Background(), "anyone@example.com", "anything")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestAdminAuthorize(t *testing.T) {
	tokens := &fakeTokens{issued: "token-1", email: "owner@example.com"}
	svc := newTestAdminService(tokens)

	require.NoError(t, svc.Authorize(context.Background(), "token-1"))
	assert.True(t, errors.Is(svc.Authorize(context.Background(), "forged"), domain.ErrUnauthorized))
}

func TestAdminAuthorize_other_identity(t *testing.T) {
	// A valid token for a different identity is still denied.
	tokens := &fakeTokens{issued: "token-1", email: "intruder@example.com"}
	svc := newTestAdminService(tokens)

	assert.True(t, errors.Is(svc.Authorize(context.Background(), "token-1"), domain.ErrUnauthorized))
}
