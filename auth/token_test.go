package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	user := &models.User{ID: "usr_abc123", Email: "owner@example.com"}

	token, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sub)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(&models.User{ID: "usr_1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	// The constructor replaces non-positive TTLs, so build one directly.
	m := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := m.Issue(&models.User{ID: "usr_1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
