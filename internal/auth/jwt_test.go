package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultgate/internal/domain"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user-1", "me@example.com")
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "me@example.com", claims.Email)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue("user-1", "me@example.com")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", -time.Minute)

	token, err := issuer.Issue("user-1", "me@example.com")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("secret", time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
