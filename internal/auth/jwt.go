// Package auth issues and verifies the access tokens handed out by the
// identity endpoints. Tokens are HMAC-signed; no third-party issuer is
// involved.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vaultgate/internal/domain"
)

// Claims are the statements embedded in an access token. The subject is the
// principal (user id).
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenIssuer signs and verifies access tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for the given principal.
func (i *TokenIssuer) Issue(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Email: email,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses a token and returns its claims. Any parse or signature
// failure maps to Unauthorized.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, &domain.UnauthorizedError{Message: "Invalid access token"}
	}

	return claims, nil
}
