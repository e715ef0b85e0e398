//go:build unit

package token_test

import (
	"testing"
	"time"

	"cancha-client/internal/pkg/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mint(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestCheckUsable(t *testing.T) {
	inspector := token.NewInspector()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	valid := mint(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))})
	assert.NoError(t, inspector.CheckUsable(valid, now))

	expired := mint(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	assert.ErrorIs(t, inspector.CheckUsable(expired, now), token.ErrExpiredToken)

	// exp boundary is exclusive: a token expiring exactly now is spent
	boundary := mint(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now)})
	assert.ErrorIs(t, inspector.CheckUsable(boundary, now), token.ErrExpiredToken)

	// no exp claim: the server decides
	noExp := mint(t, jwt.RegisteredClaims{Subject: "maria@example.com"})
	assert.NoError(t, inspector.CheckUsable(noExp, now))

	assert.ErrorIs(t, inspector.CheckUsable("not-a-token", now), token.ErrMalformedToken)
}

func TestSubject(t *testing.T) {
	inspector := token.NewInspector()

	signed := mint(t, jwt.RegisteredClaims{Subject: "maria@example.com"})
	sub, err := inspector.Subject(signed)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", sub)

	_, err = inspector.Subject("garbage")
	assert.ErrorIs(t, err, token.ErrMalformedToken)
}
