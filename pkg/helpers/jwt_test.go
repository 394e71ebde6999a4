package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("s3cret", time.Hour)

	tok, exp, err := m.GenerateToken("64b7f0c2a1b2c3d4e5f60718")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", claims.UserID)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("s3cret", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }
	tok, _, err := m.GenerateToken("u1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ParseToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTWrongSecret(t *testing.T) {
	tok, _, err := NewJWTManager("a", time.Hour).GenerateToken("u1")
	require.NoError(t, err)

	_, err = NewJWTManager("b", time.Hour).ParseToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTWithoutExpiryIsRejected(t *testing.T) {
	// the shape of a legacy token: only the user id, no exp
	legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"_id": "u1"})
	tok, err := legacy.SignedString([]byte("secretKey"))
	require.NoError(t, err)

	_, err = NewJWTManager("secretKey", time.Hour).ParseToken(tok)
	assert.Error(t, err)
}
