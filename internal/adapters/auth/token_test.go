package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTVerifier_Verify(t *testing.T) {
	const secret = "test-secret"
	now := time.Now()

	t.Run("valid token returns subject", func(t *testing.T) {
		tokenString := signToken(t, secret, jwt.MapClaims{
			"sub": "user-123",
			"iat": now.Unix(),
			"exp": now.Add(time.Hour).Unix(),
		})

		v := NewJWTVerifier(secret)
		userID, err := v.Verify(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tokenString := signToken(t, "other-secret", jwt.MapClaims{
			"sub": "user-123",
			"exp": now.Add(time.Hour).Unix(),
		})

		v := NewJWTVerifier(secret)
		_, err := v.Verify(tokenString)
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString := signToken(t, secret, jwt.MapClaims{
			"sub": "user-123",
			"exp": now.Add(-time.Hour).Unix(),
		})

		v := NewJWTVerifier(secret)
		_, err := v.Verify(tokenString)
		require.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		tokenString := signToken(t, secret, jwt.MapClaims{
			"exp": now.Add(time.Hour).Unix(),
		})

		v := NewJWTVerifier(secret)
		_, err := v.Verify(tokenString)
		require.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		v := NewJWTVerifier(secret)
		_, err := v.Verify("not-a-jwt")
		require.Error(t, err)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-123"})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		v := NewJWTVerifier(secret)
		_, err = v.Verify(tokenString)
		require.Error(t, err)
	})
}
