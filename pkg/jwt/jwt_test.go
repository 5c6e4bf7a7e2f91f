package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", "auth.example.com")

	token, err := m.GenerateToken("admin-1", "ops@example.com", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.True(t, claims.HasAnyRole([]string{"Admin"}))
	assert.False(t, claims.HasAnyRole([]string{"recruiter"}))
}

func TestManager_Rejects(t *testing.T) {
	m := NewManager("secret", "auth.example.com")

	t.Run("expired", func(t *testing.T) {
		token, err := m.GenerateToken("admin-1", "", "admin", -time.Minute)
		require.NoError(t, err)
		_, err = m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewManager("other", "auth.example.com").GenerateToken("admin-1", "", "admin", time.Hour)
		require.NoError(t, err)
		_, err = m.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := NewManager("secret", "elsewhere").GenerateToken("admin-1", "", "admin", time.Hour)
		require.NoError(t, err)
		_, err = m.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "auth.example.com"}}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = m.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}
