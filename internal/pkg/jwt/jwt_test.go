//go:build unit

package jwt

import (
	"testing"
	"time"

	"rental-backoffice/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	t.Run("access token carries type, role and jti", func(t *testing.T) {
		issued, err := svc.GenerateAccessToken(userID, user.RoleStaff)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(issued.Value)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "staff", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)

		jti, err := claims.JTI()
		require.NoError(t, err)
		assert.Equal(t, issued.JTI, jti)
	})

	t.Run("refresh token type", func(t *testing.T) {
		issued, err := svc.GenerateRefreshToken(userID, user.RoleCustomer)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(issued.Value)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})

	t.Run("expired token", func(t *testing.T) {
		issued, err := svc.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		later := NewService("secret", 15*time.Minute, 24*time.Hour)
		later.now = func() time.Time { return time.Now().Add(time.Hour) }

		_, err = later.ValidateToken(issued.Value)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		issued, err := svc.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		other := NewService("other", 15*time.Minute, 24*time.Hour)
		_, err = other.ValidateToken(issued.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
