//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/pkg/jwt"
	"rental-backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("access token yields the role's permissions", func(t *testing.T) {
		tok, err := svc.GenerateAccessToken(userID, user.RoleStaff)
		require.NoError(t, err)

		actor, err := validator.ValidateToken(tok.Value)

		require.NoError(t, err)
		assert.Equal(t, userID, actor.UserID)
		assert.True(t, actor.Has(auth.PermBookingsManage))
		assert.False(t, actor.Has(auth.PermAuditRead))
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		tok, err := svc.GenerateRefreshToken(userID, user.RoleStaff)
		require.NoError(t, err)

		_, err = validator.ValidateToken(tok.Value)

		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Minute, time.Hour)
		tok, err := other.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = validator.ValidateToken(tok.Value)

		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})
}
