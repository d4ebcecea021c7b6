//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, access time.Duration) *jwt.Service {
	t.Helper()
	if access == 0 {
		access = h.cfg.AccessTokenDuration
	}
	return jwt.NewService(h.cfg.Secret, access, h.cfg.RefreshTokenDuration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token.Value
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token.Value
}
