package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/handler/httperr"
	"rental-backoffice/internal/pkg/cookie"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxAuthKey = "auth_context"

var (
	errMissingToken = errs.Sentinel("access token required", errs.ErrUnauthorized)
	errNoPermission = errs.Sentinel("insufficient permissions", errs.ErrForbidden)
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the access token from the cookie or an Authorization bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetAuthContext(c, actor)
		c.Next()
	}
}

// RequirePermission must run after RequireAuth.
func (m *AuthMiddleware) RequirePermission(perm auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetAuthContext(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Unauthorized", nil)
			return
		}
		if !actor.Has(perm) {
			httperr.AbortWithError(c, http.StatusForbidden, errNoPermission, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// SetAuthContext is exported for handler tests that bypass token validation.
func SetAuthContext(c *gin.Context, actor auth.Context) {
	c.Set(ctxAuthKey, actor)
}

func GetAuthContext(c *gin.Context) (auth.Context, bool) {
	v, exists := c.Get(ctxAuthKey)
	if !exists {
		return auth.Context{}, false
	}
	actor, ok := v.(auth.Context)
	return actor, ok
}
