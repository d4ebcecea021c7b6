package api

import (
	"net/http"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/handler/httperr"
	"rental-backoffice/internal/handler/middleware"
	"rental-backoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoAuthContext = errs.Sentinel("auth context missing", errs.ErrUnauthorized)

// mustActor aborts with 401 when the route is missing RequireAuth.
func mustActor(c *gin.Context) (auth.Context, bool) {
	actor, ok := middleware.GetAuthContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoAuthContext, "Unauthorized", nil)
		return auth.Context{}, false
	}
	return actor, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", map[string]string{name: "must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

// idempotencyKey reads the optional Idempotency-Key header.
func idempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader(headerIdempotencyKey)
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", map[string]string{headerIdempotencyKey: "must be a UUID"})
		return nil, false
	}
	return &key, true
}
