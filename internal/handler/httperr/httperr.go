package httperr

import (
	"log/slog"
	"net/http"

	"rental-backoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	msgInternal = "Internal server error"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Code    int    `json:"-"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{Code: code, Status: StatusSuccess, Message: message, Data: data})
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, code int, err error, msg string, data any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Code: code, Status: StatusError, Message: msg, Data: data}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(code, resp)
}

type kindMapping struct {
	kind    error
	code    int
	message string
}

// Order matters: a conflict raised while validating is still a conflict.
var kinds = []kindMapping{
	{errs.ErrNotFound, http.StatusNotFound, "Resource not found"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{errs.ErrConflict, http.StatusConflict, "Conflict with existing data"},
	{errs.ErrInvalidState, http.StatusConflict, "Action not allowed in the current state"},
}

// Abort maps a usecase error onto the envelope. Messages come from the error kind so
// driver or SQL details never reach the client.
func Abort(c *gin.Context, err error) {
	if fields, ok := errs.AsValidation(err); ok {
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", fields)
		return
	}
	if errs.Is(err, errs.ErrValidation) {
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
		return
	}
	for _, k := range kinds {
		if errs.Is(err, k.kind) {
			AbortWithError(c, k.code, err, k.message, nil)
			return
		}
	}

	slog.Error("unhandled error", "path", c.Request.URL.Path, "error", err.Error(),
		"stack", errs.ExtractStackLines(err, 12))
	AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
}
