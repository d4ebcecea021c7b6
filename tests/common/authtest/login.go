//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"rental-backoffice/internal/handler/dto/request"
	"rental-backoffice/internal/pkg/cookie"
	"rental-backoffice/tests/common/dbtest"
	"rental-backoffice/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Session is a logged-in user as seen by e2e tests.
type Session struct {
	UserID  uuid.UUID
	Token   string
	Cookies []*http.Cookie
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return Session{Token: accessCookie.Value, Cookies: httptest.ExtractCookies(w)}
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) Session {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, role)
	s := LoginUser(t, router, email, dbtest.TestPassword)
	s.UserID = userID
	return s
}

func LogoutUser(t *testing.T, router *gin.Engine, s Session) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, s.Cookies, s.Token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
