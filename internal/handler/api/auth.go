package api

import (
	"net/http"
	"time"

	reqdto "rental-backoffice/internal/handler/dto/request"
	resdto "rental-backoffice/internal/handler/dto/response"
	"rental-backoffice/internal/handler/httperr"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/cookie"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase/commands"
	"rental-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errRefreshTokenMissing = errs.Sentinel("refresh token required", errs.ErrUnauthorized)

type AuthHandler struct {
	cmds    commands.AuthCommands
	users   queries.UserQueries
	cookies config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cookies config.CookieConfig) *AuthHandler {
	return &AuthHandler{cmds: cmds, users: users, cookies: cookies}
}

// @Summary User login
// @Description Login with email and password. Tokens are returned in the body and as cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} httperr.Response{data=resdto.LoginResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.setCookies(c, result)
	httperr.Success(c, http.StatusOK, "Logged in", resdto.FromLoginResult(result))
}

// @Summary Refresh tokens
// @Description Rotates the refresh token. Reads the body first, then the refresh cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh token"
// @Success 200 {object} httperr.Response{data=resdto.LoginResponse}
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := refreshTokenFrom(c)
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errRefreshTokenMissing, "Refresh token required", nil)
		return
	}
	result, err := h.cmds.Refresh(c.Request.Context(), token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.setCookies(c, result)
	httperr.Success(c, http.StatusOK, "Tokens refreshed", resdto.FromLoginResult(result))
}

// @Summary User logout
// @Description Revokes the refresh token and clears the auth cookies
// @Tags auth
// @Security BearerAuth
// @Param request body reqdto.RefreshRequest false "Refresh token"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if token := refreshTokenFrom(c); token != "" {
		if err := h.cmds.Logout(c.Request.Context(), actor, token); err != nil {
			httperr.Abort(c, err)
			return
		}
	}
	cookie.ClearTokenCookies(c, h.cookies)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} httperr.Response{data=resdto.UserResponse}
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	view, err := h.users.GetCurrentUser(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Current user", resdto.FromUserView(view))
}

func (h *AuthHandler) setCookies(c *gin.Context, r *commands.LoginResult) {
	pair := r.TokenPair
	cookie.SetTokenCookies(c, h.cookies, pair.AccessToken, pair.RefreshToken,
		time.Until(pair.AccessExpiresAt), time.Until(pair.RefreshExpiresAt))
}

func refreshTokenFrom(c *gin.Context) string {
	var req reqdto.RefreshRequest
	// an empty or non-JSON body just means the cookie is used
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		return req.RefreshToken
	}
	return cookie.GetRefreshToken(c)
}
