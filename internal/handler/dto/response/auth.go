package response

import (
	"time"

	"rental-backoffice/internal/usecase/commands"
	"rental-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	Role             string    `json:"role"`
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	res := mapInto[LoginResponse](r.TokenPair)
	res.UserID = r.UserID
	res.Role = string(r.Role)
	return res
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	res := mapInto[UserResponse](v)
	return &res
}
