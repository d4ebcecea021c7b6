package usecase

import (
	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/pkg/jwt"
)

var ErrNotAccessToken = errs.Sentinel("not an access token", errs.ErrUnauthorized)

// TokenValidator turns a bearer access token into the caller's auth context.
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Context, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.Context, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Context{}, errs.Mark(err, errs.ErrUnauthorized)
	}
	// refresh tokens only work against /auth/refresh
	if claims.TokenType != jwt.TokenTypeAccess {
		return auth.Context{}, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return auth.Context{}, errs.Mark(err, errs.ErrUnauthorized)
	}

	return auth.NewContext(claims.UserID, role), nil
}
