package commands

import (
	"context"
	"log/slog"
	"time"

	"rental-backoffice/internal/domain/audit"
	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/pkg/jwt"
	"rental-backoffice/internal/pkg/password"
	"rental-backoffice/internal/pkg/ptr"
	"rental-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Sentinel("invalid credentials", errs.ErrUnauthorized)
	ErrAccountInactive    = errs.Sentinel("user inactive", errs.ErrUnauthorized)
	ErrTokenInvalid       = errs.Sentinel("token validation failed", errs.ErrUnauthorized)
	ErrTokenRevoked       = errs.Sentinel("token revoked", errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context, actor auth.Context, refreshToken string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	cache      RevocationCache
	cacheTTL   time.Duration
	audit      AuditLogger
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, cache RevocationCache, cacheTTL time.Duration, auditLogger AuditLogger, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		cache:      cache,
		cacheTTL:   cacheTTL,
		audit:      auditLogger,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	fields := map[string]string{}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		fields["email"] = "must be a valid email address"
	}
	if in.Password == "" {
		fields["password"] = "is required"
	}
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer and same bcrypt cost as a wrong password so emails cannot be enumerated
			password.VerifyDecoy(in.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.Verify(u.PasswordHash(), in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrAccountInactive
	}

	pair, refreshJTI, err := a.issue(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.RefreshTokens().Create(ctx, refreshJTI, u.ID(), pair.RefreshExpiresAt); err != nil {
			return err
		}
		if err := tx.Users().UpdateLastLogin(ctx, u.ID()); err != nil {
			slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.remember(ctx, refreshJTI, false)
	if err := a.audit.LogEvent(ctx, audit.ResourceUser, u.ID(), audit.ActionUserLoggedIn, map[string]any{}, ptr.Of(u.ID())); err != nil {
		slog.Warn("audit log failed", "user_id", u.ID(), "action", audit.ActionUserLoggedIn, "error", err.Error())
	}

	return &LoginResult{UserID: u.ID(), Role: u.Role(), TokenPair: pair}, nil
}

// Refresh rotates the refresh token: the presented one is revoked and a new pair issued.
func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, jti, err := a.parseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	revoked, err := a.isRevoked(ctx, jti)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	u, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, ErrAccountInactive
	}

	pair, newJTI, err := a.issue(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.RefreshTokens().Revoke(ctx, jti, a.clock.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrTokenRevoked
		}
		return tx.RefreshTokens().Create(ctx, newJTI, u.ID(), pair.RefreshExpiresAt)
	})
	if err != nil {
		return nil, err
	}

	a.remember(ctx, jti, true)
	a.remember(ctx, newJTI, false)
	return &LoginResult{UserID: u.ID(), Role: u.Role(), TokenPair: pair}, nil
}

// Logout is idempotent; an unknown, expired or foreign token is ignored.
func (a *authCommandsImpl) Logout(ctx context.Context, actor auth.Context, refreshToken string) error {
	claims, jti, err := a.parseRefresh(refreshToken)
	if err != nil {
		return nil
	}
	if actor.UserID != uuid.Nil && claims.UserID != actor.UserID {
		return nil
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.RefreshTokens().Revoke(ctx, jti, a.clock.Now())
		return err
	})
	if err != nil {
		return err
	}

	a.remember(ctx, jti, true)
	if err := a.audit.LogEvent(ctx, audit.ResourceUser, claims.UserID, audit.ActionUserLoggedOut, map[string]any{}, actor.ActorID()); err != nil {
		slog.Warn("audit log failed", "user_id", claims.UserID, "action", audit.ActionUserLoggedOut, "error", err.Error())
	}
	return nil
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (TokenPair, uuid.UUID, error) {
	access, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return TokenPair{}, uuid.Nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return TokenPair{}, uuid.Nil, errs.Mark(err, ErrTokenGeneration)
	}
	return TokenPair{
		AccessToken:      access.Value,
		AccessExpiresAt:  access.ExpiresAt,
		RefreshToken:     refresh.Value,
		RefreshExpiresAt: refresh.ExpiresAt,
	}, refresh.JTI, nil
}

func (a *authCommandsImpl) parseRefresh(token string) (*jwt.Claims, uuid.UUID, error) {
	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrTokenInvalid)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, uuid.Nil, ErrTokenInvalid
	}
	jti, err := claims.JTI()
	if err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrTokenInvalid)
	}
	return claims, jti, nil
}

// isRevoked consults the cache first; a miss or cache error falls back to PostgreSQL.
func (a *authCommandsImpl) isRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	revoked, found, err := a.cache.IsRevoked(ctx, jti)
	if err != nil {
		slog.Warn("revocation cache unavailable, falling back to database", "jti", jti, "error", err.Error())
	} else if found {
		return revoked, nil
	}

	rec, err := a.uow.CommandReads().RefreshToken(ctx, jti)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return true, nil
		}
		return false, err
	}
	a.remember(ctx, jti, rec.IsRevoked())
	return rec.IsRevoked(), nil
}

func (a *authCommandsImpl) remember(ctx context.Context, jti uuid.UUID, revoked bool) {
	if err := a.cache.Remember(ctx, jti, revoked, a.cacheTTL); err != nil {
		slog.Warn("failed to update revocation cache", "jti", jti, "revoked", revoked, "error", err.Error())
	}
}
