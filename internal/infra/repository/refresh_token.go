package repository

import (
	"context"
	"time"

	"rental-backoffice/internal/infra"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"
	"rental-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type RefreshTokenQueries interface {
	CreateRefreshToken(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRefreshTokenParams) error
	FindRefreshToken(ctx context.Context, db sqlc.DBTX, jti uuid.UUID) (sqlc.RefreshTokens, error)
	RevokeRefreshToken(ctx context.Context, db sqlc.DBTX, arg sqlc.RevokeRefreshTokenParams) (int64, error)
}

type RefreshTokenRepository struct {
	queries RefreshTokenQueries
	db      sqlc.DBTX
}

func NewRefreshTokenRepository(queries RefreshTokenQueries, db sqlc.DBTX) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, jti, userID uuid.UUID, expiresAt time.Time) error {
	err := r.queries.CreateRefreshToken(ctx, r.db, sqlc.CreateRefreshTokenParams{
		Jti:       jti,
		UserID:    userID,
		ExpiresAt: pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to store refresh token", err)
	}
	return nil
}

func (r *RefreshTokenRepository) Find(ctx context.Context, jti uuid.UUID) (*shared.RefreshTokenRecord, error) {
	row, err := r.queries.FindRefreshToken(ctx, r.db, jti)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("refresh token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find refresh token", err)
	}
	return &shared.RefreshTokenRecord{
		JTI:       row.Jti,
		UserID:    row.UserID,
		ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
		RevokedAt: pgconv.TimePtrFromPgtype(row.RevokedAt),
	}, nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, jti uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.RevokeRefreshToken(ctx, r.db, sqlc.RevokeRefreshTokenParams{
		Jti:       jti,
		RevokedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to revoke refresh token", err)
	}
	return n > 0, nil
}
