package readstore

import (
	"context"
	"time"

	"rental-backoffice/internal/infra"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"
	"rental-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuditViewQueries interface {
	ListAuditLogsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAuditLogsFirstPageParams) ([]sqlc.AuditLogs, error)
	ListAuditLogsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAuditLogsKeysetParams) ([]sqlc.AuditLogs, error)
}

type AuditReadStore struct {
	queries AuditViewQueries
	db      sqlc.DBTX
}

func NewAuditReadStore(queries AuditViewQueries, db sqlc.DBTX) *AuditReadStore {
	return &AuditReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AuditReadStore) ListFirstPage(ctx context.Context, filter queries.AuditFilter, limit int32) ([]*queries.AuditLogView, error) {
	rows, err := r.queries.ListAuditLogsFirstPage(ctx, r.db, sqlc.ListAuditLogsFirstPageParams{
		Resource:   pgconv.StringPtrToPgtype(filter.Resource),
		ResourceID: pgconv.UUIDPtrToPgtype(filter.ResourceID),
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit logs", err)
	}
	return mapAuditRows(rows), nil
}

func (r *AuditReadStore) ListKeyset(ctx context.Context, filter queries.AuditFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.AuditLogView, error) {
	rows, err := r.queries.ListAuditLogsKeyset(ctx, r.db, sqlc.ListAuditLogsKeysetParams{
		Resource:      pgconv.StringPtrToPgtype(filter.Resource),
		ResourceID:    pgconv.UUIDPtrToPgtype(filter.ResourceID),
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit logs keyset", err)
	}
	return mapAuditRows(rows), nil
}

func mapAuditRows(rows []sqlc.AuditLogs) []*queries.AuditLogView {
	out := make([]*queries.AuditLogView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.AuditLogView{
			ID:         row.ID,
			Resource:   row.Resource,
			ResourceID: row.ResourceID,
			Action:     row.Action,
			ActorID:    pgconv.UUIDPtrFromPgtype(row.ActorID),
			Context:    pgconv.JSONMap(row.Context),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out
}
