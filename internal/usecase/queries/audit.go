package queries

import (
	"context"
	"time"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAuditAccess = errs.Sentinel("audit log access denied", errs.ErrForbidden)

type AuditFilter struct {
	Resource   *string
	ResourceID *uuid.UUID
}

type AuditReadStore interface {
	ListFirstPage(ctx context.Context, filter AuditFilter, limit int32) ([]*AuditLogView, error)
	ListKeyset(ctx context.Context, filter AuditFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*AuditLogView, error)
}

type AuditQueries interface {
	List(ctx context.Context, actor auth.Context, filter AuditFilter, cursor *Cursor, limit int) ([]*AuditLogView, *Cursor, error)
}

type auditQueriesImpl struct {
	store AuditReadStore
}

func NewAuditQueries(store AuditReadStore) AuditQueries {
	return &auditQueriesImpl{store: store}
}

func (q *auditQueriesImpl) List(ctx context.Context, actor auth.Context, filter AuditFilter, cursor *Cursor, limit int) ([]*AuditLogView, *Cursor, error) {
	if !actor.Has(auth.PermAuditRead) {
		return nil, nil, ErrAuditAccess
	}
	return page(cursor, limit,
		func(limit int32) ([]*AuditLogView, error) {
			return q.store.ListFirstPage(ctx, filter, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*AuditLogView, error) {
			return q.store.ListKeyset(ctx, filter, lastCreatedAt, lastID, limit)
		},
		func(v *AuditLogView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID },
	)
}
