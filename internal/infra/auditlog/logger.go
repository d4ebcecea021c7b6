package auditlog

import (
	"context"
	"encoding/json"

	"rental-backoffice/internal/domain/audit"
	"rental-backoffice/internal/infra"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/pkg/pgconv"
	"rental-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuditWriteQueries interface {
	InsertAuditLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAuditLogParams) error
}

// Logger appends audit entries outside the business transaction so a committed
// change is never rolled back by an audit failure.
type Logger struct {
	uow     shared.UnitOfWork
	queries AuditWriteQueries
	clock   clock.Clock
}

func NewLogger(uow shared.UnitOfWork, queries AuditWriteQueries, clk clock.Clock) *Logger {
	return &Logger{uow: uow, queries: queries, clock: clk}
}

func (l *Logger) LogEvent(ctx context.Context, resource audit.Resource, resourceID uuid.UUID, action audit.Action, details map[string]any, actorID *uuid.UUID) error {
	entry, err := audit.NewEntry(resource, resourceID, action, details, actorID, l.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDependency)
	}
	details = entry.Context()
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "marshal audit context"), errs.ErrDependency)
	}

	return l.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		err := l.queries.InsertAuditLog(ctx, db, sqlc.InsertAuditLogParams{
			ID:         entry.ID(),
			Resource:   string(entry.Resource()),
			ResourceID: entry.ResourceID(),
			Action:     string(entry.Action()),
			ActorID:    pgconv.UUIDPtrToPgtype(entry.ActorID()),
			Context:    raw,
			CreatedAt:  pgconv.TimeToPgtype(entry.CreatedAt()),
		})
		if err != nil {
			return errs.Mark(infra.WrapRepoErr("failed to insert audit log", err), errs.ErrDependency)
		}
		return nil
	})
}
