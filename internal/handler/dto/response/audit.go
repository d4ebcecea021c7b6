package response

import (
	"time"

	"rental-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID         uuid.UUID      `json:"id"`
	Resource   string         `json:"resource"`
	ResourceID uuid.UUID      `json:"resource_id"`
	Action     string         `json:"action"`
	ActorID    *uuid.UUID     `json:"actor_id"`
	Context    map[string]any `json:"context"`
	CreatedAt  time.Time      `json:"created_at"`
}

func FromAuditLogs(items []*queries.AuditLogView, next *queries.Cursor) Page[AuditLogResponse] {
	return Page[AuditLogResponse]{
		Items:      mapSlice[*queries.AuditLogView, AuditLogResponse](items),
		NextCursor: cursorString(next),
	}
}
