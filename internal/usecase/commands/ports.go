package commands

import (
	"context"
	"time"

	"rental-backoffice/internal/domain/audit"
	"rental-backoffice/internal/domain/notification"
	"rental-backoffice/internal/domain/payment"

	"github.com/google/uuid"
)

// Notifier delivers a message to a user. It reports false without an error when the
// message was queued for retry instead of delivered.
type Notifier interface {
	SendNotification(ctx context.Context, userID uuid.UUID, channel notification.Channel, msg notification.Message, opts notification.Options) (bool, error)
}

type AuditLogger interface {
	LogEvent(ctx context.Context, resource audit.Resource, resourceID uuid.UUID, action audit.Action, context map[string]any, actorID *uuid.UUID) error
}

// PaymentGateway refunds the latest completed payment of a booking and records the
// outcome. A failed attempt returns the failed refund record together with the error.
type PaymentGateway interface {
	ProcessRefundForBooking(ctx context.Context, bookingID uuid.UUID, amount payment.Money) (*payment.Refund, error)
}

// RevocationCache mirrors refresh-token revocation state kept in PostgreSQL.
type RevocationCache interface {
	// IsRevoked reports found=false on a cache miss.
	IsRevoked(ctx context.Context, jti uuid.UUID) (revoked bool, found bool, err error)
	Remember(ctx context.Context, jti uuid.UUID, revoked bool, ttl time.Duration) error
}
