package shared

import (
	"time"

	"github.com/google/uuid"
)

type RefreshTokenRecord struct {
	JTI       uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
}

func (r *RefreshTokenRecord) IsRevoked() bool {
	return r.RevokedAt != nil
}

// IdempotencyRecord binds a client-chosen key to the booking its first request created.
type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	ResultBookingID uuid.UUID
	ExpiresAt       time.Time
}
