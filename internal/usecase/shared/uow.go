package shared

import (
	"context"
	"time"

	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/domain/payment"
	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/domain/vehicle"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Vehicles() VehicleRepository
	Payments() PaymentRepository
	Users() UserRepository
	RefreshTokens() RefreshTokenRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	VehicleByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	LatestCompletedPayment(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email user.Email) (*user.User, error)
	RefreshToken(ctx context.Context, jti uuid.UUID) (*RefreshTokenRecord, error)
}

type BookingRepository interface {
	// LockVehicle serializes schedule changes for one vehicle until the transaction ends.
	LockVehicle(ctx context.Context, vehicleID uuid.UUID) error
	CountOverlapping(ctx context.Context, vehicleID uuid.UUID, period booking.Period, excludeID *uuid.UUID) (int64, error)
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateSchedule(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	UpdateStatus(ctx context.Context, v *vehicle.Vehicle) error
	CountActiveBookingsFrom(ctx context.Context, vehicleID uuid.UUID, from time.Time) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	LatestCompleted(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error)
	CreateRefund(ctx context.Context, r *payment.Refund) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, jti, userID uuid.UUID, expiresAt time.Time) error
	// Revoke reports false when the token was already revoked.
	Revoke(ctx context.Context, jti uuid.UUID, at time.Time) (bool, error)
}

type IdempotencyRepository interface {
	// Claim reports false when the key is already bound for that user.
	Claim(ctx context.Context, rec IdempotencyRecord) (bool, error)
	Find(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}
