package shared

import (
	"context"

	"rental-backoffice/internal/domain/booking"

	"github.com/google/uuid"
)

// ConflictCounter counts active, non-deleted bookings of a vehicle overlapping a period.
type ConflictCounter interface {
	CountOverlapping(ctx context.Context, vehicleID uuid.UUID, period booking.Period, excludeID *uuid.UUID) (int64, error)
}

// AvailabilityChecker answers whether a vehicle is free for a period.
// Callers that go on to write must hold the vehicle lock in the same transaction.
type AvailabilityChecker struct{}

func NewAvailabilityChecker() AvailabilityChecker {
	return AvailabilityChecker{}
}

func (AvailabilityChecker) IsAvailable(ctx context.Context, counter ConflictCounter, vehicleID uuid.UUID, period booking.Period, excludeID *uuid.UUID) (bool, error) {
	n, err := counter.CountOverlapping(ctx, vehicleID, period, excludeID)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
