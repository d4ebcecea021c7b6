//go:build unit || e2e

package builder

import (
	"time"

	"rental-backoffice/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	VehicleID   uuid.UUID
	PickupDate  time.Time
	DropoffDate time.Time
	Status      booking.Status
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		VehicleID:   uuid.New(),
		PickupDate:  Date("2024-06-01"),
		DropoffDate: Date("2024-06-05"),
		Status:      booking.StatusPending,
		CreatedAt:   created,
	}
}

// Date parses a YYYY-MM-DD literal and panics on malformed input.
func Date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	period, err := booking.NewPeriod(b.PickupDate, b.DropoffDate)
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(b.ID, b.UserID, b.VehicleID, period, b.Status, b.CreatedAt, b.CreatedAt, nil)
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithVehicleID(id uuid.UUID) *BookingBuilder {
	b.VehicleID = id
	return b
}

func (b *BookingBuilder) WithDates(pickup, dropoff string) *BookingBuilder {
	b.PickupDate = Date(pickup)
	b.DropoffDate = Date(dropoff)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}
