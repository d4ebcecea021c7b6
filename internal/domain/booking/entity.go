package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	vehicleID uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// New creates a booking in the initial pending state.
func New(userID, vehicleID uuid.UUID, period Period, now time.Time) (*Booking, error) {
	if userID == uuid.Nil || vehicleID == uuid.Nil {
		return nil, ErrMissingParticipant
	}
	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		vehicleID: vehicleID,
		period:    period,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, userID, vehicleID uuid.UUID, period Period, status Status, createdAt, updatedAt time.Time, deletedAt *time.Time) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		vehicleID: vehicleID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: deletedAt,
	}
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) VehicleID() uuid.UUID       { return b.vehicleID }
func (b *Booking) Period() Period             { return b.period }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
func (b *Booking) DeletedAt() *time.Time      { return b.deletedAt }
func (b *Booking) IsDeleted() bool            { return b.deletedAt != nil }
func (b *Booking) IsOwnedBy(u uuid.UUID) bool { return b.userID == u }

// TransitionTo moves the booking to target if the allow-list permits it.
func (b *Booking) TransitionTo(target Status, now time.Time) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}
	if !b.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.status, target)
	}
	b.status = target
	b.updatedAt = now
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	return b.TransitionTo(StatusCancelled, now)
}

// Reschedule replaces the date range; the status is left unchanged.
func (b *Booking) Reschedule(period Period, now time.Time) error {
	if b.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalBooking, b.status)
	}
	b.period = period
	b.updatedAt = now
	return nil
}

// ConflictsWith reports whether o holds the same vehicle on an overlapping range.
func (b *Booking) ConflictsWith(o *Booking) bool {
	if b.id == o.id || b.vehicleID != o.vehicleID {
		return false
	}
	if o.IsDeleted() || !o.status.IsActive() {
		return false
	}
	return b.period.Overlaps(o.period)
}
