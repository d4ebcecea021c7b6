package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rental-backoffice/internal/domain/payment"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid vehicle status")
	ErrHasActiveBookings  = errors.New("vehicle has active bookings")
	ErrNotBookable        = errors.New("vehicle is not available for booking")
	ErrInvalidName        = errors.New("vehicle name is required")
	ErrInvalidPlateNumber = errors.New("plate number is required")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusMaintenance Status = "maintenance"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable, StatusMaintenance:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Vehicle struct {
	id          uuid.UUID
	name        string
	plateNumber string
	dailyRate   payment.Money
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewVehicle(name, plateNumber string, dailyRate payment.Money, now time.Time) (*Vehicle, error) {
	name = strings.TrimSpace(name)
	plateNumber = strings.ToUpper(strings.TrimSpace(plateNumber))
	if name == "" {
		return nil, ErrInvalidName
	}
	if plateNumber == "" {
		return nil, ErrInvalidPlateNumber
	}
	return &Vehicle{
		id:          uuid.New(),
		name:        name,
		plateNumber: plateNumber,
		dailyRate:   dailyRate,
		status:      StatusAvailable,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructVehicle(id uuid.UUID, name, plateNumber string, dailyRate payment.Money, status Status, createdAt, updatedAt time.Time) *Vehicle {
	return &Vehicle{
		id:          id,
		name:        name,
		plateNumber: plateNumber,
		dailyRate:   dailyRate,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (v *Vehicle) ID() uuid.UUID            { return v.id }
func (v *Vehicle) Name() string             { return v.name }
func (v *Vehicle) PlateNumber() string      { return v.plateNumber }
func (v *Vehicle) DailyRate() payment.Money { return v.dailyRate }
func (v *Vehicle) Status() Status           { return v.status }
func (v *Vehicle) CreatedAt() time.Time     { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time     { return v.updatedAt }

func (v *Vehicle) IsBookable() bool {
	return v.status == StatusAvailable
}

// ChangeStatus moves the vehicle out of service only when nothing is booked on it.
func (v *Vehicle) ChangeStatus(target Status, activeBookings int64, now time.Time) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}
	if target != StatusAvailable && activeBookings > 0 {
		return fmt.Errorf("%w: %d", ErrHasActiveBookings, activeBookings)
	}
	v.status = target
	v.updatedAt = now
	return nil
}
