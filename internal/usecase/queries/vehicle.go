package queries

import (
	"context"
	"time"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVehicleNotFound = errs.Sentinel("vehicle not found", errs.ErrNotFound)

type VehicleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	FindConflicts(ctx context.Context, vehicleID uuid.UUID, period booking.Period, excludeID *uuid.UUID) ([]ConflictView, error)
}

type AvailabilityRequest struct {
	VehicleID        uuid.UUID
	PickupDate       *time.Time
	DropoffDate      *time.Time
	ExcludeBookingID *uuid.UUID
	// Malformed holds query parameters that could not be parsed.
	Malformed map[string]string
}

type VehicleQueries interface {
	GetByID(ctx context.Context, actor auth.Context, id uuid.UUID) (*VehicleView, error)
	CheckAvailability(ctx context.Context, actor auth.Context, req AvailabilityRequest) (*AvailabilityView, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, _ auth.Context, id uuid.UUID) (*VehicleView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// CheckAvailability is advisory: it takes no lock, so a later create can still conflict.
func (q *vehicleQueriesImpl) CheckAvailability(ctx context.Context, actor auth.Context, req AvailabilityRequest) (*AvailabilityView, error) {
	// Past ranges may be inspected, so no lower bound on pickup_date.
	fields := booking.ValidateSchedule(booking.ScheduleInput{
		PickupDate:  req.PickupDate,
		DropoffDate: req.DropoffDate,
		Malformed:   req.Malformed,
	}, time.Time{}, 0, false)
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}
	period, err := booking.NewPeriod(*req.PickupDate, *req.DropoffDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if _, err := q.GetByID(ctx, actor, req.VehicleID); err != nil {
		return nil, err
	}

	conflicts, err := q.store.FindConflicts(ctx, req.VehicleID, period, req.ExcludeBookingID)
	if err != nil {
		return nil, err
	}
	if conflicts == nil {
		conflicts = []ConflictView{}
	}

	return &AvailabilityView{
		VehicleID:   req.VehicleID,
		PickupDate:  period.Pickup(),
		DropoffDate: period.Dropoff(),
		Available:   len(conflicts) == 0,
		Conflicts:   conflicts,
	}, nil
}
