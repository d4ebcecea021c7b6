package converter

import (
	"fmt"

	"rental-backoffice/internal/domain/booking"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:          b.ID(),
		UserID:      b.UserID(),
		VehicleID:   b.VehicleID(),
		PickupDate:  pgconv.DateToPgtype(b.Period().Pickup()),
		DropoffDate: pgconv.DateToPgtype(b.Period().Dropoff()),
		Status:      b.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	period, err := booking.NewPeriod(pgconv.DateFromPgtype(row.PickupDate), pgconv.DateFromPgtype(row.DropoffDate))
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}
	return booking.Reconstruct(
		row.ID,
		row.UserID,
		row.VehicleID,
		period,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.DeletedAt),
	), nil
}
