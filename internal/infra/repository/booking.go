package repository

import (
	"context"

	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/infra/repository/converter"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockVehicleSchedule(ctx context.Context, db sqlc.DBTX, vehicleID uuid.UUID) error
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	FindBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingScheduleParams) error
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) LockVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	if err := r.queries.LockVehicleSchedule(ctx, r.db, vehicleID); err != nil {
		return infra.WrapRepoErr("failed to lock vehicle schedule", err)
	}
	return nil
}

func (r *BookingRepository) CountOverlapping(ctx context.Context, vehicleID uuid.UUID, period booking.Period, excludeID *uuid.UUID) (int64, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, r.db, sqlc.CountOverlappingBookingsParams{
		VehicleID:   vehicleID,
		PickupDate:  pgconv.DateToPgtype(period.Pickup()),
		DropoffDate: pgconv.DateToPgtype(period.Dropoff()),
		ExcludeID:   pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return toBooking(r.queries.FindBookingByID(ctx, r.db, id))
}

// FindByIDForUpdate row-locks the booking until the transaction ends.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return toBooking(r.queries.FindBookingByIDForUpdate(ctx, r.db, id))
}

func toBooking(row sqlc.Bookings, err error) (*booking.Booking, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) UpdateSchedule(ctx context.Context, b *booking.Booking) error {
	err := r.queries.UpdateBookingSchedule(ctx, r.db, sqlc.UpdateBookingScheduleParams{
		ID:          b.ID(),
		PickupDate:  pgconv.DateToPgtype(b.Period().Pickup()),
		DropoffDate: pgconv.DateToPgtype(b.Period().Dropoff()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking schedule", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}
