package readstore

import (
	"context"

	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/infra"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"
	"rental-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleViewQueries interface {
	FindVehicleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
	ListOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingBookingsParams) ([]sqlc.ListOverlappingBookingsRow, error)
}

type VehicleReadStore struct {
	queries VehicleViewQueries
	db      sqlc.DBTX
}

func NewVehicleReadStore(queries VehicleViewQueries, db sqlc.DBTX) *VehicleReadStore {
	return &VehicleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	row, err := r.queries.FindVehicleByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get vehicle", err)
	}
	return &queries.VehicleView{
		ID:             row.ID,
		Name:           row.Name,
		PlateNumber:    row.PlateNumber,
		DailyRateCents: row.DailyRateCents,
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *VehicleReadStore) FindConflicts(ctx context.Context, vehicleID uuid.UUID, period booking.Period, excludeID *uuid.UUID) ([]queries.ConflictView, error) {
	rows, err := r.queries.ListOverlappingBookings(ctx, r.db, sqlc.ListOverlappingBookingsParams{
		VehicleID:   vehicleID,
		PickupDate:  pgconv.DateToPgtype(period.Pickup()),
		DropoffDate: pgconv.DateToPgtype(period.Dropoff()),
		ExcludeID:   pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	out := make([]queries.ConflictView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.ConflictView{
			BookingID:   row.ID,
			PickupDate:  pgconv.DateFromPgtype(row.PickupDate),
			DropoffDate: pgconv.DateFromPgtype(row.DropoffDate),
			Status:      row.Status,
		})
	}
	return out, nil
}
