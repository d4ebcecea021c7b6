package repository

import (
	"context"
	"time"

	"rental-backoffice/internal/domain/vehicle"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/infra/repository/converter"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VehicleWriteQueries interface {
	FindVehicleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
	FindVehicleByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
	UpdateVehicleStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVehicleStatusParams) error
	CountActiveBookingsFrom(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveBookingsFromParams) (int64, error)
}

type VehicleRepository struct {
	queries VehicleWriteQueries
	db      sqlc.DBTX
}

func NewVehicleRepository(queries VehicleWriteQueries, db sqlc.DBTX) *VehicleRepository {
	return &VehicleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row, err := r.queries.FindVehicleByID(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *VehicleRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row, err := r.queries.FindVehicleByIDForUpdate(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *VehicleRepository) toDomain(row sqlc.Vehicles, err error) (*vehicle.Vehicle, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}
	v, err := converter.VehicleFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert vehicle row", err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *VehicleRepository) UpdateStatus(ctx context.Context, v *vehicle.Vehicle) error {
	err := r.queries.UpdateVehicleStatus(ctx, r.db, sqlc.UpdateVehicleStatusParams{
		ID:        v.ID(),
		Status:    string(v.Status()),
		UpdatedAt: pgconv.TimeToPgtype(v.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle status", err)
	}
	return nil
}

func (r *VehicleRepository) CountActiveBookingsFrom(ctx context.Context, vehicleID uuid.UUID, from time.Time) (int64, error) {
	n, err := r.queries.CountActiveBookingsFrom(ctx, r.db, sqlc.CountActiveBookingsFromParams{
		VehicleID: vehicleID,
		FromDate:  pgconv.DateToPgtype(from),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return n, nil
}
