package converter

import (
	"rental-backoffice/internal/domain/payment"
	"rental-backoffice/internal/domain/vehicle"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"
)

func VehicleFromRow(row sqlc.Vehicles) (*vehicle.Vehicle, error) {
	status, err := vehicle.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	rate, err := payment.NewMoney(row.DailyRateCents)
	if err != nil {
		return nil, err
	}
	return vehicle.ReconstructVehicle(
		row.ID,
		row.Name,
		row.PlateNumber,
		rate,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
