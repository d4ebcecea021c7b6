package response

import (
	"time"

	"rental-backoffice/internal/usecase/commands"
	"rental-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PlateNumber    string    `json:"plate_number"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ConflictResponse struct {
	BookingID   uuid.UUID `json:"booking_id"`
	PickupDate  Date      `json:"pickup_date"`
	DropoffDate Date      `json:"dropoff_date"`
	Status      string    `json:"status"`
}

type AvailabilityResponse struct {
	VehicleID   uuid.UUID          `json:"vehicle_id"`
	PickupDate  Date               `json:"pickup_date"`
	DropoffDate Date               `json:"dropoff_date"`
	Available   bool               `json:"available"`
	Conflicts   []ConflictResponse `json:"conflicts"`
}

type VehicleCommandResponse struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	Status    string    `json:"status"`
	Warnings  []string  `json:"warnings"`
}

func FromVehicleView(v *queries.VehicleView) *VehicleResponse {
	res := mapInto[VehicleResponse](v)
	return &res
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := mapInto[AvailabilityResponse](v)
	if res.Conflicts == nil {
		res.Conflicts = []ConflictResponse{}
	}
	return &res
}

func FromVehicleResult(r *commands.VehicleResult) VehicleCommandResponse {
	return VehicleCommandResponse{VehicleID: r.VehicleID, Status: string(r.Status), Warnings: warnings(r.Warnings)}
}
