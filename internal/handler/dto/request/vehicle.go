package request

import (
	"rental-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityQuery struct {
	PickupDate       string `form:"pickup_date"`
	DropoffDate      string `form:"dropoff_date"`
	ExcludeBookingID string `form:"exclude_booking_id"`
}

func (q AvailabilityQuery) ToRequest(vehicleID uuid.UUID) queries.AvailabilityRequest {
	p := fieldParser{}
	return queries.AvailabilityRequest{
		VehicleID:        vehicleID,
		PickupDate:       p.date("pickup_date", q.PickupDate),
		DropoffDate:      p.date("dropoff_date", q.DropoffDate),
		ExcludeBookingID: p.uuidPtr("exclude_booking_id", q.ExcludeBookingID),
		Malformed:        p.errors(),
	}
}

type ChangeVehicleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListAuditLogsQuery struct {
	Resource   string `form:"resource" binding:"omitempty,oneof=booking vehicle payment user"`
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
	After      string `form:"after"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q ListAuditLogsQuery) ToFilter() queries.AuditFilter {
	var f queries.AuditFilter
	if q.Resource != "" {
		r := q.Resource
		f.Resource = &r
	}
	if id, err := uuid.Parse(q.ResourceID); err == nil {
		f.ResourceID = &id
	}
	return f
}
