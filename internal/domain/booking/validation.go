package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Field names match the JSON request fields so messages can be shown next to inputs.
const (
	FieldUserID      = "user_id"
	FieldVehicleID   = "vehicle_id"
	FieldPickupDate  = "pickup_date"
	FieldDropoffDate = "dropoff_date"
)

// ScheduleInput is the raw, possibly incomplete booking request.
type ScheduleInput struct {
	UserID      uuid.UUID
	VehicleID   uuid.UUID
	PickupDate  *time.Time
	DropoffDate *time.Time
	// Malformed holds fields the caller sent but that could not be parsed.
	// Their messages replace "is required" for the same field.
	Malformed map[string]string
}

// ValidateSchedule checks every rule and reports all violations at once.
// today is the current business date; maxDays <= 0 disables the length limit.
func ValidateSchedule(in ScheduleInput, today time.Time, maxDays int, requireParticipants bool) map[string]string {
	fields := map[string]string{}

	if requireParticipants {
		if in.UserID == uuid.Nil {
			fields[FieldUserID] = "is required"
		}
		if in.VehicleID == uuid.Nil {
			fields[FieldVehicleID] = "is required"
		}
	}

	if in.PickupDate == nil || in.PickupDate.IsZero() {
		fields[FieldPickupDate] = "is required"
	}
	if in.DropoffDate == nil || in.DropoffDate.IsZero() {
		fields[FieldDropoffDate] = "is required"
	}
	for field, msg := range in.Malformed {
		fields[field] = msg
	}
	if _, missing := fields[FieldPickupDate]; missing {
		return fields
	}

	pickup := DateOf(*in.PickupDate)
	if pickup.Before(DateOf(today)) {
		fields[FieldPickupDate] = "must be today or later"
	}

	if _, missing := fields[FieldDropoffDate]; missing {
		return fields
	}

	dropoff := DateOf(*in.DropoffDate)
	if dropoff.Before(pickup) {
		fields[FieldDropoffDate] = "must be on or after pickup_date"
	} else if maxDays > 0 {
		if days := int(dropoff.Sub(pickup).Hours()/24) + 1; days > maxDays {
			fields[FieldDropoffDate] = fmt.Sprintf("rental cannot exceed %d days", maxDays)
		}
	}

	return fields
}
