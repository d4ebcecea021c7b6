package booking

import "github.com/google/uuid"

// FindConflicts returns the active bookings in existing that overlap candidate on vehicleID,
// skipping excludeID. It mirrors the SQL conflict count for in-memory callers.
func FindConflicts(vehicleID uuid.UUID, candidate Period, existing []*Booking, excludeID *uuid.UUID) []*Booking {
	var out []*Booking
	for _, b := range existing {
		if b.vehicleID != vehicleID || b.IsDeleted() || !b.status.IsActive() {
			continue
		}
		if excludeID != nil && b.id == *excludeID {
			continue
		}
		if candidate.Overlaps(b.period) {
			out = append(out, b)
		}
	}
	return out
}
