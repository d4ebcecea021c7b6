package booking

import (
	"time"
)

// Period is an inclusive range of calendar dates [pickup, dropoff].
// Dates are normalised to midnight UTC so comparisons ignore clock time and zone.
type Period struct {
	pickup  time.Time
	dropoff time.Time
}

func NewPeriod(pickup, dropoff time.Time) (Period, error) {
	if pickup.IsZero() || dropoff.IsZero() {
		return Period{}, ErrMissingDate
	}
	p, d := DateOf(pickup), DateOf(dropoff)
	if d.Before(p) {
		return Period{}, ErrDropoffBeforePickup
	}
	return Period{pickup: p, dropoff: d}, nil
}

// DateOf truncates t to its calendar date as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (p Period) Pickup() time.Time  { return p.pickup }
func (p Period) Dropoff() time.Time { return p.dropoff }

// Overlaps is NOT(e1 < s2 OR s1 > e2). Ranges sharing a single day overlap.
func (p Period) Overlaps(o Period) bool {
	return !(p.dropoff.Before(o.pickup) || p.pickup.After(o.dropoff))
}

// Days counts rental days, both ends included.
func (p Period) Days() int {
	return int(p.dropoff.Sub(p.pickup).Hours()/24) + 1
}

// PickupAt is the instant the rental starts: 00:00 of the pickup date in loc.
func (p Period) PickupAt(loc *time.Location) time.Time {
	y, m, d := p.pickup.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (p Period) Equal(o Period) bool {
	return p.pickup.Equal(o.pickup) && p.dropoff.Equal(o.dropoff)
}

func (p Period) String() string {
	return p.pickup.Format(time.DateOnly) + ".." + p.dropoff.Format(time.DateOnly)
}
