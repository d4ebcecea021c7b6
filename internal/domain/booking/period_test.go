//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rental-backoffice/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func period(t *testing.T, from, to string) booking.Period {
	t.Helper()
	p, err := booking.NewPeriod(date(from), date(to))
	require.NoError(t, err)
	return p
}

func TestNewPeriod(t *testing.T) {
	t.Run("single day is valid", func(t *testing.T) {
		p, err := booking.NewPeriod(date("2024-06-01"), date("2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, 1, p.Days())
	})

	t.Run("dropoff before pickup", func(t *testing.T) {
		_, err := booking.NewPeriod(date("2024-06-05"), date("2024-06-01"))
		assert.ErrorIs(t, err, booking.ErrDropoffBeforePickup)
	})

	t.Run("zero dates", func(t *testing.T) {
		_, err := booking.NewPeriod(time.Time{}, date("2024-06-01"))
		assert.ErrorIs(t, err, booking.ErrMissingDate)
	})

	t.Run("clock time and zone are dropped", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		p, err := booking.NewPeriod(
			time.Date(2024, 6, 1, 23, 30, 0, 0, tokyo),
			time.Date(2024, 6, 3, 1, 0, 0, 0, tokyo),
		)
		require.NoError(t, err)
		assert.Equal(t, date("2024-06-01"), p.Pickup())
		assert.Equal(t, date("2024-06-03"), p.Dropoff())
		assert.Equal(t, 3, p.Days())
	})
}

func TestPeriod_Overlaps(t *testing.T) {
	existing := period(t, "2024-06-01", "2024-06-05")

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{name: "tail overlap 06-04..06-08", from: "2024-06-04", to: "2024-06-08", want: true},
		{name: "adjacent next day 06-06..06-10", from: "2024-06-06", to: "2024-06-10", want: false},
		{name: "same day touch at end 06-05..06-07", from: "2024-06-05", to: "2024-06-07", want: true},
		{name: "same day touch at start 05-28..06-01", from: "2024-05-28", to: "2024-06-01", want: true},
		{name: "adjacent previous day 05-25..05-31", from: "2024-05-25", to: "2024-05-31", want: false},
		{name: "contained 06-02..06-03", from: "2024-06-02", to: "2024-06-03", want: true},
		{name: "containing 05-01..07-01", from: "2024-05-01", to: "2024-07-01", want: true},
		{name: "identical", from: "2024-06-01", to: "2024-06-05", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := period(t, tt.from, tt.to)
			assert.Equal(t, tt.want, candidate.Overlaps(existing))
			assert.Equal(t, tt.want, existing.Overlaps(candidate), "overlap must be symmetric")
		})
	}
}
