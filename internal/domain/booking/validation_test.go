//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rental-backoffice/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateSchedule(t *testing.T) {
	today := date("2024-05-20")
	ptr := func(s string) *time.Time { d := date(s); return &d }

	tests := []struct {
		name string
		in   booking.ScheduleInput
		want map[string]string
	}{
		{
			name: "valid",
			in:   booking.ScheduleInput{UserID: uuid.New(), VehicleID: uuid.New(), PickupDate: ptr("2024-06-01"), DropoffDate: ptr("2024-06-05")},
			want: map[string]string{},
		},
		{
			name: "pickup today is allowed",
			in:   booking.ScheduleInput{UserID: uuid.New(), VehicleID: uuid.New(), PickupDate: ptr("2024-05-20"), DropoffDate: ptr("2024-05-20")},
			want: map[string]string{},
		},
		{
			name: "dropoff before pickup flags dropoff_date",
			in:   booking.ScheduleInput{UserID: uuid.New(), VehicleID: uuid.New(), PickupDate: ptr("2024-06-05"), DropoffDate: ptr("2024-06-01")},
			want: map[string]string{booking.FieldDropoffDate: "must be on or after pickup_date"},
		},
		{
			name: "every violation reported at once",
			in:   booking.ScheduleInput{PickupDate: ptr("2024-05-01"), DropoffDate: ptr("2024-04-01")},
			want: map[string]string{
				booking.FieldUserID:      "is required",
				booking.FieldVehicleID:   "is required",
				booking.FieldPickupDate:  "must be today or later",
				booking.FieldDropoffDate: "must be on or after pickup_date",
			},
		},
		{
			name: "missing dates",
			in:   booking.ScheduleInput{UserID: uuid.New(), VehicleID: uuid.New()},
			want: map[string]string{
				booking.FieldPickupDate:  "is required",
				booking.FieldDropoffDate: "is required",
			},
		},
		{
			name: "unparseable pickup is reported with the missing fields",
			in: booking.ScheduleInput{
				UserID:    uuid.New(),
				Malformed: map[string]string{booking.FieldPickupDate: "must be a date in YYYY-MM-DD format"},
			},
			want: map[string]string{
				booking.FieldVehicleID:   "is required",
				booking.FieldPickupDate:  "must be a date in YYYY-MM-DD format",
				booking.FieldDropoffDate: "is required",
			},
		},
		{
			name: "unparseable vehicle id does not hide date ordering",
			in: booking.ScheduleInput{
				UserID:      uuid.New(),
				PickupDate:  ptr("2024-06-05"),
				DropoffDate: ptr("2024-06-01"),
				Malformed:   map[string]string{booking.FieldVehicleID: "must be a UUID"},
			},
			want: map[string]string{
				booking.FieldVehicleID:   "must be a UUID",
				booking.FieldDropoffDate: "must be on or after pickup_date",
			},
		},
		{
			name: "too long",
			in:   booking.ScheduleInput{UserID: uuid.New(), VehicleID: uuid.New(), PickupDate: ptr("2024-06-01"), DropoffDate: ptr("2024-06-11")},
			want: map[string]string{booking.FieldDropoffDate: "rental cannot exceed 10 days"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.ValidateSchedule(tt.in, today, 10, true)
			assert.Equal(t, tt.want, got)
		})
	}
}
