//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase/queries"
	"rental-backoffice/tests/common/builder"
	queriesmock "rental-backoffice/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func datePtr(s string) *time.Time {
	d := builder.Date(s)
	return &d
}

func TestVehicleQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	actor := auth.NewContext(uuid.New(), user.RoleCustomer)
	vehicleID := uuid.New()

	period, err := booking.NewPeriod(builder.Date("2024-06-04"), builder.Date("2024-06-08"))
	require.NoError(t, err)

	t.Run("overlapping booking makes the range unavailable", func(t *testing.T) {
		store := queriesmock.NewMockVehicleReadStore(gomock.NewController(t))
		blocking := queries.ConflictView{
			BookingID:   uuid.New(),
			PickupDate:  builder.Date("2024-06-01"),
			DropoffDate: builder.Date("2024-06-05"),
			Status:      "confirmed",
		}
		store.EXPECT().FindByID(ctx, vehicleID).Return(&queries.VehicleView{ID: vehicleID}, nil)
		store.EXPECT().FindConflicts(ctx, vehicleID, period, (*uuid.UUID)(nil)).Return([]queries.ConflictView{blocking}, nil)

		got, err := queries.NewVehicleQueries(store).CheckAvailability(ctx, actor, queries.AvailabilityRequest{
			VehicleID:   vehicleID,
			PickupDate:  datePtr("2024-06-04"),
			DropoffDate: datePtr("2024-06-08"),
		})

		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, []queries.ConflictView{blocking}, got.Conflicts)
	})

	t.Run("excluded booking is forwarded and nil conflicts become empty", func(t *testing.T) {
		store := queriesmock.NewMockVehicleReadStore(gomock.NewController(t))
		exclude := uuid.New()
		store.EXPECT().FindByID(ctx, vehicleID).Return(&queries.VehicleView{ID: vehicleID}, nil)
		store.EXPECT().FindConflicts(ctx, vehicleID, period, &exclude).Return(nil, nil)

		got, err := queries.NewVehicleQueries(store).CheckAvailability(ctx, actor, queries.AvailabilityRequest{
			VehicleID:        vehicleID,
			PickupDate:       datePtr("2024-06-04"),
			DropoffDate:      datePtr("2024-06-08"),
			ExcludeBookingID: &exclude,
		})

		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.NotNil(t, got.Conflicts)
		assert.Empty(t, got.Conflicts)
		assert.Equal(t, period.Pickup(), got.PickupDate)
	})

	t.Run("reports every invalid field before touching the store", func(t *testing.T) {
		store := queriesmock.NewMockVehicleReadStore(gomock.NewController(t))

		_, err := queries.NewVehicleQueries(store).CheckAvailability(ctx, actor, queries.AvailabilityRequest{VehicleID: vehicleID})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		var verr *errs.ValidationError
		require.True(t, errs.As(err, &verr))
		assert.Contains(t, verr.Fields, booking.FieldPickupDate)
		assert.Contains(t, verr.Fields, booking.FieldDropoffDate)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		store := queriesmock.NewMockVehicleReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, vehicleID).Return(nil, infra.WrapRepoErr("vehicle not found", assert.AnError, infra.KindNotFound))

		_, err := queries.NewVehicleQueries(store).CheckAvailability(ctx, actor, queries.AvailabilityRequest{
			VehicleID:   vehicleID,
			PickupDate:  datePtr("2024-06-04"),
			DropoffDate: datePtr("2024-06-08"),
		})

		require.ErrorIs(t, err, queries.ErrVehicleNotFound)
	})
}

func TestAuditQueries_List(t *testing.T) {
	ctx := context.Background()
	resource := "booking"
	filter := queries.AuditFilter{Resource: &resource}

	t.Run("admin lists with filter", func(t *testing.T) {
		store := queriesmock.NewMockAuditReadStore(gomock.NewController(t))
		entries := []*queries.AuditLogView{{ID: uuid.New(), Resource: resource, Action: "booking_created"}}
		store.EXPECT().ListFirstPage(ctx, filter, int32(queries.DefaultListLimit+1)).Return(entries, nil)

		got, next, err := queries.NewAuditQueries(store).List(ctx, auth.NewContext(uuid.New(), user.RoleAdmin), filter, nil, 0)

		require.NoError(t, err)
		assert.Equal(t, entries, got)
		assert.Nil(t, next)
	})

	for _, role := range []user.Role{user.RoleStaff, user.RoleCustomer} {
		t.Run(string(role)+" is denied", func(t *testing.T) {
			store := queriesmock.NewMockAuditReadStore(gomock.NewController(t))

			_, _, err := queries.NewAuditQueries(store).List(ctx, auth.NewContext(uuid.New(), role), filter, nil, 0)

			require.ErrorIs(t, err, queries.ErrAuditAccess)
		})
	}
}
