//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/domain/vehicle"
	"rental-backoffice/internal/handler/api"
	resdto "rental-backoffice/internal/handler/dto/response"
	"rental-backoffice/internal/handler/httperr"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase/commands"
	"rental-backoffice/internal/usecase/queries"
	"rental-backoffice/tests/common/builder"
	"rental-backoffice/tests/common/httptest"
	commandsmock "rental-backoffice/tests/mock/commands"
	queriesmock "rental-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type vehicleFixture struct {
	router   *gin.Engine
	commands *commandsmock.MockVehicleCommands
	queries  *queriesmock.MockVehicleQueries
	actor    auth.Context
}

func newVehicleFixture(t *testing.T) *vehicleFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()
	ctrl := gomock.NewController(t)

	f := &vehicleFixture{
		router:   gin.New(),
		commands: commandsmock.NewMockVehicleCommands(ctrl),
		queries:  queriesmock.NewMockVehicleQueries(ctrl),
		actor:    auth.NewContext(uuid.New(), user.RoleStaff),
	}
	h := api.NewVehicleHandler(f.commands, f.queries)
	g := f.router.Group("", fakeAuth(&f.actor))
	g.GET("/vehicles/:id", h.Get)
	g.GET("/vehicles/:id/availability", h.Availability)
	g.PATCH("/vehicles/:id/status", h.ChangeStatus)
	return f
}

func TestVehicleHandler_Get(t *testing.T) {
	f := newVehicleFixture(t)
	vehicleID := uuid.New()

	f.queries.EXPECT().GetByID(gomock.Any(), f.actor, vehicleID).
		Return(&queries.VehicleView{ID: vehicleID, Name: "Yaris", PlateNumber: "AB-123", DailyRateCents: 4500, Status: "available"}, nil)

	rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/vehicles/"+vehicleID.String(), nil, testToken)

	var res resdto.VehicleResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
	assert.Equal(t, "AB-123", res.PlateNumber)
	assert.Equal(t, int64(4500), res.DailyRateCents)
}

func TestVehicleHandler_Availability(t *testing.T) {
	vehicleID := uuid.New()
	excludeID := uuid.New()
	conflictID := uuid.New()

	t.Run("forwards dates and the excluded booking", func(t *testing.T) {
		f := newVehicleFixture(t)
		pickup, dropoff := builder.Date("2024-06-04"), builder.Date("2024-06-08")
		f.queries.EXPECT().CheckAvailability(gomock.Any(), f.actor, queries.AvailabilityRequest{
			VehicleID:        vehicleID,
			PickupDate:       &pickup,
			DropoffDate:      &dropoff,
			ExcludeBookingID: &excludeID,
		}).Return(&queries.AvailabilityView{
			VehicleID:   vehicleID,
			PickupDate:  pickup,
			DropoffDate: dropoff,
			Available:   false,
			Conflicts: []queries.ConflictView{
				{BookingID: conflictID, PickupDate: builder.Date("2024-06-01"), DropoffDate: builder.Date("2024-06-05"), Status: "confirmed"},
			},
		}, nil)

		url := "/vehicles/" + vehicleID.String() + "/availability?pickup_date=2024-06-04&dropoff_date=2024-06-08&exclude_booking_id=" + excludeID.String()
		rec := httptest.PerformRequest(t, f.router, http.MethodGet, url, nil, testToken)

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.False(t, res.Available)
		require.Len(t, res.Conflicts, 1)
		assert.Equal(t, conflictID, res.Conflicts[0].BookingID)
		assert.Equal(t, "2024-06-05", res.Conflicts[0].DropoffDate.String())
	})

	t.Run("available range answers an empty conflict list", func(t *testing.T) {
		f := newVehicleFixture(t)
		f.queries.EXPECT().CheckAvailability(gomock.Any(), f.actor, gomock.Any()).
			Return(&queries.AvailabilityView{VehicleID: vehicleID, Available: true}, nil)

		url := "/vehicles/" + vehicleID.String() + "/availability?pickup_date=2024-06-06&dropoff_date=2024-06-10"
		rec := httptest.PerformRequest(t, f.router, http.MethodGet, url, nil, testToken)

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		assert.Contains(t, rec.Body.String(), `"conflicts":[]`)
	})

	t.Run("malformed query values reach the usecase as field errors", func(t *testing.T) {
		f := newVehicleFixture(t)
		f.queries.EXPECT().CheckAvailability(gomock.Any(), f.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ auth.Context, req queries.AvailabilityRequest) (*queries.AvailabilityView, error) {
				assert.Equal(t, map[string]string{
					"pickup_date":        "must be a date in YYYY-MM-DD format",
					"exclude_booking_id": "must be a UUID",
				}, req.Malformed)
				assert.Nil(t, req.PickupDate)
				assert.Nil(t, req.ExcludeBookingID)
				return nil, errs.NewValidationError(req.Malformed)
			})
		url := "/vehicles/" + vehicleID.String() + "/availability?pickup_date=tomorrow&exclude_booking_id=42"
		rec := httptest.PerformRequest(t, f.router, http.MethodGet, url, nil, testToken)

		httptest.AssertFieldErrors(t, rec, "pickup_date", "exclude_booking_id")
	})
}

func TestVehicleHandler_ChangeStatus(t *testing.T) {
	vehicleID := uuid.New()
	url := "/vehicles/" + vehicleID.String() + "/status"

	tests := []struct {
		name       string
		body       any
		setup      func(f *vehicleFixture)
		expectCode int
	}{
		{
			name: "moves to maintenance",
			body: map[string]any{"status": "maintenance"},
			setup: func(f *vehicleFixture) {
				f.commands.EXPECT().ChangeStatus(gomock.Any(), f.actor, vehicleID, "maintenance").
					Return(&commands.VehicleResult{VehicleID: vehicleID, Status: vehicle.StatusMaintenance}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name: "active bookings conflict",
			body: map[string]any{"status": "unavailable"},
			setup: func(f *vehicleFixture) {
				f.commands.EXPECT().ChangeStatus(gomock.Any(), f.actor, vehicleID, "unavailable").
					Return(nil, commands.ErrVehicleHasBookings)
			},
			expectCode: http.StatusConflict,
		},
		{
			name: "forbidden",
			body: map[string]any{"status": "available"},
			setup: func(f *vehicleFixture) {
				f.commands.EXPECT().ChangeStatus(gomock.Any(), f.actor, vehicleID, "available").
					Return(nil, commands.ErrVehicleForbidden)
			},
			expectCode: http.StatusForbidden,
		},
		{
			name:       "status is required",
			body:       map[string]any{},
			setup:      func(*vehicleFixture) {},
			expectCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVehicleFixture(t)
			tt.setup(f)

			rec := httptest.PerformRequest(t, f.router, http.MethodPatch, url, tt.body, testToken)

			if tt.expectCode == http.StatusOK {
				var res resdto.VehicleCommandResponse
				httptest.AssertSuccessResponse(t, rec, tt.expectCode, &res)
				assert.Equal(t, "maintenance", res.Status)
				return
			}
			httptest.AssertErrorResponse(t, rec, tt.expectCode, "")
		})
	}
}
