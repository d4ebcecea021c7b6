//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/domain/payment"
	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/handler/api"
	reqdto "rental-backoffice/internal/handler/dto/request"
	resdto "rental-backoffice/internal/handler/dto/response"
	"rental-backoffice/internal/handler/httperr"
	"rental-backoffice/internal/handler/middleware"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase/commands"
	"rental-backoffice/internal/usecase/queries"
	"rental-backoffice/internal/usecase/shared"
	"rental-backoffice/tests/common/builder"
	"rental-backoffice/tests/common/httptest"
	"rental-backoffice/tests/common/testutil"
	commandsmock "rental-backoffice/tests/mock/commands"
	queriesmock "rental-backoffice/tests/mock/queries"
	sharedmock "rental-backoffice/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth: any bearer header authenticates as actor.
func fakeAuth(actor *auth.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Status: httperr.StatusError, Message: "Unauthorized"})
			return
		}
		middleware.SetAuthContext(c, *actor)
		c.Next()
	}
}

const testToken = "test-token"

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	actor        auth.Context
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actor = auth.NewContext(uuid.New(), user.RoleCustomer)

	g := s.router.Group("", fakeAuth(&s.actor))
	g.POST("/bookings", h.Create)
	g.GET("/bookings/:id", h.Get)
	g.PUT("/bookings/:id/reschedule", h.Reschedule)
	g.POST("/bookings/:id/cancel", h.Cancel)
	g.POST("/bookings/:id/confirm", h.Confirm)
	g.POST("/bookings/:id/complete", h.Complete)
	g.POST("/bookings/:id/mark-paid", h.MarkPaid)
	g.POST("/bookings/:id/payments", h.RecordPayment)
	g.GET("/users/:id/bookings", h.ListByUser)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func createBody(vehicleID uuid.UUID) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VehicleID:   vehicleID.String(),
		PickupDate:  "2024-06-01",
		DropoffDate: "2024-06-05",
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	vehicleID := uuid.New()
	bookingID := uuid.New()

	s.Run("success: 201 with booking id and the caller as owner", func() {
		pickup, dropoff := builder.Date("2024-06-01"), builder.Date("2024-06-05")
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, commands.CreateBookingInput{
			UserID:      s.actor.UserID,
			VehicleID:   vehicleID,
			PickupDate:  &pickup,
			DropoffDate: &dropoff,
		}).Return(&commands.BookingResult{BookingID: bookingID, Status: booking.StatusPending}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBody(vehicleID), testToken)

		var res resdto.BookingCommandResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(bookingID, res.BookingID)
		s.Equal("pending", res.Status)
		s.Empty(res.Warnings)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + bookingID.String()})
	})

	s.Run("success: dependency warnings are passed through", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			Return(&commands.BookingResult{BookingID: bookingID, Status: booking.StatusPending, Warnings: []string{"notification failed"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBody(vehicleID), testToken)

		var res resdto.BookingCommandResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal([]string{"notification failed"}, res.Warnings)
	})

	s.Run("success: idempotency key is forwarded and replays are flagged", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ auth.Context, in commands.CreateBookingInput) (*commands.BookingResult, error) {
				s.Require().NotNil(in.IdempotencyKey)
				s.Equal(key, *in.IdempotencyKey)
				return &commands.BookingResult{BookingID: bookingID, Status: booking.StatusPending, Replayed: true}, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/bookings", createBody(vehicleID),
			map[string]string{"Idempotency-Key": key.String()}, testToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/bookings", createBody(vehicleID),
			map[string]string{"Idempotency-Key": "retry-1"}, testToken)

		httptest.AssertFieldErrors(s.T(), rec, "Idempotency-Key")
	})

	s.Run("success: malformed fields are forwarded instead of rejected at bind time", func() {
		body := testutil.JSONMap(s.T(), createBody(vehicleID),
			testutil.Set("pickup_date", "06/01/2024"),
			testutil.Set("vehicle_id", "car-7"))
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ auth.Context, in commands.CreateBookingInput) (*commands.BookingResult, error) {
				s.Equal(map[string]string{
					"pickup_date": "must be a date in YYYY-MM-DD format",
					"vehicle_id":  "must be a UUID",
				}, in.Malformed)
				s.Nil(in.PickupDate)
				s.NotNil(in.DropoffDate)
				return nil, errs.NewValidationError(in.Malformed)
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, testToken)

		httptest.AssertFieldErrors(s.T(), rec, "pickup_date", "vehicle_id")
	})

	s.Run("error: usecase validation lists every field", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, errs.NewValidationError(map[string]string{
				booking.FieldVehicleID:  "is required",
				booking.FieldPickupDate: "is required",
			}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", map[string]any{}, testToken)

		httptest.AssertFieldErrors(s.T(), rec, "vehicle_id", "pickup_date")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"conflict", errs.Mark(errs.New("vehicle already booked"), errs.ErrConflict), http.StatusConflict, "Conflict"},
			{"vehicle not found", errs.Mark(errs.New("vehicle not found"), errs.ErrNotFound), http.StatusNotFound, "not found"},
			{"forbidden", errs.Mark(errs.New("cannot book for another user"), errs.ErrForbidden), http.StatusForbidden, "Forbidden"},
			{"unexpected", errs.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBody(vehicleID), testToken)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
				s.NotContains(rec.Body.String(), "connection reset")
			})
		}
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBody(vehicleID), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// TestCreateValidation runs the real booking commands behind the handler. The
// unit of work has no expectations, so any persistence call fails the test.
func (s *BookingHandlerTestSuite) TestCreateValidation() {
	sut := commands.NewBookingCommands(sharedmock.NewMockUnitOfWork(s.mockCtrl), shared.NewAvailabilityChecker(),
		nil, nil, nil, commands.BookingPolicy{MaxRentalDays: 30}, clock.NewMockClock(builder.Date("2024-05-01")))
	router := gin.New()
	router.POST("/bookings", fakeAuth(&s.actor), api.NewBookingHandler(sut, s.mockQueries).Create)

	tests := []struct {
		name string
		body map[string]any
		want map[string]string
	}{
		{
			name: "bad pickup date does not hide missing fields",
			body: map[string]any{"pickup_date": "2024-13-40"},
			want: map[string]string{
				"vehicle_id":   "is required",
				"pickup_date":  "must be a date in YYYY-MM-DD format",
				"dropoff_date": "is required",
			},
		},
		{
			name: "bad vehicle id does not hide date ordering",
			body: map[string]any{"vehicle_id": "not-a-uuid", "pickup_date": "2030-06-01", "dropoff_date": "2030-05-01"},
			want: map[string]string{
				"vehicle_id":   "must be a UUID",
				"dropoff_date": "must be on or after pickup_date",
			},
		},
		{
			name: "bad user id is reported",
			body: map[string]any{"user_id": "me", "vehicle_id": uuid.NewString(), "pickup_date": "2024-06-01", "dropoff_date": "2024-06-03"},
			want: map[string]string{"user_id": "must be a UUID"},
		},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), router, http.MethodPost, "/bookings", tc.body, testToken)

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			var got map[string]string
			s.Require().NoError(json.Unmarshal(httptest.DecodeEnvelope(s.T(), rec).Data, &got))
			s.Equal(tc.want, got)
		})
	}

	s.Run("wrong JSON type still fails the body", func() {
		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, "/bookings", map[string]any{"vehicle_id": 7}, testToken)

		httptest.AssertFieldErrors(s.T(), rec, "vehicle_id")
	})
}

func (s *BookingHandlerTestSuite) TestReschedule() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reschedule"

	s.Run("success: forwards parsed dates", func() {
		pickup, dropoff := builder.Date("2024-06-06"), builder.Date("2024-06-10")
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), s.actor, bookingID, commands.RescheduleInput{
			PickupDate: &pickup, DropoffDate: &dropoff,
		}).Return(&commands.BookingResult{BookingID: bookingID, Status: booking.StatusConfirmed}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.RescheduleBookingRequest{PickupDate: "2024-06-06", DropoffDate: "2024-06-10"}, testToken)

		var res resdto.BookingCommandResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("confirmed", res.Status)
	})

	s.Run("error: terminal booking is 409", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), s.actor, bookingID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("booking is cancelled"), errs.ErrInvalidState))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.RescheduleBookingRequest{PickupDate: "2024-06-06", DropoffDate: "2024-06-10"}, testToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "current state")
	})

	s.Run("success: unparseable dates travel as field errors", func() {
		dropoff := builder.Date("2024-06-10")
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), s.actor, bookingID, commands.RescheduleInput{
			DropoffDate: &dropoff,
			Malformed:   map[string]string{"pickup_date": "must be a date in YYYY-MM-DD format"},
		}).Return(nil, errs.NewValidationError(map[string]string{"pickup_date": "must be a date in YYYY-MM-DD format"}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.RescheduleBookingRequest{PickupDate: "2024-06-32", DropoffDate: "2024-06-10"}, testToken)

		httptest.AssertFieldErrors(s.T(), rec, "pickup_date")
	})

	s.Run("error: invalid path id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/not-a-uuid/reschedule",
			reqdto.RescheduleBookingRequest{}, testToken)

		httptest.AssertFieldErrors(s.T(), rec, "id")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: reports the refunded amount", func() {
		refunded, err := payment.NewMoney(10000)
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, bookingID).
			Return(&commands.CancelResult{BookingID: bookingID, Refunded: refunded}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testToken)

		var res resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("cancelled", res.Status)
		s.Equal(int64(10000), res.RefundedCents)
		s.Equal("100.00", res.Refunded)
	})

	s.Run("error: already cancelled is 409", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, bookingID).
			Return(nil, errs.Mark(errs.New("invalid transition"), errs.ErrInvalidState))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *BookingHandlerTestSuite) TestStatusChanges() {
	bookingID := uuid.New()
	testCases := []struct {
		path   string
		target string
	}{
		{"confirm", "confirmed"},
		{"complete", "completed"},
		{"mark-paid", "paid"},
	}
	for _, tc := range testCases {
		s.Run(tc.path, func() {
			s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), s.actor, bookingID, tc.target).
				Return(&commands.BookingResult{BookingID: bookingID, Status: booking.Status(tc.target)}, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/"+tc.path, nil, testToken)

			var res resdto.BookingCommandResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
			s.Equal(tc.target, res.Status)
		})
	}
}

func (s *BookingHandlerTestSuite) TestRecordPayment() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/payments"

	s.Run("success: 201 with payment id", func() {
		paymentID := uuid.New()
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), s.actor, bookingID, commands.RecordPaymentInput{
			AmountCents: 10000, Currency: "EUR", Status: "completed",
		}).Return(&commands.PaymentResult{PaymentID: paymentID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.RecordPaymentRequest{AmountCents: 10000, Currency: "EUR", Status: "completed"}, testToken)

		var res resdto.PaymentCommandResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(paymentID, res.PaymentID)
	})

	s.Run("error: binding validation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"amount_cents": 0, "status": "refunded"}, testToken)

		httptest.AssertFieldErrors(s.T(), rec, "amount_cents", "status")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()

	s.Run("success: dates are calendar dates", func() {
		view := &queries.BookingView{
			ID:          bookingID,
			UserID:      s.actor.UserID,
			VehicleID:   uuid.New(),
			PickupDate:  builder.Date("2024-06-01"),
			DropoffDate: builder.Date("2024-06-05"),
			Status:      "confirmed",
			Payments:    []queries.PaymentView{{ID: uuid.New(), AmountCents: 10000, Currency: "eur", Status: "completed"}},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, bookingID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, testToken)

		s.Contains(rec.Body.String(), `"pickup_date":"2024-06-01"`)
		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(bookingID, res.ID)
		s.Require().Len(res.Payments, 1)
		s.Equal(int64(10000), res.Payments[0].AmountCents)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, bookingID).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, testToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

func (s *BookingHandlerTestSuite) TestListByUser() {
	userID := s.actor.UserID

	s.Run("success: returns items and next cursor", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), PickupDate: builder.Date("2024-07-01"), DropoffDate: builder.Date("2024-07-02"), Status: "pending", CreatedAt: time.Now()},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor, userID, &queries.Cursor{After: "abc"}, 10).
			Return(items, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/bookings?after=abc&limit=10", nil, testToken)

		var res resdto.Page[resdto.BookingListItemResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Items, 1)
		s.Require().NotNil(res.NextCursor)
		s.Equal("next", *res.NextCursor)
	})

	s.Run("error: limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/bookings?limit=500", nil, testToken)

		httptest.AssertFieldErrors(s.T(), rec, "limit")
	})

	s.Run("error: invalid cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor, userID, &queries.Cursor{After: "%%%"}, 0).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/bookings?after=%25%25%25", nil, testToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
