//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/infra/readstore"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	readstoremock "rental-backoffice/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	paymentID := uuid.New()
	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	viewRow := sqlc.GetBookingViewRow{
		ID:          bookingID,
		UserID:      uuid.New(),
		UserEmail:   "driver@example.com",
		VehicleID:   uuid.New(),
		VehicleName: "Corolla",
		PlateNumber: "ABC-123",
		PickupDate:  pgDate("2024-06-01"),
		DropoffDate: pgDate("2024-06-05"),
		Status:      "cancelled",
		CreatedAt:   ts(now),
		UpdatedAt:   ts(now),
	}

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingViewQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking with payment and refund",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(viewRow, nil)
				mock.EXPECT().ListPaymentsByBooking(ctx, gomock.Any(), bookingID).Return([]sqlc.Payments{{
					ID:          paymentID,
					BookingID:   bookingID,
					AmountCents: 10000,
					Currency:    "USD",
					Status:      "completed",
					ProviderRef: pgtype.Text{String: "pi_123", Valid: true},
					CreatedAt:   ts(now),
				}}, nil)
				mock.EXPECT().ListRefundsByBooking(ctx, gomock.Any(), bookingID).Return([]sqlc.Refunds{{
					ID:          uuid.New(),
					PaymentID:   paymentID,
					BookingID:   bookingID,
					AmountCents: 10000,
					Status:      "succeeded",
					CreatedAt:   ts(now),
				}}, nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(sqlc.GetBookingViewRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error on view",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(sqlc.GetBookingViewRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: database error on payments",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(viewRow, nil)
				mock.EXPECT().ListPaymentsByBooking(ctx, gomock.Any(), bookingID).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			result, actualError := store.FindByID(ctx, bookingID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, actualError)
			require.NotNil(t, result)
			assert.Equal(t, bookingID, result.ID)
			assert.Equal(t, "2024-06-01", result.PickupDate.Format(time.DateOnly))
			assert.Equal(t, "2024-06-05", result.DropoffDate.Format(time.DateOnly))
			require.Len(t, result.Payments, 1)
			require.NotNil(t, result.Payments[0].ProviderRef)
			assert.Equal(t, "pi_123", *result.Payments[0].ProviderRef)
			require.Len(t, result.Refunds, 1)
			assert.Nil(t, result.Refunds[0].FailureReason)
		})
	}
}

// =============================================================================
// FindByUser Tests
// =============================================================================

func TestBookingReadStore_FindByUserFirstPage(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("maps rows in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		first, second := uuid.New(), uuid.New()
		mockQueries.EXPECT().
			ListBookingsByUserFirstPage(ctx, gomock.Any(), sqlc.ListBookingsByUserFirstPageParams{UserID: userID, Limit: 3}).
			Return([]sqlc.ListBookingsByUserFirstPageRow{
				{ID: first, PickupDate: pgDate("2024-06-10"), DropoffDate: pgDate("2024-06-12"), Status: "pending", CreatedAt: ts(time.Now())},
				{ID: second, PickupDate: pgDate("2024-06-01"), DropoffDate: pgDate("2024-06-05"), Status: "confirmed", CreatedAt: ts(time.Now().Add(-time.Hour))},
			}, nil)

		items, err := store.FindByUserFirstPage(ctx, userID, 3)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, first, items[0].ID)
		assert.Equal(t, second, items[1].ID)
		assert.Equal(t, "confirmed", items[1].Status)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingsByUserFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		items, err := store.FindByUserFirstPage(ctx, userID, 20)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingsByUserFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		items, err := store.FindByUserFirstPage(ctx, userID, 20)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, items)
	})
}

func TestBookingReadStore_FindByUserKeyset(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

	userID, lastID := uuid.New(), uuid.New()
	lastCreatedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().
		ListBookingsByUserKeyset(ctx, gomock.Any(), sqlc.ListBookingsByUserKeysetParams{
			UserID:        userID,
			Limit:         11,
			LastCreatedAt: ts(lastCreatedAt),
			LastID:        lastID,
		}).
		Return([]sqlc.ListBookingsByUserKeysetRow{{ID: uuid.New(), Status: "paid", CreatedAt: ts(lastCreatedAt.Add(-time.Minute))}}, nil)

	items, err := store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, 11)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "paid", items[0].Status)
}
