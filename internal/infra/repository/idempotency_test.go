//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"rental-backoffice/internal/infra"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyQueries struct {
	mock.Mock
}

func (m *MockIdempotencyQueries) TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyQueries) GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.IdempotencyKeys), args.Error(1)
}

func (m *MockIdempotencyQueries) DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, expiresAt)
	return args.Get(0).(int64), args.Error(1)
}

func TestIdempotencyRepository_Claim(t *testing.T) {
	expires := time.Date(2024, 5, 21, 9, 0, 0, 0, time.UTC)
	rec := shared.IdempotencyRecord{
		Key:             uuid.New(),
		UserID:          uuid.New(),
		Endpoint:        "POST /bookings",
		RequestHash:     "abc",
		ResultBookingID: uuid.New(),
		ExpiresAt:       expires,
	}
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:             rec.Key,
		UserID:          rec.UserID,
		Endpoint:        rec.Endpoint,
		RequestHash:     rec.RequestHash,
		ResultBookingID: rec.ResultBookingID,
		ExpiresAt:       pgtype.Timestamptz{Time: expires, Valid: true},
	}

	tests := []struct {
		name      string
		rows      int64
		mockError error
		want      bool
		wantError bool
	}{
		{name: "fresh key is claimed", rows: 1, want: true},
		{name: "taken key is reported", rows: 0, want: false},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockIdempotencyQueries)
			mockQueries.On("TryInsertIdempotencyKey", mock.Anything, mock.Anything, params).Return(tt.rows, tt.mockError)

			got, err := NewIdempotencyRepository(mockQueries, nopDBTX{}).Claim(context.Background(), rec)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestIdempotencyRepository_Find(t *testing.T) {
	key, userID := uuid.New(), uuid.New()
	params := sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID}

	t.Run("maps the stored row", func(t *testing.T) {
		bookingID := uuid.New()
		mockQueries := new(MockIdempotencyQueries)
		mockQueries.On("GetIdempotencyKey", mock.Anything, mock.Anything, params).Return(sqlc.IdempotencyKeys{
			Key:             key,
			UserID:          userID,
			Endpoint:        "POST /bookings",
			RequestHash:     "abc",
			ResultBookingID: bookingID,
			ExpiresAt:       pgtype.Timestamptz{Time: time.Date(2024, 5, 21, 9, 0, 0, 0, time.UTC), Valid: true},
		}, nil)

		got, err := NewIdempotencyRepository(mockQueries, nopDBTX{}).Find(context.Background(), key, userID)

		require.NoError(t, err)
		assert.Equal(t, bookingID, got.ResultBookingID)
		assert.Equal(t, "abc", got.RequestHash)
	})

	t.Run("missing or expired key is NOT_FOUND", func(t *testing.T) {
		mockQueries := new(MockIdempotencyQueries)
		mockQueries.On("GetIdempotencyKey", mock.Anything, mock.Anything, params).Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)

		_, err := NewIdempotencyRepository(mockQueries, nopDBTX{}).Find(context.Background(), key, userID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	now := time.Date(2024, 5, 21, 9, 0, 0, 0, time.UTC)
	mockQueries := new(MockIdempotencyQueries)
	mockQueries.On("DeleteExpiredIdempotencyKeys", mock.Anything, mock.Anything, pgtype.Timestamptz{Time: now, Valid: true}).Return(int64(3), nil)

	n, err := NewIdempotencyRepository(mockQueries, nopDBTX{}).DeleteExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	mockQueries.AssertExpectations(t)
}
