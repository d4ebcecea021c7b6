//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/infra"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

// nopDBTX satisfies sqlc.DBTX; the mocked queries never touch it.
type nopDBTX struct{}

func (nopDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (nopDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (nopDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, testUserID).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, nopDBTX{})

			err := repo.UpdateLastLogin(context.Background(), testUserID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByEmail(t *testing.T) {
	email, err := user.NewEmail("staff@example.com")
	require.NoError(t, err)
	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	t.Run("row is converted to a domain user", func(t *testing.T) {
		row := sqlc.Users{
			ID:           uuid.New(),
			Email:        "staff@example.com",
			PasswordHash: "hash",
			Role:         "staff",
			IsActive:     true,
			CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
			UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		}
		mockQueries := new(MockUserQueries)
		mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, "staff@example.com").Return(row, nil)

		got, err := NewUserRepository(mockQueries, nopDBTX{}).FindByEmail(context.Background(), email)

		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID())
		assert.Equal(t, user.RoleStaff, got.Role())
		assert.Nil(t, got.LastLogin())
	})

	t.Run("no rows is NOT_FOUND", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, "staff@example.com").Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries, nopDBTX{}).FindByEmail(context.Background(), email)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown role in the row is a DB failure", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, "staff@example.com").
			Return(sqlc.Users{ID: uuid.New(), Email: "staff@example.com", Role: "root"}, nil)

		_, err := NewUserRepository(mockQueries, nopDBTX{}).FindByEmail(context.Background(), email)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
