//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/infra/readstore"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/tests/common/builder"
	readstoremock "rental-backoffice/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserReadStore_FindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().AsStaff().BuildInfra()
	lastLogin := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	testUser.LastLogin = ts(lastLogin)
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.Users
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success - active user", userID: testUser.ID, mockReturn: testUser},
		{name: "success - inactive user (for validation)", userID: inactiveUser.ID, mockReturn: inactiveUser},
		{name: "user not found", userID: uuid.New(), mockError: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "database error", userID: testUser.ID, mockError: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
			mockQueries.EXPECT().FindUserByID(gomock.Any(), gomock.Any(), tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := readstore.NewUserReadStore(mockQueries, &mockDBTX{})

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.mockError != nil {
				require.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mockReturn.Email, view.Email)
			assert.Equal(t, tt.mockReturn.Role, view.Role)
			assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
			if tt.mockReturn.LastLogin.Valid {
				require.NotNil(t, view.LastLogin)
				assert.True(t, lastLogin.Equal(*view.LastLogin))
			} else {
				assert.Nil(t, view.LastLogin)
			}
		})
	}
}
