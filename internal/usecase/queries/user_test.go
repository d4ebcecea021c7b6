//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase/queries"
	"rental-backoffice/tests/common/builder"
	queriesmock "rental-backoffice/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	staff := builder.NewUserBuilder().AsStaff()
	actor := auth.NewContext(staff.ID, user.RoleStaff)
	dbErr := errors.New("connection reset")

	tests := []struct {
		name    string
		view    *queries.AuthorizedUserView
		findErr error
		errIs   error
	}{
		{name: "active user with matching role", view: staff.BuildReadModel()},
		{name: "deleted user", findErr: infra.WrapRepoErr("user not found", nil, infra.KindNotFound), errIs: queries.ErrUserNotFound},
		{name: "deactivated user", view: builder.NewUserBuilder().WithID(staff.ID).AsStaff().AsInactive().BuildReadModel(), errIs: queries.ErrUserInactive},
		{name: "demoted since login", view: builder.NewUserBuilder().WithID(staff.ID).BuildReadModel(), errIs: queries.ErrRoleChanged},
		{name: "store failure passes through", findErr: dbErr, errIs: dbErr},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
			store.EXPECT().FindByID(ctx, actor.UserID).Return(tc.view, tc.findErr)

			got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, actor)

			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.view, got)
		})
	}

	t.Run("role changes map to 401", func(t *testing.T) {
		assert.True(t, errs.Is(queries.ErrRoleChanged, errs.ErrUnauthorized))
	})
}
