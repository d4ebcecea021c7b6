package queries

import (
	"context"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.Sentinel("user not found", errs.ErrNotFound)
	ErrUserInactive = errs.Sentinel("user inactive", errs.ErrUnauthorized)
	// ErrRoleChanged means the token predates a role change; the caller has to log in again.
	ErrRoleChanged = errs.Sentinel("role changed since token was issued", errs.ErrUnauthorized)
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, actor auth.Context) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

// GetCurrentUser reloads the caller so deactivation and role changes take
// effect before the access token expires.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, actor auth.Context) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, actor.UserID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, err
	case !view.IsActive:
		return nil, ErrUserInactive
	case view.Role != string(actor.Role):
		return nil, ErrRoleChanged
	}
	return view, nil
}
