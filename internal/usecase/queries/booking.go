package queries

import (
	"context"
	"time"

	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.Sentinel("booking not found", errs.ErrNotFound)
	ErrBookingAccess   = errs.Sentinel("booking access denied", errs.ErrForbidden)
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor auth.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, actor auth.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor auth.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	// Hide the existence of other users' bookings from customers.
	if !actor.CanActFor(view.UserID) {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, actor auth.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if !actor.CanActFor(userID) {
		return nil, nil, ErrBookingAccess
	}
	return page(cursor, limit,
		func(limit int32) ([]*BookingListItem, error) {
			return q.store.FindByUserFirstPage(ctx, userID, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error) {
			return q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, limit)
		},
		func(item *BookingListItem) (time.Time, uuid.UUID) { return item.CreatedAt, item.ID },
	)
}
