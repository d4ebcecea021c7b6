package readstore

import (
	"context"
	"time"

	"rental-backoffice/internal/infra"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"
	"rental-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListPaymentsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Payments, error)
	ListRefundsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Refunds, error)
	ListBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserFirstPageParams) ([]sqlc.ListBookingsByUserFirstPageRow, error)
	ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]sqlc.ListBookingsByUserKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	payments, err := r.queries.ListPaymentsByBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking payments", err)
	}
	refunds, err := r.queries.ListRefundsByBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking refunds", err)
	}

	view := &queries.BookingView{
		ID:          row.ID,
		UserID:      row.UserID,
		UserEmail:   row.UserEmail,
		VehicleID:   row.VehicleID,
		VehicleName: row.VehicleName,
		PlateNumber: row.PlateNumber,
		PickupDate:  pgconv.DateFromPgtype(row.PickupDate),
		DropoffDate: pgconv.DateFromPgtype(row.DropoffDate),
		Status:      row.Status,
		Payments:    make([]queries.PaymentView, 0, len(payments)),
		Refunds:     make([]queries.RefundView, 0, len(refunds)),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, p := range payments {
		view.Payments = append(view.Payments, queries.PaymentView{
			ID:          p.ID,
			AmountCents: p.AmountCents,
			Currency:    p.Currency,
			Status:      p.Status,
			ProviderRef: pgconv.StringPtrFromPgtype(p.ProviderRef),
			CreatedAt:   pgconv.TimeFromPgtype(p.CreatedAt),
		})
	}
	for _, rf := range refunds {
		view.Refunds = append(view.Refunds, queries.RefundView{
			ID:            rf.ID,
			PaymentID:     rf.PaymentID,
			AmountCents:   rf.AmountCents,
			Status:        rf.Status,
			FailureReason: pgconv.StringPtrFromPgtype(rf.FailureReason),
			CreatedAt:     pgconv.TimeFromPgtype(rf.CreatedAt),
		})
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, sqlc.ListBookingsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:          row.ID,
			VehicleID:   row.VehicleID,
			VehicleName: row.VehicleName,
			PickupDate:  pgconv.DateFromPgtype(row.PickupDate),
			DropoffDate: pgconv.DateFromPgtype(row.DropoffDate),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, sqlc.ListBookingsByUserKeysetParams{
		UserID:        userID,
		Limit:         limit,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user keyset", err)
	}
	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:          row.ID,
			VehicleID:   row.VehicleID,
			VehicleName: row.VehicleName,
			PickupDate:  pgconv.DateFromPgtype(row.PickupDate),
			DropoffDate: pgconv.DateFromPgtype(row.DropoffDate),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}
