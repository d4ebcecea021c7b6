package repository

import (
	"context"

	"rental-backoffice/internal/domain/payment"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/infra/repository/converter"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	FindLatestCompletedPayment(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Payments, error)
	CreateRefund(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRefundParams) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

// LatestCompleted returns a KindNotFound error when the booking has no completed payment.
func (r *PaymentRepository) LatestCompleted(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.FindLatestCompletedPayment(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("completed payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find completed payment", err)
	}
	p, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment row", err, infra.KindDBFailure)
	}
	return p, nil
}

func (r *PaymentRepository) CreateRefund(ctx context.Context, refund *payment.Refund) error {
	if err := r.queries.CreateRefund(ctx, r.db, converter.RefundToCreateParams(refund)); err != nil {
		return infra.WrapRepoErr("failed to record refund", err)
	}
	return nil
}
