package converter

import (
	"rental-backoffice/internal/domain/payment"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:          p.ID(),
		BookingID:   p.BookingID(),
		AmountCents: p.Amount().Cents(),
		Currency:    p.Currency(),
		Status:      string(p.Status()),
		ProviderRef: pgconv.StringPtrToPgtype(p.ProviderRef()),
		CreatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PaymentFromRow(row sqlc.Payments) (*payment.Payment, error) {
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	amount, err := payment.NewMoney(row.AmountCents)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructPayment(
		row.ID,
		row.BookingID,
		amount,
		row.Currency,
		status,
		pgconv.StringPtrFromPgtype(row.ProviderRef),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func RefundToCreateParams(r *payment.Refund) sqlc.CreateRefundParams {
	return sqlc.CreateRefundParams{
		ID:            r.ID,
		PaymentID:     r.PaymentID,
		BookingID:     r.BookingID,
		AmountCents:   r.Amount.Cents(),
		Status:        string(r.Status),
		ProviderRef:   pgconv.StringPtrToPgtype(r.ProviderRef),
		FailureReason: pgconv.StringPtrToPgtype(r.FailureReason),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt),
	}
}
