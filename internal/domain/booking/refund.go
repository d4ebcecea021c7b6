package booking

import (
	"time"

	"rental-backoffice/internal/domain/payment"
)

// RefundPolicy decides how much of a completed payment is returned on cancellation.
// Implementations must be pure: equal inputs give equal outputs.
type RefundPolicy interface {
	Compute(paid payment.Money, cancelledAt, pickupAt time.Time) payment.Money
}

// NoticeRefundPolicy refunds the full amount when the cancellation happens at least
// FullRefundNotice before pickup, and nothing otherwise.
type NoticeRefundPolicy struct {
	FullRefundNotice time.Duration
}

func NewNoticeRefundPolicy(notice time.Duration) NoticeRefundPolicy {
	if notice <= 0 {
		notice = 24 * time.Hour
	}
	return NoticeRefundPolicy{FullRefundNotice: notice}
}

func (p NoticeRefundPolicy) Compute(paid payment.Money, cancelledAt, pickupAt time.Time) payment.Money {
	if !paid.IsPositive() {
		return payment.Zero()
	}
	if pickupAt.Sub(cancelledAt) >= p.FullRefundNotice {
		return paid
	}
	return payment.Zero()
}
