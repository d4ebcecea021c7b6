//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, cents int64) payment.Money {
	t.Helper()
	m, err := payment.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestNoticeRefundPolicy_Compute(t *testing.T) {
	policy := booking.NewNoticeRefundPolicy(24 * time.Hour)
	pickupAt := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		paid        int64
		cancelledAt time.Time
		want        int64
	}{
		{name: "48h notice refunds in full", paid: 10000, cancelledAt: pickupAt.Add(-48 * time.Hour), want: 10000},
		{name: "exactly 24h refunds in full", paid: 10000, cancelledAt: pickupAt.Add(-24 * time.Hour), want: 10000},
		{name: "one second short of 24h refunds nothing", paid: 10000, cancelledAt: pickupAt.Add(-24*time.Hour + time.Second), want: 0},
		{name: "after pickup refunds nothing", paid: 10000, cancelledAt: pickupAt.Add(2 * time.Hour), want: 0},
		{name: "nothing paid", paid: 0, cancelledAt: pickupAt.Add(-72 * time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Compute(money(t, tt.paid), tt.cancelledAt, pickupAt)
			assert.Equal(t, tt.want, got.Cents())
		})
	}
}

func TestNoticeRefundPolicy_Deterministic(t *testing.T) {
	policy := booking.NewNoticeRefundPolicy(24 * time.Hour)
	pickupAt := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	cancelledAt := pickupAt.Add(-30 * time.Hour)
	paid := money(t, 10000)

	first := policy.Compute(paid, cancelledAt, pickupAt)
	for range 100 {
		assert.Equal(t, first, policy.Compute(paid, cancelledAt, pickupAt))
	}
	assert.Equal(t, "100.00", first.String())
}

func TestNewNoticeRefundPolicy_DefaultsNotice(t *testing.T) {
	assert.Equal(t, 24*time.Hour, booking.NewNoticeRefundPolicy(0).FullRefundNotice)
}
