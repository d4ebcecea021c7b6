package payment

import (
	"context"
	"log/slog"
	"strings"

	"rental-backoffice/internal/domain/payment"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
)

var ErrNothingToRefund = errs.Sentinel("booking has no completed payment", errs.ErrInvalidState)

// RefundCreator is satisfied by stripe.Client.V1Refunds.
type RefundCreator interface {
	Create(ctx context.Context, params *stripe.RefundCreateParams) (*stripe.Refund, error)
}

// StripeGateway refunds through Stripe when the payment carries a provider reference.
// Payments recorded by hand (no reference) are refunded by hand too, so the refund is
// only recorded. Every attempt, failed or not, leaves a refunds row.
type StripeGateway struct {
	uow     shared.UnitOfWork
	refunds RefundCreator
	clock   clock.Clock
}

func NewStripeClient(cfg config.StripeConfig) *stripe.Client {
	if cfg.SecretKey == "" {
		return nil
	}
	return stripe.NewClient(cfg.SecretKey)
}

func NewStripeGateway(uow shared.UnitOfWork, sc *stripe.Client, clk clock.Clock) *StripeGateway {
	g := &StripeGateway{uow: uow, clock: clk}
	if sc != nil {
		g.refunds = sc.V1Refunds
	}
	return g
}

func (g *StripeGateway) ProcessRefundForBooking(ctx context.Context, bookingID uuid.UUID, amount payment.Money) (*payment.Refund, error) {
	paid, err := g.uow.CommandReads().LatestCompletedPayment(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNothingToRefund
		}
		return nil, err
	}
	if amount.Cents() > paid.Amount().Cents() {
		amount = paid.Amount()
	}

	var (
		status      = payment.RefundSucceeded
		providerRef *string
		reason      *string
		providerErr error
	)
	if ref := paid.ProviderRef(); ref != nil && g.refunds != nil {
		r, err := g.refunds.Create(ctx, refundParams(*ref, bookingID, amount))
		switch {
		case err != nil:
			providerErr = err
		case r.Status == stripe.RefundStatusFailed || r.Status == stripe.RefundStatusCanceled:
			providerRef = &r.ID
			providerErr = errs.Newf("stripe refund %s ended %s", r.ID, r.Status)
		default:
			providerRef = &r.ID
		}
		if providerErr != nil {
			status = payment.RefundFailed
			msg := providerErr.Error()
			reason = &msg
		}
	}

	refund := payment.NewRefund(paid, amount, status, providerRef, reason, g.clock.Now())
	if err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().CreateRefund(ctx, refund)
	}); err != nil {
		// money may already have moved; the provider is authoritative, so only log
		slog.Error("failed to record refund", "booking_id", bookingID, "payment_id", paid.ID(), "status", status, "error", err.Error())
	}

	if providerErr != nil {
		return refund, errs.Mark(errs.Wrap(providerErr, "stripe refund failed"), errs.ErrDependency)
	}
	return refund, nil
}

func refundParams(ref string, bookingID uuid.UUID, amount payment.Money) *stripe.RefundCreateParams {
	params := &stripe.RefundCreateParams{
		Amount: stripe.Int64(amount.Cents()),
		Reason: stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	if strings.HasPrefix(ref, "ch_") {
		params.Charge = stripe.String(ref)
	} else {
		params.PaymentIntent = stripe.String(ref)
	}
	params.AddMetadata("booking_id", bookingID.String())
	return params
}
