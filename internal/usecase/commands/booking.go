package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"rental-backoffice/internal/domain/audit"
	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/domain/notification"
	"rental-backoffice/internal/domain/payment"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errs.Sentinel("booking not found", errs.ErrNotFound)
	ErrVehicleNotFound      = errs.Sentinel("vehicle not found", errs.ErrNotFound)
	ErrUserNotFound         = errs.Sentinel("user not found", errs.ErrNotFound)
	ErrBookingConflict      = errs.Sentinel("vehicle is already booked for the requested dates", errs.ErrConflict)
	ErrVehicleUnavailable   = errs.Sentinel("vehicle is not available for booking", errs.ErrConflict)
	ErrBookingForbidden     = errs.Sentinel("not allowed to act on this booking", errs.ErrForbidden)
	ErrInvalidBookingState  = errs.Sentinel("booking status does not allow this action", errs.ErrInvalidState)
	ErrIdempotencyKeyReused = errs.Sentinel("idempotency key was used for a different request", errs.ErrConflict)
)

const createBookingEndpoint = "POST /bookings"

// Warnings name best-effort side effects that failed after the primary change committed.
const (
	WarnAuditFailed        = "audit_log_failed"
	WarnNotificationFailed = "notification_failed"
	WarnRefundFailed       = "refund_failed"
	WarnRefundLookupFailed = "refund_lookup_failed"
)

type CreateBookingInput struct {
	UserID      uuid.UUID
	VehicleID   uuid.UUID
	PickupDate  *time.Time
	DropoffDate *time.Time
	// IdempotencyKey makes a retried create return the first booking instead of conflicting with it.
	IdempotencyKey *uuid.UUID
	// Malformed carries per-field parse errors from the transport so they are
	// reported together with the schedule rules.
	Malformed map[string]string
}

type RescheduleInput struct {
	PickupDate  *time.Time
	DropoffDate *time.Time
	Malformed   map[string]string
}

type RecordPaymentInput struct {
	AmountCents int64
	Currency    string
	Status      string
	ProviderRef *string
}

type BookingResult struct {
	BookingID uuid.UUID
	Status    booking.Status
	Warnings  []string
	// Replayed is set when an idempotent create matched an earlier request.
	Replayed bool
}

type CancelResult struct {
	BookingID uuid.UUID
	Refunded  payment.Money
	Warnings  []string
}

type PaymentResult struct {
	PaymentID uuid.UUID
	Warnings  []string
}

type BookingCommands interface {
	Create(ctx context.Context, actor auth.Context, in CreateBookingInput) (*BookingResult, error)
	Reschedule(ctx context.Context, actor auth.Context, bookingID uuid.UUID, in RescheduleInput) (*BookingResult, error)
	Cancel(ctx context.Context, actor auth.Context, bookingID uuid.UUID) (*CancelResult, error)
	ChangeStatus(ctx context.Context, actor auth.Context, bookingID uuid.UUID, target string) (*BookingResult, error)
	RecordPayment(ctx context.Context, actor auth.Context, bookingID uuid.UUID, in RecordPaymentInput) (*PaymentResult, error)
}

type BookingPolicy struct {
	Location        *time.Location
	MaxRentalDays   int
	Refund          booking.RefundPolicy
	DefaultCurrency string
	IdempotencyTTL  time.Duration
}

func (p BookingPolicy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	availability shared.AvailabilityChecker
	notifier     Notifier
	audit        AuditLogger
	gateway      PaymentGateway
	policy       BookingPolicy
	clock        clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	availability shared.AvailabilityChecker,
	notifier Notifier,
	auditLogger AuditLogger,
	gateway PaymentGateway,
	policy BookingPolicy,
	clk clock.Clock,
) BookingCommands {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	if policy.Refund == nil {
		policy.Refund = booking.NewNoticeRefundPolicy(0)
	}
	if policy.IdempotencyTTL <= 0 {
		policy.IdempotencyTTL = 24 * time.Hour
	}
	return &bookingCommandsImpl{
		uow:          uow,
		availability: availability,
		notifier:     notifier,
		audit:        auditLogger,
		gateway:      gateway,
		policy:       policy,
		clock:        clk,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, actor auth.Context, in CreateBookingInput) (*BookingResult, error) {
	now := uc.clock.Now()
	fields := booking.ValidateSchedule(booking.ScheduleInput{
		UserID:      in.UserID,
		VehicleID:   in.VehicleID,
		PickupDate:  in.PickupDate,
		DropoffDate: in.DropoffDate,
		Malformed:   in.Malformed,
	}, clock.Today(uc.clock, uc.policy.Location), uc.policy.MaxRentalDays, true)
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}
	if !actor.CanActFor(in.UserID) {
		return nil, ErrBookingForbidden
	}

	period, err := booking.NewPeriod(*in.PickupDate, *in.DropoffDate)
	if err != nil {
		return nil, errs.NewValidationError(map[string]string{booking.FieldDropoffDate: err.Error()})
	}

	var (
		created  *booking.Booking
		replayed *BookingResult
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().LockVehicle(ctx, in.VehicleID); err != nil {
			return err
		}
		if in.IdempotencyKey != nil {
			prior, err := uc.replay(ctx, tx, in, period)
			if err != nil || prior != nil {
				replayed = prior
				return err
			}
		}
		v, err := tx.Vehicles().FindByID(ctx, in.VehicleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}
		if !v.IsBookable() {
			return ErrVehicleUnavailable
		}
		if err := uc.ensureAvailable(ctx, tx, in.VehicleID, period, nil); err != nil {
			return err
		}

		b, err := booking.New(in.UserID, in.VehicleID, period, now)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return mapBookingWriteErr(err)
		}
		if in.IdempotencyKey != nil {
			claimed, err := tx.Idempotency().Claim(ctx, shared.IdempotencyRecord{
				Key:             *in.IdempotencyKey,
				UserID:          in.UserID,
				Endpoint:        createBookingEndpoint,
				RequestHash:     createRequestHash(in, period),
				ResultBookingID: b.ID(),
				ExpiresAt:       now.Add(uc.policy.IdempotencyTTL),
			})
			if err != nil {
				return err
			}
			if !claimed {
				return ErrIdempotencyKeyReused
			}
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	warnings := uc.afterCommit(ctx, actor, created, audit.ActionBookingCreated, map[string]any{
		"vehicle_id":   created.VehicleID().String(),
		"pickup_date":  created.Period().Pickup().Format(time.DateOnly),
		"dropoff_date": created.Period().Dropoff().Format(time.DateOnly),
	}, notification.Message{
		Topic:   notification.TopicBookingCreated,
		Subject: "Booking received",
		Body:    fmt.Sprintf("Your booking %s for %s is pending confirmation.", created.ID(), created.Period()),
	})

	return &BookingResult{BookingID: created.ID(), Status: created.Status(), Warnings: warnings}, nil
}

func (uc *bookingCommandsImpl) Reschedule(ctx context.Context, actor auth.Context, bookingID uuid.UUID, in RescheduleInput) (*BookingResult, error) {
	now := uc.clock.Now()
	fields := booking.ValidateSchedule(booking.ScheduleInput{
		PickupDate:  in.PickupDate,
		DropoffDate: in.DropoffDate,
		Malformed:   in.Malformed,
	}, clock.Today(uc.clock, uc.policy.Location), uc.policy.MaxRentalDays, false)
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}
	period, err := booking.NewPeriod(*in.PickupDate, *in.DropoffDate)
	if err != nil {
		return nil, errs.NewValidationError(map[string]string{booking.FieldDropoffDate: err.Error()})
	}

	var (
		updated  *booking.Booking
		previous booking.Period
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.loadForUpdate(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		previous = b.Period()
		if err := b.Reschedule(period, now); err != nil {
			slog.Warn("reschedule refused", "booking_id", bookingID, "status", b.Status(), "error", err.Error())
			return errs.Mark(err, ErrInvalidBookingState)
		}
		if err := tx.Bookings().LockVehicle(ctx, b.VehicleID()); err != nil {
			return err
		}
		if err := uc.ensureAvailable(ctx, tx, b.VehicleID(), period, &bookingID); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateSchedule(ctx, b); err != nil {
			return mapBookingWriteErr(err)
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	warnings := uc.afterCommit(ctx, actor, updated, audit.ActionBookingRescheduled, map[string]any{
		"previous_pickup_date":  previous.Pickup().Format(time.DateOnly),
		"previous_dropoff_date": previous.Dropoff().Format(time.DateOnly),
		"pickup_date":           updated.Period().Pickup().Format(time.DateOnly),
		"dropoff_date":          updated.Period().Dropoff().Format(time.DateOnly),
	}, notification.Message{
		Topic:   notification.TopicBookingRescheduled,
		Subject: "Booking rescheduled",
		Body:    fmt.Sprintf("Your booking %s now runs %s.", updated.ID(), updated.Period()),
	})

	return &BookingResult{BookingID: updated.ID(), Status: updated.Status(), Warnings: warnings}, nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, actor auth.Context, bookingID uuid.UUID) (*CancelResult, error) {
	now := uc.clock.Now()

	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.loadForUpdate(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		if err := b.Cancel(now); err != nil {
			slog.Warn("cancel refused", "booking_id", bookingID, "status", b.Status(), "error", err.Error())
			return errs.Mark(err, ErrInvalidBookingState)
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The cancellation is durable from here on; refund problems only produce warnings.
	var warnings []string
	refunded, refundStatus, warn := uc.refund(ctx, cancelled, now)
	if warn != "" {
		warnings = append(warnings, warn)
	}

	warnings = append(warnings, uc.afterCommit(ctx, actor, cancelled, audit.ActionBookingCancelled, map[string]any{
		"refund_cents":  refunded.Cents(),
		"refund_status": refundStatus,
	}, notification.Message{
		Topic:   notification.TopicBookingCancelled,
		Subject: "Booking cancelled",
		Body:    fmt.Sprintf("Your booking %s was cancelled. Refund: %s.", cancelled.ID(), refunded),
	})...)

	return &CancelResult{BookingID: cancelled.ID(), Refunded: refunded, Warnings: warnings}, nil
}

func (uc *bookingCommandsImpl) ChangeStatus(ctx context.Context, actor auth.Context, bookingID uuid.UUID, target string) (*BookingResult, error) {
	if !actor.Has(auth.PermBookingsManage) {
		return nil, ErrBookingForbidden
	}
	status, err := booking.ParseStatus(target)
	if err != nil {
		slog.Warn("unknown booking status requested", "booking_id", bookingID, "target", target)
		return nil, errs.NewValidationError(map[string]string{"status": "must be one of pending, confirmed, cancelled, completed, paid"})
	}
	if status == booking.StatusCancelled {
		res, err := uc.Cancel(ctx, actor, bookingID)
		if err != nil {
			return nil, err
		}
		return &BookingResult{BookingID: res.BookingID, Status: booking.StatusCancelled, Warnings: res.Warnings}, nil
	}

	now := uc.clock.Now()
	var (
		updated *booking.Booking
		from    booking.Status
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.loadForUpdate(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		from = b.Status()
		if err := b.TransitionTo(status, now); err != nil {
			slog.Warn("status transition refused", "booking_id", bookingID, "from", from, "to", status)
			return errs.Mark(err, ErrInvalidBookingState)
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	warnings := uc.afterCommit(ctx, actor, updated, audit.ActionBookingStatusChanged, map[string]any{
		"from": from.String(),
		"to":   status.String(),
	}, notification.Message{
		Topic:   statusTopic(status),
		Subject: "Booking " + status.String(),
		Body:    fmt.Sprintf("Your booking %s is now %s.", updated.ID(), status),
	})

	return &BookingResult{BookingID: updated.ID(), Status: updated.Status(), Warnings: warnings}, nil
}

func (uc *bookingCommandsImpl) RecordPayment(ctx context.Context, actor auth.Context, bookingID uuid.UUID, in RecordPaymentInput) (*PaymentResult, error) {
	if !actor.Has(auth.PermPaymentsManage) {
		return nil, ErrBookingForbidden
	}

	fields := map[string]string{}
	amount, err := payment.NewMoney(in.AmountCents)
	if err != nil || !amount.IsPositive() {
		fields["amount_cents"] = "must be greater than 0"
	}
	currency := in.Currency
	if currency == "" {
		currency = uc.policy.DefaultCurrency
	}
	status, err := payment.ParseStatus(in.Status)
	if err != nil {
		fields["status"] = "must be one of pending, completed, failed"
	}
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}

	now := uc.clock.Now()
	var recorded *payment.Payment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.loadForUpdate(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		if b.Status() == booking.StatusCancelled {
			return ErrInvalidBookingState
		}
		p, err := payment.NewPayment(bookingID, amount, currency, status, in.ProviderRef, now)
		if err != nil {
			if errs.Is(err, payment.ErrInvalidCurrency) {
				return errs.NewValidationError(map[string]string{"currency": "must be a 3-letter ISO code"})
			}
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		recorded = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	var warnings []string
	if err := uc.audit.LogEvent(ctx, audit.ResourcePayment, recorded.ID(), audit.ActionPaymentRecorded, map[string]any{
		"booking_id":   bookingID.String(),
		"amount_cents": recorded.Amount().Cents(),
		"status":       string(recorded.Status()),
	}, actor.ActorID()); err != nil {
		slog.Warn("audit log failed", "payment_id", recorded.ID(), "booking_id", bookingID, "error", err.Error())
		warnings = append(warnings, WarnAuditFailed)
	}
	return &PaymentResult{PaymentID: recorded.ID(), Warnings: warnings}, nil
}

func (uc *bookingCommandsImpl) loadForUpdate(ctx context.Context, tx shared.Tx, actor auth.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.CanActFor(b.UserID()) {
		return nil, ErrBookingForbidden
	}
	return b, nil
}

// replay returns the booking an earlier request with the same key created, or nil
// when the key is unused. Runs under the vehicle lock, so an identical concurrent
// request is already committed when this one reads.
func (uc *bookingCommandsImpl) replay(ctx context.Context, tx shared.Tx, in CreateBookingInput, period booking.Period) (*BookingResult, error) {
	rec, err := tx.Idempotency().Find(ctx, *in.IdempotencyKey, in.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if rec.Endpoint != createBookingEndpoint || rec.RequestHash != createRequestHash(in, period) {
		return nil, ErrIdempotencyKeyReused
	}
	b, err := tx.Reads().BookingByID(ctx, rec.ResultBookingID)
	if err != nil {
		return nil, err
	}
	return &BookingResult{BookingID: b.ID(), Status: b.Status(), Warnings: []string{}, Replayed: true}, nil
}

func createRequestHash(in CreateBookingInput, period booking.Period) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", in.UserID, in.VehicleID, period)))
	return hex.EncodeToString(sum[:])
}

func (uc *bookingCommandsImpl) ensureAvailable(ctx context.Context, tx shared.Tx, vehicleID uuid.UUID, period booking.Period, excludeID *uuid.UUID) error {
	ok, err := uc.availability.IsAvailable(ctx, tx.Bookings(), vehicleID, period, excludeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBookingConflict
	}
	return nil
}

// refund returns the refunded amount, the recorded refund status and a warning, if any.
func (uc *bookingCommandsImpl) refund(ctx context.Context, b *booking.Booking, cancelledAt time.Time) (payment.Money, string, string) {
	paid, err := uc.uow.CommandReads().LatestCompletedPayment(ctx, b.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return payment.Zero(), "none", ""
		}
		slog.Warn("refund lookup failed", "booking_id", b.ID(), "user_id", b.UserID(), "error", err.Error())
		return payment.Zero(), "unknown", WarnRefundLookupFailed
	}

	amount := uc.policy.Refund.Compute(paid.Amount(), cancelledAt, b.Period().PickupAt(uc.policy.Location))
	if !amount.IsPositive() {
		return payment.Zero(), "none", ""
	}

	rec, err := uc.gateway.ProcessRefundForBooking(ctx, b.ID(), amount)
	if err != nil {
		slog.Warn("refund failed", "booking_id", b.ID(), "user_id", b.UserID(), "amount_cents", amount.Cents(), "error", err.Error())
		return payment.Zero(), string(payment.RefundFailed), WarnRefundFailed
	}
	return rec.Amount, string(rec.Status), ""
}

// afterCommit records the audit entry and notifies the booking owner. Neither can undo
// the committed change; failures come back as warnings.
func (uc *bookingCommandsImpl) afterCommit(ctx context.Context, actor auth.Context, b *booking.Booking, action audit.Action, details map[string]any, msg notification.Message) []string {
	var warnings []string

	details["status"] = b.Status().String()
	if err := uc.audit.LogEvent(ctx, audit.ResourceBooking, b.ID(), action, details, actor.ActorID()); err != nil {
		slog.Warn("audit log failed", "booking_id", b.ID(), "user_id", b.UserID(), "action", action, "error", err.Error())
		warnings = append(warnings, WarnAuditFailed)
	}

	if _, err := uc.notifier.SendNotification(ctx, b.UserID(), notification.ChannelEmail, msg, notification.Options{
		Data: map[string]any{
			"booking_id":   b.ID().String(),
			"vehicle_id":   b.VehicleID().String(),
			"status":       b.Status().String(),
			"pickup_date":  b.Period().Pickup().Format(time.DateOnly),
			"dropoff_date": b.Period().Dropoff().Format(time.DateOnly),
		},
	}); err != nil {
		slog.Warn("notification failed", "booking_id", b.ID(), "user_id", b.UserID(), "topic", msg.Topic, "error", err.Error())
		warnings = append(warnings, WarnNotificationFailed)
	}
	return warnings
}

func mapBookingWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrBookingConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrUserNotFound)
	default:
		return err
	}
}

func statusTopic(s booking.Status) string {
	switch s {
	case booking.StatusConfirmed:
		return notification.TopicBookingConfirmed
	case booking.StatusCompleted:
		return notification.TopicBookingCompleted
	case booking.StatusPaid:
		return notification.TopicBookingPaid
	default:
		return "booking." + s.String()
	}
}
