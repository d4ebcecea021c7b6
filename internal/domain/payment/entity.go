package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrZeroAmount      = errors.New("payment amount must be positive")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Payment struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	amount      Money
	currency    string
	status      Status
	providerRef *string
	createdAt   time.Time
}

func NewPayment(bookingID uuid.UUID, amount Money, currency string, status Status, providerRef *string, now time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrZeroAmount
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		amount:      amount,
		currency:    currency,
		status:      status,
		providerRef: providerRef,
		createdAt:   now,
	}, nil
}

func ReconstructPayment(id, bookingID uuid.UUID, amount Money, currency string, status Status, providerRef *string, createdAt time.Time) *Payment {
	return &Payment{
		id:          id,
		bookingID:   bookingID,
		amount:      amount,
		currency:    currency,
		status:      status,
		providerRef: providerRef,
		createdAt:   createdAt,
	}
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) BookingID() uuid.UUID { return p.bookingID }
func (p *Payment) Amount() Money        { return p.amount }
func (p *Payment) Currency() string     { return p.currency }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) ProviderRef() *string { return p.providerRef }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) IsCompleted() bool    { return p.status == StatusCompleted }

type RefundStatus string

const (
	RefundSucceeded RefundStatus = "succeeded"
	RefundFailed    RefundStatus = "failed"
)

// Refund is the transaction record returned by the payment gateway.
type Refund struct {
	ID            uuid.UUID
	PaymentID     uuid.UUID
	BookingID     uuid.UUID
	Amount        Money
	Status        RefundStatus
	ProviderRef   *string
	FailureReason *string
	CreatedAt     time.Time
}

func NewRefund(p *Payment, amount Money, status RefundStatus, providerRef, failureReason *string, now time.Time) *Refund {
	return &Refund{
		ID:            uuid.New(),
		PaymentID:     p.ID(),
		BookingID:     p.BookingID(),
		Amount:        amount,
		Status:        status,
		ProviderRef:   providerRef,
		FailureReason: failureReason,
		CreatedAt:     now,
	}
}
