package response

import (
	"time"

	"rental-backoffice/internal/usecase/commands"
	"rental-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	UserEmail   string            `json:"user_email"`
	VehicleID   uuid.UUID         `json:"vehicle_id"`
	VehicleName string            `json:"vehicle_name"`
	PlateNumber string            `json:"plate_number"`
	PickupDate  Date              `json:"pickup_date"`
	DropoffDate Date              `json:"dropoff_date"`
	Status      string            `json:"status"`
	Payments    []PaymentResponse `json:"payments"`
	Refunds     []RefundResponse  `json:"refunds"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	ProviderRef *string   `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type RefundResponse struct {
	ID            uuid.UUID `json:"id"`
	PaymentID     uuid.UUID `json:"payment_id"`
	AmountCents   int64     `json:"amount_cents"`
	Status        string    `json:"status"`
	FailureReason *string   `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	PickupDate  Date      `json:"pickup_date"`
	DropoffDate Date      `json:"dropoff_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingCommandResponse answers create, reschedule and status changes.
type BookingCommandResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
	Warnings  []string  `json:"warnings"`
}

type CancelBookingResponse struct {
	BookingID     uuid.UUID `json:"booking_id"`
	Status        string    `json:"status"`
	RefundedCents int64     `json:"refunded_cents"`
	Refunded      string    `json:"refunded"`
	Warnings      []string  `json:"warnings"`
}

type PaymentCommandResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`
	Warnings  []string  `json:"warnings"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := mapInto[BookingResponse](v)
	if res.Payments == nil {
		res.Payments = []PaymentResponse{}
	}
	if res.Refunds == nil {
		res.Refunds = []RefundResponse{}
	}
	return &res
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) Page[BookingListItemResponse] {
	return Page[BookingListItemResponse]{
		Items:      mapSlice[*queries.BookingListItem, BookingListItemResponse](items),
		NextCursor: cursorString(next),
	}
}

func FromBookingResult(r *commands.BookingResult) BookingCommandResponse {
	return BookingCommandResponse{
		BookingID: r.BookingID,
		Status:    r.Status.String(),
		Warnings:  warnings(r.Warnings),
	}
}

func FromCancelResult(r *commands.CancelResult) CancelBookingResponse {
	return CancelBookingResponse{
		BookingID:     r.BookingID,
		Status:        "cancelled",
		RefundedCents: r.Refunded.Cents(),
		Refunded:      r.Refunded.String(),
		Warnings:      warnings(r.Warnings),
	}
}

func FromPaymentResult(r *commands.PaymentResult) PaymentCommandResponse {
	return PaymentCommandResponse{PaymentID: r.PaymentID, Warnings: warnings(r.Warnings)}
}

func warnings(w []string) []string {
	if w == nil {
		return []string{}
	}
	return w
}

func cursorString(c *queries.Cursor) *string {
	if c == nil || c.After == "" {
		return nil
	}
	s := c.After
	return &s
}
