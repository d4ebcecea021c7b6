package request

import (
	"time"

	"rental-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
)

// IDs and dates arrive as strings and are parsed in ToInput, so a malformed
// value is reported next to every other invalid field instead of failing the
// whole body at bind time.
type CreateBookingRequest struct {
	UserID      string `json:"user_id,omitempty" format:"uuid"`
	VehicleID   string `json:"vehicle_id" format:"uuid"`
	PickupDate  string `json:"pickup_date" example:"2024-06-01"`
	DropoffDate string `json:"dropoff_date" example:"2024-06-05"`
}

// ToInput books for the caller unless staff name another user.
func (r CreateBookingRequest) ToInput(caller uuid.UUID) commands.CreateBookingInput {
	p := fieldParser{}
	in := commands.CreateBookingInput{
		UserID:      caller,
		VehicleID:   p.uuid("vehicle_id", r.VehicleID),
		PickupDate:  p.date("pickup_date", r.PickupDate),
		DropoffDate: p.date("dropoff_date", r.DropoffDate),
	}
	if id := p.uuid("user_id", r.UserID); id != uuid.Nil {
		in.UserID = id
	}
	in.Malformed = p.errors()
	return in
}

type RescheduleBookingRequest struct {
	PickupDate  string `json:"pickup_date" example:"2024-06-06"`
	DropoffDate string `json:"dropoff_date" example:"2024-06-10"`
}

func (r RescheduleBookingRequest) ToInput() commands.RescheduleInput {
	p := fieldParser{}
	return commands.RescheduleInput{
		PickupDate:  p.date("pickup_date", r.PickupDate),
		DropoffDate: p.date("dropoff_date", r.DropoffDate),
		Malformed:   p.errors(),
	}
}

type RecordPaymentRequest struct {
	AmountCents int64   `json:"amount_cents" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"omitempty,len=3"`
	Status      string  `json:"status" binding:"required,oneof=pending completed failed"`
	ProviderRef *string `json:"provider_ref,omitempty"`
}

func (r RecordPaymentRequest) ToInput() commands.RecordPaymentInput {
	return commands.RecordPaymentInput{
		AmountCents: r.AmountCents,
		Currency:    r.Currency,
		Status:      r.Status,
		ProviderRef: r.ProviderRef,
	}
}

type ListBookingsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// fieldParser collects format errors keyed by request field name. Empty
// values are left to the usecase, which reports them as required.
type fieldParser map[string]string

func (p fieldParser) uuid(field, s string) uuid.UUID {
	if s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		p[field] = "must be a UUID"
		return uuid.Nil
	}
	return id
}

func (p fieldParser) uuidPtr(field, s string) *uuid.UUID {
	if id := p.uuid(field, s); id != uuid.Nil {
		return &id
	}
	return nil
}

func (p fieldParser) date(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		p[field] = "must be a date in YYYY-MM-DD format"
		return nil
	}
	return &t
}

// errors is nil when every field parsed.
func (p fieldParser) errors() map[string]string {
	if len(p) == 0 {
		return nil
	}
	return p
}
