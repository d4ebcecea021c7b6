package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data with its payment history
type BookingView struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	UserEmail   string        `json:"user_email"`
	VehicleID   uuid.UUID     `json:"vehicle_id"`
	VehicleName string        `json:"vehicle_name"`
	PlateNumber string        `json:"plate_number"`
	PickupDate  time.Time     `json:"pickup_date"`
	DropoffDate time.Time     `json:"dropoff_date"`
	Status      string        `json:"status"`
	Payments    []PaymentView `json:"payments"`
	Refunds     []RefundView  `json:"refunds"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	PickupDate  time.Time `json:"pickup_date"`
	DropoffDate time.Time `json:"dropoff_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	ProviderRef *string   `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type RefundView struct {
	ID            uuid.UUID `json:"id"`
	PaymentID     uuid.UUID `json:"payment_id"`
	AmountCents   int64     `json:"amount_cents"`
	Status        string    `json:"status"`
	FailureReason *string   `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// VehicleView represents read-optimized vehicle data
type VehicleView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PlateNumber    string    `json:"plate_number"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ConflictView is an active booking blocking a requested range
type ConflictView struct {
	BookingID   uuid.UUID `json:"booking_id"`
	PickupDate  time.Time `json:"pickup_date"`
	DropoffDate time.Time `json:"dropoff_date"`
	Status      string    `json:"status"`
}

type AvailabilityView struct {
	VehicleID   uuid.UUID      `json:"vehicle_id"`
	PickupDate  time.Time      `json:"pickup_date"`
	DropoffDate time.Time      `json:"dropoff_date"`
	Available   bool           `json:"available"`
	Conflicts   []ConflictView `json:"conflicts"`
}

type AuditLogView struct {
	ID         uuid.UUID      `json:"id"`
	Resource   string         `json:"resource"`
	ResourceID uuid.UUID      `json:"resource_id"`
	Action     string         `json:"action"`
	ActorID    *uuid.UUID     `json:"actor_id,omitempty"`
	Context    map[string]any `json:"context"`
	CreatedAt  time.Time      `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
