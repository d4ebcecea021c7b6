package audit

import (
	"errors"
	"maps"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidEntry = errors.New("audit entry requires resource and action")

type Resource string

const (
	ResourceBooking Resource = "booking"
	ResourceVehicle Resource = "vehicle"
	ResourcePayment Resource = "payment"
	ResourceUser    Resource = "user"
)

type Action string

const (
	ActionBookingCreated       Action = "booking_created"
	ActionBookingRescheduled   Action = "booking_rescheduled"
	ActionBookingCancelled     Action = "booking_cancelled"
	ActionBookingStatusChanged Action = "booking_status_changed"
	ActionRefundIssued         Action = "refund_issued"
	ActionRefundFailed         Action = "refund_failed"
	ActionPaymentRecorded      Action = "payment_recorded"
	ActionVehicleStatusChanged Action = "vehicle_status_changed"
	ActionUserLoggedIn         Action = "user_logged_in"
	ActionUserLoggedOut        Action = "user_logged_out"
)

// Entry is an immutable record of who did what to which resource and when.
// There are no setters; the audit table is insert-only.
type Entry struct {
	id         uuid.UUID
	resource   Resource
	resourceID uuid.UUID
	action     Action
	actorID    *uuid.UUID
	context    map[string]any
	createdAt  time.Time
}

func NewEntry(resource Resource, resourceID uuid.UUID, action Action, context map[string]any, actorID *uuid.UUID, now time.Time) (*Entry, error) {
	if resource == "" || action == "" {
		return nil, ErrInvalidEntry
	}
	return &Entry{
		id:         uuid.New(),
		resource:   resource,
		resourceID: resourceID,
		action:     action,
		actorID:    actorID,
		context:    maps.Clone(context),
		createdAt:  now,
	}, nil
}

func ReconstructEntry(id uuid.UUID, resource Resource, resourceID uuid.UUID, action Action, context map[string]any, actorID *uuid.UUID, createdAt time.Time) *Entry {
	return &Entry{
		id:         id,
		resource:   resource,
		resourceID: resourceID,
		action:     action,
		actorID:    actorID,
		context:    context,
		createdAt:  createdAt,
	}
}

func (e *Entry) ID() uuid.UUID           { return e.id }
func (e *Entry) Resource() Resource      { return e.resource }
func (e *Entry) ResourceID() uuid.UUID   { return e.resourceID }
func (e *Entry) Action() Action          { return e.action }
func (e *Entry) ActorID() *uuid.UUID     { return e.actorID }
func (e *Entry) CreatedAt() time.Time    { return e.createdAt }
func (e *Entry) Context() map[string]any { return maps.Clone(e.context) }
