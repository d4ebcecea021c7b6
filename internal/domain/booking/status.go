package booking

import "slices"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	// StatusPaid is a confirmed booking whose payment was received.
	StatusPaid Status = "paid"
)

// allowed is the complete transition allow-list. Anything not listed is refused.
var allowed = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted, StatusPaid},
}

// activeStatuses hold the vehicle for their date range.
var activeStatuses = []Status{StatusPending, StatusConfirmed, StatusPaid}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusPaid:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func (s Status) IsActive() bool {
	return slices.Contains(activeStatuses, s)
}

func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(allowed[s], target)
}

// AllowedTargets lists the statuses reachable from s.
func (s Status) AllowedTargets() []Status {
	return slices.Clone(allowed[s])
}

func ActiveStatuses() []Status {
	return slices.Clone(activeStatuses)
}
