package booking

import "errors"

var (
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrInvalidTransition   = errors.New("booking status transition not allowed")
	ErrTerminalBooking     = errors.New("booking is in a terminal state")
	ErrDropoffBeforePickup = errors.New("dropoff date must not be before pickup date")
	ErrMissingDate         = errors.New("pickup and dropoff dates are required")
	ErrMissingParticipant  = errors.New("user and vehicle are required")
)
