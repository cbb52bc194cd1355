package errs

import "errors"

// Domain-specific sentinel errors shared by the four services
var (
	// Validation errors
	ErrMissingFields = errors.New("missing fields")
	ErrInvalidDate   = errors.New("invalid date")
	ErrPastDate      = errors.New("date is in the past")

	// Room errors
	ErrRoomNotFound = errors.New("room not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingConflict = errors.New("room already booked for that date")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Downstream errors
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
