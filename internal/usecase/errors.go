package usecase

import "meeting-rooms/internal/pkg/errs"

var (
	ErrMissingFields      = errs.ErrMissingFields
	ErrInvalidDate        = errs.ErrInvalidDate
	ErrPastDate           = errs.ErrPastDate
	ErrRoomNotFound       = errs.ErrRoomNotFound
	ErrBookingNotFound    = errs.ErrBookingNotFound
	ErrBookingConflict    = errs.ErrBookingConflict
	ErrInvalidCredentials = errs.ErrInvalidCredentials
	ErrUserNotFound       = errs.ErrUserNotFound

	// Error markers for categorization
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrTokenGeneration         = errs.New("token generation failed")
	ErrForbidden               = errs.New("forbidden")
)
