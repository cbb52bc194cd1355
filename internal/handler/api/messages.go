package api

// Client-facing error texts. The frontend shows them verbatim.
const (
	msgMissingFields    = "Missing fields"
	msgRoomNotFound     = "Room not found"
	msgBookingNotFound  = "Booking not found"
	msgBookingConflict  = "This room is already booked for that date."
	msgInvalidRequest   = "Invalid request format"
	msgInvalidBookingID = "Invalid booking ID"
	msgInvalidUserID    = "Invalid user ID"
	msgForbidden        = "Token does not belong to this user"
)
