package usecase

import (
	"time"

	"meeting-rooms/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingDeleted = "booking.deleted"
)

type BookingEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Type       string    `json:"type"`
	BookingID  int64     `json:"booking_id"`
	UserID     int64     `json:"user_id"`
	RoomID     int64     `json:"room_id"`
	RoomName   string    `json:"room_name"`
	Date       string    `json:"date"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newBookingEvent(eventType string, b *booking.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		BookingID:  b.ID(),
		UserID:     b.UserID(),
		RoomID:     b.RoomID(),
		RoomName:   b.RoomName(),
		Date:       b.Date().String(),
		TotalPrice: b.TotalPrice().Amount(),
		OccurredAt: at.UTC(),
	}
}
