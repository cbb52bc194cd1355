package response

import (
	"time"

	"meeting-rooms/internal/domain/booking"
)

const (
	bookingConfirmedMessage = "Booking confirmed!"
	bookingCancelledMessage = "Booking cancelled"
)

type QuoteResponse struct {
	Room          string  `json:"room"`
	RoomID        int64   `json:"room_id"`
	Date          string  `json:"date"`
	Location      string  `json:"location"`
	Temperature   float64 `json:"temperature"`
	BasePrice     float64 `json:"base_price"`
	Surcharge     float64 `json:"surcharge"`
	SurchargeRate float64 `json:"surcharge_rate"`
	TotalPrice    float64 `json:"total_price"`
	Preview       bool    `json:"preview,omitempty"`
}

type CreatedBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
	// same as booking_id; the frontend receipt reads "id"
	ID int64 `json:"id"`
	QuoteResponse
}

type BookingResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	RoomID     int64     `json:"room_id"`
	RoomName   string    `json:"room_name"`
	Date       string    `json:"date"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

type CancelledBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
}

// FromQuote renders a quote. roomName is the name the client asked for; the
// catalog name is used when it is empty.
func FromQuote(q booking.Quote, roomName string, preview bool) QuoteResponse {
	if roomName == "" {
		roomName = q.Room.Name
	}
	return QuoteResponse{
		Room:          roomName,
		RoomID:        q.Room.ID,
		Date:          q.Date.String(),
		Location:      q.Room.Location,
		Temperature:   q.Temperature,
		BasePrice:     q.BasePrice().Amount(),
		Surcharge:     q.Surcharge.Amount.Amount(),
		SurchargeRate: q.Surcharge.Rate(),
		TotalPrice:    q.Total.Amount(),
		Preview:       preview,
	}
}

func NewCreatedBookingResponse(bookingID int64, q booking.Quote, roomName string) CreatedBookingResponse {
	return CreatedBookingResponse{
		Message:       bookingConfirmedMessage,
		BookingID:     bookingID,
		ID:            bookingID,
		QuoteResponse: FromQuote(q, roomName, false),
	}
}

func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID(),
		UserID:     b.UserID(),
		RoomID:     b.RoomID(),
		RoomName:   b.RoomName(),
		Date:       b.Date().String(),
		TotalPrice: b.TotalPrice().Amount(),
		CreatedAt:  b.CreatedAt(),
	}
}

func FromBookings(bookings []*booking.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = FromBooking(b)
	}
	return resp
}

func NewCancelledBookingResponse(id int64) CancelledBookingResponse {
	return CancelledBookingResponse{Message: bookingCancelledMessage, BookingID: id}
}
