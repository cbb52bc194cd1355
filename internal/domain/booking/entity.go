package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidUserID   = errors.New("user id must be positive")
	ErrInvalidRoomID   = errors.New("room id must be positive")
	ErrMissingDate     = errors.New("date is required")
	ErrMissingRoomName = errors.New("room name is required")
)

// Booking reserves one room for one calendar day. Never updated in place.
type Booking struct {
	id         int64
	userID     int64
	roomID     int64
	roomName   string
	date       Date
	totalPrice Money
	createdAt  time.Time
}

func NewBooking(userID, roomID int64, roomName string, date Date, total Money) (*Booking, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if roomID <= 0 {
		return nil, ErrInvalidRoomID
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	roomName = strings.TrimSpace(roomName)
	if roomName == "" {
		return nil, ErrMissingRoomName
	}

	return &Booking{
		userID:     userID,
		roomID:     roomID,
		roomName:   roomName,
		date:       date,
		totalPrice: total,
	}, nil
}

// FromQuote builds the booking a confirmed quote turns into. An empty roomName
// falls back to the catalog name.
func FromQuote(userID int64, roomName string, q Quote) (*Booking, error) {
	if strings.TrimSpace(roomName) == "" {
		roomName = q.Room.Name
	}
	return NewBooking(userID, q.Room.ID, roomName, q.Date, q.Total)
}

// Reconstruct rehydrates a persisted booking.
func Reconstruct(id, userID, roomID int64, roomName string, date Date, total Money, createdAt time.Time) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		roomID:     roomID,
		roomName:   roomName,
		date:       date,
		totalPrice: total,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) UserID() int64        { return b.userID }
func (b *Booking) RoomID() int64        { return b.roomID }
func (b *Booking) RoomName() string     { return b.roomName }
func (b *Booking) Date() Date           { return b.date }
func (b *Booking) TotalPrice() Money    { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
