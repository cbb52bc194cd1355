package query

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    pgtype.Timestamp
}

type Room struct {
	ID           int64
	Name         string
	Capacity     int32
	Location     string
	PricePerHour float64
}

type Booking struct {
	ID         int64
	UserID     int64
	RoomID     int64
	RoomName   pgtype.Text
	Date       time.Time
	TotalPrice float64
	CreatedAt  pgtype.Timestamp
}
