package query

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const bookingExistsForRoomOnDate = `-- name: BookingExistsForRoomOnDate :one
SELECT EXISTS (
    SELECT 1 FROM bookings WHERE room_id = $1 AND date = $2
)
`

func (q *Queries) BookingExistsForRoomOnDate(ctx context.Context, db DBTX, roomID int64, date time.Time) (bool, error) {
	row := db.QueryRow(ctx, bookingExistsForRoomOnDate, roomID, pgtype.Date{Time: date, Valid: true})
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (user_id, room_id, room_name, date, total_price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, room_id, room_name, date, total_price, created_at
`

type CreateBookingParams struct {
	UserID     int64
	RoomID     int64
	RoomName   pgtype.Text
	Date       time.Time
	TotalPrice float64
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Booking, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.UserID,
		arg.RoomID,
		arg.RoomName,
		pgtype.Date{Time: arg.Date, Valid: true},
		arg.TotalPrice,
	)
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.RoomID,
		&i.RoomName,
		&i.Date,
		&i.TotalPrice,
		&i.CreatedAt,
	)
	return i, err
}

const listBookingsByUser = `-- name: ListBookingsByUser :many
SELECT id, user_id, room_id, room_name, date, total_price, created_at
FROM bookings
WHERE user_id = $1
ORDER BY date DESC, id DESC
`

func (q *Queries) ListBookingsByUser(ctx context.Context, db DBTX, userID int64) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Booking{}
	for rows.Next() {
		var i Booking
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.RoomID,
			&i.RoomName,
			&i.Date,
			&i.TotalPrice,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBooking = `-- name: GetBooking :one
SELECT id, user_id, room_id, room_name, date, total_price, created_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id int64) (Booking, error) {
	row := db.QueryRow(ctx, getBooking, id)
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.RoomID,
		&i.RoomName,
		&i.Date,
		&i.TotalPrice,
		&i.CreatedAt,
	)
	return i, err
}

const deleteBooking = `-- name: DeleteBooking :one
DELETE FROM bookings
WHERE id = $1
RETURNING id, user_id, room_id, room_name, date, total_price, created_at
`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id int64) (Booking, error) {
	row := db.QueryRow(ctx, deleteBooking, id)
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.RoomID,
		&i.RoomName,
		&i.Date,
		&i.TotalPrice,
		&i.CreatedAt,
	)
	return i, err
}
