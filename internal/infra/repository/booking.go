package repository

import (
	"context"
	"time"

	"meeting-rooms/internal/domain/booking"
	"meeting-rooms/internal/infra"
	"meeting-rooms/internal/infra/query"
	"meeting-rooms/internal/pkg/pgconv"
)

type BookingQueries interface {
	BookingExistsForRoomOnDate(ctx context.Context, db query.DBTX, roomID int64, date time.Time) (bool, error)
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) (query.Booking, error)
	ListBookingsByUser(ctx context.Context, db query.DBTX, userID int64) ([]query.Booking, error)
	GetBooking(ctx context.Context, db query.DBTX, id int64) (query.Booking, error)
	DeleteBooking(ctx context.Context, db query.DBTX, id int64) (query.Booking, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) ExistsForRoomOnDate(ctx context.Context, roomID int64, date booking.Date) (bool, error) {
	exists, err := r.queries.BookingExistsForRoomOnDate(ctx, r.db, roomID, date.Time())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing booking", err)
	}
	return exists, nil
}

// Create inserts b. A (room_id, date) unique violation surfaces as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.CreateBooking(ctx, r.db, query.CreateBookingParams{
		UserID:     b.UserID(),
		RoomID:     b.RoomID(),
		RoomName:   pgconv.TextFromString(b.RoomName()),
		Date:       b.Date().Time(),
		TotalPrice: b.TotalPrice().Amount(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return toBooking(row), nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	bookings := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = toBooking(row)
	}
	return bookings, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBooking(row), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) (*booking.Booking, error) {
	row, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete booking", err)
	}
	return toBooking(row), nil
}

func toBooking(row query.Booking) *booking.Booking {
	total, err := booking.NewMoneyFromAmount(row.TotalPrice)
	if err != nil {
		total = booking.NewMoney(0)
	}
	return booking.Reconstruct(
		row.ID,
		row.UserID,
		row.RoomID,
		pgconv.StringFromText(row.RoomName),
		booking.DateOf(row.Date),
		total,
		pgconv.TimeFromTimestamp(row.CreatedAt),
	)
}
