//go:build unit

package repository

import (
	"context"
	"time"

	"meeting-rooms/internal/infra/query"

	"github.com/stretchr/testify/mock"
)

// MockQueries stands in for *query.Queries in every repository test.
type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) FindUserByEmail(ctx context.Context, db query.DBTX, email string) (query.User, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *MockQueries) ListRooms(ctx context.Context, db query.DBTX) ([]query.Room, error) {
	args := m.Called(ctx, db)
	rows, _ := args.Get(0).([]query.Room)
	return rows, args.Error(1)
}

func (m *MockQueries) FindRoomByID(ctx context.Context, db query.DBTX, id int64) (query.Room, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Room), args.Error(1)
}

func (m *MockQueries) BookingExistsForRoomOnDate(ctx context.Context, db query.DBTX, roomID int64, date time.Time) (bool, error) {
	args := m.Called(ctx, db, roomID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockQueries) CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) (query.Booking, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(query.Booking), args.Error(1)
}

func (m *MockQueries) ListBookingsByUser(ctx context.Context, db query.DBTX, userID int64) ([]query.Booking, error) {
	args := m.Called(ctx, db, userID)
	rows, _ := args.Get(0).([]query.Booking)
	return rows, args.Error(1)
}

func (m *MockQueries) GetBooking(ctx context.Context, db query.DBTX, id int64) (query.Booking, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Booking), args.Error(1)
}

func (m *MockQueries) DeleteBooking(ctx context.Context, db query.DBTX, id int64) (query.Booking, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Booking), args.Error(1)
}
