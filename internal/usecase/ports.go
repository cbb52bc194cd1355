package usecase

import (
	"context"

	"meeting-rooms/internal/domain/booking"
	"meeting-rooms/internal/domain/room"
	"meeting-rooms/internal/domain/user"
	"meeting-rooms/internal/domain/weather"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

type UserReadStore interface {
	// FindByLogin returns a NOT_FOUND repository error when no account matches.
	FindByLogin(ctx context.Context, login string) (*user.User, error)
}

type RoomReadStore interface {
	List(ctx context.Context) ([]room.Room, error)
	FindByID(ctx context.Context, id int64) (*room.Room, error)
}

type BookingRepository interface {
	ExistsForRoomOnDate(ctx context.Context, roomID int64, date booking.Date) (bool, error)
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*booking.Booking, error)
	// FindByID returns a NOT_FOUND repository error when the id is absent.
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	// Delete returns the removed row, or a NOT_FOUND repository error.
	Delete(ctx context.Context, id int64) (*booking.Booking, error)
}

// RoomCatalog resolves a room through the room service.
type RoomCatalog interface {
	GetRoom(ctx context.Context, id int64) (booking.RoomSnapshot, error)
}

// WeatherProvider resolves a temperature through the weather service.
type WeatherProvider interface {
	Temperature(ctx context.Context, location string, date booking.Date) (float64, error)
}

type ForecastStore interface {
	Get(ctx context.Context, locationID, date string) (*weather.Forecast, bool, error)
	Put(ctx context.Context, f weather.Forecast) error
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, username string) (string, error)
}
