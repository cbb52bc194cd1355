package components

import (
	"meeting-rooms/internal/infra/query"
	"meeting-rooms/internal/infra/repository"
	"meeting-rooms/internal/infra/weatherstore"
	"meeting-rooms/internal/pkg/config"
	"meeting-rooms/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var baseOption = fx.Provide(
	NewDBTX,
)

var UserPersistenceModule = fx.Module("persistence/user",
	baseOption,
	fx.Provide(
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.UserQueries)),
		),
		fx.Annotate(
			repository.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
		),
	),
)

var RoomPersistenceModule = fx.Module("persistence/room",
	baseOption,
	fx.Provide(
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.RoomQueries)),
		),
		fx.Annotate(
			repository.NewRoomReadStore,
			fx.As(new(usecase.RoomReadStore)),
		),
	),
)

var BookingPersistenceModule = fx.Module("persistence/booking",
	baseOption,
	fx.Provide(
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.BookingQueries)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
	),
)

var ForecastStoreModule = fx.Module("persistence/forecast",
	fx.Provide(
		NewForecastStore,
	),
)

func NewQueries() *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewForecastStore(client *redis.Client, cfg config.Config) usecase.ForecastStore {
	return weatherstore.NewRedisStore(client, cfg.Redis.KeyPrefix, cfg.Redis.Timeout)
}
