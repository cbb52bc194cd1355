package bootstrap

import (
	"meeting-rooms/cmd/bootstrap/components"
	"meeting-rooms/internal/pkg/config"

	"go.uber.org/fx"
)

// base is what every HTTP service needs before its own components.
var base = fx.Options(
	ConfigModule,
	LoggerModule,
	components.ClockModule,
	components.HTTPModule,
)

var AuthApp = fx.Options(
	fx.Supply(config.AuthService),
	base,
	DBModule,
	JWTModule,
	components.UserPersistenceModule,
	components.AuthUseCaseModule,
	components.AuthHandlerModule,
)

var RoomApp = fx.Options(
	fx.Supply(config.RoomService),
	base,
	DBModule,
	components.RoomPersistenceModule,
	components.RoomUseCaseModule,
	components.RoomHandlerModule,
)

var BookingApp = fx.Options(
	fx.Supply(config.BookingService),
	base,
	DBModule,
	JWTModule,
	MQModule,
	DownstreamModule,
	components.BookingPersistenceModule,
	components.BookingUseCaseModule,
	components.BookingHandlerModule,
)

var WeatherApp = fx.Options(
	fx.Supply(config.WeatherService),
	base,
	RedisModule,
	components.ForecastStoreModule,
	components.WeatherUseCaseModule,
	components.WeatherHandlerModule,
)
