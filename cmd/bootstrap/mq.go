package bootstrap

import (
	"context"
	"log/slog"

	"meeting-rooms/internal/infra/mq"
	"meeting-rooms/internal/pkg/config"
	"meeting-rooms/internal/usecase"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to dropping events when AMQP_URL is unset or
// the broker cannot be reached. Bookings never depend on the broker.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) usecase.EventPublisher {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL not set, booking events disabled")
		return mq.NopPublisher{}
	}

	publisher, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		logger.Warn("rabbitmq unreachable, booking events disabled", slog.String("error", err.Error()))
		return mq.NopPublisher{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
