package bootstrap

import (
	"meeting-rooms/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule needs a config.Service in the graph; each service bundle supplies its own.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
