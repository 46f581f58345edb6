package bootstrap

import (
	"courtbook/cmd/bootstrap/components"
	"courtbook/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads .env (when present) and the environment once per process.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module assembles the courtbook command-line client.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	components.ClientModule,
	components.UseCaseModule,
	components.CLIModule,
)

// DevServerModule assembles the in-memory development backend.
var DevServerModule = fx.Options(
	ConfigModule,
	ServerLoggerModule,
	TracingModule,
	JWTModule,
	components.DevServerModule,
	components.HandlerModule,
)
