package bootstrap

import (
	"log/slog"
	"os"

	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// LoggerModule writes to stderr; stdout carries command output.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// ServerLoggerModule writes to stdout.
var ServerLoggerModule = fx.Module("logger",
	fx.Provide(
		NewServerLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return logger.NewLogger(cfg.Log, os.Stderr).GetSlogLogger()
}

func NewServerLogger(cfg config.Config) *slog.Logger {
	logCfg := cfg.Log
	logCfg.Level = cfg.DevServer.LogLevel
	return logger.NewLogger(logCfg, os.Stdout).GetSlogLogger()
}

// FxLogger routes fx lifecycle events through the application logger.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger}
}
