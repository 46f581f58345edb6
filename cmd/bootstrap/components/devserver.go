package components

import (
	"context"
	"log/slog"

	"courtbook/internal/devserver"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"

	"go.uber.org/fx"
)

var DevServerModule = fx.Module("devserver",
	fx.Provide(
		clock.NewRealClock,
		devserver.NewStore,
		devserver.NewAuthUseCase,
		devserver.NewCatalogUseCase,
		devserver.NewReservationUseCase,
		func(a devserver.AuthUseCase) devserver.TokenValidator { return a },
	),
	fx.Invoke(seedStore),
)

func seedStore(lc fx.Lifecycle, cfg config.Config, authUC devserver.AuthUseCase, catalog devserver.CatalogUseCase, logger *slog.Logger) {
	if !cfg.DevServer.Seed {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return devserver.Seed(ctx, authUC, catalog, logger)
		},
	})
}
