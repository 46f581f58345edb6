package components

import (
	"log/slog"

	"courtbook/internal/handler/cli"
	"courtbook/internal/infra/api"
	"courtbook/internal/infra/credstore"
	"courtbook/internal/infra/httpclient"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/booking"
	"courtbook/internal/usecase/session"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		fx.Annotate(
			NewCredentialStore,
			fx.As(new(credstore.Store)),
		),
		fx.Annotate(
			NewHTTPClient,
			fx.As(fx.Self()),
			fx.As(new(api.Requester)),
		),
	),
	clientAPIModule,
)

var clientAPIModule = fx.Module("client/api",
	fx.Provide(
		fx.Annotate(
			api.NewAuthAPI,
			fx.As(new(session.AuthAPI)),
		),
		fx.Annotate(
			api.NewClubAPI,
			fx.As(new(cli.ClubCatalog)),
		),
		fx.Annotate(
			api.NewCourtAPI,
			fx.As(new(booking.CourtAPI)),
			fx.As(new(cli.CourtCatalog)),
		),
		fx.Annotate(
			api.NewReservationAPI,
			fx.As(new(booking.ReservationAPI)),
		),
	),
)

// NewCredentialStore opens the credentials file, CREDENTIALS_PATH or the
// per-user default location.
func NewCredentialStore(cfg config.Config, logger *slog.Logger) (*credstore.FileStore, error) {
	path := cfg.Store.Path
	if path == "" {
		p, err := credstore.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return credstore.NewFileStore(path, logger)
}

func NewHTTPClient(cfg config.Config, store credstore.Store, navigator httpclient.Navigator, logger *slog.Logger) (*httpclient.Client, error) {
	return httpclient.NewClient(cfg.API, store, navigator, logger)
}
