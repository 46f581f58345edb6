package components

import (
	"log/slog"

	"courtbook/internal/infra/httpclient"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/booking"
	"courtbook/internal/usecase/session"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSessionModule,
	usecaseBookingModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (booking.Options, error) {
		return booking.OptionsFromConfig(cfg.Booking)
	},
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		fx.Annotate(
			session.NewManager,
			fx.As(fx.Self()),
			fx.As(new(booking.SessionReader)),
		),
	),
	fx.Invoke(connectSession),
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		booking.NewWorkflow,
		booking.NewReservationList,
	),
)

// connectSession lets the HTTP client reset the session manager when the
// server rejects the stored token.
func connectSession(client *httpclient.Client, manager *session.Manager, logger *slog.Logger) {
	client.SetSessionListener(manager)
	logger.Debug("session listener attached")
}
