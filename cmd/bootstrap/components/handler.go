package components

import (
	"courtbook/internal/handler"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewClubHandler,
		api.NewCourtHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			club *api.ClubHandler,
			court *api.CourtHandler,
			reservation *api.ReservationHandler,
		) handler.Handlers {
			return handler.Handlers{Auth: auth, Club: club, Court: court, Reservation: reservation}
		},
		func() *gin.Engine {
			return gin.New()
		},
	),
	fx.Invoke(handler.NewRouter),
)
