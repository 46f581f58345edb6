package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtbook/internal/domain/user"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Club        *api.ClubHandler
	Court       *api.CourtHandler
	Reservation *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg.DevServer, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.NewLogger(logger).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, cfg config.DevServerConfig, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	public := authMiddleware.Public(cfg.StrictPublic)
	owner := authMiddleware.RequireRoleAtLeast(user.RoleClubOwner)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/validate", Handler: h.Auth.Validate},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		clubs := apiGroup.Group("/clubs")
		{
			addRoutes(clubs, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Club.List, Mw: []gin.HandlerFunc{public}},
				{Method: http.MethodGet, Path: "/exists", Handler: h.Club.ExistsByName, Mw: []gin.HandlerFunc{public}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Club.Get, Mw: []gin.HandlerFunc{public}},
				{Method: http.MethodGet, Path: "/:id/exists", Handler: h.Club.ExistsByID, Mw: []gin.HandlerFunc{public}},
				{Method: http.MethodGet, Path: "/:id/is-open", Handler: h.Club.IsOpen, Mw: []gin.HandlerFunc{public}},
				{Method: http.MethodGet, Path: "/:id/with-user", Handler: h.Club.GetWithUser, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "", Handler: h.Club.Create, Mw: []gin.HandlerFunc{requireAuth, owner}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Club.Update, Mw: []gin.HandlerFunc{requireAuth, owner}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Club.Delete, Mw: []gin.HandlerFunc{requireAuth, owner}},
			})
		}

		courts := apiGroup.Group("/courts")
		{
			addRoutes(courts, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Court.List, Mw: []gin.HandlerFunc{public}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Court.Get, Mw: []gin.HandlerFunc{public}},
				{Method: http.MethodGet, Path: "/:id/available", Handler: h.Court.Available, Mw: []gin.HandlerFunc{public}},
				{Method: http.MethodPost, Path: "", Handler: h.Court.Create, Mw: []gin.HandlerFunc{requireAuth, owner}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Court.Update, Mw: []gin.HandlerFunc{requireAuth, owner}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Court.Delete, Mw: []gin.HandlerFunc{requireAuth, owner}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListReservations},
				{Method: http.MethodGet, Path: "/my-reservations", Handler: h.Reservation.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.UpdateReservation},
				{Method: http.MethodDelete, Path: "/:id/cancel", Handler: h.Reservation.CancelReservation},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the development backend is up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
