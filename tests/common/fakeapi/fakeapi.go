//go:build unit || e2e

// Package fakeapi runs the development backend on an httptest server so
// client code can be exercised against the real REST contract.
package fakeapi

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"courtbook/internal/devserver"
	"courtbook/internal/domain/court"
	"courtbook/internal/handler"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	PlayerEmail    = "player@courtbook.dev"
	PlayerPassword = "player-pass-123"
	OwnerEmail     = "owner@courtbook.dev"
	OwnerPassword  = "owner-pass-123"
)

type Server struct {
	*httptest.Server
	Router  *gin.Engine
	Store   *devserver.Store
	Clock   *clock.MockClock
	Config  config.Config
	Auth    devserver.AuthUseCase
	Catalog devserver.CatalogUseCase
}

type Option func(*options)

type options struct {
	now          time.Time
	strictPublic bool
	seed         bool
}

// At pins the server clock; the default is 2025-03-01 12:00 local time.
func At(now time.Time) Option {
	return func(o *options) { o.now = now }
}

// StrictPublic makes club and court reads require a bearer token.
func StrictPublic() Option {
	return func(o *options) { o.strictPublic = true }
}

func Empty() Option {
	return func(o *options) { o.seed = false }
}

func New(t *testing.T, opts ...Option) *Server {
	t.Helper()

	o := options{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local), seed: true}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := config.NewTestConfig()
	cfg.DevServer.StrictPublic = o.strictPublic
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := devserver.NewStore()
	clk := clock.NewMockClock(o.now)
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)
	authUC := devserver.NewAuthUseCase(store, jwt.NewService(cfg.JWT.Secret, duration), clk)
	catalog := devserver.NewCatalogUseCase(store, clk)
	reservations := devserver.NewReservationUseCase(store, clk, logger)

	if o.seed {
		require.NoError(t, devserver.Seed(context.Background(), authUC, catalog, logger))
	}

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler.NewRouter(engine, cfg, logger, handler.Handlers{
		Auth:        api.NewAuthHandler(authUC),
		Club:        api.NewClubHandler(catalog),
		Court:       api.NewCourtHandler(catalog),
		Reservation: api.NewReservationHandler(reservations),
	}, middleware.NewAuthMiddleware(authUC))

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	cfg.API.BaseURL = srv.URL + "/api/"
	return &Server{
		Server:  srv,
		Router:  engine,
		Store:   store,
		Clock:   clk,
		Config:  cfg,
		Auth:    authUC,
		Catalog: catalog,
	}
}

// Court looks a seeded court up by name.
func (s *Server) Court(t *testing.T, name string) court.Court {
	t.Helper()
	for _, c := range s.Store.ListCourts(devserver.CourtQuery{}) {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "court not seeded", "no court named %q", name)
	return court.Court{}
}

func (s *Server) Club(t *testing.T, name string) court.Club {
	t.Helper()
	for _, c := range s.Store.ListClubs() {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "club not seeded", "no club named %q", name)
	return court.Club{}
}
