//go:build unit

package httpclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"courtbook/internal/infra/credstore"
	"courtbook/internal/infra/httpclient"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/logger"
	httpclientmock "courtbook/tests/mock/httpclient"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClientTestSuite struct {
	suite.Suite
	router    *gin.Engine
	server    *httptest.Server
	store     *credstore.MemoryStore
	mockCtrl  *gomock.Controller
	navigator *httpclientmock.MockNavigator
	listener  *httpclientmock.MockSessionListener
	client    *httpclient.Client
	lastAuth  string
	lastKey   string
}

func (s *ClientTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		s.lastAuth = c.GetHeader("Authorization")
		s.lastKey = c.GetHeader(httpclient.HeaderIdempotencyKey)
		c.Next()
	})
	api := s.router.Group("/api")
	api.GET("/courts/:id", func(c *gin.Context) {
		if c.Param("id") == "401" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "login first"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": 9007199254740993, "clubId": 1, "name": "Pista"})
	})
	api.GET("/clubs", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	})
	api.GET("/reservations/my-reservations", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "token expired"}})
	})
	api.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Bad credentials"})
	})
	api.POST("/reservations", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"message": "slot already taken"})
	})
	api.DELETE("/reservations/:id/cancel", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	api.GET("/broken", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "<html>oops</html>")
	})
	s.server = httptest.NewServer(s.router)

	s.store = credstore.NewMemoryStore()
	s.mockCtrl = gomock.NewController(s.T())
	s.navigator = httpclientmock.NewMockNavigator(s.mockCtrl)
	s.listener = httpclientmock.NewMockSessionListener(s.mockCtrl)

	cfg := config.NewTestConfig().API
	cfg.BaseURL = s.server.URL + "/api/"
	client, err := httpclient.NewClient(cfg, s.store, s.navigator, logger.Discard())
	s.Require().NoError(err)
	client.SetSessionListener(s.listener)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) login() {
	s.store.Set(credstore.KeyAuthToken, "tok-1")
	s.store.Set(credstore.KeyUserData, `{"id":7}`)
}

func (s *ClientTestSuite) TestBearerToken() {
	s.Run("success: attaches stored token", func() {
		s.login()
		var out map[string]any
		s.Require().NoError(s.client.Do(context.Background(), http.MethodGet, "/courts/1", nil, nil, &out))
		s.Equal("Bearer tok-1", s.lastAuth)
	})

	s.Run("success: sends unauthenticated without token", func() {
		credstore.Clear(s.store)
		s.Require().NoError(s.client.Do(context.Background(), http.MethodGet, "/courts/1", nil, nil, nil))
		s.Empty(s.lastAuth)
	})
}

func (s *ClientTestSuite) TestLargeIdentifiers() {
	var out struct {
		ID int64 `json:"id"`
	}
	s.Require().NoError(s.client.Do(context.Background(), http.MethodGet, "/courts/1", nil, nil, &out))
	s.Equal(int64(9007199254740993), out.ID)
}

func (s *ClientTestSuite) TestSoftAuth() {
	s.Run("error: public list keeps the session", func() {
		s.login()
		err := s.client.Do(context.Background(), http.MethodGet, "/clubs", nil, nil, nil)

		s.True(httpclient.RequiresAuth(err))
		s.True(errors.Is(err, httpclient.ErrEndpointRequiresAuth))
		s.True(errs.IsKind(err, errs.KindAuth))
		_, ok := s.store.Get(credstore.KeyAuthToken)
		s.True(ok)
	})

	s.Run("error: public detail keeps the session", func() {
		s.login()
		err := s.client.Do(context.Background(), http.MethodGet, "/courts/401", nil, nil, nil)

		s.True(httpclient.RequiresAuth(err))
		s.Equal("login first", errs.Message(err, ""))
		s.Equal(2, s.store.Len())
	})
}

func (s *ClientTestSuite) TestForcedLogout() {
	s.Run("error: protected endpoint clears store and redirects", func() {
		s.login()
		s.listener.EXPECT().Expire().Times(1)
		s.navigator.EXPECT().RedirectToLogin("/reservations").Times(1)

		ctx := httpclient.WithLocation(context.Background(), "/reservations")
		err := s.client.Do(ctx, http.MethodGet, "/reservations/my-reservations", nil, nil, nil)

		s.True(errs.IsKind(err, errs.KindAuth))
		s.False(httpclient.RequiresAuth(err))
		s.Equal(http.StatusUnauthorized, errs.StatusOf(err))
		s.Equal("token expired", errs.Message(err, ""))
		s.Zero(s.store.Len())
	})

	s.Run("error: location defaults to the request path", func() {
		s.login()
		s.listener.EXPECT().Expire()
		s.navigator.EXPECT().RedirectToLogin("/reservations/my-reservations")

		_ = s.client.Do(context.Background(), http.MethodGet, "/reservations/my-reservations", nil, nil, nil)
	})

	s.Run("error: failed login does not tear down", func() {
		s.login()
		err := s.client.Do(context.Background(), http.MethodPost, "/auth/login", nil, map[string]string{"email": "a@b.io"}, nil)

		s.True(errs.IsKind(err, errs.KindAuth))
		s.Equal("Bad credentials", errs.Message(err, ""))
		s.Equal(2, s.store.Len())
	})
}

func (s *ClientTestSuite) TestServerErrors() {
	s.Run("error: business message passes through", func() {
		err := s.client.Do(context.Background(), http.MethodPost, "/reservations", nil, map[string]string{}, nil,
			httpclient.WithIdempotencyKey("key-1"))

		s.True(errs.IsKind(err, errs.KindServer))
		s.Equal(http.StatusConflict, errs.StatusOf(err))
		s.Equal("slot already taken", errs.Message(err, ""))
		s.Equal("key-1", s.lastKey)
	})

	s.Run("error: non JSON body leaves the message to the caller", func() {
		err := s.client.Do(context.Background(), http.MethodGet, "/broken", nil, nil, nil)

		s.Equal(http.StatusInternalServerError, errs.StatusOf(err))
		s.Equal("could not load", errs.Message(err, "could not load"))
		s.Equal("server error (status 500)", err.Error())
	})

	s.Run("success: empty 204 body", func() {
		var out map[string]any
		s.NoError(s.client.Do(context.Background(), http.MethodDelete, "/reservations/5/cancel", nil, nil, &out))
		s.Nil(out)
	})
}

func (s *ClientTestSuite) TestTransportError() {
	cfg := config.NewTestConfig().API
	s.server.Close()
	cfg.BaseURL = s.server.URL + "/api/"
	client, err := httpclient.NewClient(cfg, s.store, s.navigator, logger.Discard())
	s.Require().NoError(err)

	err = client.Do(context.Background(), http.MethodGet, "/courts", nil, nil, nil)
	s.True(errs.IsKind(err, errs.KindTransport))
	s.Equal("cannot connect to server", errs.Message(err, ""))
	s.Zero(errs.StatusOf(err))
}

func TestNewClient(t *testing.T) {
	cfg := config.NewTestConfig().API
	cfg.BaseURL = "localhost:8080"
	_, err := httpclient.NewClient(cfg, credstore.NewMemoryStore(), nil, logger.Discard())
	if err == nil {
		t.Fatal("expected error for relative base URL")
	}
}
