//go:build unit

package handler_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"courtbook/internal/domain/court"
	"courtbook/internal/handler"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/config"
	"courtbook/tests/common/authtest"
	"courtbook/tests/common/fakeapi"
	"courtbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	s := fakeapi.New(t)

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSwaggerUI(t *testing.T) {
	t.Run("exposed in debug mode", func(t *testing.T) {
		gin.SetMode(gin.DebugMode)
		t.Cleanup(func() { gin.SetMode(gin.TestMode) })

		engine := gin.New()
		handler.NewRouter(engine, config.NewTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), handler.Handlers{
			Auth:        &api.AuthHandler{},
			Club:        &api.ClubHandler{},
			Court:       &api.CourtHandler{},
			Reservation: &api.ReservationHandler{},
		}, middleware.NewAuthMiddleware(nil))

		w := httptest.PerformRequest(t, engine, http.MethodGet, "/swagger/index.html", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("hidden outside debug mode", func(t *testing.T) {
		s := fakeapi.New(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/swagger/index.html", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNoRoute(t *testing.T) {
	s := fakeapi.New(t)

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/unknown", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogRoutes(t *testing.T) {
	s := fakeapi.New(t)
	norte := s.Club(t, "Club Norte")
	pista1 := s.Court(t, "Pista 1")

	t.Run("clubs are listed without a token", func(t *testing.T) {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/clubs", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var clubs []court.Club
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &clubs))
		assert.Len(t, clubs, 2)
	})

	t.Run("exists by name", func(t *testing.T) {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/clubs/exists?name=Club%20Norte", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "true", w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/clubs/exists?name=Nowhere", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "false", w.Body.String())
	})

	t.Run("exists by name requires the name", func(t *testing.T) {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/clubs/exists", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("is open", func(t *testing.T) {
		path := fmt.Sprintf("/api/clubs/%s/is-open?dateTime=2025-03-02T10:00:00", norte.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "true", w.Body.String())

		path = fmt.Sprintf("/api/clubs/%s/is-open?dateTime=2025-03-02T23:00:00", norte.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "false", w.Body.String())
	})

	t.Run("is open rejects a malformed dateTime", func(t *testing.T) {
		path := fmt.Sprintf("/api/clubs/%s/is-open?dateTime=tomorrow", norte.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("courts filtered by club", func(t *testing.T) {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/courts?clubId="+norte.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var courts []court.Court
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &courts))
		assert.Len(t, courts, 3)
		for _, c := range courts {
			assert.Equal(t, norte.ID, c.ClubID)
		}
	})

	t.Run("available slots", func(t *testing.T) {
		path := fmt.Sprintf("/api/courts/%s/available?date=2025-03-02", pista1.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var slots []string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &slots))
		require.NotEmpty(t, slots)
		assert.Equal(t, "08:00", slots[0])
		assert.Equal(t, "21:30", slots[len(slots)-1])
	})

	t.Run("unknown court is 404", func(t *testing.T) {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/courts/999/available?date=2025-03-02", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStrictPublicRoutes(t *testing.T) {
	s := fakeapi.New(t, fakeapi.StrictPublic())

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/clubs", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := authtest.LoginUser(t, s.Router, fakeapi.PlayerEmail, fakeapi.PlayerPassword)
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/clubs", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClubWrites(t *testing.T) {
	s := fakeapi.New(t)
	body := map[string]any{
		"name":        "Club Este",
		"address":     "Calle Mayor 1",
		"openingTime": "09:00",
		"closingTime": "21:00",
	}

	t.Run("anonymous is rejected", func(t *testing.T) {
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/clubs", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("player is forbidden", func(t *testing.T) {
		token := authtest.LoginUser(t, s.Router, fakeapi.PlayerEmail, fakeapi.PlayerPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/clubs", body, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner creates and manages the club", func(t *testing.T) {
		token := authtest.LoginUser(t, s.Router, fakeapi.OwnerEmail, fakeapi.OwnerPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/clubs", body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created court.Club
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		assert.False(t, created.ID.IsZero())
		assert.Equal(t, "Club Este", created.Name)
		assert.Equal(t, "09:00", created.OpeningTime.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/clubs", body, token)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/clubs/"+created.ID.String(), nil, token)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("seeded clubs belong to the club owner", func(t *testing.T) {
		norte := s.Club(t, "Club Norte")
		update := map[string]any{
			"name":        "Club Norte",
			"address":     "Av. del Norte 121",
			"openingTime": "08:00",
			"closingTime": "22:00",
		}
		token := authtest.LoginUser(t, s.Router, fakeapi.OwnerEmail, fakeapi.OwnerPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/clubs/"+norte.ID.String(), update, token)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("closing before opening is rejected", func(t *testing.T) {
		token := authtest.LoginUser(t, s.Router, fakeapi.OwnerEmail, fakeapi.OwnerPassword)
		bad := map[string]any{
			"name":        "Club Oeste",
			"address":     "Calle Menor 2",
			"openingTime": "21:00",
			"closingTime": "09:00",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/clubs", bad, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
