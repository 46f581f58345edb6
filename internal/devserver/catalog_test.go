//go:build unit

package devserver_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courtbook/internal/devserver"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store        *devserver.Store
	clock        *clock.MockClock
	auth         devserver.AuthUseCase
	catalog      devserver.CatalogUseCase
	reservations devserver.ReservationUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := devserver.NewStore()
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local))
	f := fixture{
		store:        store,
		clock:        clk,
		auth:         devserver.NewAuthUseCase(store, jwt.NewService("test-secret", 24*time.Hour), clk),
		catalog:      devserver.NewCatalogUseCase(store, clk),
		reservations: devserver.NewReservationUseCase(store, clk, logger),
	}
	require.NoError(t, devserver.Seed(context.Background(), f.auth, f.catalog, logger))
	return f
}

func (f fixture) court(t *testing.T, name string) court.Court {
	t.Helper()
	for _, c := range f.store.ListCourts(devserver.CourtQuery{}) {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("court %q not seeded", name)
	return court.Court{}
}

func TestAvailableSlots(t *testing.T) {
	ctx := context.Background()
	tomorrow := reservation.MustDate("2025-03-02")

	t.Run("営業時間内の30分刻み", func(t *testing.T) {
		f := newFixture(t)
		slots, err := f.catalog.AvailableSlots(ctx, f.court(t, "Pista 1").ID, tomorrow)
		require.NoError(t, err)
		require.Len(t, slots, 28)
		assert.Equal(t, "08:00", slots[0])
		assert.Equal(t, "08:30", slots[1])
		assert.Equal(t, "21:30", slots[len(slots)-1])
	})

	t.Run("クラブごとの営業時間", func(t *testing.T) {
		f := newFixture(t)
		slots, err := f.catalog.AvailableSlots(ctx, f.court(t, "Central").ID, tomorrow)
		require.NoError(t, err)
		assert.Equal(t, "09:00", slots[0])
		assert.Equal(t, "22:30", slots[len(slots)-1])
	})

	t.Run("当日は過去の枠を除外", func(t *testing.T) {
		f := newFixture(t)
		slots, err := f.catalog.AvailableSlots(ctx, f.court(t, "Pista 1").ID, reservation.MustDate("2025-03-01"))
		require.NoError(t, err)
		assert.Equal(t, "12:00", slots[0])
	})

	t.Run("予約済みの枠を除外", func(t *testing.T) {
		f := newFixture(t)
		pista := f.court(t, "Pista 1")
		_, _, err := f.reservations.CreateReservation(ctx, devserver.Actor{UserID: 3}, devserver.CreateReservationParams{
			CourtID:   pista.ID,
			StartTime: time.Date(2025, 3, 2, 10, 0, 0, 0, time.Local),
			EndTime:   time.Date(2025, 3, 2, 11, 0, 0, 0, time.Local),
		}, "")
		require.NoError(t, err)

		slots, err := f.catalog.AvailableSlots(ctx, pista.ID, tomorrow)
		require.NoError(t, err)
		assert.Contains(t, slots, "09:30")
		assert.NotContains(t, slots, "10:00")
		assert.NotContains(t, slots, "10:30")
		assert.Contains(t, slots, "11:00")
	})

	t.Run("非稼働コートとクラブなしコートは空", func(t *testing.T) {
		f := newFixture(t)
		for _, name := range []string{"Pista 3", "Pista Libre"} {
			slots, err := f.catalog.AvailableSlots(ctx, f.court(t, name).ID, tomorrow)
			require.NoError(t, err)
			assert.NotNil(t, slots)
			assert.Empty(t, slots, name)
		}
	})

	t.Run("存在しないコート", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.catalog.AvailableSlots(ctx, 9999, tomorrow)
		assert.ErrorIs(t, err, devserver.ErrNotFound)
	})
}

func TestClubs(t *testing.T) {
	ctx := context.Background()

	t.Run("名前の重複を拒否", func(t *testing.T) {
		f := newFixture(t)
		assert.True(t, f.catalog.ClubNameExists(ctx, "Club Norte"))
		_, err := f.catalog.CreateClub(ctx, court.Club{Name: "Club Norte"})
		assert.ErrorIs(t, err, devserver.ErrClubNameTaken)
	})

	t.Run("営業中判定", func(t *testing.T) {
		f := newFixture(t)
		norte := f.store.ListClubs()[0]
		open, err := f.catalog.IsClubOpen(ctx, norte.ID, time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local))
		require.NoError(t, err)
		assert.True(t, open)
		open, err = f.catalog.IsClubOpen(ctx, norte.ID, time.Date(2025, 3, 1, 23, 0, 0, 0, time.Local))
		require.NoError(t, err)
		assert.False(t, open)
	})

	t.Run("管理者情報付きで取得", func(t *testing.T) {
		f := newFixture(t)
		norte := f.store.ListClubs()[0]
		c, err := f.catalog.GetClubWithAdmin(ctx, norte.ID)
		require.NoError(t, err)
		require.NotNil(t, c.Admin)
		assert.Equal(t, "owner@courtbook.dev", c.Admin.Email)
	})

	t.Run("削除するとコートはクラブから外れる", func(t *testing.T) {
		f := newFixture(t)
		norte := f.store.ListClubs()[0]
		require.NoError(t, f.catalog.DeleteClub(ctx, norte.ID))
		assert.False(t, f.catalog.ClubExists(ctx, norte.ID))
		pista := f.court(t, "Pista 1")
		assert.False(t, pista.HasClub())
	})
}
