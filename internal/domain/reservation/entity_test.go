//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 15, 0, 0, time.Local)
	f := reservation.NewFactory(clock.NewMockClock(now))

	base := reservation.Request{
		UserID:  7,
		CourtID: 3,
		ClubID:  1,
		Date:    reservation.MustDate("2025-03-02"),
		Start:   reservation.MustTimeOfDay("09:00"),
		End:     reservation.MustTimeOfDay("10:30"),
	}

	t.Run("PENDING/PENDING で作成される", func(t *testing.T) {
		got, err := f.NewPending(base)
		require.NoError(t, err)

		want := &reservation.Reservation{
			UserID:        7,
			CourtID:       3,
			ClubID:        1,
			StartTime:     clock.NewDateTime(time.Date(2025, 3, 2, 9, 0, 0, 0, time.Local)),
			EndTime:       clock.NewDateTime(time.Date(2025, 3, 2, 10, 30, 0, 0, time.Local)),
			Status:        reservation.StatusPending,
			PaymentStatus: reservation.PaymentPending,
			CreatedAt:     clock.NewDateTime(now),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 90*time.Minute, got.Duration())
	})

	cases := []struct {
		name   string
		mutate func(*reservation.Request)
		errIs  error
	}{
		{"クラブなしNG", func(r *reservation.Request) { r.ClubID = 0 }, reservation.ErrMissingClub},
		{"ユーザーなしNG", func(r *reservation.Request) { r.UserID = 0 }, reservation.ErrMissingUser},
		{"終了が開始と同じNG", func(r *reservation.Request) { r.End = r.Start }, reservation.ErrInvalidTimeSlot},
		{"終了未指定NG", func(r *reservation.Request) { r.End = reservation.TimeOfDay{} }, reservation.ErrInvalidTimeSlot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			got, err := f.NewPending(req)
			require.Nil(t, got)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestReservationViews(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)

	upcoming := builder.NewReservationBuilder().At(now.Add(24*time.Hour), time.Hour).Build()
	past := builder.NewReservationBuilder().At(now.Add(-48*time.Hour), time.Hour).Build()
	cancelled := builder.NewReservationBuilder().At(now.Add(24*time.Hour), time.Hour).WithStatus(reservation.StatusCancelled).Build()

	assert.True(t, upcoming.IsUpcoming(now))
	assert.False(t, upcoming.IsPast(now))
	assert.True(t, past.IsPast(now))
	assert.False(t, cancelled.IsUpcoming(now))
	assert.False(t, cancelled.IsPast(now))

	flipped := upcoming.Cancelled()
	assert.Equal(t, reservation.StatusCancelled, flipped.Status)
	assert.Equal(t, reservation.StatusPending, upcoming.Status)
	if diff := cmp.Diff(*upcoming, flipped, cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Status"
	}, cmp.Ignore())); diff != "" {
		t.Errorf("Cancelled changed more than status (-want +got):\n%s", diff)
	}
}
