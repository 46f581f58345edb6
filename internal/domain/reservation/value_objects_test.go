//go:build unit

package reservation_test

import (
	"encoding/json"
	"testing"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDay(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		errIs error
	}{
		{name: "HH:MM", in: "09:00", want: "09:00"},
		{name: "HH:MM:SS から秒を落とす", in: "22:30:00", want: "22:30"},
		{name: "一桁の時", in: "7:05", want: "07:05"},
		{name: "24時はNG", in: "24:00", errIs: reservation.ErrInvalidTimeOfDay},
		{name: "分が範囲外NG", in: "10:60", errIs: reservation.ErrInvalidTimeOfDay},
		{name: "区切りなしNG", in: "0900", errIs: reservation.ErrInvalidTimeOfDay},
		{name: "空NG", in: "", errIs: reservation.ErrInvalidTimeOfDay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reservation.ParseTimeOfDay(tc.in)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	t.Run("Add は日付を跨がない", func(t *testing.T) {
		late := reservation.MustTimeOfDay("23:30")
		assert.Equal(t, "23:59", late.Add(time.Hour).String())
		assert.Equal(t, "10:00", reservation.MustTimeOfDay("09:00").Add(time.Hour).String())
	})

	t.Run("JSON は文字列", func(t *testing.T) {
		var tod reservation.TimeOfDay
		require.NoError(t, json.Unmarshal([]byte(`"08:00:00"`), &tod))
		out, err := json.Marshal(tod)
		require.NoError(t, err)
		assert.Equal(t, `"08:00"`, string(out))
	})
}

func TestDate(t *testing.T) {
	d, err := reservation.ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", d.AddDays(1).String())
	assert.Equal(t, "09:30", reservation.TimeOfDayOf(reservation.MustTimeOfDay("09:30").On(d)).String())

	_, err = reservation.ParseDate("01/03/2025")
	assert.True(t, errs.Is(err, reservation.ErrInvalidDate))
}

func TestSlotSet(t *testing.T) {
	t.Run("順序維持と重複排除", func(t *testing.T) {
		set, err := reservation.NewSlotSet([]string{"10:00", "09:00", "10:00:00"})
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "09:00"}, set.Strings())
		assert.True(t, set.Contains(reservation.MustTimeOfDay("09:00")))
		assert.False(t, set.Contains(reservation.MustTimeOfDay("11:00")))
	})

	t.Run("空リストは有効", func(t *testing.T) {
		set, err := reservation.NewSlotSet(nil)
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
	})

	t.Run("不正な時刻NG", func(t *testing.T) {
		_, err := reservation.NewSlotSet([]string{"09:00", "noon"})
		assert.True(t, errs.Is(err, reservation.ErrInvalidTimeOfDay))
	})
}

func TestMoney(t *testing.T) {
	var m reservation.Money
	require.NoError(t, json.Unmarshal([]byte(`25.5`), &m))
	assert.EqualValues(t, 2550, m.Cents())
	assert.Equal(t, "25.50", m.String())
	assert.Equal(t, "38.25", m.ForDuration(90*time.Minute).String())

	require.NoError(t, json.Unmarshal([]byte(`"30"`), &m))
	assert.EqualValues(t, 3000, m.Cents())

	err := json.Unmarshal([]byte(`"free"`), &m)
	assert.True(t, errs.Is(err, reservation.ErrInvalidAmount))
}
