//go:build unit

package clock_test

import (
	"encoding/json"
	"testing"
	"time"

	"courtbook/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime(t *testing.T) {
	t.Run("success: backend local layout round trips", func(t *testing.T) {
		var d clock.DateTime
		require.NoError(t, json.Unmarshal([]byte(`"2025-03-01T09:30:00"`), &d))
		assert.Equal(t, 9, d.Hour())
		assert.Equal(t, 30, d.Minute())

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, `"2025-03-01T09:30:00"`, string(out))
	})

	t.Run("success: fractional seconds are accepted", func(t *testing.T) {
		d, err := clock.ParseDateTime("2025-03-01T09:30:00.123456")
		require.NoError(t, err)
		assert.Equal(t, 30, d.Minute())
	})

	t.Run("success: RFC 3339 input is accepted", func(t *testing.T) {
		d, err := clock.ParseDateTime("2025-03-01T09:30:00Z")
		require.NoError(t, err)
		assert.True(t, d.Equal(time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)))
	})

	t.Run("success: null decodes to zero", func(t *testing.T) {
		var d clock.DateTime
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})

	t.Run("error: garbage is rejected", func(t *testing.T) {
		var d clock.DateTime
		err := json.Unmarshal([]byte(`"yesterday"`), &d)
		assert.ErrorIs(t, err, clock.ErrInvalidDateTime)
	})
}
