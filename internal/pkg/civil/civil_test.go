//go:build unit

package civil_test

import (
	"encoding/json"
	"testing"
	"time"

	"calendar-booking/internal/pkg/civil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	t.Run("parse and format round trip", func(t *testing.T) {
		d, err := civil.ParseDate("2025-09-02")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-02", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := civil.ParseDate("2025/09/02")
		assert.Error(t, err)
		_, err = civil.ParseDate("2025-13-40")
		assert.Error(t, err)
	})

	t.Run("weekday uses monday origin", func(t *testing.T) {
		cases := []struct {
			date    string
			weekday int
		}{
			{"2025-09-01", 0}, // Monday
			{"2025-09-02", 1}, // Tuesday
			{"2025-09-07", 6}, // Sunday
		}
		for _, tc := range cases {
			d, err := civil.ParseDate(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.weekday, d.Weekday(), tc.date)
		}
	})

	t.Run("ordering and arithmetic", func(t *testing.T) {
		d, _ := civil.ParseDate("2025-09-02")
		next := d.AddDays(1)
		assert.True(t, d.Before(next))
		assert.False(t, next.Before(d))
		assert.Equal(t, "2025-09-03", next.String())

		eom, _ := civil.ParseDate("2025-08-31")
		assert.Equal(t, "2025-09-01", eom.AddDays(1).String())
	})

	t.Run("json round trip", func(t *testing.T) {
		d, _ := civil.ParseDate("2025-09-02")
		b, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2025-09-02"`, string(b))

		var back civil.Date
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, d, back)
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse and ordering", func(t *testing.T) {
		open, err := civil.ParseTimeOfDay("09:00")
		require.NoError(t, err)
		closeAt, err := civil.ParseTimeOfDay("18:30")
		require.NoError(t, err)

		assert.True(t, open.Before(closeAt))
		assert.True(t, closeAt.After(open))
		assert.Equal(t, 9*60, open.Minutes())
		assert.Equal(t, "18:30", closeAt.String())
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		_, err := civil.NewTimeOfDay(24, 0)
		assert.Error(t, err)
		_, err = civil.NewTimeOfDay(0, 60)
		assert.Error(t, err)
		_, err = civil.ParseTimeOfDay("9am")
		assert.Error(t, err)
	})

	t.Run("combines with a date into a local instant", func(t *testing.T) {
		d, _ := civil.ParseDate("2025-09-02")
		tod, _ := civil.ParseTimeOfDay("10:30")
		at := d.At(tod)
		assert.Equal(t, time.Date(2025, 9, 2, 10, 30, 0, 0, time.Local), at)
	})
}
