package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mmo/internal/timeutil"
)

func TestFloorSeconds(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int
	}{
		{59*time.Second + 900*time.Millisecond, 59},
		{45 * time.Second, 45},
		{999 * time.Millisecond, 0},
		{-3 * time.Second, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, timeutil.FloorSeconds(tc.in), tc.in.String())
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 30, timeutil.Round(29.5))
	assert.Equal(t, 29, timeutil.Round(29.49))
	assert.Equal(t, 0, timeutil.Round(0))
}

func TestTimeRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 30, 0, 0, time.UTC)

	start, end := timeutil.TimeRange(timeutil.Period7Days, now)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC), end)

	start, end = timeutil.TimeRange(timeutil.PeriodYesterday, now)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC), end)

	start, _ = timeutil.TimeRange(timeutil.PeriodAllTime, now)
	assert.True(t, start.IsZero())
}

func TestDayFormat(t *testing.T) {
	assert.Equal(t, 20250105, timeutil.DayFormat(time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)))
}

func TestFromStrRelativeTo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got, err := timeutil.FromStrRelativeTo("2 days ago", now)
	require.NoError(t, err)

	assert.Equal(t, 13, got.Day())
	assert.Equal(t, time.June, got.Month())
}
