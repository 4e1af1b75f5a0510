package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/mmo/level"
	"github.com/ayoisaiah/mmo/progress"
)

func TestPercent(t *testing.T) {
	ladder := level.Default()

	cases := []struct {
		progress *progress.LevelProgress
		name     string
		want     int
	}{
		{
			name: "nil progress",
			want: 0,
		},
		{
			name:     "unknown level",
			progress: &progress.LevelProgress{Level: 12, SessionsAtLevel: 40},
			want:     0,
		},
		{
			name:     "first level ignores climax rate",
			progress: &progress.LevelProgress{Level: 1, SessionsAtLevel: 3, TotalMinutesAtLevel: 15, TotalEdgesAtLevel: 1},
			// (100 + 50 + 20) / 3
			want: 57,
		},
		{
			name: "second level averages four criteria",
			progress: &progress.LevelProgress{
				Level:               2,
				SessionsAtLevel:     5,
				TotalMinutesAtLevel: 30,
				TotalEdgesAtLevel:   10,
				ClimaxRate:          30,
			},
			// (100 + 50 + 100 + 50) / 4
			want: 75,
		},
		{
			name: "values above the requirement are capped",
			progress: &progress.LevelProgress{
				Level:               2,
				SessionsAtLevel:     50,
				TotalMinutesAtLevel: 600,
				TotalEdgesAtLevel:   100,
				ClimaxRate:          100,
			},
			want: 100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, progress.Percent(ladder, tc.progress))
		})
	}
}

func TestPercentWithZeroRequirements(t *testing.T) {
	ladder := level.Ladder{{ID: 1, StrokeSeconds: 60}}

	got := progress.Percent(ladder, &progress.LevelProgress{Level: 1})

	assert.Equal(t, 100, got)
}

func TestDetails(t *testing.T) {
	ladder := level.Default()

	got := progress.Details(ladder, &progress.LevelProgress{
		Level:               2,
		SessionsAtLevel:     6,
		TotalMinutesAtLevel: 59,
		TotalEdgesAtLevel:   10,
		ClimaxRate:          61,
	})

	assert.Equal(t, progress.MasteryDetails{
		Sessions:   progress.Criterion{Current: 6, Required: 5, Met: true},
		Minutes:    progress.Criterion{Current: 59, Required: 60, Met: false},
		Edges:      progress.Criterion{Current: 10, Required: 10, Met: true},
		ClimaxRate: progress.Criterion{Current: 61, Required: 60, Met: true},
	}, got)
}

func TestDetailsDefaultToMet(t *testing.T) {
	met := progress.Criterion{Met: true}
	want := progress.MasteryDetails{
		Sessions:   met,
		Minutes:    met,
		Edges:      met,
		ClimaxRate: met,
	}

	assert.Equal(t, want, progress.Details(level.Default(), nil))
	assert.Equal(
		t,
		want,
		progress.Details(level.Default(), &progress.LevelProgress{Level: 99}),
	)
}
