package progress_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/testutil"
	"github.com/ayoisaiah/mmo/level"
	"github.com/ayoisaiah/mmo/progress"
)

func sessions(n int, opts testutil.SessionOpts) []models.Session {
	out := make([]models.Session, n)

	for i := range n {
		s := opts
		s.Start = time.Date(2025, 1, 1+i, 20, 0, 0, 0, time.UTC)
		s.ID = fmt.Sprintf("L%d-%d", opts.Level, i)
		out[i] = testutil.NewSession(s)
	}

	return out
}

func TestScenarioMasteredFirstLevelUnlocksSecond(t *testing.T) {
	ladder := level.Default()
	history := sessions(3, testutil.SessionOpts{
		Level:      1,
		Minutes:    10,
		Ejaculated: 2,
	})

	e := progress.EvaluateLevel(ladder[0], history)

	assert.Equal(t, progress.Evaluation{
		SessionCount:      3,
		TotalMinutes:      30,
		TotalEdges:        6,
		TotalClimaxes:     0,
		ClimaxRate:        0,
		MeetsRequirements: true,
	}, e)

	table := progress.Compute(ladder, history)

	assert.True(t, table[0].Mastered)
	assert.True(t, table[1].Unlocked)
	assert.False(t, table[2].Unlocked)
}

func TestScenarioTooFewSessionsKeepsSecondLocked(t *testing.T) {
	history := sessions(2, testutil.SessionOpts{
		Level:      1,
		Minutes:    10,
		Ejaculated: 2,
	})

	table := progress.Compute(level.Default(), history)

	assert.False(t, table[0].Mastered)
	assert.False(t, table[1].Unlocked)
}

func TestScenarioClimaxRateBelowRequirement(t *testing.T) {
	req := level.Requirements{
		MinSessions:     1,
		MinTotalMinutes: 10,
		MinEdges:        10,
		MinClimaxRate:   60,
	}

	history := []models.Session{
		testutil.NewSession(testutil.SessionOpts{
			Level:      2,
			Minutes:    60,
			Climaxes:   5,
			Ejaculated: 5,
		}),
	}

	e := progress.Evaluate(req, history)

	assert.InDelta(t, 50.0, e.ClimaxRate, 1e-9)
	assert.False(t, e.MeetsRequirements)
}

func TestScenarioEmptyHistory(t *testing.T) {
	table := progress.Compute(level.Default(), nil)

	want := []progress.LevelProgress{
		{Level: 1, Unlocked: true},
		{Level: 2},
		{Level: 3},
		{Level: 4},
	}

	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnlockDependsOnlyOnPreviousLevel(t *testing.T) {
	ladder := level.Ladder{
		{ID: 1, StrokeSeconds: 60, Requirements: level.Requirements{MinSessions: 1}},
		{ID: 2, StrokeSeconds: 60, Requirements: level.Requirements{MinSessions: 1}},
		{ID: 3, StrokeSeconds: 60, Requirements: level.Requirements{MinSessions: 1}},
		{ID: 4, StrokeSeconds: 60, Requirements: level.Requirements{MinSessions: 1}},
	}

	// level 2 has no sessions, level 3 does
	history := []models.Session{
		testutil.NewSession(testutil.SessionOpts{ID: "a", Level: 1, Minutes: 5}),
		testutil.NewSession(testutil.SessionOpts{ID: "b", Level: 3, Minutes: 5}),
	}

	table := progress.Compute(ladder, history)

	assert.True(t, table[0].Unlocked)
	assert.True(t, table[1].Unlocked)
	assert.False(t, table[2].Unlocked, "level 2 is not mastered")
	assert.True(t, table[2].Mastered, "mastery ignores unlock state")
	assert.True(t, table[3].Unlocked, "level 3 is mastered by data")

	for i := 1; i < len(ladder); i++ {
		prev := progress.EvaluateLevel(ladder[i-1], history)
		assert.Equal(t, prev.MeetsRequirements, table[i].Unlocked)
	}
}

func TestUnknownLevelsAreIgnored(t *testing.T) {
	history := []models.Session{
		testutil.NewSession(testutil.SessionOpts{Level: 9, Minutes: 100, Climaxes: 4}),
	}

	table := progress.Compute(level.Default(), history)

	for _, p := range table {
		assert.Zero(t, p.SessionsAtLevel)
		assert.Zero(t, p.TotalEdgesAtLevel)
	}
}

func TestOpenEdgesCountButNotAsClimaxes(t *testing.T) {
	history := []models.Session{
		testutil.NewSession(testutil.SessionOpts{
			Level:     1,
			Minutes:   5,
			Climaxes:  1,
			OpenEdges: 1,
		}),
	}

	e := progress.Evaluate(level.Requirements{}, history)

	assert.Equal(t, 2, e.TotalEdges)
	assert.Equal(t, 1, e.TotalClimaxes)
	assert.InDelta(t, 50.0, e.ClimaxRate, 1e-9)
}

func TestMissingDurationCountsAsZero(t *testing.T) {
	sess := testutil.NewSession(testutil.SessionOpts{Level: 1, Minutes: 10})
	sess.DurationSeconds = nil

	e := progress.Evaluate(level.Requirements{}, []models.Session{sess})

	assert.Zero(t, e.TotalMinutes)
	assert.True(t, e.MeetsRequirements)
}

func TestMinutesAggregateBeforeRounding(t *testing.T) {
	// 10 + 10 + 9.75 minutes rounds to 30 for display but is short of 30
	var history []models.Session

	for i, secs := range []int{600, 600, 585} {
		s := testutil.NewSession(testutil.SessionOpts{
			ID:         fmt.Sprint(i),
			Level:      1,
			Ejaculated: 2,
		})
		d := secs
		s.DurationSeconds = &d
		history = append(history, s)
	}

	table := progress.Compute(level.Default(), history)

	assert.Equal(t, 30, table[0].TotalMinutesAtLevel)
	assert.False(t, table[0].Mastered)
}

func TestComputeIsIdempotent(t *testing.T) {
	history := append(
		sessions(4, testutil.SessionOpts{Level: 1, Minutes: 12, Climaxes: 1, Ejaculated: 1}),
		sessions(2, testutil.SessionOpts{Level: 2, Minutes: 20, Climaxes: 3})...,
	)

	first := progress.Compute(level.Default(), history)
	second := progress.Compute(level.Default(), history)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Compute() not idempotent (-first +second):\n%s", diff)
	}
}

func TestClimaxRateBounds(t *testing.T) {
	cases := []testutil.SessionOpts{
		{Level: 1},
		{Level: 1, Climaxes: 3},
		{Level: 1, Ejaculated: 3},
		{Level: 1, Climaxes: 1, Ejaculated: 2, OpenEdges: 4},
	}

	for _, opts := range cases {
		e := progress.Evaluate(
			level.Requirements{},
			[]models.Session{testutil.NewSession(opts)},
		)

		assert.GreaterOrEqual(t, e.ClimaxRate, 0.0)
		assert.LessOrEqual(t, e.ClimaxRate, 100.0)

		if e.TotalEdges == 0 {
			assert.Zero(t, e.ClimaxRate)
		}
	}
}

func TestAddingClimaxSessionIsMonotonic(t *testing.T) {
	history := sessions(2, testutil.SessionOpts{Level: 1, Minutes: 10, Climaxes: 1, Ejaculated: 3})
	before := progress.Evaluate(level.Requirements{}, history)

	history = append(history, testutil.NewSession(testutil.SessionOpts{
		ID:       "extra",
		Level:    1,
		Minutes:  5,
		Climaxes: 2,
	}))
	after := progress.Evaluate(level.Requirements{}, history)

	assert.GreaterOrEqual(t, after.ClimaxRate, before.ClimaxRate)
	assert.GreaterOrEqual(t, after.SessionCount, before.SessionCount)
	assert.GreaterOrEqual(t, after.TotalEdges, before.TotalEdges)
}

func TestLookupAndUnlocked(t *testing.T) {
	table := progress.Compute(level.Default(), nil)

	p, ok := progress.Lookup(table, 2)
	assert.True(t, ok)
	assert.Equal(t, 2, p.Level)

	_, ok = progress.Lookup(table, 7)
	assert.False(t, ok)

	assert.True(t, progress.Unlocked(table, 1))
	assert.False(t, progress.Unlocked(table, 2))
	assert.False(t, progress.Unlocked(table, 7))
	assert.Equal(t, 1, progress.Highest(table))
	assert.Zero(t, progress.Highest(nil))
}
