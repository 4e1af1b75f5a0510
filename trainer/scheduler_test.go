package trainer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/level"
	"github.com/ayoisaiah/mmo/trainer"
)

var t0 = time.Date(2025, 4, 2, 21, 0, 0, 0, time.UTC)

func at(secs int) time.Time {
	return t0.Add(time.Duration(secs) * time.Second)
}

func TestSchedulerAlternatesStrokeAndRest(t *testing.T) {
	s := trainer.NewScheduler(level.Default()[0], 45, t0)

	cases := []struct {
		want trainer.Step
		secs int
	}{
		{secs: 59, want: trainer.Step{Phase: models.Stroke}},
		{secs: 60, want: trainer.Step{Phase: models.Stroke, ArousalDue: true}},
		{secs: 119, want: trainer.Step{Phase: models.Stroke}},
		{secs: 120, want: trainer.Step{Phase: models.Rest, Changed: true, ArousalDue: true}},
		{secs: 179, want: trainer.Step{Phase: models.Rest}},
		{secs: 180, want: trainer.Step{Phase: models.Stroke, Changed: true, ArousalDue: true}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, s.Tick(at(tc.secs)), "t+%ds", tc.secs)
	}
}

func TestSchedulerEdgeSuspendsAlternation(t *testing.T) {
	def := level.Default()[0]
	def.ArousalCheckIntervalSeconds = 0

	s := trainer.NewScheduler(def, 0, t0)

	s.BeginEdge(at(30))
	assert.Equal(t, models.Edge, s.Phase())

	step := s.Tick(at(1000))
	assert.Equal(t, trainer.Step{Phase: models.Edge}, step)
	assert.Zero(t, s.Remaining(at(1000)))
	assert.Zero(t, s.Progress(at(1000)))
	assert.Equal(t, 970*time.Second, s.Elapsed(at(1000)))

	s.EndEdge(at(1000))
	assert.Equal(t, models.Rest, s.Phase())
	assert.Equal(t, 60*time.Second, s.Remaining(at(1000)))

	step = s.Tick(at(1060))
	assert.Equal(t, trainer.Step{Phase: models.Stroke, Changed: true}, step)
}

func TestSchedulerEndEdgeWithoutEdge(t *testing.T) {
	s := trainer.NewScheduler(level.Default()[0], 0, t0)

	s.EndEdge(at(10))

	assert.Equal(t, models.Stroke, s.Phase())
}

func TestSchedulerRemainingAndProgress(t *testing.T) {
	s := trainer.NewScheduler(level.Default()[0], 0, t0)

	assert.Equal(t, 90*time.Second, s.Remaining(at(30)))
	assert.InDelta(t, 0.25, s.Progress(at(30)), 1e-9)
	assert.InDelta(t, 1.0, s.Progress(at(500)), 1e-9)
	assert.Zero(t, s.Remaining(at(500)))
}

func TestSchedulerArousalInterval(t *testing.T) {
	def := level.Default()[0]
	def.ArousalCheckIntervalSeconds = 0

	t.Run("falls back to the settings interval", func(t *testing.T) {
		s := trainer.NewScheduler(def, 45, t0)

		assert.False(t, s.Tick(at(44)).ArousalDue)
		assert.True(t, s.Tick(at(45)).ArousalDue)
	})

	t.Run("recording restarts the interval", func(t *testing.T) {
		s := trainer.NewScheduler(def, 45, t0)

		s.ArousalRecorded(at(40))

		assert.False(t, s.Tick(at(45)).ArousalDue)
		assert.True(t, s.Tick(at(85)).ArousalDue)
	})

	t.Run("zero disables checks", func(t *testing.T) {
		s := trainer.NewScheduler(def, 0, t0)

		assert.False(t, s.Tick(at(10000)).ArousalDue)
	})
}

func TestSchedulerWithoutRest(t *testing.T) {
	def := level.Default()[0]
	def.RestSeconds = 0
	def.ArousalCheckIntervalSeconds = 0

	require.NoError(t, level.Ladder{def}.Validate())

	s := trainer.NewScheduler(def, 0, t0)

	for secs := 1; secs <= 3600; secs++ {
		step := s.Tick(at(secs))

		assert.Equal(t, trainer.Step{Phase: models.Stroke}, step, "t+%ds", secs)
	}

	assert.Equal(t, models.Stroke, s.Phase())
	assert.Equal(t, 120*time.Second, s.Remaining(at(3600)))

	s.BeginEdge(at(3700))
	s.EndEdge(at(3745))

	assert.Equal(t, models.Stroke, s.Phase())
	assert.Equal(t, 120*time.Second, s.Remaining(at(3745)))
}
