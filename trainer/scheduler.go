// Package trainer runs a live training session in the terminal. The
// Scheduler decides when phases change and when arousal checks are due; the
// Model wires it to a recorder and renders it with bubbletea.
package trainer

import (
	"time"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/level"
)

// Step is the result of advancing the schedule to a point in time.
type Step struct {
	Phase      models.PhaseType
	Changed    bool
	ArousalDue bool
}

// Scheduler alternates stroke and rest phases for a level. An edge suspends
// the alternation until it ends, after which a rest phase begins. It holds no
// clock of its own: every method takes the current time.
type Scheduler struct {
	phaseStart time.Time
	lastCheck  time.Time
	phase      models.PhaseType
	stroke     time.Duration
	rest       time.Duration
	check      time.Duration
}

// NewScheduler returns a schedule that begins with a stroke phase at start.
// fallbackCheck (seconds) is used when the level does not set an arousal
// check interval. A zero interval disables arousal checks.
func NewScheduler(def level.Definition, fallbackCheck int, start time.Time) *Scheduler {
	check := def.ArousalCheckIntervalSeconds
	if check == 0 {
		check = fallbackCheck
	}

	return &Scheduler{
		phaseStart: start,
		lastCheck:  start,
		phase:      models.Stroke,
		stroke:     time.Duration(def.StrokeSeconds) * time.Second,
		rest:       time.Duration(def.RestSeconds) * time.Second,
		check:      time.Duration(check) * time.Second,
	}
}

// Phase returns the current phase.
func (s *Scheduler) Phase() models.PhaseType {
	return s.phase
}

// length returns how long the current phase lasts. Edges are open ended.
func (s *Scheduler) length() time.Duration {
	switch s.phase {
	case models.Stroke:
		return s.stroke
	case models.Rest:
		return s.rest
	}

	return 0
}

// Tick advances the schedule to now. A level without rest strokes
// continuously.
func (s *Scheduler) Tick(now time.Time) Step {
	step := Step{Phase: s.phase}

	if s.phase != models.Edge && now.Sub(s.phaseStart) >= s.length() {
		next := models.Stroke
		if s.phase == models.Stroke && s.rest > 0 {
			next = models.Rest
		}

		s.phaseStart = now

		if next != s.phase {
			s.phase = next
			step.Phase = next
			step.Changed = true
		}
	}

	if s.check > 0 && now.Sub(s.lastCheck) >= s.check {
		s.lastCheck = now
		step.ArousalDue = true
	}

	return step
}

// BeginEdge suspends the stroke/rest alternation.
func (s *Scheduler) BeginEdge(now time.Time) {
	s.phase = models.Edge
	s.phaseStart = now
}

// EndEdge resumes the schedule with a rest phase, or a stroke phase when
// the level has no rest.
func (s *Scheduler) EndEdge(now time.Time) {
	if s.phase != models.Edge {
		return
	}

	s.phase = models.Rest
	if s.rest == 0 {
		s.phase = models.Stroke
	}

	s.phaseStart = now
}

// ArousalRecorded restarts the arousal check interval.
func (s *Scheduler) ArousalRecorded(now time.Time) {
	s.lastCheck = now
}

// Elapsed returns the time spent in the current phase.
func (s *Scheduler) Elapsed(now time.Time) time.Duration {
	return max(now.Sub(s.phaseStart), 0)
}

// Remaining returns the time left in the current phase. It is always zero
// during an edge.
func (s *Scheduler) Remaining(now time.Time) time.Duration {
	d := s.length()
	if d == 0 {
		return 0
	}

	return max(d-s.Elapsed(now), 0)
}

// Progress returns the completed fraction of the current phase in [0, 1].
func (s *Scheduler) Progress(now time.Time) float64 {
	d := s.length()
	if d == 0 {
		return 0
	}

	return min(float64(s.Elapsed(now))/float64(d), 1)
}
