// Package models defines the records that are persisted to the session and
// settings stores
package models

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/mmo/internal/apperr"
)

// ErrMalformedRecord is returned when a stored record fails validation.
var ErrMalformedRecord = &apperr.Error{
	Message: "malformed session record: %s",
}

// PhaseType classifies a contiguous segment of a session.
type PhaseType string

const (
	Stroke PhaseType = "stroke"
	Rest   PhaseType = "rest"
	Edge   PhaseType = "edge"
)

// PhaseTypes lists every valid phase type.
var PhaseTypes = []PhaseType{Stroke, Rest, Edge}

// Valid reports whether p is a known phase type.
func (p PhaseType) Valid() bool {
	return slices.Contains(PhaseTypes, p)
}

// Outcome is the result of a closed edge event.
type Outcome string

const (
	Climax     Outcome = "climax"
	Ejaculated Outcome = "ejaculated"
)

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	return o == Climax || o == Ejaculated
}

type ArousalReading struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// EdgeEvent is a single edge. It is open until an outcome is set.
type EdgeEvent struct {
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationSeconds *int       `json:"durationSeconds,omitempty"`
	ID              string     `json:"id"`
	Outcome         Outcome    `json:"outcome,omitempty"`
}

// Open reports whether the edge is still in progress.
func (e *EdgeEvent) Open() bool {
	return e.Outcome == ""
}

// Duration returns the recorded duration in seconds, or zero if absent.
func (e *EdgeEvent) Duration() int {
	if e.DurationSeconds == nil {
		return 0
	}

	return *e.DurationSeconds
}

// Phase is a stroke, rest or edge segment. DurationSeconds stays at zero
// until the phase is superseded or the session ends.
type Phase struct {
	StartTime       time.Time `json:"startTime"`
	Type            PhaseType `json:"type"`
	DurationSeconds int       `json:"durationSeconds"`
}

// Session represents a single training run.
type Session struct {
	StartTime       time.Time        `json:"startTime"`
	EndTime         *time.Time       `json:"endTime,omitempty"`
	DurationSeconds *int             `json:"durationSeconds,omitempty"`
	ID              string           `json:"id"`
	Notes           string           `json:"notes,omitempty"`
	ArousalReadings []ArousalReading `json:"arousalReadings"`
	Phases          []Phase          `json:"phases"`
	EdgeEvents      []EdgeEvent      `json:"edgeEvents"`
	Level           int              `json:"level"`
}

// Duration returns the recorded duration in seconds, or zero if absent.
func (s *Session) Duration() int {
	if s.DurationSeconds == nil {
		return 0
	}

	return *s.DurationSeconds
}

// Ended reports whether the session has been finalised.
func (s *Session) Ended() bool {
	return s.EndTime != nil
}

// Minutes returns the session duration in minutes without rounding.
func (s *Session) Minutes() float64 {
	return float64(s.Duration()) / 60
}

// Validate checks the structural integrity of a session record.
func (s *Session) Validate() error {
	var problems []string

	if strings.TrimSpace(s.ID) == "" {
		problems = append(problems, "missing id")
	}

	if s.StartTime.IsZero() {
		problems = append(problems, "missing start time")
	}

	if s.Level < 1 {
		problems = append(problems, "level must be 1 or greater")
	}

	if s.DurationSeconds != nil && *s.DurationSeconds < 0 {
		problems = append(problems, "negative duration")
	}

	for i := range s.Phases {
		if !s.Phases[i].Type.Valid() {
			problems = append(
				problems,
				"unknown phase type "+string(s.Phases[i].Type),
			)
		}
	}

	for i := range s.EdgeEvents {
		e := &s.EdgeEvents[i]

		if e.ID == "" {
			problems = append(problems, "edge event without id")
		}

		if !e.Open() && !e.Outcome.Valid() {
			problems = append(problems, "unknown outcome "+string(e.Outcome))
		}
	}

	if len(problems) > 0 {
		return ErrMalformedRecord.Fmt(strings.Join(problems, ", "))
	}

	return nil
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := *s

	if s.EndTime != nil {
		t := *s.EndTime
		c.EndTime = &t
	}

	if s.DurationSeconds != nil {
		d := *s.DurationSeconds
		c.DurationSeconds = &d
	}

	c.ArousalReadings = slices.Clone(s.ArousalReadings)
	c.Phases = slices.Clone(s.Phases)
	c.EdgeEvents = make([]EdgeEvent, len(s.EdgeEvents))

	for i := range s.EdgeEvents {
		e := s.EdgeEvents[i]

		if e.EndTime != nil {
			t := *e.EndTime
			e.EndTime = &t
		}

		if e.DurationSeconds != nil {
			d := *e.DurationSeconds
			e.DurationSeconds = &d
		}

		c.EdgeEvents[i] = e
	}

	return &c
}

// Settings holds the user preferences that are read and written alongside
// the session history.
type Settings struct {
	PushSubscription     json.RawMessage `json:"pushSubscription,omitempty"`
	CurrentLevel         int             `json:"currentLevel"`
	ArousalCheckInterval int             `json:"arousalCheckInterval"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		CurrentLevel:         1,
		ArousalCheckInterval: 45,
	}
}
