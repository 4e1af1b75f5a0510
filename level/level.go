// Package level defines the training ladder: an ordered set of levels, each
// with its own timing parameters and mastery requirements
package level

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/mmo/internal/apperr"
)

var (
	ErrEmptyLadder = &apperr.Error{
		Message: "the level ladder must contain at least one level",
	}

	ErrLadderOrder = &apperr.Error{
		Message: "level at position %d has id %d, expected %d",
	}

	ErrInvalidLevel = &apperr.Error{
		Message: "level %d: %s",
	}

	errReadLadder = &apperr.Error{
		Message: "unable to read level ladder from %s",
	}
)

// Requirements are the thresholds a level's sessions must reach before the
// level is considered mastered. MinClimaxes is informational only and does
// not take part in the mastery decision.
type Requirements struct {
	MinSessions     int     `json:"minSessions"           yaml:"min_sessions"`
	MinTotalMinutes float64 `json:"minTotalMinutes"       yaml:"min_total_minutes"`
	MinEdges        int     `json:"minEdges"              yaml:"min_edges"`
	MinClimaxes     int     `json:"minClimaxes,omitempty" yaml:"min_climaxes,omitempty"`
	MinClimaxRate   float64 `json:"minClimaxRate"         yaml:"min_climax_rate"`
}

// Definition describes a single level of the ladder.
type Definition struct {
	Name                        string       `json:"name"                        yaml:"name"`
	Description                 string       `json:"description"                 yaml:"description"`
	Requirements                Requirements `json:"requirements"                yaml:"requirements"`
	ID                          int          `json:"id"                          yaml:"id"`
	StrokeSeconds               int          `json:"strokeSeconds"               yaml:"stroke_seconds"`
	RestSeconds                 int          `json:"restSeconds"                 yaml:"rest_seconds"`
	ArousalCheckIntervalSeconds int          `json:"arousalCheckIntervalSeconds" yaml:"arousal_check_interval_seconds"`
}

// Ladder is the ordered sequence of levels. Position 0 is the entry level.
type Ladder []Definition

type ladderFile struct {
	Levels Ladder `yaml:"levels"`
}

// Validate checks that the ladder is non-empty and that ids form a
// contiguous ascending sequence starting at 1.
func (l Ladder) Validate() error {
	if len(l) == 0 {
		return ErrEmptyLadder
	}

	for i := range l {
		d := &l[i]

		if d.ID != i+1 {
			return ErrLadderOrder.Fmt(i, d.ID, i+1)
		}

		if d.StrokeSeconds <= 0 || d.RestSeconds < 0 {
			return ErrInvalidLevel.Fmt(d.ID, "stroke must be positive and rest cannot be negative")
		}

		if d.ArousalCheckIntervalSeconds < 0 {
			return ErrInvalidLevel.Fmt(d.ID, "arousal check interval cannot be negative")
		}

		r := d.Requirements

		if r.MinSessions < 0 || r.MinTotalMinutes < 0 || r.MinEdges < 0 ||
			r.MinClimaxes < 0 {
			return ErrInvalidLevel.Fmt(d.ID, "requirements cannot be negative")
		}

		if r.MinClimaxRate < 0 || r.MinClimaxRate > 100 {
			return ErrInvalidLevel.Fmt(d.ID, "climax rate must be between 0 and 100")
		}
	}

	return nil
}

// Lookup returns the level with the given id.
func (l Ladder) Lookup(id int) (Definition, bool) {
	i := slices.IndexFunc(l, func(d Definition) bool {
		return d.ID == id
	})
	if i == -1 {
		return Definition{}, false
	}

	return l[i], true
}

// ByID returns the level with the given id, or the first level of the ladder
// if there is no such level.
func (l Ladder) ByID(id int) Definition {
	if d, ok := l.Lookup(id); ok {
		return d
	}

	return l[0]
}

// Position returns the ladder index of the level with the given id, or -1.
func (l Ladder) Position(id int) int {
	return slices.IndexFunc(l, func(d Definition) bool {
		return d.ID == id
	})
}

// Parse decodes a YAML ladder document and validates it.
func Parse(b []byte) (Ladder, error) {
	var f ladderFile

	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decoding ladder: %w", err)
	}

	if err := f.Levels.Validate(); err != nil {
		return nil, err
	}

	return f.Levels, nil
}

// Load reads a ladder from a YAML file.
func Load(path string) (Ladder, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errReadLadder.Fmt(path).Wrap(err)
	}

	return Parse(b)
}

// Marshal encodes the ladder in the same YAML layout that Parse reads.
func (l Ladder) Marshal() ([]byte, error) {
	return yaml.Marshal(ladderFile{Levels: l})
}
