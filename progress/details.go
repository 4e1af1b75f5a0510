package progress

import (
	"math"

	"github.com/ayoisaiah/mmo/internal/timeutil"
	"github.com/ayoisaiah/mmo/level"
)

const maxPercent = 100

// Criterion is one mastery requirement as shown to the user.
type Criterion struct {
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Met      bool    `json:"met"`
}

// MasteryDetails breaks mastery down into its four criteria.
type MasteryDetails struct {
	Sessions   Criterion `json:"sessions"`
	Minutes    Criterion `json:"minutes"`
	Edges      Criterion `json:"edges"`
	ClimaxRate Criterion `json:"climaxRate"`
}

// percentOf returns current as a percentage of required, capped at 100.
// A zero requirement is always fully met.
func percentOf(current, required float64) float64 {
	if required <= 0 {
		return maxPercent
	}

	return math.Min(maxPercent, current/required*maxPercent)
}

// Percent returns the overall completion percentage of a level. The climax
// rate criterion only counts when the level requires one. A nil entry or a
// level missing from the ladder yields zero.
func Percent(ladder level.Ladder, p *LevelProgress) int {
	if p == nil {
		return 0
	}

	def, ok := ladder.Lookup(p.Level)
	if !ok {
		return 0
	}

	req := def.Requirements

	sum := percentOf(float64(p.SessionsAtLevel), float64(req.MinSessions)) +
		percentOf(float64(p.TotalMinutesAtLevel), req.MinTotalMinutes) +
		percentOf(float64(p.TotalEdgesAtLevel), float64(req.MinEdges))

	if req.MinClimaxRate > 0 {
		sum += percentOf(float64(p.ClimaxRate), req.MinClimaxRate)

		return timeutil.Round(sum / 4)
	}

	return timeutil.Round(sum / 3)
}

func criterion(current, required float64) Criterion {
	return Criterion{
		Current:  current,
		Required: required,
		Met:      current >= required,
	}
}

// Details returns the per-criterion breakdown for a level. Without progress
// data every criterion reports as met with zero values.
func Details(ladder level.Ladder, p *LevelProgress) MasteryDetails {
	met := Criterion{Met: true}

	defaults := MasteryDetails{
		Sessions:   met,
		Minutes:    met,
		Edges:      met,
		ClimaxRate: met,
	}

	if p == nil {
		return defaults
	}

	def, ok := ladder.Lookup(p.Level)
	if !ok {
		return defaults
	}

	req := def.Requirements

	return MasteryDetails{
		Sessions: criterion(
			float64(p.SessionsAtLevel),
			float64(req.MinSessions),
		),
		Minutes: criterion(float64(p.TotalMinutesAtLevel), req.MinTotalMinutes),
		Edges: criterion(
			float64(p.TotalEdgesAtLevel),
			float64(req.MinEdges),
		),
		ClimaxRate: criterion(float64(p.ClimaxRate), req.MinClimaxRate),
	}
}
