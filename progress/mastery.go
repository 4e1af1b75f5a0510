// Package progress derives per-level statistics, mastery and unlock state
// from the session history
package progress

import (
	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/level"
)

// Evaluation is the aggregate of every session recorded at one level.
// TotalMinutes and ClimaxRate are kept unrounded.
type Evaluation struct {
	SessionCount      int
	TotalMinutes      float64
	TotalEdges        int
	TotalClimaxes     int
	ClimaxRate        float64
	MeetsRequirements bool
}

// SessionsAt returns the sessions recorded at the given level.
func SessionsAt(levelID int, sessions []models.Session) []models.Session {
	var matched []models.Session

	for i := range sessions {
		if sessions[i].Level == levelID {
			matched = append(matched, sessions[i])
		}
	}

	return matched
}

// Evaluate aggregates sessions against req. The caller must pass only the
// sessions recorded at the level that req belongs to.
func Evaluate(
	req level.Requirements,
	sessions []models.Session,
) Evaluation {
	var e Evaluation

	e.SessionCount = len(sessions)

	for i := range sessions {
		sess := &sessions[i]

		e.TotalMinutes += sess.Minutes()
		e.TotalEdges += len(sess.EdgeEvents)

		for j := range sess.EdgeEvents {
			if sess.EdgeEvents[j].Outcome == models.Climax {
				e.TotalClimaxes++
			}
		}
	}

	if e.TotalEdges > 0 {
		e.ClimaxRate = float64(e.TotalClimaxes) / float64(e.TotalEdges) * 100
	}

	e.MeetsRequirements = e.SessionCount >= req.MinSessions &&
		e.TotalMinutes >= req.MinTotalMinutes &&
		e.TotalEdges >= req.MinEdges &&
		e.ClimaxRate >= req.MinClimaxRate

	return e
}

// EvaluateLevel evaluates def against the sessions recorded at it.
func EvaluateLevel(def level.Definition, sessions []models.Session) Evaluation {
	return Evaluate(def.Requirements, SessionsAt(def.ID, sessions))
}
