package progress

import (
	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/timeutil"
	"github.com/ayoisaiah/mmo/level"
)

// LevelProgress is the derived progress for one level of the ladder.
// Minutes and climax rate are rounded for presentation.
type LevelProgress struct {
	Level                int  `json:"level"`
	SessionsAtLevel      int  `json:"sessionsAtLevel"`
	TotalMinutesAtLevel  int  `json:"totalMinutesAtLevel"`
	TotalEdgesAtLevel    int  `json:"totalEdgesAtLevel"`
	TotalClimaxesAtLevel int  `json:"totalClimaxesAtLevel"`
	ClimaxRate           int  `json:"climaxRate"`
	Unlocked             bool `json:"unlocked"`
	Mastered             bool `json:"mastered"`
}

// Compute builds the progress table for the ladder in ladder order. The
// first level is always unlocked; every other level is unlocked only when
// the level immediately before it is mastered. Compute holds no state and
// may be called concurrently.
func Compute(ladder level.Ladder, sessions []models.Session) []LevelProgress {
	table := make([]LevelProgress, len(ladder))

	var prev Evaluation

	for i := range ladder {
		def := ladder[i]
		e := EvaluateLevel(def, sessions)

		table[i] = LevelProgress{
			Level:                def.ID,
			SessionsAtLevel:      e.SessionCount,
			TotalMinutesAtLevel:  timeutil.Round(e.TotalMinutes),
			TotalEdgesAtLevel:    e.TotalEdges,
			TotalClimaxesAtLevel: e.TotalClimaxes,
			ClimaxRate:           timeutil.Round(e.ClimaxRate),
			Unlocked:             i == 0 || prev.MeetsRequirements,
			Mastered:             e.MeetsRequirements,
		}

		prev = e
	}

	return table
}

// Lookup returns the entry for levelID in a table produced by Compute.
func Lookup(table []LevelProgress, levelID int) (*LevelProgress, bool) {
	for i := range table {
		if table[i].Level == levelID {
			return &table[i], true
		}
	}

	return nil, false
}

// Unlocked reports whether levelID may be trained at.
func Unlocked(table []LevelProgress, levelID int) bool {
	p, ok := Lookup(table, levelID)

	return ok && p.Unlocked
}

// Highest returns the highest unlocked level id in the table, or zero for an
// empty table.
func Highest(table []LevelProgress) int {
	var id int

	for i := range table {
		if table[i].Unlocked {
			id = table[i].Level
		}
	}

	return id
}
