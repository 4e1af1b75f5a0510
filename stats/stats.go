// Package stats reports training session statistics
package stats

import (
	"time"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/timeutil"
)

// Summary aggregates a set of sessions.
type Summary struct {
	TotalSessions        int     `json:"totalSessions"`
	TotalEdges           int     `json:"totalEdges"`
	SuccessfulEdges      int     `json:"successfulEdges"`
	EjaculatedEdges      int     `json:"ejaculatedEdges"`
	TotalTrainingMinutes int     `json:"totalTrainingMinutes"`
	AverageEdgeDuration  int     `json:"averageEdgeDuration"`
	LongestEdge          int     `json:"longestEdge"`
	AverageArousal       float64 `json:"averageArousal"`
}

// Live summarises the session currently being recorded.
type Live struct {
	TotalEdges      int `json:"totalEdges"`
	SuccessfulEdges int `json:"successfulEdges"`
	EjaculatedEdges int `json:"ejaculatedEdges"`
	AvgEdgeDuration int `json:"avgEdgeDuration"`
}

type edgeTotals struct {
	total      int
	climax     int
	ejaculated int
	closed     int
	seconds    int
	longest    int
}

func (t *edgeTotals) add(edges []models.EdgeEvent) {
	for i := range edges {
		e := &edges[i]

		t.total++

		switch e.Outcome {
		case models.Climax:
			t.climax++
		case models.Ejaculated:
			t.ejaculated++
		}

		if e.Open() {
			continue
		}

		t.closed++
		t.seconds += e.Duration()
		t.longest = max(t.longest, e.Duration())
	}
}

// average returns the mean duration of closed edges in whole seconds.
func (t *edgeTotals) average() int {
	if t.closed == 0 {
		return 0
	}

	return timeutil.Round(float64(t.seconds) / float64(t.closed))
}

// Summarize computes the summary for sessions.
func Summarize(sessions []models.Session) Summary {
	var (
		edges    edgeTotals
		minutes  float64
		arousal  float64
		readings int
	)

	for i := range sessions {
		sess := &sessions[i]

		minutes += sess.Minutes()

		edges.add(sess.EdgeEvents)

		for _, r := range sess.ArousalReadings {
			arousal += r.Value
			readings++
		}
	}

	s := Summary{
		TotalSessions:        len(sessions),
		TotalEdges:           edges.total,
		SuccessfulEdges:      edges.climax,
		EjaculatedEdges:      edges.ejaculated,
		TotalTrainingMinutes: timeutil.Round(minutes),
		AverageEdgeDuration:  edges.average(),
		LongestEdge:          edges.longest,
	}

	if readings > 0 {
		s.AverageArousal = arousal / float64(readings)
	}

	return s
}

// LiveSummary computes the running totals for a session in progress. A nil
// session yields nil.
func LiveSummary(sess *models.Session) *Live {
	if sess == nil {
		return nil
	}

	var edges edgeTotals

	edges.add(sess.EdgeEvents)

	return &Live{
		TotalEdges:      edges.total,
		SuccessfulEdges: edges.climax,
		EjaculatedEdges: edges.ejaculated,
		AvgEdgeDuration: edges.average(),
	}
}

// Filter returns the sessions that started within [start, end]. A zero start
// means no lower bound.
func Filter(sessions []models.Session, start, end time.Time) []models.Session {
	var filtered []models.Session

	for i := range sessions {
		st := sessions[i].StartTime

		if !start.IsZero() && st.Before(start) {
			continue
		}

		if st.After(end) {
			continue
		}

		filtered = append(filtered, sessions[i])
	}

	return filtered
}

// Daily returns the training time per calendar day of the session start,
// keyed by timeutil.DayFormat. Days follow the location of start, or the
// local time zone when start is zero. Every day between start and end is
// present.
func Daily(
	sessions []models.Session,
	start, end time.Time,
) map[int]time.Duration {
	m := make(map[int]time.Duration)

	loc := time.Local
	if !start.IsZero() {
		loc = start.Location()

		for date := timeutil.RoundToStart(start); !date.After(end); date = date.AddDate(0, 0, 1) {
			m[timeutil.DayFormat(date)] = 0
		}
	}

	for i := range sessions {
		sess := &sessions[i]
		m[timeutil.DayFormat(sess.StartTime.In(loc))] += time.Duration(sess.Duration()) * time.Second
	}

	return m
}

// Weekly returns the training time per local weekday.
func Weekly(sessions []models.Session) map[int]time.Duration {
	m := make(map[int]time.Duration)

	//nolint:gomnd // 0-6 days
	for i := 0; i <= 6; i++ {
		m[i] = 0
	}

	for i := range sessions {
		sess := &sessions[i]
		m[int(sess.StartTime.Local().Weekday())] += time.Duration(sess.Duration()) * time.Second
	}

	return m
}
