package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/ui"
)

const dateLayout = "January 02, 2006 03:04 PM"

func sessionRow(i int, sess *models.Session) []string {
	endDate := ""
	if sess.EndTime != nil {
		endDate = sess.EndTime.Format(dateLayout)
	}

	status := ui.Green("finished")
	if !sess.Ended() {
		status = ui.Red("unfinished")
	}

	live := LiveSummary(sess)

	return []string{
		fmt.Sprintf("%d", i+1),
		sess.ID,
		sess.StartTime.Format(dateLayout),
		endDate,
		fmt.Sprintf("%d", sess.Level),
		formatDuration(time.Duration(sess.Duration()) * time.Second),
		fmt.Sprintf("%d/%d", live.SuccessfulEdges, live.TotalEdges),
		status,
	}
}

// PrintSessions writes a table of sessions to w.
func PrintSessions(w io.Writer, sessions []models.Session) {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	data := [][]string{
		{"#", "ID", "START DATE", "END DATE", "LEVEL", "DURATION", "HELD/EDGES", "STATUS"},
	}

	for i := range sessions {
		data = append(data, sessionRow(i, &sessions[i]))
	}

	ui.PrintTable(data, w)
}

// PrintSession writes the details of a single session to w.
func PrintSession(w io.Writer, sess *models.Session) {
	PrintSessions(w, []models.Session{*sess})

	if sess.Notes != "" {
		fmt.Fprintf(w, "%s %s\n", ui.Blue("Notes:"), sess.Notes)
	}

	phases := [][]string{{"#", "PHASE", "START", "DURATION"}}

	for i, p := range sess.Phases {
		phases = append(phases, []string{
			fmt.Sprintf("%d", i+1),
			string(p.Type),
			p.StartTime.Format("03:04:05 PM"),
			formatDuration(time.Duration(p.DurationSeconds) * time.Second),
		})
	}

	ui.PrintTable(phases, w)

	if len(sess.EdgeEvents) == 0 {
		return
	}

	edges := [][]string{{"#", "START", "DURATION", "OUTCOME"}}

	for i := range sess.EdgeEvents {
		e := &sess.EdgeEvents[i]

		outcome := "open"
		switch e.Outcome {
		case models.Climax:
			outcome = ui.Green(string(e.Outcome))
		case models.Ejaculated:
			outcome = ui.Red(string(e.Outcome))
		}

		edges = append(edges, []string{
			fmt.Sprintf("%d", i+1),
			e.StartTime.Format("03:04:05 PM"),
			formatDuration(time.Duration(e.Duration()) * time.Second),
			outcome,
		})
	}

	ui.PrintTable(edges, w)
}
