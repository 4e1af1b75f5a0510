package trainer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/mmo/internal/timeutil"
	"github.com/ayoisaiah/mmo/stats"
)

// formatClock renders whole seconds as "MM:SS".
func formatClock(secs int) string {
	m, s := timeutil.SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

func (m *Model) headerView() string {
	var s strings.Builder

	s.WriteString(m.styles.phase[m.sched.Phase()].String())
	s.WriteString(m.styles.hint.Render(fmt.Sprintf(
		"Level %d · %s · started %s",
		m.def.ID,
		m.def.Name,
		m.rec.Current().StartTime.Format(m.timeLayout),
	)))

	return s.String()
}

func (m *Model) clockView() string {
	now := m.now()

	if edge, ok := m.rec.CurrentEdge(); ok {
		elapsed := timeutil.SecondsBetween(edge.StartTime, now)

		return m.styles.main.Render(formatClock(elapsed)) +
			m.styles.hint.Render(" on the edge")
	}

	remaining := timeutil.FloorSeconds(m.sched.Remaining(now))

	return m.styles.main.Render(formatClock(remaining)) + "\n\n" +
		m.progress.ViewAs(m.sched.Progress(now))
}

func (m *Model) liveView() string {
	live := stats.LiveSummary(m.rec.Current())
	if live == nil {
		return ""
	}

	return m.styles.hint.Render(fmt.Sprintf(
		"edges %d · held %d · ejaculated %d · avg %ds",
		live.TotalEdges,
		live.SuccessfulEdges,
		live.EjaculatedEdges,
		live.AvgEdgeDuration,
	))
}

func (m *Model) helpView() string {
	bindings := []key.Binding{defaultKeymap.edge}

	if m.edgeID != "" {
		bindings = []key.Binding{defaultKeymap.climax, defaultKeymap.ejaculated}
	}

	bindings = append(
		bindings,
		defaultKeymap.arousal,
		defaultKeymap.finish,
		defaultKeymap.abort,
	)

	return m.help.ShortHelpView(bindings)
}

func (m *Model) View() string {
	if m.result != Running || !m.rec.Active() {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")
	s.WriteString(m.clockView())
	s.WriteString("\n\n")
	s.WriteString(m.liveView())

	if m.prompting {
		s.WriteString("\n\n")
		s.WriteString(m.styles.prompt.Render("How aroused are you? Press 1-9, or 0 for 10"))
	}

	s.WriteString("\n\n")
	s.WriteString(m.helpView())

	return m.styles.base.Render(s.String())
}
