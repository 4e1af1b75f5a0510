package trainer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/mmo/internal/models"
)

const (
	padding  = 2
	maxWidth = 80
)

type styles struct {
	phase  map[models.PhaseType]lipgloss.Style
	base   lipgloss.Style
	main   lipgloss.Style
	hint   lipgloss.Style
	prompt lipgloss.Style
}

func newStyles(darkTheme bool) styles {
	text := lipgloss.Color("#FFFFFF")
	dim := lipgloss.Color("#909090")

	if !darkTheme {
		text = lipgloss.Color("#000000")
		dim = lipgloss.Color("#5C5C5C")
	}

	label := func(bg string) lipgloss.Style {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			MarginRight(1)
	}

	return styles{
		phase: map[models.PhaseType]lipgloss.Style{
			models.Stroke: label("#B0DB43").SetString("STROKE"),
			models.Rest:   label("#12EAEA").SetString("REST"),
			models.Edge:   label("#C492B1").SetString("EDGE"),
		},
		base:   lipgloss.NewStyle().Padding(1, padding),
		main:   lipgloss.NewStyle().Foreground(text).Bold(true),
		hint:   lipgloss.NewStyle().Foreground(dim),
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("#F2C94C")).Bold(true),
	}
}
