package stats

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/timeutil"
	"github.com/ayoisaiah/mmo/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
)

type aggregatePeriod string

const (
	daily  aggregatePeriod = "Daily"
	weekly aggregatePeriod = "Weekly"
)

// Opts bounds the reporting period.
type Opts struct {
	StartTime time.Time
	EndTime   time.Time
}

// Report is the machine readable form of the statistics output.
type Report struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Summary   Summary   `json:"summary"`
}

// New filters sessions to the reporting period and summarises them.
func New(sessions []models.Session, opts Opts) *Report {
	filtered := Filter(sessions, opts.StartTime, opts.EndTime)

	r := &Report{
		StartTime: opts.StartTime,
		EndTime:   opts.EndTime,
		Summary:   Summarize(filtered),
	}

	// For all-time, start at the day of the first session
	if r.StartTime.IsZero() && len(filtered) > 0 {
		first := filtered[0].StartTime

		for i := range filtered {
			if filtered[i].StartTime.Before(first) {
				first = filtered[i].StartTime
			}
		}

		r.StartTime = timeutil.RoundToStart(first)
	}

	return r
}

// ToJSON encodes the report.
func (r *Report) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

func formatDuration(d time.Duration) string {
	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}

func getBarChart(data map[int]time.Duration, period aggregatePeriod) string {
	if len(data) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s breakdown (minutes)", period))

	keys := make([]int, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, cmp.Compare[int])

	bars := make(pterm.Bars, 0, len(keys))

	for _, k := range keys {
		var label string

		switch period {
		case weekly:
			label = time.Weekday(k).String()
		case daily:
			date, err := time.Parse("20060102", fmt.Sprint(k))
			if err != nil {
				continue
			}

			label = date.Format("Jan 02, 2006")
		}

		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(data[k].Minutes()),
			Label: label,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// getSummary renders the totals for the reporting period.
func getSummary(s Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", ui.Blue("Summary")))

	minutes := time.Duration(s.TotalTrainingMinutes) * time.Minute

	fmt.Fprintf(&b, "Time trained: %s\n", ui.Green(formatDuration(minutes)))
	fmt.Fprintln(&b, "Sessions:", ui.Green(s.TotalSessions))
	fmt.Fprintln(&b, "Edges:", ui.Green(s.TotalEdges))
	fmt.Fprintln(&b, "Climax (held):", ui.Green(s.SuccessfulEdges))
	fmt.Fprintln(&b, "Ejaculated:", ui.Red(s.EjaculatedEdges))

	b.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Edges")))

	avg := time.Duration(s.AverageEdgeDuration) * time.Second
	longest := time.Duration(s.LongestEdge) * time.Second

	fmt.Fprintf(&b, "Average duration: %s\n", ui.Green(formatDuration(avg)))
	fmt.Fprintf(&b, "Longest: %s\n", ui.Green(formatDuration(longest)))
	fmt.Fprintf(&b, "Average arousal: %s\n", ui.Green(fmt.Sprintf("%.1f", s.AverageArousal)))

	return b.String()
}

// Show writes the statistics for the reporting period to w.
func Show(w io.Writer, sessions []models.Session, opts Opts) error {
	r := New(sessions, opts)

	if r.Summary.TotalSessions == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	filtered := Filter(sessions, opts.StartTime, opts.EndTime)

	reportingStart := r.StartTime.Format("January 02, 2006")
	reportingEnd := r.EndTime.Format("January 02, 2006")
	timePeriod := "Reporting period: " + reportingStart + " - " + reportingEnd

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgMagenta)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("%s", timePeriod)

	var history string

	hoursDiff := timeutil.Round(r.EndTime.Sub(r.StartTime).Hours())
	if hoursDiff > timeutil.HoursInADay && hoursDiff <= timeutil.MaxHoursInAMonth {
		history = getBarChart(Daily(filtered, r.StartTime, r.EndTime), daily)
	}

	output := fmt.Sprint(
		header,
		getSummary(r.Summary),
		history,
		getBarChart(Weekly(filtered), weekly),
	)

	_, err := fmt.Fprintln(w, strings.TrimSpace(output))

	return err
}
