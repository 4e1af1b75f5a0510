// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const HoursInADay = 24

// MaxHoursInAMonth bounds the range over which a daily breakdown is shown.
const MaxHoursInAMonth = 744

// SessionIDLayout is the layout of generated session identifiers.
const SessionIDLayout = "2006-01-02_15-04-05"

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// FloorSeconds returns the number of whole seconds in d. Negative durations
// are treated as zero.
func FloorSeconds(d time.Duration) int {
	if d < 0 {
		return 0
	}

	return int(d / time.Second)
}

// SecondsBetween returns the whole seconds elapsed from start to end.
func SecondsBetween(start, end time.Time) int {
	return FloorSeconds(end.Sub(start))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	return val / 60, val % 60
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

func DayFormat(t time.Time) int {
	d := fmt.Sprintf("%d%02d%02d", t.Year(), t.Month(), t.Day())

	i, _ := strconv.Atoi(d)

	return i
}

// TimeRange returns the start and end time according to the
// specified time period relative to now.
func TimeRange(period Period, now time.Time) (start, end time.Time) {
	start = RoundToStart(now)

	end = RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case PeriodToday:
		return
	case PeriodYesterday:
		start = now.AddDate(0, 0, Range[period])
		start = RoundToStart(start)
		end = RoundToEnd(start)

		return
	case PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, Range[period])
		start = RoundToStart(start)
	}

	return
}

// FromStrRelativeTo parses s with relative expressions anchored at now.
func FromStrRelativeTo(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
