// Package testutil contains helpers shared by package tests
package testutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/osutil"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	compareOutput := func(output []byte, goldenFileName string) {
		if output != nil {
			g.Assert(t, goldenFileName, output)
		} else {
			f := filepath.Join("testdata", goldenFileName+".golden")
			if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
				t.Fatalf("expected no output, but golden file exists: %s", f)
			}
		}
	}

	snap, golden := tc.Output()

	compareOutput(snap, golden)
}

func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// SessionOpts describes a finished session for building fixtures.
type SessionOpts struct {
	Start      time.Time
	ID         string
	Level      int
	Minutes    int
	Climaxes   int
	Ejaculated int
	OpenEdges  int
}

// NewSession builds a finished session from opts. Edge events are laid out
// one minute apart, each lasting thirty seconds.
func NewSession(opts SessionOpts) models.Session {
	start := opts.Start
	if start.IsZero() {
		start = time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	}

	id := opts.ID
	if id == "" {
		id = start.Format("2006-01-02_15-04-05")
	}

	duration := opts.Minutes * 60
	end := start.Add(time.Duration(duration) * time.Second)

	sess := models.Session{
		ID:              id,
		StartTime:       start,
		EndTime:         &end,
		DurationSeconds: &duration,
		Level:           opts.Level,
		ArousalReadings: []models.ArousalReading{},
		Phases: []models.Phase{
			{Type: models.Stroke, StartTime: start, DurationSeconds: duration},
		},
		EdgeEvents: []models.EdgeEvent{},
	}

	add := func(outcome models.Outcome, n int) {
		for range n {
			i := len(sess.EdgeEvents)
			edgeStart := start.Add(time.Duration(i) * time.Minute)
			e := models.EdgeEvent{
				ID:        fmt.Sprintf("%s-edge-%d", id, i),
				StartTime: edgeStart,
			}

			if outcome != "" {
				edgeEnd := edgeStart.Add(30 * time.Second)
				d := 30
				e.EndTime = &edgeEnd
				e.DurationSeconds = &d
				e.Outcome = outcome
			}

			sess.EdgeEvents = append(sess.EdgeEvents, e)
		}
	}

	add(models.Climax, opts.Climaxes)
	add(models.Ejaculated, opts.Ejaculated)
	add("", opts.OpenEdges)

	return sess
}

// WriteJSON marshals v into path.
func WriteJSON(t *testing.T, path string, v any) {
	t.Helper()

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
}
