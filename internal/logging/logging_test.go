package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mmo/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"info":  slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorContains(t, err, "unknown log level: loud")
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	l := logging.New(&buf, slog.LevelWarn)
	l.Info("ignored")
	l.Warn("skipped record", slog.String("key", "abc"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "skipped record", entry["msg"])
	assert.Equal(t, "abc", entry["key"])
}

func TestRotatingWriterCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "mmo.log")

	w := logging.NewRotatingWriter(path)
	_, err := w.Write([]byte("{}\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
