package static_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mmo/internal/static"
	"github.com/ayoisaiah/mmo/level"
)

func TestEmbeddedLevelsMatchDefault(t *testing.T) {
	ladder, err := level.Parse(static.LevelsFile())
	require.NoError(t, err)

	if diff := cmp.Diff(level.Default(), ladder); diff != "" {
		t.Fatalf("embedded ladder mismatch (-want +got):\n%s", diff)
	}
}

func TestInstallRenamesAndKeepsExisting(t *testing.T) {
	dir := t.TempDir()

	err := static.Install(dir, map[string]string{"levels.yml": "levels_dev.yml"})
	require.NoError(t, err)

	dest := filepath.Join(dir, "levels_dev.yml")

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, static.LevelsFile(), b)

	require.NoError(t, os.WriteFile(dest, []byte("custom"), 0o600))
	require.NoError(t, static.Install(dir, map[string]string{"levels.yml": "levels_dev.yml"}))

	b, err = os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(b))

	chime, err := os.ReadFile(filepath.Join(dir, static.ChimeFileName))
	require.NoError(t, err)
	assert.Equal(t, static.ChimeFile(), chime)
}

func TestChimeIsWave(t *testing.T) {
	b := static.ChimeFile()

	require.Greater(t, len(b), 44)
	assert.Equal(t, "RIFF", string(b[:4]))
	assert.Equal(t, "WAVE", string(b[8:12]))
}
