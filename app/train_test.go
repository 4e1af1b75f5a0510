package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/level"
	"github.com/ayoisaiah/mmo/progress"
	"github.com/ayoisaiah/mmo/store"
)

func TestSelectLevel(t *testing.T) {
	ladder := level.Default()
	table := progress.Compute(ladder, []models.Session{})

	def, err := selectLevel(ladder, table, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, def.ID)

	_, err = selectLevel(ladder, table, 2, 1)
	assert.ErrorIs(t, err, errLevelLocked)

	_, err = selectLevel(ladder, table, 7, 1)
	assert.ErrorIs(t, err, errUnknownLevel)

	def, err = selectLevel(ladder, table, 0, 42)
	require.NoError(t, err, "a stale stored level falls back to the first")
	assert.Equal(t, 1, def.ID)
}

func TestSaveSessionKeepsExistingIDs(t *testing.T) {
	db, err := store.NewClient(filepath.Join(t.TempDir(), "mmo.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	ctx := context.Background()
	start := time.Date(2025, 11, 2, 1, 30, 0, 0, time.UTC)

	newSession := func(minutes int) *models.Session {
		d := minutes * 60
		end := start.Add(time.Duration(d) * time.Second)

		return &models.Session{
			ID:              "2025-11-02_01-30-00",
			StartTime:       start,
			EndTime:         &end,
			DurationSeconds: &d,
			Level:           1,
		}
	}

	for _, minutes := range []int{10, 20, 30} {
		require.NoError(t, saveSession(ctx, db, newSession(minutes)))
	}

	all, err := db.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	for id, want := range map[string]int{
		"2025-11-02_01-30-00":   600,
		"2025-11-02_01-30-00-2": 1200,
		"2025-11-02_01-30-00-3": 1800,
	} {
		got, err := db.Get(ctx, id)
		require.NoError(t, err, id)
		assert.Equal(t, want, got.Duration(), id)
	}
}
