package store_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/testutil"
	"github.com/ayoisaiah/mmo/store"
)

func newClient(t *testing.T) *store.Client {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "mmo.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		c.Close()
	})

	return c
}

func day(d int) time.Time {
	return time.Date(2025, 2, d, 19, 0, 0, 0, time.UTC)
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	sess := testutil.NewSession(testutil.SessionOpts{
		Start:    day(1),
		Level:    1,
		Minutes:  12,
		Climaxes: 2,
	})
	sess.Notes = "felt good"

	require.NoError(t, c.Put(ctx, &sess))

	got, err := c.Get(ctx, sess.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(&sess, got); diff != "" {
		t.Fatalf("Get() mismatch (-want +got):\n%s", diff)
	}

	found, err := c.Delete(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = c.Delete(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = c.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestPutRejectsMalformedSession(t *testing.T) {
	c := newClient(t)

	sess := testutil.NewSession(testutil.SessionOpts{Level: 0})

	err := c.Put(context.Background(), &sess)
	assert.ErrorIs(t, err, models.ErrMalformedRecord)
}

func TestListAllOrdersByRecencyAndSkipsMalformed(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	for _, d := range []int{3, 1, 2} {
		sess := testutil.NewSession(testutil.SessionOpts{Start: day(d), Level: 1})
		require.NoError(t, c.Put(ctx, &sess))
	}

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("sessions"))

		if err := b.Put([]byte("garbage"), []byte("{not json")); err != nil {
			return err
		}

		return b.Put([]byte("no-level"), []byte(`{"id":"no-level","startTime":"2025-02-04T10:00:00Z"}`))
	})
	require.NoError(t, err)

	sessions, err := c.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	assert.Equal(t, day(3), sessions[0].StartTime)
	assert.Equal(t, day(2), sessions[1].StartTime)
	assert.Equal(t, day(1), sessions[2].StartTime)

	_, err = c.Get(ctx, "garbage")
	assert.ErrorIs(t, err, models.ErrMalformedRecord)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	for _, d := range []int{1, 2} {
		sess := testutil.NewSession(testutil.SessionOpts{Start: day(d), Level: 2})
		require.NoError(t, c.Put(ctx, &sess))
	}

	require.NoError(t, c.Clear(ctx))

	sessions, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	sess := testutil.NewSession(testutil.SessionOpts{Start: day(5), Level: 2})
	require.NoError(t, c.Put(ctx, &sess))
}

func TestSettingsDefaultsArePersisted(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	s, err := c.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), s)

	s.CurrentLevel = 3
	s.ArousalCheckInterval = 30
	s.PushSubscription = []byte(`{"endpoint":"https://push.example/abc"}`)
	require.NoError(t, c.SaveSettings(ctx, s))

	got, err := c.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentLevel)
	assert.Equal(t, 30, got.ArousalCheckInterval)
	assert.JSONEq(t, `{"endpoint":"https://push.example/abc"}`, string(got.PushSubscription))
}

func TestCancelledContext(t *testing.T) {
	c := newClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSecondClientReportsAlreadyRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmo.db")

	c, err := store.NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = store.NewClient(path)
	assert.Error(t, err)
}

func TestImportDir(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)
	dir := t.TempDir()

	for i, d := range []int{1, 2, 10} {
		sess := testutil.NewSession(testutil.SessionOpts{
			Start:   day(d),
			Level:   1,
			Minutes: 5 + i,
		})
		testutil.WriteJSON(t, filepath.Join(dir, sess.ID+".json"), sess)
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.txt"), []byte("x"), 0o600))

	result, err := c.ImportDir(ctx, dir)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, []string{"broken.json"}, result.Skipped)

	sessions, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
}

func TestExportImportArchive(t *testing.T) {
	ctx := context.Background()
	src := newClient(t)

	for _, d := range []int{4, 5, 6} {
		sess := testutil.NewSession(testutil.SessionOpts{
			Start:      day(d),
			Level:      2,
			Minutes:    d,
			Climaxes:   1,
			Ejaculated: 1,
			OpenEdges:  1,
		})
		require.NoError(t, src.Put(ctx, &sess))
	}

	var buf bytes.Buffer

	n, err := src.Export(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	dst := newClient(t)

	result, err := dst.ImportArchive(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Empty(t, result.Skipped)

	want, err := src.ListAll(ctx)
	require.NoError(t, err)

	got, err := dst.ListAll(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("archive round trip mismatch (-want +got):\n%s", diff)
	}
}
