package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	id, err := store.Record(ctx, &Run{
		File:     "deploy/app.checks.yaml",
		Passed:   4,
		Failed:   1,
		Duration: 15 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	runs, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "deploy/app.checks.yaml", run.File)
	assert.Equal(t, 4, run.Passed)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, 15*time.Millisecond, run.Duration)
	assert.False(t, run.StartedAt.IsZero())
}

func TestListNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, &Run{
			File:      "a.checks.yaml",
			Passed:    i,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	runs, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, 4, runs[0].Passed)
	assert.Equal(t, 2, runs[2].Passed)
}

func TestRecordKeepsExplicitID(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	id, err := store.Record(ctx, &Run{ID: "run-1", File: "a.checks.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "run-1", id)

	// Duplicate IDs are rejected by the primary key.
	_, err = store.Record(ctx, &Run{ID: "run-1", File: "a.checks.yaml"})
	assert.Error(t, err)
}

func TestPrune(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now()

	_, err := store.Record(ctx, &Run{File: "a.checks.yaml", StartedAt: old})
	require.NoError(t, err)
	_, err = store.Record(ctx, &Run{File: "a.checks.yaml", StartedAt: recent})
	require.NoError(t, err)

	removed, err := store.Prune(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	runs, err := store.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
