package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := &Record{
		Operation: OpInstall,
		Package:   "requests",
		SourceURL: "https://pypi.org/simple",
		Success:   true,
		Output:    "Successfully installed requests",
	}
	require.NoError(t, store.Append(ctx, rec))
	assert.NotZero(t, rec.ID)

	records, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, OpInstall, got.Operation)
	assert.Equal(t, "requests", got.Package)
	assert.Equal(t, "https://pypi.org/simple", got.SourceURL)
	assert.True(t, got.Success)
	assert.Equal(t, "Successfully installed requests", got.Output)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, pkg := range []string{"first", "second", "third"} {
		rec := &Record{
			Operation: OpUninstall,
			Package:   pkg,
			Success:   true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Append(ctx, rec))
	}

	records, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "third", records[0].Package)
	assert.Equal(t, "second", records[1].Package)
}

func TestAppendTruncatesLongOutput(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := &Record{
		Operation: OpUpgrade,
		Package:   "numpy",
		Success:   false,
		Output:    strings.Repeat("x", maxOutputLen+500),
	}
	require.NoError(t, store.Append(ctx, rec))

	records, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Len(t, records[0].Output, maxOutputLen)
}

func TestRecentEmptyStore(t *testing.T) {
	store := newTestStore(t)

	records, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
