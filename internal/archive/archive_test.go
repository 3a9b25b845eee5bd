package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ysys/soundtime/internal/ledger"
)

func openTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepo(db)
}

func TestArchiveRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	repo := openTestRepo(t)

	entries := []ledger.Entry{
		ledger.NewEntry("Podcast S2", "Ana", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 3600, 120, ledger.MethodHourly),
		ledger.NewEntry("Jingle", "Bo", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 90, 7.5, ledger.MethodMinute),
	}
	batchID, err := repo.Archive(ctx, entries)
	require.NoError(t, err)
	require.NotEmpty(t, batchID)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, entries[0].ID, got[0].ID)
	require.Equal(t, entries[0].ProjectName, got[0].ProjectName)
	require.True(t, entries[0].Date.Equal(got[0].Date))
	require.Equal(t, entries[0].DurationSeconds, got[0].DurationSeconds)
	require.Equal(t, ledger.MethodHourly, got[0].Method)
	require.Equal(t, batchID, got[0].BatchID)
	require.Equal(t, batchID, got[1].BatchID)
}

func TestArchiveEmptySnapshotIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestRepo(t)

	batchID, err := repo.Archive(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, batchID)

	n, err := repo.Batches(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestArchiveSeparateBatches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestRepo(t)

	first := []ledger.Entry{ledger.NewEntry("A", "x", time.Now(), 10, 1, ledger.MethodManual)}
	second := []ledger.Entry{ledger.NewEntry("B", "y", time.Now(), 20, 2, ledger.MethodManual)}

	b1, err := repo.Archive(ctx, first)
	require.NoError(t, err)
	b2, err := repo.Archive(ctx, second)
	require.NoError(t, err)
	require.NotEqual(t, b1, b2)

	n, err := repo.Batches(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
