package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ysys/soundtime/internal/ledger"
)

func TestEntriesRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir())
	entries := []ledger.Entry{
		ledger.NewEntry("Podcast S2", "Ana", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 3600.5, 120.25, ledger.MethodHourly),
		ledger.NewEntry("Jingle, \"final\"", "Bo", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 90, 7.5, ledger.MethodMinute),
	}
	require.NoError(t, s.SaveEntries(entries))

	got := s.LoadEntries()
	require.Len(t, got, len(entries))
	for i := range entries {
		require.Equal(t, entries[i].ID, got[i].ID)
		require.Equal(t, entries[i].CID, got[i].CID)
		require.Equal(t, entries[i].ProjectName, got[i].ProjectName)
		require.Equal(t, entries[i].Producer, got[i].Producer)
		require.True(t, entries[i].Date.Equal(got[i].Date))
		require.Equal(t, entries[i].DurationSeconds, got[i].DurationSeconds)
		require.Equal(t, entries[i].Amount, got[i].Amount)
		require.Equal(t, entries[i].Method, got[i].Method)
	}
}

func TestLoadEntriesFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(dir)
	require.Empty(t, s.LoadEntries(), "missing file")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "settlements.json"), []byte("{not json"), 0o600))
	require.Empty(t, s.LoadEntries(), "corrupt file")
}

func TestSettingsRoundTripAndDefaults(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir())

	st := s.LoadSettings()
	require.True(t, st.ShowAutoMode)
	require.True(t, st.EnableSmartInput)
	require.Equal(t, "auto", st.SelectedTab)
	require.Empty(t, st.LastHourlyRate)

	st.ShowTeamMode = false
	st.SelectedTab = "team"
	st.LastHourlyRate = "120"
	require.NoError(t, s.SaveSettings(st))

	got := s.LoadSettings()
	require.Equal(t, st, got)
}

func TestSettingsForwardCompatible(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := `{"selectedTab":"manual","futureField":{"nested":true},"lastMinuteRate":"2.5"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(doc), 0o600))

	st := New(dir).LoadSettings()
	require.Equal(t, "manual", st.SelectedTab)
	require.Equal(t, "2.5", st.LastMinuteRate)
	// missing fields keep their defaults
	require.True(t, st.ShowAutoMode)
	require.True(t, st.ShowDurationInSeconds)
}

func TestWriteIsAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.SaveSettings(DefaultSettings()))

	// no temp file left behind
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	require.Empty(t, matches)
}
