package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ysys/soundtime/internal/config"
	"github.com/ysys/soundtime/internal/ledger"
	"github.com/ysys/soundtime/internal/store"
)

type stubProber struct{ seconds float64 }

func (p stubProber) Duration(ctx context.Context, path string) (float64, bool) {
	return p.seconds, true
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{}
	cfg.Storage.Dir = dir
	cfg.UI.CurrencySymbol = "¥"
	cfg.UI.DateFormat = "2006-01-02"
	st := store.New(dir)
	led := ledger.New(st, nil)
	return New(context.Background(), cfg, st, led, nil, stubProber{seconds: 60})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(t *testing.T, a *App, s string) {
	t.Helper()
	for _, r := range s {
		_, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTeamFormAddsEntry(t *testing.T) {
	a := newTestApp(t)
	a.tab = tabTeam

	_, _ = a.Update(keyRunes("a"))
	require.True(t, a.team.formOpen)

	typeInto(t, a, "Night Mix")
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeInto(t, a, "Sato")
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter}) // keep the prefilled date
	typeInto(t, a, "130")                           // 1m30s via smart parse
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeInto(t, a, "3600")
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.False(t, a.team.formOpen)
	require.Equal(t, 1, a.led.Len())

	e := a.led.Entries()[0]
	require.Equal(t, "Night Mix", e.ProjectName)
	require.Equal(t, "Sato", e.Producer)
	require.Equal(t, ledger.MethodHourly, e.Method)
	require.InDelta(t, 90.0, e.DurationSeconds, 1e-9)
	require.InDelta(t, 90.0, e.Amount, 1e-9) // 90s at 3600/hour
}

func TestTeamManualMethodTakesDirectAmount(t *testing.T) {
	a := newTestApp(t)
	a.tab = tabTeam
	a.team.method = ledger.MethodManual

	_, _ = a.Update(keyRunes("a"))
	typeInto(t, a, "Jingle")
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeInto(t, a, "Ito")
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeInto(t, a, "2500")
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, 1, a.led.Len())
	e := a.led.Entries()[0]
	require.Equal(t, ledger.MethodManual, e.Method)
	require.Zero(t, e.DurationSeconds)
	require.InDelta(t, 2500.0, e.Amount, 1e-9)
}

func TestTeamDeleteMovesCursor(t *testing.T) {
	a := newTestApp(t)
	a.tab = tabTeam
	a.led.Add(ledger.NewEntry("one", "p", time.Now(), 60, 1, ledger.MethodManual))
	a.led.Add(ledger.NewEntry("two", "p", time.Now(), 60, 1, ledger.MethodManual))
	a.team.cursor = 1

	_, _ = a.Update(keyRunes("d"))
	require.Equal(t, 1, a.led.Len())
	require.Equal(t, 0, a.team.cursor)
	require.Equal(t, "one", a.led.Entries()[0].ProjectName)
}

func TestTabCyclingSkipsHiddenTabs(t *testing.T) {
	a := newTestApp(t)
	a.settings.ShowManualMode = false
	a.tab = tabAuto

	a.cycleTab(1)
	require.Equal(t, tabTeam, a.tab)
	a.cycleTab(1)
	require.Equal(t, tabSettings, a.tab)
	a.cycleTab(1)
	require.Equal(t, tabAuto, a.tab)
}

func TestSettingsToggleRoundTrips(t *testing.T) {
	a := newTestApp(t)
	a.tab = tabSettings

	require.True(t, a.settings.ShowAutoMode)
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, a.settings.ShowAutoMode)

	// the flip must hit disk
	require.False(t, a.st.LoadSettings().ShowAutoMode)
}

func TestStartTabNeverLandsOnHiddenTab(t *testing.T) {
	s := store.DefaultSettings()
	s.SelectedTab = string(tabTeam)
	s.ShowTeamMode = false
	require.Equal(t, tabSettings, startTab(s))

	s.ShowTeamMode = true
	require.Equal(t, tabTeam, startTab(s))
}
