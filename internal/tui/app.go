// Package tui is the terminal front end: tabs for auto, manual and team
// modes plus settings and archive history. All ledger, roster and settings
// mutations happen inside the update loop; background work only produces
// messages that the loop merges.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ysys/soundtime/internal/archive"
	"github.com/ysys/soundtime/internal/config"
	"github.com/ysys/soundtime/internal/ledger"
	"github.com/ysys/soundtime/internal/probe"
	"github.com/ysys/soundtime/internal/store"
)

type tabID string

const (
	tabAuto     tabID = "auto"
	tabManual   tabID = "manual"
	tabTeam     tabID = "team"
	tabSettings tabID = "settings"
	tabHistory  tabID = "history"
)

// App ties together the tabs and owns all mutable state.
type App struct {
	ctx      context.Context
	cfg      config.Config
	st       *store.Store
	led      *ledger.Ledger
	arch     *archive.Repo
	prober   probe.Prober
	settings store.Settings
	keys     Keymap

	tab    tabID
	width  int
	height int
	status string

	auto    autoState
	manual  manualState
	team    teamState
	history []archive.ArchivedEntry

	settingsCursor int
}

// New builds the app from preloaded state. arch may be nil when the archive
// database could not be opened; clearing then skips the snapshot.
func New(ctx context.Context, cfg config.Config, st *store.Store, led *ledger.Ledger, arch *archive.Repo, prober probe.Prober) *App {
	settings := st.LoadSettings()
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		st:       st,
		led:      led,
		arch:     arch,
		prober:   prober,
		settings: settings,
		keys:     LoadKeymap(cfg.Storage.Dir),
		tab:      startTab(settings),
		width:    100,
		height:   30,
	}
	a.auto = newAutoState(settings)
	a.manual = newManualState(settings)
	a.team = newTeamState()
	return a
}

// startTab honors the persisted selection but never lands on a hidden tab.
func startTab(s store.Settings) tabID {
	t := tabID(s.SelectedTab)
	switch {
	case t == tabAuto && s.ShowAutoMode,
		t == tabManual && s.ShowManualMode,
		t == tabTeam && s.ShowTeamMode,
		t == tabSettings:
		return t
	}
	return tabSettings
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) visibleTabs() []tabID {
	var out []tabID
	if a.settings.ShowAutoMode {
		out = append(out, tabAuto)
	}
	if a.settings.ShowManualMode {
		out = append(out, tabManual)
	}
	if a.settings.ShowTeamMode {
		out = append(out, tabTeam)
	}
	out = append(out, tabSettings)
	return out
}

func (a *App) cycleTab(step int) {
	tabs := a.visibleTabs()
	cur := 0
	for i, t := range tabs {
		if t == a.tab {
			cur = i
			break
		}
	}
	a.tab = tabs[(cur+step+len(tabs))%len(tabs)]
	a.status = ""
	a.settings.SelectedTab = string(a.tab)
	a.saveSettings()
}

// saveSettings persists the bag; failures are swallowed, memory stays
// authoritative.
func (a *App) saveSettings() {
	_ = a.st.SaveSettings(a.settings)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.editing() {
			break // plain letters must reach the focused input
		}
		if key.Matches(m, a.keys.NextTab) {
			a.cycleTab(1)
			return a, nil
		}
		if key.Matches(m, a.keys.PrevTab) {
			a.cycleTab(-1)
			return a, nil
		}
		if key.Matches(m, a.keys.History) && a.tab == tabTeam {
			a.tab = tabHistory
			return a, a.loadHistoryCmd()
		}
	case probeDoneMsg:
		a.auto.roster.Apply(m.results)
		a.auto.probing = false
		a.status = fmt.Sprintf("probed %d file(s)", len(m.results))
		return a, nil
	case historyMsg:
		a.history = m.entries
		return a, nil
	case statusMsg:
		a.status = string(m)
		return a, nil
	case errMsg:
		a.status = "error: " + m.Error()
		return a, nil
	}

	switch a.tab {
	case tabAuto:
		return a.updateAuto(msg)
	case tabManual:
		return a.updateManual(msg)
	case tabTeam:
		return a.updateTeam(msg)
	case tabHistory:
		return a.updateHistory(msg)
	default:
		return a.updateSettings(msg)
	}
}

// editing reports whether a text input currently has focus.
func (a *App) editing() bool {
	switch a.tab {
	case tabAuto:
		return a.auto.editing()
	case tabManual:
		return a.manual.editing()
	case tabTeam:
		return a.team.editing()
	}
	return false
}

func (a *App) View() string {
	var body string
	switch a.tab {
	case tabAuto:
		body = a.viewAuto()
	case tabManual:
		body = a.viewManual()
	case tabTeam:
		body = a.viewTeam()
	case tabHistory:
		body = a.viewHistory()
	default:
		body = a.viewSettings()
	}
	out := a.renderTabBar() + "\n" + body
	if a.status != "" {
		out += "\n" + statusStyle.Render(a.status)
	}
	return out
}

func (a *App) renderTabBar() string {
	names := map[tabID]string{
		tabAuto:     "Auto",
		tabManual:   "Manual",
		tabTeam:     "Team",
		tabSettings: "Settings",
		tabHistory:  "History",
	}
	tabs := a.visibleTabs()
	if a.tab == tabHistory {
		tabs = append(tabs, tabHistory)
	}
	var parts []string
	for _, t := range tabs {
		if t == a.tab {
			parts = append(parts, tabActive.Render(names[t]))
		} else {
			parts = append(parts, tabStyle.Render(names[t]))
		}
	}
	return strings.Join(parts, " ")
}

func (a *App) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "esc", "q":
			a.tab = tabTeam
		}
	}
	return a, nil
}

func (a *App) viewHistory() string {
	out := titleStyle.Render("Settlement History") + "\n"
	if len(a.history) == 0 {
		return out + faintStyle.Render("(no archived settlements)") + "\n[esc] Back"
	}
	batch := ""
	for _, e := range a.history {
		if e.BatchID != batch {
			batch = e.BatchID
			out += totalStyle.Render("Archived "+e.ArchivedAt.Local().Format("2006-01-02 15:04")) + "\n"
		}
		out += fmt.Sprintf("  %s  %-24s %-16s %s  %s%.2f\n",
			e.Date.Format(a.cfg.UI.DateFormat), clip(e.ProjectName, 24), clip(e.Producer, 16),
			a.formatSeconds(e.DurationSeconds), a.cfg.UI.CurrencySymbol, e.Amount)
	}
	return out + "[esc] Back"
}

func (a *App) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		if a.arch == nil {
			return statusMsg("archive unavailable")
		}
		entries, err := a.arch.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg{entries}
	}
}

// messages
type probeDoneMsg struct{ results []probe.Result }

type historyMsg struct{ entries []archive.ArchivedEntry }

type statusMsg string

type errMsg struct{ error }
