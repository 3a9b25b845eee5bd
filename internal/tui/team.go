package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ysys/soundtime/internal/calc"
	"github.com/ysys/soundtime/internal/export"
	"github.com/ysys/soundtime/internal/ledger"
	"github.com/ysys/soundtime/internal/timeparse"
)

// teamState is the team settlement tab: the persistent ledger plus an
// add-entry form.
type teamState struct {
	cursor    int
	showStats bool

	formOpen bool
	method   ledger.Method
	project  textinput.Model
	producer textinput.Model
	date     textinput.Model
	smart    textinput.Model
	rate     textinput.Model
	amount   textinput.Model
	focus    int
}

func newTeamState() teamState {
	mk := func(ph string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = ph
		in.CharLimit = 128
		in.Width = width
		return in
	}
	return teamState{
		method:   ledger.MethodHourly,
		project:  mk("project name", 24),
		producer: mk("producer", 20),
		date:     mk(time.DateOnly, 12),
		smart:    mk("time digits", 16),
		rate:     mk("rate", 10),
		amount:   mk("amount", 10),
		focus:    -1,
	}
}

func (s *teamState) editing() bool { return s.formOpen && s.focus >= 0 }

// formInputs is method-dependent: duration+rate for timed methods, a direct
// amount for manual.
func (s *teamState) formInputs() []*textinput.Model {
	base := []*textinput.Model{&s.project, &s.producer, &s.date}
	if s.method == ledger.MethodManual {
		return append(base, &s.amount)
	}
	return append(base, &s.smart, &s.rate)
}

func (s *teamState) setFocus(i int) {
	s.focus = i
	for j, in := range s.formInputs() {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (s *teamState) openForm() {
	s.formOpen = true
	s.project.SetValue("")
	s.producer.SetValue("")
	s.date.SetValue(time.Now().Format(time.DateOnly))
	s.smart.SetValue("")
	s.amount.SetValue("")
	s.setFocus(0)
}

func (s *teamState) closeForm() {
	s.formOpen = false
	s.focus = -1
	for _, in := range s.formInputs() {
		in.Blur()
	}
}

func (s *teamState) cycleMethod() {
	switch s.method {
	case ledger.MethodHourly:
		s.method = ledger.MethodMinute
	case ledger.MethodMinute:
		s.method = ledger.MethodManual
	default:
		s.method = ledger.MethodHourly
	}
	if s.formOpen {
		s.setFocus(0)
	}
}

// formDuration parses the smart field with the team-mode carry-over pass.
func (s *teamState) formDuration() (h, m, sec string) {
	h, m, sec = timeparse.Parse(s.smart.Value())
	if h == "" && m == "" && sec == "" {
		return
	}
	return timeparse.CarryOver(h, m, sec)
}

func (a *App) updateTeam(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &a.team

	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if s.formOpen {
		switch m.Type {
		case tea.KeyEsc:
			s.closeForm()
			return a, nil
		case tea.KeyTab:
			s.setFocus((s.focus + 1) % len(s.formInputs()))
			return a, nil
		case tea.KeyCtrlT:
			s.cycleMethod()
			return a, nil
		case tea.KeyEnter:
			if s.focus < len(s.formInputs())-1 {
				s.setFocus(s.focus + 1)
				return a, nil
			}
			return a.submitTeamEntry()
		}
		in := s.formInputs()[s.focus]
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(m, a.keys.Add):
		s.openForm()
		return a, nil
	case key.Matches(m, a.keys.Delete):
		entries := a.led.Entries()
		if s.cursor < len(entries) {
			a.led.Remove(entries[s.cursor].ID)
			if s.cursor >= a.led.Len() && s.cursor > 0 {
				s.cursor--
			}
			a.status = "entry removed"
		}
		return a, nil
	case key.Matches(m, a.keys.Clear):
		return a, a.clearTeamCmd()
	case key.Matches(m, a.keys.Export):
		return a, a.exportCSVCmd("")
	case key.Matches(m, a.keys.Copy):
		return a, a.copyTeamCmd()
	case key.Matches(m, a.keys.Stats):
		s.showStats = !s.showStats
		return a, nil
	}

	switch m.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < a.led.Len()-1 {
			s.cursor++
		}
	case "m":
		s.cycleMethod()
	}
	return a, nil
}

func (a *App) submitTeamEntry() (tea.Model, tea.Cmd) {
	s := &a.team

	date, err := time.Parse(time.DateOnly, strings.TrimSpace(s.date.Value()))
	if err != nil {
		date = time.Now()
	}

	var duration, amount float64
	switch s.method {
	case ledger.MethodManual:
		amount = calc.ParseRate(s.amount.Value())
	default:
		h, m, sec := s.formDuration()
		duration = timeparse.TotalSeconds(h, m, sec)
		unit := calc.UnitMinute
		if s.method == ledger.MethodHourly {
			unit = calc.UnitHour
		}
		amount = calc.Salary(duration, calc.ParseRate(s.rate.Value()), unit)
	}

	entry := ledger.NewEntry(s.project.Value(), s.producer.Value(), date, duration, amount, s.method)
	dupes := a.led.Similar(entry)
	a.led.Add(entry)
	s.closeForm()
	if len(dupes) > 0 {
		a.status = "entry added (possible duplicate of an existing entry)"
	} else {
		a.status = "entry added"
	}
	return a, nil
}

// clearTeamCmd archives the current entries before wiping the working
// ledger, so closing out a settlement cycle never loses the record.
func (a *App) clearTeamCmd() tea.Cmd {
	entries := a.led.Entries()
	if len(entries) == 0 {
		return func() tea.Msg { return statusMsg("ledger already empty") }
	}
	a.led.Clear()
	a.team.cursor = 0
	return func() tea.Msg {
		if a.arch == nil {
			return statusMsg("cleared (archive unavailable, snapshot skipped)")
		}
		if _, err := a.arch.Archive(a.ctx, entries); err != nil {
			return statusMsg("cleared (archive failed: " + err.Error() + ")")
		}
		return statusMsg(fmt.Sprintf("cleared; %d entries archived", len(entries)))
	}
}

// exportCSVCmd writes the settlement CSV. An empty path defaults into the
// data directory with a datestamped name.
func (a *App) exportCSVCmd(path string) tea.Cmd {
	entries := a.led.Entries()
	writer := export.Writer{Currency: a.cfg.UI.CurrencySymbol}
	if path == "" {
		path = fmt.Sprintf("%s/settlements-%s.csv", a.cfg.Storage.Dir, time.Now().Format("20060102-150405"))
	}
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return errMsg{err}
		}
		defer f.Close()
		if err := writer.WriteCSV(f, entries); err != nil {
			return errMsg{err}
		}
		return statusMsg("exported " + path)
	}
}

func (a *App) copyTeamCmd() tea.Cmd {
	text := export.Writer{Currency: a.cfg.UI.CurrencySymbol}.ClipboardText(a.led.Entries())
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err}
		}
		return statusMsg("copied to clipboard")
	}
}

func (a *App) viewTeam() string {
	s := &a.team
	var b strings.Builder
	b.WriteString(titleStyle.Render("Team Settlements") + "\n")

	entries := a.led.Entries()
	if len(entries) == 0 {
		b.WriteString(faintStyle.Render("(no settlement entries)") + "\n")
	}
	for i, e := range entries {
		marker := " "
		if i == s.cursor {
			marker = "▶"
		}
		b.WriteString(fmt.Sprintf("%s %-8s %-24s %-16s %s  %-6s %s  %s\n",
			marker, e.CID[:min(8, len(e.CID))], clip(e.ProjectName, 24), clip(e.Producer, 16),
			e.Date.Format(a.cfg.UI.DateFormat), e.Method.Label(),
			timeparse.FormatDuration(e.DurationSeconds), a.money(e.Amount)))
	}

	count, totalSeconds, totalAmount := a.led.Totals()
	b.WriteString(totalStyle.Render(fmt.Sprintf("Entries: %d  Total: %s  %s",
		count, a.formatSeconds(totalSeconds), a.money(totalAmount))) + "\n")

	if s.showStats {
		b.WriteString("\n" + a.renderEarningsChart(entries) + "\n")
	}

	if s.formOpen {
		b.WriteString("\n" + a.renderTeamForm())
	} else {
		b.WriteString(faintStyle.Render("[a] Add  [d] Remove  [x] Clear+archive  [e] Export CSV  [y] Copy  [s] Stats  [h] History  [m] Method  [tab] Next tab"))
	}
	return b.String()
}

func (a *App) renderTeamForm() string {
	s := &a.team
	var b strings.Builder
	b.WriteString(titleStyle.Render("New entry") + "  " + totalStyle.Render(s.method.Label()) + faintStyle.Render(" (ctrl+t to change)") + "\n")
	b.WriteString("Project: " + s.project.View() + "  Producer: " + s.producer.View() + "\n")
	b.WriteString("Date: " + s.date.View() + "\n")
	if s.method == ledger.MethodManual {
		b.WriteString("Amount: " + s.amount.View() + "\n")
	} else {
		b.WriteString("Time: " + s.smart.View() + "  Rate: " + s.rate.View() + "\n")
		if h, m, sec := s.formDuration(); h != "" || m != "" || sec != "" {
			secs := timeparse.TotalSeconds(h, m, sec)
			unit := calc.UnitMinute
			if s.method == ledger.MethodHourly {
				unit = calc.UnitHour
			}
			preview := calc.Salary(secs, calc.ParseRate(s.rate.Value()), unit)
			b.WriteString(faintStyle.Render(fmt.Sprintf("parsed: %sh %sm %ss = %s -> %s",
				orZero(h), orZero(m), orZero(sec), timeparse.FormatDuration(secs), a.money(preview))) + "\n")
		}
	}
	b.WriteString(faintStyle.Render("[enter] Next/Save  [tab] Next field  [esc] Cancel"))
	return b.String()
}
