package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ysys/soundtime/internal/calc"
	"github.com/ysys/soundtime/internal/ledger"
	"github.com/ysys/soundtime/internal/probe"
	"github.com/ysys/soundtime/internal/store"
)

// autoState is the auto-mode tab: import files, probe durations, price the
// total.
type autoState struct {
	roster  *probe.Roster
	cursor  int
	probing bool
	unit    calc.Unit

	pathInput  textinput.Model
	hourlyRate textinput.Model
	minuteRate textinput.Model
	project    textinput.Model
	producer   textinput.Model

	// focus: -1 browse, otherwise index into inputs()
	focus int
}

func newAutoState(settings store.Settings) autoState {
	path := textinput.New()
	path.Placeholder = "path/to/audio.wav (or a directory)"
	path.CharLimit = 512
	path.Width = 48

	hourly := textinput.New()
	hourly.Placeholder = "hourly rate"
	hourly.CharLimit = 16
	hourly.Width = 12
	hourly.SetValue(settings.LastHourlyRate)

	minute := textinput.New()
	minute.Placeholder = "minute rate"
	minute.CharLimit = 16
	minute.Width = 12
	minute.SetValue(settings.LastMinuteRate)

	project := textinput.New()
	project.Placeholder = "project name"
	project.CharLimit = 128
	project.Width = 24

	producer := textinput.New()
	producer.Placeholder = "producer"
	producer.CharLimit = 128
	producer.Width = 24

	return autoState{
		roster:     probe.NewRoster(),
		unit:       calc.UnitMinute,
		pathInput:  path,
		hourlyRate: hourly,
		minuteRate: minute,
		project:    project,
		producer:   producer,
		focus:      -1,
	}
}

func (s *autoState) inputs() []*textinput.Model {
	return []*textinput.Model{&s.pathInput, &s.hourlyRate, &s.minuteRate, &s.project, &s.producer}
}

func (s *autoState) editing() bool { return s.focus >= 0 }

func (s *autoState) setFocus(i int) {
	s.focus = i
	for j, in := range s.inputs() {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// rate returns the active rate string for the selected unit.
func (s *autoState) rate() string {
	if s.unit == calc.UnitHour {
		return s.hourlyRate.Value()
	}
	return s.minuteRate.Value()
}

func (s *autoState) salary() float64 {
	return calc.Salary(s.roster.TotalSeconds(), calc.ParseRate(s.rate()), s.unit)
}

func (a *App) updateAuto(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &a.auto

	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if s.editing() {
		switch m.Type {
		case tea.KeyEsc:
			s.setFocus(-1)
			return a, nil
		case tea.KeyEnter:
			if s.focus == 0 {
				path := strings.TrimSpace(s.pathInput.Value())
				s.setFocus(-1)
				if path == "" {
					return a, nil
				}
				return a, a.addFilesCmd(path)
			}
			a.rememberRates()
			s.setFocus(-1)
			return a, nil
		case tea.KeyTab:
			a.rememberRates()
			s.setFocus((s.focus + 1) % len(s.inputs()))
			return a, nil
		}
		in := s.inputs()[s.focus]
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(m, a.keys.Add):
		s.setFocus(0)
		return a, nil
	case key.Matches(m, a.keys.ToggleUnit):
		if s.unit == calc.UnitHour {
			s.unit = calc.UnitMinute
		} else {
			s.unit = calc.UnitHour
		}
		return a, nil
	case key.Matches(m, a.keys.Delete):
		recs := s.roster.Records()
		if s.cursor < len(recs) {
			s.roster.Remove(recs[s.cursor].Path)
			if s.cursor >= s.roster.Len() && s.cursor > 0 {
				s.cursor--
			}
		}
		return a, nil
	case key.Matches(m, a.keys.Clear):
		s.roster.Clear()
		s.cursor = 0
		return a, nil
	}

	switch m.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.roster.Len()-1 {
			s.cursor++
		}
	case "r":
		// rate editing: jump to the input matching the active unit
		if s.unit == calc.UnitHour {
			s.setFocus(1)
		} else {
			s.setFocus(2)
		}
	case "t":
		return a, a.commitAutoCmd()
	}
	return a, nil
}

// rememberRates mirrors the rate fields into the persisted settings, like the
// original app restoring last-used rates on startup.
func (a *App) rememberRates() {
	changed := false
	if v := a.auto.hourlyRate.Value(); v != a.settings.LastHourlyRate {
		a.settings.LastHourlyRate = v
		changed = true
	}
	if v := a.auto.minuteRate.Value(); v != a.settings.LastMinuteRate {
		a.settings.LastMinuteRate = v
		changed = true
	}
	if changed {
		a.saveSettings()
	}
}

// addFilesCmd registers the paths and fans out probes for everything not yet
// processed. Expansion of a directory argument happens before the fan-out so
// the roster mutation stays on the update goroutine.
func (a *App) addFilesCmd(path string) tea.Cmd {
	added := 0
	for _, p := range expandAudioPaths(path) {
		if a.auto.roster.Add(p) {
			added++
		}
	}
	if added == 0 {
		return func() tea.Msg { return statusMsg("no new audio files at " + path) }
	}
	pending := a.auto.roster.Unprobed()
	a.auto.probing = true
	a.status = fmt.Sprintf("probing %d file(s)...", len(pending))
	return func() tea.Msg {
		return probeDoneMsg{results: probe.ProbeAll(a.ctx, a.prober, pending)}
	}
}

// commitAutoCmd turns the current total into a team settlement entry.
func (a *App) commitAutoCmd() tea.Cmd {
	s := &a.auto
	total := s.roster.TotalSeconds()
	salary := s.salary()
	if total <= 0 || salary <= 0 {
		return func() tea.Msg { return statusMsg("nothing to settle: need files and a rate") }
	}
	method := ledger.MethodMinute
	if s.unit == calc.UnitHour {
		method = ledger.MethodHourly
	}
	entry := ledger.NewEntry(s.project.Value(), s.producer.Value(), time.Now(), total, salary, method)
	dupes := a.led.Similar(entry)
	a.led.Add(entry)
	if len(dupes) > 0 {
		return func() tea.Msg { return statusMsg("added to team (possible duplicate of an existing entry)") }
	}
	return func() tea.Msg { return statusMsg("added to team settlements") }
}

func (a *App) viewAuto() string {
	s := &a.auto
	var b strings.Builder
	b.WriteString(titleStyle.Render("Auto Calculation") + "\n")

	recs := s.roster.Records()
	if len(recs) == 0 {
		b.WriteString(faintStyle.Render("(no files imported)") + "\n")
	}
	for i, rec := range recs {
		marker := " "
		if i == s.cursor {
			marker = "▶"
		}
		dur := a.formatSeconds(rec.DurationSeconds)
		flag := ""
		if !rec.Processed {
			flag = warnStyle.Render(" !unprocessed")
			if s.probing {
				flag = faintStyle.Render(" probing...")
			}
		}
		b.WriteString(fmt.Sprintf("%s %-32s %9s  %s%s\n",
			marker, clip(rec.FileName, 32), formatSize(rec.SizeBytes), dur, flag))
	}

	b.WriteString(fmt.Sprintf("\nTotal duration: %s   Files: %d\n",
		totalStyle.Render(a.formatSeconds(s.roster.TotalSeconds())), s.roster.Len()))

	unitName := "minute"
	if s.unit == calc.UnitHour {
		unitName = "hour"
	}
	b.WriteString(fmt.Sprintf("Rate per %s: %s %s   Salary: %s\n",
		unitName, s.hourlyOrMinuteView(), faintStyle.Render("[u] switch unit"),
		totalStyle.Render(a.money(s.salary()))))

	b.WriteString("Project: " + s.project.View() + "  Producer: " + s.producer.View() + "\n")
	if s.focus == 0 {
		b.WriteString("Add files: " + s.pathInput.View() + "\n")
	}
	b.WriteString(faintStyle.Render("[a] Add files  [r] Edit rate  [d] Remove  [x] Clear  [t] Add to team  [tab] Next tab  [ctrl+c] Quit"))
	return b.String()
}

func (s *autoState) hourlyOrMinuteView() string {
	if s.unit == calc.UnitHour {
		return s.hourlyRate.View()
	}
	return s.minuteRate.View()
}
