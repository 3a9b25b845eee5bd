package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ysys/soundtime/internal/calc"
	"github.com/ysys/soundtime/internal/store"
	"github.com/ysys/soundtime/internal/timeparse"
)

// manualState is the manual-entry tab: type a time (smart input or explicit
// components), pick a unit and rate, collect session rows.
type manualState struct {
	smart   textinput.Model
	hours   textinput.Model
	minutes textinput.Model
	seconds textinput.Model
	rate    textinput.Model
	unit    calc.Unit
	entries []calc.TimeEntry
	focus   int // -1 browse
}

func newManualState(settings store.Settings) manualState {
	smart := textinput.New()
	smart.Placeholder = "smart time, e.g. 12345 -> 1:23:45"
	smart.CharLimit = 32
	smart.Width = 28

	mk := func(ph string) textinput.Model {
		in := textinput.New()
		in.Placeholder = ph
		in.CharLimit = 8
		in.Width = 6
		return in
	}
	rate := mk("rate")
	rate.SetValue(settings.LastMinuteRate)

	return manualState{
		smart:   smart,
		hours:   mk("hh"),
		minutes: mk("mm"),
		seconds: mk("ss"),
		rate:    rate,
		unit:    calc.UnitMinute,
		focus:   -1,
	}
}

func (s *manualState) inputs(smartEnabled bool) []*textinput.Model {
	if smartEnabled {
		return []*textinput.Model{&s.smart, &s.rate}
	}
	return []*textinput.Model{&s.hours, &s.minutes, &s.seconds, &s.rate}
}

func (s *manualState) editing() bool { return s.focus >= 0 }

func (s *manualState) setFocus(i int, smartEnabled bool) {
	s.focus = i
	for j, in := range s.inputs(smartEnabled) {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// components resolves the raw hour/minute/second strings for the current
// input style. Smart input parses positionally without carry-over; the
// malformed clock reading is priced as typed.
func (s *manualState) components(smartEnabled bool) (string, string, string) {
	if smartEnabled {
		return timeparse.Parse(s.smart.Value())
	}
	return s.hours.Value(), s.minutes.Value(), s.seconds.Value()
}

func (a *App) updateManual(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &a.manual
	smart := a.settings.EnableSmartInput

	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if s.editing() {
		switch m.Type {
		case tea.KeyEsc:
			s.setFocus(-1, smart)
			return a, nil
		case tea.KeyTab:
			s.setFocus((s.focus+1)%len(s.inputs(smart)), smart)
			return a, nil
		case tea.KeyEnter:
			s.setFocus(-1, smart)
			return a.submitManual()
		}
		in := s.inputs(smart)[s.focus]
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return a, cmd
	}

	switch m.String() {
	case "a", "enter":
		s.setFocus(0, smart)
	case "u":
		if s.unit == calc.UnitHour {
			s.unit = calc.UnitMinute
		} else {
			s.unit = calc.UnitHour
		}
	case "x":
		s.entries = nil
	case "d", "backspace":
		if len(s.entries) > 0 {
			s.entries = s.entries[:len(s.entries)-1]
		}
	}
	return a, nil
}

func (a *App) submitManual() (tea.Model, tea.Cmd) {
	s := &a.manual
	h, m, sec := s.components(a.settings.EnableSmartInput)
	if h == "" && m == "" && sec == "" {
		a.status = "enter a time first"
		return a, nil
	}
	entry := calc.NewTimeEntry(h, m, sec, s.rate.Value(), s.unit)
	s.entries = append(s.entries, entry)
	s.smart.SetValue("")
	a.status = fmt.Sprintf("added %s -> %s", timeparse.FormatDuration(entry.TotalSeconds), a.money(entry.Salary))
	return a, nil
}

func (a *App) viewManual() string {
	s := &a.manual
	smart := a.settings.EnableSmartInput
	var b strings.Builder
	b.WriteString(titleStyle.Render("Manual Calculation") + "\n")

	if smart {
		b.WriteString("Time: " + s.smart.View() + "\n")
		if h, m, sec := timeparse.Parse(s.smart.Value()); h != "" || m != "" || sec != "" {
			b.WriteString(faintStyle.Render(fmt.Sprintf("parsed: %sh %sm %ss", orZero(h), orZero(m), orZero(sec))) + "\n")
		}
	} else {
		b.WriteString(fmt.Sprintf("Hours: %s  Minutes: %s  Seconds: %s\n",
			s.hours.View(), s.minutes.View(), s.seconds.View()))
	}

	unitName := "minute"
	if s.unit == calc.UnitHour {
		unitName = "hour"
	}
	b.WriteString(fmt.Sprintf("Rate per %s: %s %s\n", unitName, s.rate.View(), faintStyle.Render("[u] switch unit")))

	if len(s.entries) > 0 {
		b.WriteString("\n")
		for _, e := range s.entries {
			b.WriteString(fmt.Sprintf("  %s  @%.2f/%s  %s\n",
				timeparse.FormatDuration(e.TotalSeconds), e.Rate, string(e.Unit), a.money(e.Salary)))
		}
		secs, pay := calc.SessionTotals(s.entries)
		b.WriteString(totalStyle.Render(fmt.Sprintf("Session total: %s  %s", timeparse.FormatDuration(secs), a.money(pay))) + "\n")
	}

	b.WriteString(faintStyle.Render("[a] New entry  [d] Remove last  [x] Clear session  [tab] Next tab  [ctrl+c] Quit"))
	return b.String()
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
