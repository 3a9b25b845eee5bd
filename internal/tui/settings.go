package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type settingLine struct {
	label string
	get   func(a *App) bool
	flip  func(a *App)
}

var settingLines = []settingLine{
	{"Show automatic mode", func(a *App) bool { return a.settings.ShowAutoMode },
		func(a *App) { a.settings.ShowAutoMode = !a.settings.ShowAutoMode }},
	{"Show manual mode", func(a *App) bool { return a.settings.ShowManualMode },
		func(a *App) { a.settings.ShowManualMode = !a.settings.ShowManualMode }},
	{"Show team mode", func(a *App) bool { return a.settings.ShowTeamMode },
		func(a *App) { a.settings.ShowTeamMode = !a.settings.ShowTeamMode }},
	{"Smart time input", func(a *App) bool { return a.settings.EnableSmartInput },
		func(a *App) { a.settings.EnableSmartInput = !a.settings.EnableSmartInput }},
	{"Show durations in raw seconds", func(a *App) bool { return a.settings.ShowDurationInSeconds },
		func(a *App) { a.settings.ShowDurationInSeconds = !a.settings.ShowDurationInSeconds }},
}

func (a *App) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	switch m.String() {
	case "up", "k":
		if a.settingsCursor > 0 {
			a.settingsCursor--
		}
	case "down", "j":
		if a.settingsCursor < len(settingLines)-1 {
			a.settingsCursor++
		}
	case "enter", " ":
		settingLines[a.settingsCursor].flip(a)
		a.saveSettings()
	}
	return a, nil
}

func (a *App) viewSettings() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n")
	for i, line := range settingLines {
		marker := " "
		if i == a.settingsCursor {
			marker = "▶"
		}
		box := "[ ]"
		if line.get(a) {
			box = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", marker, box, line.label))
	}
	b.WriteString(faintStyle.Render("[enter] Toggle  [tab] Next tab"))
	return b.String()
}
