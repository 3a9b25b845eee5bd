package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("243"))
	tabActive   = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("170"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("215"))
	chartStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)
