package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/ysys/soundtime/internal/timeparse"
)

// clip truncates a cell to width, ANSI-aware so styled text never breaks the
// column layout.
func clip(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

// formatSeconds renders a duration per the user's display preference: the
// HH:MM:SS clock form, optionally suffixed with the raw second count.
func (a *App) formatSeconds(seconds float64) string {
	clock := timeparse.FormatDuration(seconds)
	if a.settings.ShowDurationInSeconds {
		return fmt.Sprintf("%s (%.0fs)", clock, seconds)
	}
	return clock
}

// money renders an amount with the configured glyph.
func (a *App) money(v float64) string {
	return fmt.Sprintf("%s%.2f", a.cfg.UI.CurrencySymbol, v)
}

func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
