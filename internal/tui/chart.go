package tui

import (
	"sort"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"

	"github.com/ysys/soundtime/internal/ledger"
)

// renderEarningsChart draws cumulative settlement amounts per day as a
// braille line chart.
func (a *App) renderEarningsChart(entries []ledger.Entry) string {
	if len(entries) == 0 {
		return faintStyle.Render("(no data to chart)")
	}

	perDay := map[time.Time]float64{}
	for _, e := range entries {
		perDay[e.Date] += e.Amount
	}
	days := make([]time.Time, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	width := a.width - 4
	if width < 24 {
		width = 24
	}
	if width > 72 {
		width = 72
	}

	chart := tslc.New(width, 12)
	chart.SetStyle(chartStyle)
	chart.AxisStyle = axisStyle
	chart.LabelStyle = labelStyle

	var running, maxY float64
	for _, d := range days {
		running += perDay[d]
		if running > maxY {
			maxY = running
		}
		chart.Push(tslc.TimePoint{Time: d, Value: running})
	}
	start, end := days[0], days[len(days)-1]
	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}
	if maxY == 0 {
		maxY = 1
	}
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, maxY)
	chart.SetViewYRange(0, maxY)
	chart.DrawBraille()

	return titleStyle.Render("Cumulative earnings") + "\n" + chart.View()
}
