package calc

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// TimeEntry is one manual-mode row. Session-only; never persisted.
type TimeEntry struct {
	ID           string
	Hours        float64
	Minutes      float64
	Seconds      float64
	Unit         Unit
	Rate         float64
	Salary       float64
	TotalSeconds float64
}

// NewTimeEntry builds a row from raw component and rate strings. Components
// that fail to parse read as 0, matching the forgiving smart-input contract.
func NewTimeEntry(hours, minutes, seconds, rate string, unit Unit) TimeEntry {
	h := component(hours)
	m := component(minutes)
	s := component(seconds)
	r := ParseRate(rate)
	total := h*3600 + m*60 + s
	return TimeEntry{
		ID:           uuid.NewString(),
		Hours:        h,
		Minutes:      m,
		Seconds:      s,
		Unit:         unit,
		Rate:         r,
		Salary:       Salary(total, r, unit),
		TotalSeconds: total,
	}
}

// SessionTotals folds a manual session into aggregate duration and pay.
func SessionTotals(entries []TimeEntry) (totalSeconds, totalSalary float64) {
	for _, e := range entries {
		totalSeconds += e.TotalSeconds
		totalSalary += e.Salary
	}
	return totalSeconds, totalSalary
}

func component(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
