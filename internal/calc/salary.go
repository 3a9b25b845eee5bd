// Package calc implements the rate arithmetic shared by the auto, manual and
// team calculators.
package calc

import (
	"math"
	"strconv"
	"strings"
)

// Unit is the billing granularity.
type Unit string

const (
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
)

// Seconds returns the unit length in seconds.
func (u Unit) Seconds() float64 {
	if u == UnitHour {
		return 3600
	}
	return 60
}

// ParseRate reads a rate string. Anything that does not parse as a
// non-negative finite number reads as 0; a bad rate silently zeroes the
// salary instead of surfacing an error.
func ParseRate(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Salary converts a duration into pay at the given per-unit rate.
func Salary(durationSeconds, rate float64, unit Unit) float64 {
	return durationSeconds / unit.Seconds() * rate
}
