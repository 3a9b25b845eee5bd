// Package timeparse implements the smart time input heuristic: a raw digit
// string is sliced positionally into hour/minute/second components, with an
// optional carry-over pass that normalizes overflowed fields.
package timeparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse splits the digits of input into (hours, minutes, seconds) strings.
// Non-digit characters are stripped first. An input with no digits yields
// three empty strings, which callers treat as "no value" rather than zero.
//
// The split is positional, not a clock conversion: "999" parses to minutes
// "9" and seconds "99". Overflowed fields are left as-is; use CarryOver when
// a well-formed clock reading is needed.
func Parse(input string) (hours, minutes, seconds string) {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return "", "", ""
	}

	switch n := len(digits); {
	case n <= 2:
		return "0", "0", digits
	case n == 3:
		return "0", digits[:1], digits[1:]
	case n == 4:
		return "0", digits[:2], digits[2:]
	case n == 5:
		return digits[:1], digits[1:3], digits[3:]
	default:
		h := n - 4
		return digits[:h], digits[h : h+2], digits[h+2:]
	}
}

// CarryOver normalizes seconds >= 60 into minutes and then minutes >= 60 into
// hours. The carried amount is added as an integer to whatever the target
// field already holds; an empty target just receives the carry. Fields that
// fail to parse are left untouched.
func CarryOver(hours, minutes, seconds string) (string, string, string) {
	if s, err := strconv.Atoi(seconds); err == nil && s >= 60 {
		seconds = fmt.Sprintf("%02d", s%60)
		carry := s / 60
		if m, err := strconv.Atoi(minutes); err == nil {
			minutes = strconv.Itoa(m + carry)
		} else {
			minutes = strconv.Itoa(carry)
		}
	}
	if m, err := strconv.Atoi(minutes); err == nil && m >= 60 {
		minutes = fmt.Sprintf("%02d", m%60)
		carry := m / 60
		if h, err := strconv.Atoi(hours); err == nil {
			hours = strconv.Itoa(h + carry)
		} else {
			hours = strconv.Itoa(carry)
		}
	}
	return hours, minutes, seconds
}

// TotalSeconds folds raw component strings into a second count. Components
// that fail to parse read as 0, so an empty triple is simply 0.
func TotalSeconds(hours, minutes, seconds string) float64 {
	h, _ := strconv.ParseFloat(strings.TrimSpace(hours), 64)
	m, _ := strconv.ParseFloat(strings.TrimSpace(minutes), 64)
	s, _ := strconv.ParseFloat(strings.TrimSpace(seconds), 64)
	return h*3600 + m*60 + s
}
