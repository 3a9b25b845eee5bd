package timeparse

import "fmt"

// FormatDuration renders seconds as zero-padded HH:MM:SS, truncating any
// fractional part. Negative inputs render as 00:00:00.
func FormatDuration(seconds float64) string {
	total := int64(seconds)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatDurationShort drops the hour field for sub-hour values. Display
// nicety for file tables; the persisted and exported form is always the long
// one from FormatDuration.
func FormatDurationShort(seconds float64) string {
	if seconds < 3600 {
		total := int64(seconds)
		if total < 0 {
			total = 0
		}
		return fmt.Sprintf("%02d:%02d", total/60, total%60)
	}
	return FormatDuration(seconds)
}
