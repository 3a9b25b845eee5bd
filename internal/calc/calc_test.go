package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSalaryFormula(t *testing.T) {
	t.Parallel()

	require.Equal(t, 10.0, Salary(3600, 10, UnitHour))
	require.Equal(t, 10.0, Salary(120, 5, UnitMinute))
	require.Equal(t, 2.5, Salary(900, 10, UnitHour))
	require.Zero(t, Salary(0, 10, UnitHour))
}

func TestParseRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{" 2.5 ", 2.5},
		{"0", 0},
		{"abc", 0},
		{"", 0},
		{"-5", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ParseRate(tc.in), "ParseRate(%q)", tc.in)
	}
}

func TestUnparseableRateZeroesSalary(t *testing.T) {
	t.Parallel()

	// Never an error, just zero pay.
	require.Zero(t, Salary(3600, ParseRate("abc"), UnitHour))
}

func TestNewTimeEntry(t *testing.T) {
	t.Parallel()

	e := NewTimeEntry("1", "30", "0", "10", UnitHour)
	require.Equal(t, 5400.0, e.TotalSeconds)
	require.Equal(t, 15.0, e.Salary)
	require.NotEmpty(t, e.ID)

	// garbage components read as 0
	e = NewTimeEntry("", "x", "90", "2", UnitMinute)
	require.Equal(t, 90.0, e.TotalSeconds)
	require.Equal(t, 3.0, e.Salary)
}

func TestSessionTotals(t *testing.T) {
	t.Parallel()

	entries := []TimeEntry{
		NewTimeEntry("0", "1", "0", "5", UnitMinute),
		NewTimeEntry("1", "0", "0", "10", UnitHour),
	}
	secs, pay := SessionTotals(entries)
	require.Equal(t, 3660.0, secs)
	require.Equal(t, 15.0, pay)
}
