package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ysys/soundtime/internal/ledger"
)

func fixedEntry(project, producer string, seconds, amount float64, method ledger.Method) ledger.Entry {
	e := ledger.NewEntry(project, producer, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), seconds, amount, method)
	return e
}

func TestWriteCSVLayout(t *testing.T) {
	t.Parallel()

	entries := []ledger.Entry{
		fixedEntry("Podcast \"S2\"", "Ana, Producer", 3725, 120, ledger.MethodHourly),
		fixedEntry("Jingle", "Bo", 90, 7.5, ledger.MethodMinute),
	}

	var sb strings.Builder
	require.NoError(t, Writer{}.WriteCSV(&sb, entries))
	out := sb.String()

	require.True(t, strings.HasPrefix(out, "\uFEFF"), "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// header + 2 entries + trailer
	require.Len(t, lines, 4)
	require.Equal(t, "\uFEFF"+"CID,ProjectName,Producer,Date,Method,Duration,Amount", lines[0])

	require.Equal(t, entries[0].CID[:8], lines[1][:8])
	require.Contains(t, lines[1], `"Podcast ""S2"""`)
	require.Contains(t, lines[1], `"Ana, Producer"`)
	require.Contains(t, lines[1], "2026-03-15")
	require.Contains(t, lines[1], "Hourly")
	require.Contains(t, lines[1], "01:02:05")
	require.Contains(t, lines[1], "¥120.00")

	require.Contains(t, lines[2], "00:01:30")
	require.Contains(t, lines[2], "¥7.50")

	// trailer: only aggregate duration and amount populated
	require.Equal(t, ",,,,,01:03:35,¥127.50", lines[3])
}

func TestWriteCSVTrailerMatchesTotals(t *testing.T) {
	t.Parallel()

	entries := []ledger.Entry{
		fixedEntry("A", "x", 10, 1, ledger.MethodManual),
		fixedEntry("B", "y", 20, 2, ledger.MethodManual),
		fixedEntry("C", "z", 30, 3.25, ledger.MethodManual),
	}
	var sb strings.Builder
	require.NoError(t, Writer{}.WriteCSV(&sb, entries))

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, len(entries)+2)

	_, totalSeconds, totalAmount := ledger.Totals(entries)
	require.Equal(t, 60.0, totalSeconds)
	require.Equal(t, 6.25, totalAmount)
	require.Equal(t, ",,,,,00:01:00,¥6.25", lines[len(lines)-1])
}

func TestWriteCSVEmptyLedger(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, Writer{}.WriteCSV(&sb, nil))
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2) // header + trailer
	require.Equal(t, ",,,,,00:00:00,¥0.00", lines[1])
}

func TestCustomCurrencyGlyph(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, Writer{Currency: "$"}.WriteCSV(&sb, []ledger.Entry{fixedEntry("A", "x", 60, 5, ledger.MethodMinute)}))
	require.Contains(t, sb.String(), "$5.00")
}

func TestClipboardText(t *testing.T) {
	t.Parallel()

	entries := []ledger.Entry{fixedEntry("Podcast", "Ana", 3600, 100, ledger.MethodHourly)}
	text := Writer{}.ClipboardText(entries)

	lines := strings.Split(text, "\n")
	require.Equal(t, "Project\tProducer\tDate\tMethod\tDuration\tAmount", lines[0])
	require.Equal(t, "Podcast\tAna\t2026-03-15\tHourly\t01:00:00\t¥100.00", lines[1])
	require.Equal(t, "", lines[2])
	require.Equal(t, "Total:\t\t\t\t01:00:00\t¥100.00", lines[3])
}
