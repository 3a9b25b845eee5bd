// Package export renders ledger snapshots for spreadsheets and the
// clipboard.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ysys/soundtime/internal/ledger"
	"github.com/ysys/soundtime/internal/timeparse"
)

// utf8BOM keeps Excel from misreading the encoding.
const utf8BOM = "\uFEFF"

const csvHeader = "CID,ProjectName,Producer,Date,Method,Duration,Amount"

// cidPrefixLen is the short display form of the correlation id.
const cidPrefixLen = 8

// Writer renders settlement exports. The zero value uses the default
// currency glyph.
type Writer struct {
	Currency string // prepended to amounts; defaults to "¥"
}

func (w Writer) currency() string {
	if w.Currency == "" {
		return "¥"
	}
	return w.Currency
}

// WriteCSV writes the full ledger as UTF-8 CSV: BOM, header, one row per
// entry in ledger order, and a trailer row carrying only the aggregate
// duration and amount. Free-text fields are always quoted with internal
// quotes doubled; rows are \n-terminated.
func (w Writer) WriteCSV(out io.Writer, entries []ledger.Entry) error {
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s%.2f\n",
			shortCID(e.CID),
			quote(e.ProjectName),
			quote(e.Producer),
			e.Date.Format(time.DateOnly),
			e.Method.Label(),
			timeparse.FormatDuration(e.DurationSeconds),
			w.currency(), e.Amount,
		))
	}

	_, totalSeconds, totalAmount := ledger.Totals(entries)
	b.WriteString(fmt.Sprintf(",,,,,%s,%s%.2f\n",
		timeparse.FormatDuration(totalSeconds), w.currency(), totalAmount))

	_, err := io.WriteString(out, b.String())
	return err
}

// ClipboardText renders the tab-separated form used for pasteboard copy:
// header line, one line per entry, blank line, totals line.
func (w Writer) ClipboardText(entries []ledger.Entry) string {
	var b strings.Builder
	b.WriteString("Project\tProducer\tDate\tMethod\tDuration\tAmount\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s%.2f\n",
			e.ProjectName,
			e.Producer,
			e.Date.Format(time.DateOnly),
			e.Method.Label(),
			timeparse.FormatDuration(e.DurationSeconds),
			w.currency(), e.Amount,
		))
	}
	_, totalSeconds, totalAmount := ledger.Totals(entries)
	b.WriteString(fmt.Sprintf("\nTotal:\t\t\t\t%s\t%s%.2f",
		timeparse.FormatDuration(totalSeconds), w.currency(), totalAmount))
	return b.String()
}

func shortCID(cid string) string {
	if len(cid) > cidPrefixLen {
		return cid[:cidPrefixLen]
	}
	return cid
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
