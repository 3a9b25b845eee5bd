// Package ledger holds the in-memory team settlement list and its totals.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Method is how an entry's amount was produced.
type Method string

const (
	MethodHourly Method = "hourly"
	MethodMinute Method = "minute"
	MethodManual Method = "manual"
)

// Label returns the display name for a method.
func (m Method) Label() string {
	switch m {
	case MethodHourly:
		return "Hourly"
	case MethodMinute:
		return "Minute"
	case MethodManual:
		return "Manual"
	}
	return string(m)
}

// Entry is one billable settlement record. Entries are immutable once added;
// removal is by ID.
type Entry struct {
	ID              string
	CID             string
	ProjectName     string
	Producer        string
	Date            time.Time // calendar date, no time component
	DurationSeconds float64
	Amount          float64
	Method          Method
}

// NewEntry creates an entry with fresh ID and CID tokens and the date
// truncated to a calendar day.
func NewEntry(project, producer string, date time.Time, durationSeconds, amount float64, method Method) Entry {
	return Entry{
		ID:              uuid.NewString(),
		CID:             uuid.NewString(),
		ProjectName:     project,
		Producer:        producer,
		Date:            time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		DurationSeconds: durationSeconds,
		Amount:          amount,
		Method:          method,
	}
}

// Store mirrors the ledger to disk after every structural change.
type Store interface {
	SaveEntries(entries []Entry) error
}

// Ledger is the ordered settlement list. Insertion order is display and
// persistence order. Not safe for concurrent use; all mutations happen on the
// single coordinating goroutine.
type Ledger struct {
	entries []Entry
	store   Store
}

// New returns a ledger seeded with previously persisted entries. A nil store
// keeps the ledger purely in-memory (tests, headless reads).
func New(store Store, entries []Entry) *Ledger {
	return &Ledger{entries: append([]Entry(nil), entries...), store: store}
}

// Add appends the entry and persists. Persistence failures are swallowed; the
// in-memory list stays authoritative and the next successful save self-heals.
func (l *Ledger) Add(e Entry) {
	l.entries = append(l.entries, e)
	l.persist()
}

// Remove deletes the first entry with a matching ID. No-op when absent.
func (l *Ledger) Remove(id string) {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.persist()
			return
		}
	}
}

// Clear empties the ledger and persists the empty list.
func (l *Ledger) Clear() {
	l.entries = nil
	l.persist()
}

// Entries returns a snapshot in insertion order.
func (l *Ledger) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Len reports the current entry count.
func (l *Ledger) Len() int { return len(l.entries) }

// Totals folds the current entries into aggregate figures. Always recomputed,
// never cached.
func (l *Ledger) Totals() (count int, totalSeconds, totalAmount float64) {
	return Totals(l.entries)
}

// Totals aggregates an arbitrary entry slice (exports work on snapshots).
func Totals(entries []Entry) (count int, totalSeconds, totalAmount float64) {
	for _, e := range entries {
		totalSeconds += e.DurationSeconds
		totalAmount += e.Amount
	}
	return len(entries), totalSeconds, totalAmount
}

func (l *Ledger) persist() {
	if l.store == nil {
		return
	}
	_ = l.store.SaveEntries(l.Entries())
}
