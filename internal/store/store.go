// Package store persists the settlement ledger and scalar settings as JSON
// documents in the application data directory. Loads degrade to empty/default
// values on any error; writes are atomic and serialized.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ysys/soundtime/internal/ledger"
)

const (
	settlementsFile = "settlements.json"
	settingsFile    = "settings.json"
)

// Store reads and writes the JSON documents under dir.
type Store struct {
	dir string

	mu sync.Mutex // serializes writers; concurrent saves must not interleave
}

// New returns a store rooted at dir. The directory is created on first write,
// not here, so a read-only startup never fails.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir resolves the per-user data directory.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "soundtime"), nil
}

// entryDoc is the persisted wire form of a settlement entry.
type entryDoc struct {
	ID       string  `json:"id"`
	CID      string  `json:"cid"`
	Project  string  `json:"projectName"`
	Producer string  `json:"producer"`
	Date     string  `json:"date"` // ISO-8601 calendar date
	Duration float64 `json:"duration"`
	Amount   float64 `json:"amount"`
	Method   string  `json:"calculationMethod"`
}

// SaveEntries mirrors the full ledger to disk.
func (s *Store) SaveEntries(entries []ledger.Entry) error {
	docs := make([]entryDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, entryDoc{
			ID:       e.ID,
			CID:      e.CID,
			Project:  e.ProjectName,
			Producer: e.Producer,
			Date:     e.Date.Format(time.DateOnly),
			Duration: e.DurationSeconds,
			Amount:   e.Amount,
			Method:   string(e.Method),
		})
	}
	return s.writeJSON(settlementsFile, docs)
}

// LoadEntries reads the persisted ledger. A missing or unreadable file yields
// an empty ledger, never an error: disk state is best-effort.
func (s *Store) LoadEntries() []ledger.Entry {
	var docs []entryDoc
	if !s.readJSON(settlementsFile, &docs) {
		return nil
	}
	entries := make([]ledger.Entry, 0, len(docs))
	for _, d := range docs {
		date, err := time.Parse(time.DateOnly, d.Date)
		if err != nil {
			date = time.Time{}
		}
		entries = append(entries, ledger.Entry{
			ID:              d.ID,
			CID:             d.CID,
			ProjectName:     d.Project,
			Producer:        d.Producer,
			Date:            date,
			DurationSeconds: d.Duration,
			Amount:          d.Amount,
			Method:          ledger.Method(d.Method),
		})
	}
	return entries
}

func (s *Store) writeJSON(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// readJSON reports whether the document was read and decoded.
func (s *Store) readJSON(name string, v any) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
