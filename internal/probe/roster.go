package probe

import (
	"os"
	"path/filepath"
)

// FileRecord is one imported audio file. Duration and Processed are written
// exactly once, by Apply, after the probe join.
type FileRecord struct {
	Path            string // unique key
	FileName        string
	SizeBytes       int64
	DurationSeconds float64
	Processed       bool
}

// Roster is the ordered audio file list for auto mode. Single-writer: all
// mutations happen on the coordinating goroutine, probe goroutines only
// produce Results that Apply merges afterwards.
type Roster struct {
	records []FileRecord
	byPath  map[string]int
}

func NewRoster() *Roster {
	return &Roster{byPath: make(map[string]int)}
}

// Add registers a path, skipping duplicates. The file is stat'd for its size;
// a missing file still gets a record so the probe failure shows up in the
// table rather than vanishing.
func (r *Roster) Add(path string) bool {
	if _, dup := r.byPath[path]; dup {
		return false
	}
	rec := FileRecord{Path: path, FileName: filepath.Base(path)}
	if info, err := os.Stat(path); err == nil {
		rec.SizeBytes = info.Size()
	}
	r.byPath[path] = len(r.records)
	r.records = append(r.records, rec)
	return true
}

// Apply merges probe results into the roster. Unknown paths are ignored.
func (r *Roster) Apply(results []Result) {
	for _, res := range results {
		i, ok := r.byPath[res.Path]
		if !ok {
			continue
		}
		r.records[i].DurationSeconds = res.Seconds
		r.records[i].Processed = res.OK
	}
}

// Remove drops the record for path, reindexing the remainder.
func (r *Roster) Remove(path string) {
	i, ok := r.byPath[path]
	if !ok {
		return
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	delete(r.byPath, path)
	for j := i; j < len(r.records); j++ {
		r.byPath[r.records[j].Path] = j
	}
}

// Clear empties the roster.
func (r *Roster) Clear() {
	r.records = nil
	r.byPath = make(map[string]int)
}

// Unprobed returns the paths that have not been processed yet.
func (r *Roster) Unprobed() []string {
	var out []string
	for _, rec := range r.records {
		if !rec.Processed {
			out = append(out, rec.Path)
		}
	}
	return out
}

// Records returns a snapshot in import order.
func (r *Roster) Records() []FileRecord {
	return append([]FileRecord(nil), r.records...)
}

// Len reports the record count, failed probes included.
func (r *Roster) Len() int { return len(r.records) }

// TotalSeconds sums all durations. Files whose probe failed contribute 0 but
// stay in the count; they are flagged, not excluded.
func (r *Roster) TotalSeconds() float64 {
	var total float64
	for _, rec := range r.records {
		total += rec.DurationSeconds
	}
	return total
}
