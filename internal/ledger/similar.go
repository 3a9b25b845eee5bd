package ledger

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// similarDistance is the maximum edit distance between project names for two
// same-amount entries to count as possible duplicates.
const similarDistance = 2

// Similar returns existing entries that look like duplicates of the
// candidate: same amount and a project name within a small edit distance.
// Advisory only; adding a flagged entry is still allowed.
func (l *Ledger) Similar(candidate Entry) []Entry {
	var out []Entry
	name := strings.ToLower(strings.TrimSpace(candidate.ProjectName))
	for _, e := range l.entries {
		if e.ID == candidate.ID || e.Amount != candidate.Amount {
			continue
		}
		other := strings.ToLower(strings.TrimSpace(e.ProjectName))
		if levenshtein.ComputeDistance(name, other) <= similarDistance {
			out = append(out, e)
		}
	}
	return out
}
