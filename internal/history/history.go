// Package history is an optional collaborator that remembers every
// assignment the solver reports, keyed by the grid encoding the
// assignment produced, so a finished solve can be replayed step by
// step.
package history

import "svw.info/sudokux/internal/domain"

// Recorder implements ports.Recorder with a parent-linked side table.
// Entries from abandoned search branches stay in the table but are
// unreachable from the winning line, so Reconstruct skips past them
// for free.
type Recorder struct {
	entries map[string]domain.Assignment
}

func New() *Recorder {
	return &Recorder{entries: make(map[string]domain.Assignment)}
}

// Record stores the assignment under its resulting encoding. A later
// assignment producing the same encoding overwrites the earlier one;
// both describe a valid path to that state.
func (r *Recorder) Record(a domain.Assignment) {
	r.entries[a.Next] = a
}

// Len returns the number of distinct states recorded.
func (r *Recorder) Len() int { return len(r.entries) }

// Reconstruct walks parent links backward from the final encoding and
// returns the assignments oldest-first. The walk stops at the first
// encoding with no recorded parent — normally the initial grid.
func (r *Recorder) Reconstruct(final string) []domain.Assignment {
	var path []domain.Assignment
	cur := final
	for {
		a, ok := r.entries[cur]
		if !ok {
			break
		}
		path = append(path, a)
		cur = a.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
