package solver

import (
	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/ports"
	"svw.info/sudokux/internal/reduce"
	"svw.info/sudokux/internal/topology"
)

// ConstraintSolver interleaves fixed-point constraint propagation with
// depth-first search. Each branch works on its own clone of the grid,
// so failed branches can never leak assignments into siblings.
type ConstraintSolver struct {
	topo *topology.Topology
	red  *reduce.Reducer // records assignments when a recorder is wired
	mute *reduce.Reducer // recorder-free, used by Unique
}

// NewConstraintSolver wires a solver over the given topology. rec may
// be nil; when set, every cell resolution during Solve is reported.
func NewConstraintSolver(t *topology.Topology, rec ports.Recorder) *ConstraintSolver {
	return &ConstraintSolver{
		topo: t,
		red:  reduce.New(t, rec),
		mute: reduce.New(t, nil),
	}
}

// pickCell selects the unresolved cell with the fewest candidates.
// Cells are scanned in row-major label order, so ties resolve to the
// lexicographically smallest cell — a fixed, documented order rather
// than an accident of map iteration.
func (s *ConstraintSolver) pickCell(g domain.Grid) domain.Cell {
	var best domain.Cell
	bestLen := len(domain.Digits) + 1
	for _, c := range s.topo.Cells {
		if n := len(g[c]); n > 1 && n < bestLen {
			best, bestLen = c, n
		}
	}
	return best
}
