package generator

import (
	"svw.info/sudokux/internal/ports"
	"svw.info/sudokux/internal/topology"
)

// UniqueGenerator creates Sudoku-X puzzles with a unique solution,
// using the provided Solver for uniqueness probes.
type UniqueGenerator struct {
	Topo   *topology.Topology
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator over the given topology and solver.
func NewUniqueGenerator(t *topology.Topology, s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Topo: t, Solver: s}
}
