package solver

import (
	"context"
	"time"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one
// exists. No assignments are recorded while probing.
func (s *ConstraintSolver) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0

	var dfs func(domain.Grid)
	dfs = func(g domain.Grid) {
		if ctx.Err() != nil || count >= 2 {
			return // stop early
		}
		if err := s.mute.FixedPoint(g); err != nil {
			return
		}
		if g.Complete() {
			count++
			return
		}
		cell := s.pickCell(g)
		for _, d := range g[cell] {
			if count >= 2 {
				return
			}
			nodes++
			branch := g.Clone()
			s.mute.Assign(branch, cell, string(d))
			dfs(branch)
		}
	}
	dfs(g.Clone())
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
