package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/grid"
	"svw.info/sudokux/internal/ports"
	"svw.info/sudokux/internal/reduce"
)

// Solve returns a fully resolved copy of g, or domain.ErrUnsolvable.
// The input grid is never mutated. Stats.Nodes counts branch
// candidates tried; a grid finished by propagation alone reports zero.
func (s *ConstraintSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	out, err := s.search(ctx, s.red, g.Clone(), &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	return out, st, nil
}

// SolveString is the line-encoding entrypoint: it parses the 81-char
// puzzle, solves it, and encodes the result. Malformed input surfaces
// as domain.ErrInvalidInput before any solving work happens.
func (s *ConstraintSolver) SolveString(ctx context.Context, in string) (string, ports.Stats, error) {
	g, err := grid.Parse(s.topo, in)
	if err != nil {
		return "", ports.Stats{}, err
	}
	out, st, err := s.Solve(ctx, g)
	if err != nil {
		return "", st, err
	}
	return grid.Encode(s.topo, out), st, nil
}

func (s *ConstraintSolver) search(ctx context.Context, r *reduce.Reducer, g domain.Grid, nodes *int) (domain.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.FixedPoint(g); err != nil {
		return nil, err
	}
	if g.Complete() {
		return g, nil
	}
	cell := s.pickCell(g)
	for _, d := range g[cell] {
		*nodes++
		branch := g.Clone()
		r.Assign(branch, cell, string(d))
		out, err := s.search(ctx, r, branch, nodes)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, domain.ErrUnsolvable) {
			return nil, err // context cancellation propagates as-is
		}
	}
	return nil, domain.ErrUnsolvable
}
