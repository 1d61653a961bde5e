package generator

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/ports"
	"svw.info/sudokux/internal/topology"
)

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 30
	default:
		return 26 // Expert; diagonals leave less slack than plain Sudoku
	}
}

// Generate creates a puzzle with a unique solution from seed and target
// difficulty: fill a random complete solution, then carve out clues as
// long as the remainder still has exactly one solution.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full := make(map[domain.Cell]string, len(g.Topo.Cells))
	if !fillRandom(ctx, rng, g.Topo, full, 0) {
		return nil, ports.Stats{}, context.Canceled
	}

	puz := make(map[domain.Cell]string, len(full))
	for c, v := range full {
		puz[c] = v
	}
	order := make([]domain.Cell, len(g.Topo.Cells))
	copy(order, g.Topo.Cells)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0
	givens := len(puz)

	for _, c := range order {
		if time.Now().After(deadline) || givens <= target {
			break
		}
		old := puz[c]
		puz[c] = ""
		unique, st, _ := g.Solver.Unique(ctx, candidateGrid(g.Topo, puz))
		nodes += st.Nodes
		if unique {
			givens--
		} else {
			puz[c] = old // revert
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Givens:     encode(g.Topo, puz),
		Solution:   encode(g.Topo, full),
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty board into a full valid Sudoku-X
// solution by backtracking with a random value order per cell.
func fillRandom(ctx context.Context, rng *rand.Rand, t *topology.Topology, vals map[domain.Cell]string, idx int) bool {
	if ctx.Err() != nil {
		return false
	}
	if idx == len(t.Cells) {
		return true
	}
	c := t.Cells[idx]
	digits := []byte(domain.Digits)
	rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	for _, d := range digits {
		v := string(d)
		if !allowed(t, vals, c, v) {
			continue
		}
		vals[c] = v
		if fillRandom(ctx, rng, t, vals, idx+1) {
			return true
		}
		delete(vals, c)
	}
	return false
}

// allowed reports whether no peer of c already holds v.
func allowed(t *topology.Topology, vals map[domain.Cell]string, c domain.Cell, v string) bool {
	for _, p := range t.Peers(c) {
		if vals[p] == v {
			return false
		}
	}
	return true
}

// candidateGrid widens a partial assignment into the solver's
// representation: blanks get every digit.
func candidateGrid(t *topology.Topology, vals map[domain.Cell]string) domain.Grid {
	g := make(domain.Grid, len(t.Cells))
	for _, c := range t.Cells {
		if v := vals[c]; v != "" {
			g[c] = v
		} else {
			g[c] = domain.Digits
		}
	}
	return g
}

func encode(t *topology.Topology, vals map[domain.Cell]string) string {
	var b strings.Builder
	b.Grow(len(t.Cells))
	for _, c := range t.Cells {
		if v := vals[c]; v != "" {
			b.WriteString(v)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
