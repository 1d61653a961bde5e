package hint

import (
	"context"
	"fmt"
	"strings"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/reduce"
	"svw.info/sudokux/internal/topology"
)

// Strategies implements a Hinter over the candidate grid: naked and
// hidden singles first, then naked pairs if the tier allows.
type Strategies struct {
	topo *topology.Topology
	red  *reduce.Reducer
}

func New(t *topology.Topology) *Strategies {
	return &Strategies{topo: t, red: reduce.New(t, nil)}
}

// Hint returns the first applicable step at or below the max tier. The
// input grid is not modified; strategies probe a clone.
func (h *Strategies) Hint(ctx context.Context, g domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	if hint, ok := h.nakedSingle(g); ok {
		return hint, true, nil
	}
	if hint, ok := h.hiddenSingle(g); ok {
		return hint, true, nil
	}
	if max >= domain.StrategyPairs {
		if hint, ok := h.nakedPair(g); ok {
			return hint, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// nakedSingle looks for an unresolved cell that a single elimination
// pass pins to one digit.
func (h *Strategies) nakedSingle(g domain.Grid) (domain.Hint, bool) {
	probe := g.Clone()
	h.red.Eliminate(probe)
	for _, c := range h.topo.Cells {
		if !g.Resolved(c) && probe.Resolved(c) {
			d := probe[c][0]
			return domain.Hint{
				Message:  fmt.Sprintf("Naked single: only %c fits in %s", d, c),
				Cells:    []domain.Cell{c},
				Digit:    d,
				Strategy: domain.StrategySingles,
			}, true
		}
	}
	return domain.Hint{}, false
}

// hiddenSingle looks for a unit where some digit has exactly one home.
func (h *Strategies) hiddenSingle(g domain.Grid) (domain.Hint, bool) {
	for _, unit := range h.topo.Units {
		for i := 0; i < len(domain.Digits); i++ {
			digit := domain.Digits[i : i+1]
			var place domain.Cell
			n := 0
			for _, c := range unit {
				if strings.Contains(g[c], digit) {
					place = c
					n++
				}
			}
			if n == 1 && !g.Resolved(place) {
				return domain.Hint{
					Message:  fmt.Sprintf("Hidden single: %s is the only home for %s in its unit", place, digit),
					Cells:    []domain.Cell{place},
					Digit:    digit[0],
					Strategy: domain.StrategySingles,
				}, true
			}
		}
	}
	return domain.Hint{}, false
}

// nakedPair reports the first twin pair whose digits can still be
// removed from some shared peer.
func (h *Strategies) nakedPair(g domain.Grid) (domain.Hint, bool) {
	for _, c := range h.topo.Cells {
		if len(g[c]) != 2 {
			continue
		}
		for _, p := range h.topo.Peers(c) {
			if p <= c || g[p] != g[c] {
				continue
			}
			if !pairHasEffect(h.topo, g, c, p) {
				continue
			}
			return domain.Hint{
				Message:  fmt.Sprintf("Naked pair: %s and %s lock %s; drop those digits from their shared peers", c, p, g[c]),
				Cells:    []domain.Cell{c, p},
				Strategy: domain.StrategyPairs,
			}, true
		}
	}
	return domain.Hint{}, false
}

func pairHasEffect(t *topology.Topology, g domain.Grid, a, b domain.Cell) bool {
	bPeers := make(map[domain.Cell]bool, 20)
	for _, p := range t.Peers(b) {
		bPeers[p] = true
	}
	val := g[a]
	for _, p := range t.Peers(a) {
		if !bPeers[p] || len(g[p]) == 1 {
			continue
		}
		if strings.ContainsAny(g[p], val) {
			return true
		}
	}
	return false
}
