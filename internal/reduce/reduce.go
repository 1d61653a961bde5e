// Package reduce implements the local inference passes that shrink
// candidate sets: peer elimination, only-choice, and naked twins, plus
// the fixed-point loop that runs them to quiescence.
package reduce

import (
	"strings"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/grid"
	"svw.info/sudokux/internal/ports"
	"svw.info/sudokux/internal/topology"
)

// Reducer applies constraint strategies against a fixed topology. The
// recorder is optional; when set, every assignment that resolves a cell
// is reported. All methods mutate the grid they are given — the caller
// owns it and clones before branching.
type Reducer struct {
	topo *topology.Topology
	rec  ports.Recorder
}

func New(t *topology.Topology, rec ports.Recorder) *Reducer {
	return &Reducer{topo: t, rec: rec}
}

// Assign replaces the candidate set of c with v, reporting the event to
// the recorder when the cell becomes resolved. Every candidate-set
// write in this package and in the search goes through here.
func (r *Reducer) Assign(g domain.Grid, c domain.Cell, v string) {
	if g[c] == v {
		return
	}
	if r.rec == nil || len(v) != 1 {
		g[c] = v
		return
	}
	parent := grid.Encode(r.topo, g)
	g[c] = v
	r.rec.Record(domain.Assignment{
		Cell:   c,
		Digit:  v[0],
		Next:   grid.Encode(r.topo, g),
		Parent: parent,
	})
}

// Eliminate removes each resolved cell's digit from all of its peers.
// Removals are subtractive, so the order of processing does not affect
// the result.
func (r *Reducer) Eliminate(g domain.Grid) {
	for _, c := range r.topo.Cells {
		if !g.Resolved(c) {
			continue
		}
		digit := g[c]
		for _, p := range r.topo.Peers(c) {
			if strings.Contains(g[p], digit) {
				r.Assign(g, p, strings.Replace(g[p], digit, "", 1))
			}
		}
	}
}

// OnlyChoice resolves, within each unit, any digit that fits in exactly
// one of the unit's cells.
func (r *Reducer) OnlyChoice(g domain.Grid) {
	for _, unit := range r.topo.Units {
		for i := 0; i < len(domain.Digits); i++ {
			digit := domain.Digits[i : i+1]
			var place domain.Cell
			n := 0
			for _, c := range unit {
				if strings.Contains(g[c], digit) {
					place = c
					n++
					if n > 1 {
						break
					}
				}
			}
			if n == 1 && g[place] != digit {
				r.Assign(g, place, digit)
			}
		}
	}
}

type twinPair struct {
	a, b domain.Cell
	val  string
}

// NakedTwins finds mutual peers that share an identical two-candidate
// set and strips those two digits from every cell peering both. The
// pair list and each pair's digits come from a snapshot of the input:
// removals applied for one pair never influence the detection of
// another within the same pass.
func (r *Reducer) NakedTwins(g domain.Grid) {
	var pairs []twinPair
	for _, c := range r.topo.Cells {
		if len(g[c]) != 2 {
			continue
		}
		for _, p := range r.topo.Peers(c) {
			if p > c && g[p] == g[c] {
				pairs = append(pairs, twinPair{a: c, b: p, val: g[c]})
			}
		}
	}
	for _, tw := range pairs {
		bPeers := make(map[domain.Cell]bool, 20)
		for _, p := range r.topo.Peers(tw.b) {
			bPeers[p] = true
		}
		for _, p := range r.topo.Peers(tw.a) {
			if !bPeers[p] {
				continue
			}
			v := g[p]
			for i := 0; i < len(tw.val); i++ {
				v = strings.Replace(v, tw.val[i:i+1], "", 1)
			}
			if v != g[p] {
				r.Assign(g, p, v)
			}
		}
	}
}

// FixedPoint runs Eliminate, OnlyChoice and NakedTwins in rotation
// until a pass resolves no new cell. It returns domain.ErrUnsolvable as
// soon as any candidate set becomes empty.
func (r *Reducer) FixedPoint(g domain.Grid) error {
	for {
		before := g.SolvedCount()
		r.Eliminate(g)
		r.OnlyChoice(g)
		r.NakedTwins(g)
		for _, c := range r.topo.Cells {
			if len(g[c]) == 0 {
				return domain.ErrUnsolvable
			}
		}
		if g.SolvedCount() == before {
			return nil
		}
	}
}
