package reduce

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/grid"
	"svw.info/sudokux/internal/topology"
)

const diagPuzzle = "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3"

func mustParse(t *testing.T, topo *topology.Topology, s string) domain.Grid {
	t.Helper()
	g, err := grid.Parse(topo, s)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

func TestEliminateStripsPeers(t *testing.T) {
	topo := topology.New()
	r := New(topo, nil)
	g := mustParse(t, topo, diagPuzzle)

	r.Eliminate(g)

	// A1 is the given "2": no peer of A1 may still hold 2.
	for _, p := range topo.Peers("A1") {
		if strings.Contains(g[p], "2") {
			t.Fatalf("peer %s of A1 still offers 2: %q", p, g[p])
		}
	}
	if g["A1"] != "2" {
		t.Fatalf("given A1 changed: %q", g["A1"])
	}
	// I9 is the given "3" on the main diagonal: E5 peers it there.
	if strings.Contains(g["E5"], "3") {
		t.Fatalf("diagonal elimination missed: E5 = %q still offers 3", g["E5"])
	}
}

func TestOnlyChoicePlacesLoneDigit(t *testing.T) {
	topo := topology.New()
	r := New(topo, nil)
	g := mustParse(t, topo, strings.Repeat(".", 81))

	// Leave digit 7 possible only in A9 within row A.
	for _, c := range []domain.Cell{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8"} {
		g[c] = strings.Replace(domain.Digits, "7", "", 1)
	}
	r.OnlyChoice(g)

	if g["A9"] != "7" {
		t.Fatalf("only choice: A9 = %q, want \"7\"", g["A9"])
	}
}

func TestNakedTwinsRemovesFromSharedPeers(t *testing.T) {
	topo := topology.New()
	r := New(topo, nil)
	g := mustParse(t, topo, strings.Repeat(".", 81))
	g["A1"] = "23"
	g["A2"] = "23"

	r.NakedTwins(g)

	// Cells peering both twins: the rest of row A and of box A1-C3.
	shared := []domain.Cell{"A3", "A4", "A5", "A6", "A7", "A8", "A9", "B1", "B2", "B3", "C1", "C2", "C3"}
	for _, c := range shared {
		if strings.ContainsAny(g[c], "23") {
			t.Fatalf("shared peer %s still offers 2 or 3: %q", c, g[c])
		}
	}
	// The twins themselves keep their pair.
	if g["A1"] != "23" || g["A2"] != "23" {
		t.Fatalf("twins modified: A1=%q A2=%q", g["A1"], g["A2"])
	}
	// D1 peers only A1 (column); twins must not touch it.
	if g["D1"] != domain.Digits {
		t.Fatalf("non-shared peer D1 modified: %q", g["D1"])
	}
}

func TestNakedTwinsDetectsFromSnapshot(t *testing.T) {
	topo := topology.New()
	r := New(topo, nil)
	g := mustParse(t, topo, strings.Repeat(".", 81))
	// Two independent pairs in row A; removals for one must not create
	// or destroy detection of the other mid-pass.
	g["A1"], g["A2"] = "23", "23"
	g["A5"], g["A6"] = "45", "45"

	r.NakedTwins(g)

	if strings.ContainsAny(g["A9"], "2345") {
		t.Fatalf("A9 should have lost 2,3,4,5: %q", g["A9"])
	}
	if g["A1"] != "23" || g["A5"] != "45" {
		t.Fatalf("pairs modified: A1=%q A5=%q", g["A1"], g["A5"])
	}
}

func TestPassesAreMonotone(t *testing.T) {
	topo := topology.New()
	r := New(topo, nil)
	g := mustParse(t, topo, diagPuzzle)

	passes := []struct {
		name  string
		apply func(domain.Grid)
	}{
		{"eliminate", r.Eliminate},
		{"only-choice", r.OnlyChoice},
		{"naked-twins", r.NakedTwins},
	}
	for _, p := range passes {
		before := g.Clone()
		p.apply(g)
		for c, v := range g {
			if len(v) > len(before[c]) {
				t.Fatalf("%s grew %s from %q to %q", p.name, c, before[c], v)
			}
		}
	}
}

func TestFixedPointIsIdempotent(t *testing.T) {
	topo := topology.New()
	r := New(topo, nil)
	g := mustParse(t, topo, diagPuzzle)

	if err := r.FixedPoint(g); err != nil {
		t.Fatalf("FixedPoint failed: %v", err)
	}
	again := g.Clone()
	if err := r.FixedPoint(again); err != nil {
		t.Fatalf("second FixedPoint failed: %v", err)
	}
	if !maps.Equal(g, again) {
		t.Fatalf("FixedPoint not idempotent: state changed on second run")
	}
}

func TestFixedPointReportsContradiction(t *testing.T) {
	topo := topology.New()
	r := New(topo, nil)
	// Two 1s in row A contradict each other.
	g := mustParse(t, topo, "11"+strings.Repeat(".", 79))

	err := r.FixedPoint(g)
	if !errors.Is(err, domain.ErrUnsolvable) {
		t.Fatalf("got err=%v, want ErrUnsolvable", err)
	}
}
