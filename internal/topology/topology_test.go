package topology

import (
	"testing"

	"svw.info/sudokux/internal/domain"
)

func TestUnitsShape(t *testing.T) {
	topo := New()
	if len(topo.Cells) != 81 {
		t.Fatalf("cells: got %d, want 81", len(topo.Cells))
	}
	if len(topo.Units) != 29 {
		t.Fatalf("units: got %d, want 29 (9 rows + 9 cols + 9 boxes + 2 diagonals)", len(topo.Units))
	}
	for i, u := range topo.Units {
		if len(u) != 9 {
			t.Fatalf("unit %d has %d cells, want 9", i, len(u))
		}
	}
}

func TestUnitsOfCounts(t *testing.T) {
	topo := New()
	cases := []struct {
		cell domain.Cell
		want int
	}{
		{"A2", 3}, // row, col, box
		{"A1", 4}, // + main diagonal
		{"C7", 4}, // + anti diagonal
		{"E5", 5}, // center sits on both diagonals
	}
	for _, tc := range cases {
		if got := len(topo.UnitsOf(tc.cell)); got != tc.want {
			t.Fatalf("UnitsOf(%s): got %d units, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestPeerCounts(t *testing.T) {
	topo := New()
	cases := []struct {
		cell domain.Cell
		want int
	}{
		{"A2", 20}, // off-diagonal: 8 row + 8 col + 4 box extras
		{"A1", 26}, // main diagonal adds 6 cells outside row/col/box
		{"E5", 32}, // both diagonals add 6 each
	}
	for _, tc := range cases {
		if got := len(topo.Peers(tc.cell)); got != tc.want {
			t.Fatalf("Peers(%s): got %d, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestPeerSymmetryAndOrder(t *testing.T) {
	topo := New()
	for _, c := range topo.Cells {
		peers := topo.Peers(c)
		for i, p := range peers {
			if p == c {
				t.Fatalf("cell %s lists itself as a peer", c)
			}
			if i > 0 && peers[i-1] >= p {
				t.Fatalf("peers of %s not strictly sorted at %d: %s >= %s", c, i, peers[i-1], p)
			}
			back := topo.Peers(p)
			found := false
			for _, q := range back {
				if q == c {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("peer relation not symmetric: %s -> %s but not back", c, p)
			}
		}
	}
}
