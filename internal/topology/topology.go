package topology

import (
	"sort"

	"svw.info/sudokux/internal/domain"
)

const (
	rowLabels = "ABCDEFGHI"
	colLabels = "123456789"
)

// Topology is the static structure of a Sudoku-X board: the 81 cells in
// row-major scan order, the 29 units (9 rows, 9 columns, 9 boxes, 2
// diagonals), and for each cell its containing units and its peers.
// Build it once with New and pass it explicitly; it is never mutated.
type Topology struct {
	Cells []domain.Cell
	Units [][]domain.Cell

	unitsOf map[domain.Cell][][]domain.Cell
	peers   map[domain.Cell][]domain.Cell
}

func cross(rows, cols string) []domain.Cell {
	out := make([]domain.Cell, 0, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			out = append(out, domain.Cell(string(r)+string(c)))
		}
	}
	return out
}

// New builds the diagonal-Sudoku topology.
func New() *Topology {
	t := &Topology{Cells: cross(rowLabels, colLabels)}

	for _, r := range rowLabels {
		t.Units = append(t.Units, cross(string(r), colLabels))
	}
	for _, c := range colLabels {
		t.Units = append(t.Units, cross(rowLabels, string(c)))
	}
	for _, rs := range []string{"ABC", "DEF", "GHI"} {
		for _, cs := range []string{"123", "456", "789"} {
			t.Units = append(t.Units, cross(rs, cs))
		}
	}
	main := make([]domain.Cell, 9)
	anti := make([]domain.Cell, 9)
	for i := 0; i < 9; i++ {
		main[i] = domain.Cell(string(rowLabels[i]) + string(colLabels[i]))
		anti[i] = domain.Cell(string(rowLabels[i]) + string(colLabels[8-i]))
	}
	t.Units = append(t.Units, main, anti)

	t.unitsOf = make(map[domain.Cell][][]domain.Cell, len(t.Cells))
	for _, u := range t.Units {
		for _, c := range u {
			t.unitsOf[c] = append(t.unitsOf[c], u)
		}
	}

	t.peers = make(map[domain.Cell][]domain.Cell, len(t.Cells))
	for _, c := range t.Cells {
		seen := make(map[domain.Cell]bool)
		for _, u := range t.unitsOf[c] {
			for _, p := range u {
				if p != c {
					seen[p] = true
				}
			}
		}
		ps := make([]domain.Cell, 0, len(seen))
		for p := range seen {
			ps = append(ps, p)
		}
		// sorted so that every traversal of a peer set is deterministic
		sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
		t.peers[c] = ps
	}
	return t
}

// UnitsOf returns the units containing the cell (3 for most cells, 4 on
// one diagonal, 5 for the center).
func (t *Topology) UnitsOf(c domain.Cell) [][]domain.Cell { return t.unitsOf[c] }

// Peers returns the cells sharing at least one unit with c, in
// lexicographic order, excluding c itself.
func (t *Topology) Peers(c domain.Cell) []domain.Cell { return t.peers[c] }
