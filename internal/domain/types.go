package domain

// Cell identifies one grid position by its row-letter/column-digit
// label, e.g. "A1" for the top-left corner and "I9" for the bottom-right.
type Cell string

// Digits is every candidate a blank cell starts with, in canonical order.
const Digits = "123456789"

// Grid maps every cell to the ascending string of digits still possible
// for it. A cell is resolved when its entry has length 1; an empty entry
// marks a contradiction. Candidate sets only ever shrink, so the
// ascending order established at parse time is stable.
type Grid map[Cell]string

// Clone returns an independent copy. Search branches must operate on
// clones so that backtracking never leaks assignments to siblings.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out
}

// Resolved reports whether the cell is down to a single candidate.
func (g Grid) Resolved(c Cell) bool { return len(g[c]) == 1 }

// SolvedCount returns the number of resolved cells. The fixed-point
// loop uses it as its progress measure.
func (g Grid) SolvedCount() int {
	n := 0
	for _, v := range g {
		if len(v) == 1 {
			n++
		}
	}
	return n
}

// Complete reports whether every cell is resolved.
func (g Grid) Complete() bool { return g.SolvedCount() == len(g) }

// Assignment is one single-value placement event, reported to an
// optional recorder. Next is the 81-char encoding of the grid after the
// placement, Parent the encoding before it; following Parent links
// backward from the final encoding replays the solve.
type Assignment struct {
	Cell   Cell   `json:"cell"`
	Digit  byte   `json:"digit"`
	Next   string `json:"next"`
	Parent string `json:"parent"`
}

// Hint describes a strategy suggestion for a caller's UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []Cell       `json:"cells,omitempty"`
	Digit    byte         `json:"digit,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku-X with metadata. Givens and Solution use
// the 81-char encoding with '.' for blanks.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Givens     string     `json:"givens"`
	Solution   string     `json:"solution,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
