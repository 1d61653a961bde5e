// Package grid converts between the 81-character line encoding of a
// puzzle and the candidate-grid representation the solver works on.
package grid

import (
	"fmt"
	"strings"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/topology"
)

// Placeholder marks an unknown cell in the line encoding.
const Placeholder = '.'

// Parse decodes an 81-character string scanned in row-major order.
// Digits 1-9 are givens; Placeholder gives the cell all nine
// candidates. Anything else is rejected with domain.ErrInvalidInput.
func Parse(t *topology.Topology, s string) (domain.Grid, error) {
	if len(s) != len(t.Cells) {
		return nil, fmt.Errorf("%w: got %d characters, want %d", domain.ErrInvalidInput, len(s), len(t.Cells))
	}
	g := make(domain.Grid, len(t.Cells))
	for i, c := range t.Cells {
		ch := s[i]
		switch {
		case ch == Placeholder:
			g[c] = domain.Digits
		case ch >= '1' && ch <= '9':
			g[c] = string(ch)
		default:
			return nil, fmt.Errorf("%w: character %q at position %d", domain.ErrInvalidInput, ch, i)
		}
	}
	return g, nil
}

// Encode is the inverse of Parse: resolved cells emit their digit,
// everything else the placeholder.
func Encode(t *topology.Topology, g domain.Grid) string {
	var b strings.Builder
	b.Grow(len(t.Cells))
	for _, c := range t.Cells {
		if v := g[c]; len(v) == 1 {
			b.WriteString(v)
		} else {
			b.WriteByte(Placeholder)
		}
	}
	return b.String()
}

// Format renders the grid as a 2-D block for terminal display, showing
// the full candidate string of unresolved cells.
func Format(t *topology.Topology, g domain.Grid) string {
	width := 2
	for _, c := range t.Cells {
		if len(g[c])+1 > width {
			width = len(g[c]) + 1
		}
	}
	bar := strings.Repeat("-", width*3)
	line := bar + "+" + bar + "+" + bar

	var b strings.Builder
	for i, c := range t.Cells {
		v := g[c]
		pad := width - len(v)
		left := pad / 2
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(v)
		b.WriteString(strings.Repeat(" ", pad-left))
		col := i % 9
		if col == 2 || col == 5 {
			b.WriteByte('|')
		}
		if col == 8 {
			b.WriteByte('\n')
			row := i / 9
			if row == 2 || row == 5 {
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
