package validator

import (
	"context"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/topology"
)

// FastValidator checks for duplicate resolved digits inside any unit,
// diagonals included. Unresolved cells are ignored, so it works on
// partial grids as well as finished ones.
type FastValidator struct {
	topo *topology.Topology
}

func New(t *topology.Topology) *FastValidator { return &FastValidator{topo: t} }

func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.Cell, error) {
	conf := make([]domain.Cell, 0, 8)
	for _, unit := range v.topo.Units {
		m := 0
		for _, c := range unit {
			val := g[c]
			if len(val) != 1 {
				continue
			}
			bit := 1 << (val[0] - '0')
			if m&bit != 0 {
				conf = append(conf, c)
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
