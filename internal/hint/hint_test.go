package hint

import (
	"context"
	"strings"
	"testing"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/grid"
	"svw.info/sudokux/internal/topology"
)

func TestNakedSingleHint(t *testing.T) {
	topo := topology.New()
	h := New(topo)
	// Row A filled with 1..8 leaves only 9 for A9.
	g, err := grid.Parse(topo, "12345678."+strings.Repeat(".", 72))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	hint, found, err := h.Hint(context.Background(), g, domain.StrategySingles)
	if err != nil || !found {
		t.Fatalf("expected a hint: found=%v err=%v", found, err)
	}
	if hint.Strategy != domain.StrategySingles || len(hint.Cells) != 1 || hint.Cells[0] != "A9" || hint.Digit != '9' {
		t.Fatalf("unexpected hint: %+v", hint)
	}
}

func TestPairHintRespectsTierCap(t *testing.T) {
	topo := topology.New()
	h := New(topo)
	g, err := grid.Parse(topo, strings.Repeat(".", 81))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	g["A1"], g["A2"] = "23", "23"

	if _, found, _ := h.Hint(context.Background(), g, domain.StrategySingles); found {
		t.Fatalf("pair hint returned despite singles-only cap")
	}

	hint, found, err := h.Hint(context.Background(), g, domain.StrategyPairs)
	if err != nil || !found {
		t.Fatalf("expected a pair hint: found=%v err=%v", found, err)
	}
	if hint.Strategy != domain.StrategyPairs || len(hint.Cells) != 2 {
		t.Fatalf("unexpected hint: %+v", hint)
	}
}

func TestNoHintOnBlankGrid(t *testing.T) {
	topo := topology.New()
	h := New(topo)
	g, err := grid.Parse(topo, strings.Repeat(".", 81))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, found, _ := h.Hint(context.Background(), g, domain.StrategyAdvanced); found {
		t.Fatalf("blank grid should yield no hint")
	}
}
