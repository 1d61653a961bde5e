package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"svw.info/sudokux/internal/domain"
	"svw.info/sudokux/internal/grid"
	"svw.info/sudokux/internal/history"
	"svw.info/sudokux/internal/ports"
	"svw.info/sudokux/internal/solver"
	"svw.info/sudokux/internal/topology"
)

const defaultGrid = "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3"

func main() {
	gridStr := flag.String("grid", defaultGrid, "81-char puzzle, '.' for blanks")
	trace := flag.Bool("trace", false, "print the assignment sequence after solving")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	topo := topology.New()
	g, err := grid.Parse(topo, *gridStr)
	if err != nil {
		logger.Error("bad input", "err", err)
		os.Exit(2)
	}

	fmt.Println(grid.Format(topo, g))

	var rec *history.Recorder
	var port ports.Recorder
	if *trace {
		rec = history.New()
		port = rec
	}
	s := solver.NewConstraintSolver(topo, port)

	out, st, err := s.Solve(context.Background(), g)
	if err != nil {
		if errors.Is(err, domain.ErrUnsolvable) {
			logger.Error("no solution", "nodes", st.Nodes, "dur", st.Duration)
			os.Exit(1)
		}
		logger.Error("solve failed", "err", err)
		os.Exit(1)
	}

	fmt.Println(grid.Format(topo, out))
	logger.Info("solved", "nodes", st.Nodes, "dur", st.Duration)

	if *trace {
		for i, a := range rec.Reconstruct(grid.Encode(topo, out)) {
			fmt.Printf("%3d. %s = %c\n", i+1, a.Cell, a.Digit)
		}
	}
}
