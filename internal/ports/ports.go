package ports

import (
	"context"
	"time"

	"svw.info/sudokux/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a candidate grid and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
	Unique(ctx context.Context, g domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast duplicate checks across every unit.
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.Cell, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Recorder receives each single-value assignment the solver makes.
// Implementations must tolerate assignments from abandoned search
// branches; only the chain of parent links ending at the final
// encoding describes the winning line.
type Recorder interface {
	Record(a domain.Assignment)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
