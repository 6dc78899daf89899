package ports

import (
	"context"
	"time"

	"svw.info/mushikui/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver enumerates the digit assignments consistent with a grid.
type Solver interface {
	// SolveAll returns every solution, each a fully resolved copy of the
	// input grid. An empty result is not an error.
	SolveAll(ctx context.Context, g *domain.Grid) ([]*domain.Grid, Stats, error)
	// SolveUpTo stops after limit solutions; limit <= 0 enumerates all.
	SolveUpTo(ctx context.Context, g *domain.Grid, limit int) ([]*domain.Grid, Stats, error)
	// Unique reports whether the grid has exactly one solution.
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs structural checks (row counts, lengths, leading zeros).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, issues []domain.ValidationError, err error)
}

// Hinter returns the next logical deduction for a grid.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
