package solver

import (
	"context"
	"time"

	"svw.info/mushikui/internal/domain"
	"svw.info/mushikui/internal/ports"
	"svw.info/mushikui/internal/validator"
)

// SolveAll enumerates every consistent digit assignment. The input grid is
// cloned before searching and never mutated. A structurally malformed grid
// fails with a *domain.ValidationError before any search happens.
func (b *BacktrackingSolver) SolveAll(ctx context.Context, g *domain.Grid) ([]*domain.Grid, ports.Stats, error) {
	return b.SolveUpTo(ctx, g, 0)
}

// SolveUpTo enumerates like SolveAll but unwinds once limit solutions have
// been collected; limit <= 0 enumerates all.
func (b *BacktrackingSolver) SolveUpTo(ctx context.Context, g *domain.Grid, limit int) ([]*domain.Grid, ports.Stats, error) {
	start := time.Now()
	if ve := validator.First(g); ve != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, ve
	}
	s := &search{ctx: ctx, g: g.Clone(), limit: limit}
	s.multiplicand(0)
	st := ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return s.out, st, err
	}
	return s.out, st, nil
}
