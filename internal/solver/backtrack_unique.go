package solver

import (
	"context"
	"time"

	"svw.info/mushikui/internal/domain"
	"svw.info/mushikui/internal/ports"
	"svw.info/mushikui/internal/validator"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (b *BacktrackingSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	if ve := validator.First(g); ve != nil {
		return false, ports.Stats{Duration: time.Since(start)}, ve
	}
	s := &search{ctx: ctx, g: g.Clone(), limit: 2}
	s.multiplicand(0)
	st := ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return len(s.out) == 1, st, nil
}
