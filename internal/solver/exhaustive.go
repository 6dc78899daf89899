package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/mushikui/internal/domain"
	"svw.info/mushikui/internal/ports"
	"svw.info/mushikui/internal/validator"
)

// ExhaustiveSolver tries every digit assignment of the two factor rows and
// keeps the ones whose derived partial rows and product match the grid. It
// carries no pruning beyond per-cell acceptance, so it is held to grids
// whose values fit in uint64; it exists to cross-check the backtracking
// solver on small instances.
type ExhaustiveSolver struct{}

func NewExhaustiveSolver() *ExhaustiveSolver { return &ExhaustiveSolver{} }

// maxExhaustiveDigits keeps multiplicand*multiplier below 2^63.
const maxExhaustiveDigits = 9

var ErrTooLarge = errors.New("grid too large for exhaustive search")

func (e *ExhaustiveSolver) SolveAll(ctx context.Context, g *domain.Grid) ([]*domain.Grid, ports.Stats, error) {
	return e.SolveUpTo(ctx, g, 0)
}

// SolveUpTo stops the enumeration once limit solutions have been found;
// limit <= 0 enumerates all.
func (e *ExhaustiveSolver) SolveUpTo(ctx context.Context, g *domain.Grid, limit int) ([]*domain.Grid, ports.Stats, error) {
	start := time.Now()
	if ve := validator.First(g); ve != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, ve
	}
	if len(g.Multiplicand) > maxExhaustiveDigits || len(g.Multiplier) > maxExhaustiveDigits {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrTooLarge
	}

	var (
		out   []*domain.Grid
		nodes int
		mcand = make([]uint8, len(g.Multiplicand))
		mult  = make([]uint8, len(g.Multiplier))
	)

	check := func() {
		m := valueOf(mcand)
		partials := make([]domain.Row, len(g.Partials))
		for j := range g.Partials {
			d := mult[len(mult)-j-1]
			digits := decimalDigits(m * uint64(d))
			if len(digits) != len(g.Partials[j]) || !acceptsSuffix(g.Partials[j], digits) {
				return
			}
			partials[j] = domain.FixedRow(digits)
		}
		digits := decimalDigits(m * valueOf(mult))
		if len(digits) != len(g.Product) || !acceptsSuffix(g.Product, digits) {
			return
		}
		out = append(out, &domain.Grid{
			Multiplicand: domain.FixedRow(mcand),
			Multiplier:   domain.FixedRow(mult),
			Partials:     partials,
			Product:      domain.FixedRow(digits),
		})
	}

	full := func() bool {
		return ctx.Err() != nil || (limit > 0 && len(out) >= limit)
	}

	var assignMult func(i int)
	assignMult = func(i int) {
		if full() {
			return
		}
		if i == len(mult) {
			check()
			return
		}
		for d := uint8(1); d <= 9; d++ { // multiplier digits are never 0
			if !g.Multiplier[i].Accepts(d) {
				continue
			}
			nodes++
			mult[i] = d
			assignMult(i + 1)
		}
	}
	var assignMcand func(i int)
	assignMcand = func(i int) {
		if full() {
			return
		}
		if i == len(mcand) {
			assignMult(0)
			return
		}
		for d := uint8(0); d <= 9; d++ {
			if d == 0 && i == 0 {
				continue // leading digit
			}
			if !g.Multiplicand[i].Accepts(d) {
				continue
			}
			nodes++
			mcand[i] = d
			assignMcand(i + 1)
		}
	}
	assignMcand(0)

	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return out, st, err
	}
	return out, st, nil
}

// Unique reports whether exactly one assignment survives, stopping as soon
// as a second one turns up.
func (e *ExhaustiveSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	sols, st, err := e.SolveUpTo(ctx, g, 2)
	if err != nil {
		return false, st, err
	}
	return len(sols) == 1, st, nil
}

// valueOf folds most-significant-first digits into a number.
func valueOf(digits []uint8) uint64 {
	var v uint64
	for _, d := range digits {
		v = v*10 + uint64(d)
	}
	return v
}

// decimalDigits expands v (>= 1) most-significant-first.
func decimalDigits(v uint64) []uint8 {
	var out []uint8
	for v > 0 {
		out = append(out, uint8(v%10))
		v /= 10
	}
	reverse(out)
	return out
}
