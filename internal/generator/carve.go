package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/mushikui/internal/domain"
	"svw.info/mushikui/internal/ports"
	"svw.info/mushikui/internal/solver"
)

// factorLengths maps difficulty to the digit counts of the two factors.
func factorLengths(d domain.Difficulty) (int, int) {
	switch d {
	case domain.Easy:
		return 2, 1
	case domain.Medium:
		return 3, 2
	case domain.Hard:
		return 4, 2
	default:
		return 5, 3 // Expert
	}
}

// Generate creates a puzzle with a unique solution from seed and difficulty.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	l1, l2 := factorLengths(diff)

	// 1) a fully concrete multiplication
	grid := concreteGrid(rng, l1, l2)

	// 2) blank cells in random order while uniqueness holds
	cells := grid.Cells()
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0
	for _, c := range cells {
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}
		cell := grid.At(c)
		old := *cell
		*cell = domain.Wildcard
		unique, st, err := g.Solver.Unique(ctx, grid)
		nodes += st.Nodes
		if err != nil || !unique {
			*cell = old
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Grid:       *grid,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// concreteGrid draws random factors and derives their partial rows and
// product through the arithmetic engine. Multiplier digits are drawn from
// 1-9 so every partial row exists.
func concreteGrid(rng *rand.Rand, l1, l2 int) *domain.Grid {
	multiplicand := make(domain.Row, l1)
	for i := range multiplicand {
		lo := 0
		if i == 0 {
			lo = 1 // leading digit
		}
		multiplicand[i] = domain.Fixed(uint8(lo + rng.Intn(10-lo)))
	}
	multiplier := make(domain.Row, l2)
	for i := range multiplier {
		multiplier[i] = domain.Fixed(uint8(1 + rng.Intn(9)))
	}

	partials := make([]domain.Row, l2)
	for j := range partials {
		d, _ := multiplier[l2-j-1].Value()
		partials[j] = domain.FixedRow(solver.PartialProduct(multiplicand, d))
	}
	return &domain.Grid{
		Multiplicand: multiplicand,
		Multiplier:   multiplier,
		Partials:     partials,
		Product:      domain.FixedRow(solver.Product(partials)),
	}
}
