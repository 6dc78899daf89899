package solver_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/mushikui/internal/domain"
	"svw.info/mushikui/internal/render"
	"svw.info/mushikui/internal/solver"
)

func renderedSet(sols []*domain.Grid) []string {
	out := make([]string, len(sols))
	for i, s := range sols {
		out[i] = render.Text(s)
	}
	sort.Strings(out)
	return out
}

// The exhaustive solver tries every assignment, so agreement on small grids
// is a completeness check for the backtracking search.
func TestExhaustiveMatchesBacktracking(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"single-digit", puzzleSingleDigit},
		{"trailing-nine", puzzleTrailingNine},
		{"2x2", puzzleTwoByTwo},
		{"crossed", puzzleCrossed},
		{"seventy", puzzleSeventy},
	}
	bt := solver.NewBacktrackingSolver()
	ex := solver.NewExhaustiveSolver()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.text)
			fromBT, _, err := bt.SolveAll(context.Background(), g)
			require.NoError(t, err)
			fromEx, _, err := ex.SolveAll(context.Background(), g)
			require.NoError(t, err)
			assert.Equal(t, renderedSet(fromBT), renderedSet(fromEx))
		})
	}
}

func TestExhaustiveUnderconstrained(t *testing.T) {
	// * × * = * admits every M×d <= 9 with d >= 1
	g := &domain.Grid{
		Multiplicand: domain.Row{domain.Wildcard},
		Multiplier:   domain.Row{domain.Wildcard},
		Partials:     []domain.Row{{domain.Wildcard}},
		Product:      domain.Row{domain.Wildcard},
	}
	fromEx, _, err := solver.NewExhaustiveSolver().SolveAll(context.Background(), g)
	require.NoError(t, err)
	fromBT, _, err := solver.NewBacktrackingSolver().SolveAll(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, renderedSet(fromBT), renderedSet(fromEx))

	want := 0
	for m := 1; m <= 9; m++ {
		for d := 1; d <= 9; d++ {
			if m*d <= 9 {
				want++
			}
		}
	}
	assert.Len(t, fromEx, want)

	capped, _, err := solver.NewExhaustiveSolver().SolveUpTo(context.Background(), g, 5)
	require.NoError(t, err)
	assert.Len(t, capped, 5)
}

func TestExhaustiveRejectsLargeGrids(t *testing.T) {
	wild := func(n int) domain.Row {
		r := make(domain.Row, n)
		for i := range r {
			r[i] = domain.Wildcard
		}
		return r
	}
	g := &domain.Grid{
		Multiplicand: wild(10),
		Multiplier:   wild(1),
		Partials:     []domain.Row{wild(10)},
		Product:      wild(10),
	}
	_, _, err := solver.NewExhaustiveSolver().SolveAll(context.Background(), g)
	assert.ErrorIs(t, err, solver.ErrTooLarge)
}
