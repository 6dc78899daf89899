package hint

import (
	"context"
	"fmt"

	"svw.info/mushikui/internal/domain"
	"svw.info/mushikui/internal/ports"
)

// DefaultLimit bounds how many solutions the hinter enumerates before
// deciding. Underconstrained grids can have enormous solution counts; a
// hint drawn from the first few is still a valid deduction whenever the cap
// is not reached, and a best-effort one otherwise.
const DefaultLimit = 64

// Forced implements a Hinter that reports the first hidden cell holding the
// same digit in every enumerated solution of the grid.
type Forced struct {
	Solver ports.Solver
	Limit  int // maximum solutions to enumerate; <= 0 falls back to DefaultLimit
}

func NewForced(s ports.Solver) *Forced { return &Forced{Solver: s, Limit: DefaultLimit} }

// Hint enumerates up to Limit solutions and scans the wildcard cells in row
// order. No hint is found when the grid has no solution, or when every
// hidden cell is still ambiguous.
func (h *Forced) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	limit := h.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	sols, _, err := h.Solver.SolveUpTo(ctx, g, limit)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(sols) == 0 {
		return domain.Hint{}, false, nil
	}
	for _, c := range g.Cells() {
		if !g.At(c).IsWildcard() {
			continue
		}
		v, _ := sols[0].At(c).Value()
		forced := true
		for _, s := range sols[1:] {
			if w, _ := s.At(c).Value(); w != v {
				forced = false
				break
			}
		}
		if forced {
			msg := fmt.Sprintf("Forced: the %s cell at column %d must be %d", c.Section, c.Col, v)
			return domain.Hint{Message: msg, Cell: c, Value: v}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
