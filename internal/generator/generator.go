package generator

import (
	"svw.info/mushikui/internal/ports"
)

// UniqueGenerator builds a fully concrete random multiplication and then
// carves cells into wildcards for as long as the solver still reports a
// unique solution.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
