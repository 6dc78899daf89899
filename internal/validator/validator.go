package validator

import (
	"context"
	"fmt"

	"svw.info/mushikui/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate re-asserts the structural invariants of a grid and reports every
// violation. It never inspects wildcard cells beyond leading positions;
// arithmetic consistency is the solver's business.
func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.ValidationError, error) {
	issues := Structural(g)
	return len(issues) == 0, issues, nil
}

// Structural returns every construction-time invariant violated by g.
func Structural(g *domain.Grid) []domain.ValidationError {
	var issues []domain.ValidationError
	bad := func(field, format string, args ...any) {
		issues = append(issues, domain.ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	l1, l2 := len(g.Multiplicand), len(g.Multiplier)
	if l1 == 0 {
		bad("multiplicand", "must not be empty")
	}
	if l2 == 0 {
		bad("multiplier", "must not be empty")
	}
	if l1 == 0 || l2 == 0 {
		return issues
	}
	if l2 > l1 {
		bad("multiplier", "longer than multiplicand (%d > %d)", l2, l1)
	}
	if len(g.Partials) != l2 {
		bad("partials", "want %d rows, have %d", l2, len(g.Partials))
	}
	for j, p := range g.Partials {
		if len(p) < l1 || len(p) > l1+1 {
			bad("partials", "row %d has length %d, want %d or %d", j, len(p), l1, l1+1)
		}
	}
	if len(g.Product) < l1+l2-1 || len(g.Product) > l1+l2 {
		bad("product", "length %d, want %d or %d", len(g.Product), l1+l2-1, l1+l2)
	}

	leadingZero := func(field string, j int, r domain.Row) {
		if len(r) == 0 {
			return
		}
		if v, ok := r[0].Value(); ok && v == 0 {
			if field == "partials" {
				bad(field, "row %d has a leading zero", j)
			} else {
				bad(field, "leading digit is zero")
			}
		}
	}
	leadingZero("multiplicand", 0, g.Multiplicand)
	leadingZero("multiplier", 0, g.Multiplier)
	for j, p := range g.Partials {
		leadingZero("partials", j, p)
	}
	leadingZero("product", 0, g.Product)
	return issues
}

// First returns the first structural violation, or nil for a valid grid.
// The solvers call it defensively before searching.
func First(g *domain.Grid) *domain.ValidationError {
	if issues := Structural(g); len(issues) > 0 {
		return &issues[0]
	}
	return nil
}
