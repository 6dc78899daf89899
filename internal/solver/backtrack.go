package solver

import (
	"context"

	"svw.info/mushikui/internal/domain"
)

// BacktrackingSolver enumerates solutions by assigning digits from the
// least-significant end: multiplicand digits in the outer phase, multiplier
// digits in the inner one. After every multiplicand commitment a speculative
// multiplier pass checks the committed suffix against the known
// partial-product cells, so incompatible leading digits are pruned long
// before the multiplicand is complete.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// search owns the working grid for one enumeration. Every tentative
// mutation is undone on backtrack; accepted leaves are cloned out, so the
// collected solutions are independent of further search.
type search struct {
	ctx   context.Context
	g     *domain.Grid
	limit int // stop after this many solutions; 0 enumerates all
	out   []*domain.Grid
	nodes int
}

// stop reports whether enumeration should unwind early.
func (s *search) stop() bool {
	return s.ctx.Err() != nil || (s.limit > 0 && len(s.out) >= s.limit)
}

// multiplicand assigns the digit i positions from the least-significant end.
// Returns true when the enumeration is to be abandoned entirely.
func (s *search) multiplicand(i int) bool {
	if s.stop() {
		return true
	}
	n := len(s.g.Multiplicand)
	if i == n {
		return s.multiplier(i, 0, true)
	}
	for d := uint8(0); d <= 9; d++ {
		if d == 0 && i == n-1 {
			continue // leading digit
		}
		old := s.g.Multiplicand[n-i-1]
		if !old.Accepts(d) {
			continue
		}
		s.nodes++
		s.g.Multiplicand[n-i-1] = domain.Fixed(d)
		stopped := s.multiplier(i, 0, false)
		s.g.Multiplicand[n-i-1] = old
		if stopped {
			return true
		}
	}
	return false
}

// multiplier assigns the multiplier digit j positions from the
// least-significant end, with i multiplicand digits resolved so far plus the
// one under trial. A non-final pass only prunes: it commits nothing past its
// own frame and hands control back to the multiplicand phase on success.
func (s *search) multiplier(i, j int, final bool) bool {
	if s.stop() {
		return true
	}
	m := len(s.g.Multiplier)
	if j == m {
		if final {
			return s.leaf()
		}
		return s.multiplicand(i + 1)
	}

	if !final {
		// Without a known cell at the newly determined place there is
		// nothing to prune against; skip ahead.
		part := s.g.Partials[j]
		if part[len(part)-i-1].IsWildcard() {
			return s.multiplier(i, j+1, final)
		}
	}

	for d := uint8(1); d <= 9; d++ {
		old := s.g.Multiplier[m-j-1]
		if !old.Accepts(d) {
			continue
		}
		s.nodes++
		row := s.g.Partials[j]
		got := PartialProduct(s.g.Multiplicand, d)
		if len(got) > len(row) || !acceptsSuffix(row, got) {
			continue
		}
		saved := row.Clone()
		s.g.Multiplier[m-j-1] = domain.Fixed(d)
		for k := 0; k < len(got); k++ {
			row[len(row)-k-1] = domain.Fixed(got[len(got)-k-1])
		}
		stopped := s.multiplier(i, j+1, final)
		s.g.Multiplier[m-j-1] = old
		copy(row, saved)
		if stopped {
			return true
		}
	}
	return false
}

// leaf runs once every factor digit is concrete: recompute each partial row
// in full, recompute the product, and record a clone when both match the
// grid's constraints at exact length.
func (s *search) leaf() bool {
	g := s.g
	saved := make([]domain.Row, len(g.Partials))
	copy(saved, g.Partials)

	ok := true
	for j := range g.Partials {
		d, _ := g.Multiplier[len(g.Multiplier)-j-1].Value()
		digits := PartialProduct(g.Multiplicand, d)
		if len(digits) != len(g.Partials[j]) || !acceptsSuffix(g.Partials[j], digits) {
			ok = false
			break
		}
		g.Partials[j] = domain.FixedRow(digits)
	}
	if ok {
		digits := Product(g.Partials)
		if len(digits) == len(g.Product) && acceptsSuffix(g.Product, digits) {
			savedProduct := g.Product
			g.Product = domain.FixedRow(digits)
			s.out = append(s.out, g.Clone())
			g.Product = savedProduct
		}
	}
	copy(g.Partials, saved)
	return s.stop()
}
