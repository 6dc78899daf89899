// Package render prints a grid back into the aligned long-multiplication
// layout the parser reads.
package render

import (
	"strings"

	"svw.info/mushikui/internal/domain"
)

// Text renders the grid right-aligned to the product width, with horizontal
// rules between the factor rows, the partial products, and the product.
// Partial row j is shifted left by j places. No trailing newline.
func Text(g *domain.Grid) string {
	width := len(g.Product)
	rule := strings.Repeat("-", width)

	var b strings.Builder
	writeRight(&b, g.Multiplicand.String(), width)
	b.WriteByte('\n')
	writeRight(&b, g.Multiplier.String(), width)
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')
	for j, p := range g.Partials {
		writeRight(&b, p.String(), width-j)
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	b.WriteByte('\n')
	writeRight(&b, g.Product.String(), width)
	return b.String()
}

func writeRight(b *strings.Builder, s string, width int) {
	for i := len(s); i < width; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}
