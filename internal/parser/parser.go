// Package parser turns the textual worm-eaten multiplication layout into a
// domain.Grid. The format is one row per line, right-aligned by decimal
// place, digits '0'-'9' for known cells and '*' for hidden ones; horizontal
// rules ("---") and blank lines are ignored. The first row is the
// multiplicand, the second the multiplier, the last the product, and
// everything in between the partial products, least-significant multiplier
// digit first.
package parser

import (
	"fmt"
	"strings"

	"svw.info/mushikui/internal/domain"
	"svw.info/mushikui/internal/validator"
)

// Parse converts text into a validated grid.
func Parse(text string) (*domain.Grid, error) {
	var rows []domain.Row
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		// blank lines and rules of any width ("--", "---", ...) separate rows
		if strings.Trim(line, "-") == "" {
			continue
		}
		row := make(domain.Row, len(line))
		for i := 0; i < len(line); i++ {
			d, err := domain.DigitFromByte(line[i])
			if err != nil {
				return nil, err
			}
			row[i] = d
		}
		rows = append(rows, row)
	}
	if len(rows) < 4 {
		return nil, fmt.Errorf("puzzle needs at least 4 rows, have %d", len(rows))
	}

	g := &domain.Grid{
		Multiplicand: rows[0],
		Multiplier:   rows[1],
		Partials:     rows[2 : len(rows)-1],
		Product:      rows[len(rows)-1],
	}
	if ve := validator.First(g); ve != nil {
		return nil, ve
	}
	return g, nil
}
