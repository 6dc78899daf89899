package domain

// Grid holds the four rows of a worm-eaten long multiplication. Partial row
// j corresponds to the multiplier digit j positions from the
// least-significant end and is conceptually shifted left by j places.
type Grid struct {
	Multiplicand Row   `json:"multiplicand"`
	Multiplier   Row   `json:"multiplier"`
	Partials     []Row `json:"partials"`
	Product      Row   `json:"product"`
}

// Clone returns a deep copy that later search mutations cannot touch.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Multiplicand: g.Multiplicand.Clone(),
		Multiplier:   g.Multiplier.Clone(),
		Partials:     make([]Row, len(g.Partials)),
		Product:      g.Product.Clone(),
	}
	for i, p := range g.Partials {
		out.Partials[i] = p.Clone()
	}
	return out
}

// Resolved reports whether every cell of every row is concrete.
func (g *Grid) Resolved() bool {
	if !g.Multiplicand.Resolved() || !g.Multiplier.Resolved() || !g.Product.Resolved() {
		return false
	}
	for _, p := range g.Partials {
		if !p.Resolved() {
			return false
		}
	}
	return true
}

// CellRef identifies a cell on the grid. Row is the partial-product index
// and is meaningful only for SectionPartial.
type CellRef struct {
	Section Section `json:"section"`
	Row     int     `json:"row,omitempty"`
	Col     int     `json:"col"`
}

// At returns a pointer to the referenced cell. The reference must be in
// range; callers obtain valid ones from Cells.
func (g *Grid) At(c CellRef) *Digit {
	switch c.Section {
	case SectionMultiplicand:
		return &g.Multiplicand[c.Col]
	case SectionMultiplier:
		return &g.Multiplier[c.Col]
	case SectionPartial:
		return &g.Partials[c.Row][c.Col]
	default:
		return &g.Product[c.Col]
	}
}

// Cells enumerates every cell reference in row order: multiplicand,
// multiplier, partial rows, product.
func (g *Grid) Cells() []CellRef {
	n := len(g.Multiplicand) + len(g.Multiplier) + len(g.Product)
	for _, p := range g.Partials {
		n += len(p)
	}
	out := make([]CellRef, 0, n)
	for i := range g.Multiplicand {
		out = append(out, CellRef{Section: SectionMultiplicand, Col: i})
	}
	for i := range g.Multiplier {
		out = append(out, CellRef{Section: SectionMultiplier, Col: i})
	}
	for j, p := range g.Partials {
		for i := range p {
			out = append(out, CellRef{Section: SectionPartial, Row: j, Col: i})
		}
	}
	for i := range g.Product {
		out = append(out, CellRef{Section: SectionProduct, Col: i})
	}
	return out
}

// Hint describes a deduced cell for the UI.
type Hint struct {
	Message string  `json:"message,omitempty"`
	Cell    CellRef `json:"cell"`
	Value   uint8   `json:"value"`
}

// Puzzle is a persisted mushikui with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Grid       Grid       `json:"grid"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
