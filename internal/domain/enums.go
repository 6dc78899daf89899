package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Section names one of the four row groups of the grid.
type Section int

const (
	SectionMultiplicand Section = iota
	SectionMultiplier
	SectionPartial
	SectionProduct
)

func (s Section) String() string {
	switch s {
	case SectionMultiplicand:
		return "multiplicand"
	case SectionMultiplier:
		return "multiplier"
	case SectionPartial:
		return "partial"
	default:
		return "product"
	}
}
