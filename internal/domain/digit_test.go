package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitAccepts(t *testing.T) {
	for v := uint8(0); v <= 9; v++ {
		assert.True(t, Wildcard.Accepts(v))
		assert.True(t, Fixed(v).Accepts(v))
		assert.False(t, Fixed(v).Accepts((v+1)%10))
	}
}

func TestDigitValue(t *testing.T) {
	v, ok := Fixed(7).Value()
	assert.True(t, ok)
	assert.Equal(t, uint8(7), v)

	_, ok = Wildcard.Value()
	assert.False(t, ok)
	assert.True(t, Wildcard.IsWildcard())
	assert.False(t, Fixed(0).IsWildcard())
}

func TestDigitFromByte(t *testing.T) {
	d, err := DigitFromByte('4')
	require.NoError(t, err)
	assert.Equal(t, Fixed(4), d)

	d, err = DigitFromByte('*')
	require.NoError(t, err)
	assert.Equal(t, Wildcard, d)

	_, err = DigitFromByte('x')
	assert.Error(t, err)
	_, err = DigitFromByte(' ')
	assert.Error(t, err)
}

func TestRowString(t *testing.T) {
	r := Row{Fixed(1), Wildcard, Fixed(9)}
	assert.Equal(t, "1*9", r.String())
	assert.False(t, r.Resolved())
	assert.True(t, Row{Fixed(0)}.Resolved())
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := &Grid{
		Multiplicand: Row{Fixed(2), Fixed(7)},
		Multiplier:   Row{Wildcard},
		Partials:     []Row{{Wildcard, Wildcard, Fixed(9)}},
		Product:      Row{Wildcard, Wildcard, Fixed(9)},
	}
	c := g.Clone()
	c.Multiplicand[0] = Fixed(9)
	c.Partials[0][0] = Fixed(1)
	c.Product[2] = Wildcard
	assert.Equal(t, Fixed(2), g.Multiplicand[0])
	assert.True(t, g.Partials[0][0].IsWildcard())
	assert.Equal(t, Fixed(9), g.Product[2])
}

func TestGridCellsCoverEverything(t *testing.T) {
	g := &Grid{
		Multiplicand: Row{Fixed(2), Fixed(7)},
		Multiplier:   Row{Wildcard},
		Partials:     []Row{{Wildcard, Wildcard, Fixed(9)}},
		Product:      Row{Wildcard, Wildcard, Fixed(9)},
	}
	cells := g.Cells()
	assert.Len(t, cells, 2+1+3+3)
	for _, c := range cells {
		assert.NotNil(t, g.At(c))
	}
}
