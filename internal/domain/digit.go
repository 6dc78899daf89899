package domain

import "fmt"

// Digit is a single decimal cell: a concrete value 0-9 or a wildcard
// standing for any digit not yet deduced.
type Digit int8

// Wildcard accepts every candidate digit.
const Wildcard Digit = -1

// WildcardChar is the textual form of an unknown cell.
const WildcardChar = '*'

// Fixed returns the digit holding exactly v.
func Fixed(v uint8) Digit { return Digit(v) }

// IsWildcard reports whether the cell is still unknown.
func (d Digit) IsWildcard() bool { return d < 0 }

// Value returns the concrete value and true, or 0 and false for a wildcard.
func (d Digit) Value() (uint8, bool) {
	if d < 0 {
		return 0, false
	}
	return uint8(d), true
}

// Accepts reports whether candidate v is compatible with this cell.
func (d Digit) Accepts(v uint8) bool { return d < 0 || uint8(d) == v }

func (d Digit) String() string {
	if d < 0 {
		return string(WildcardChar)
	}
	return string(rune('0' + d))
}

// DigitFromByte parses one puzzle character: '0'-'9' or the wildcard.
func DigitFromByte(ch byte) (Digit, error) {
	switch {
	case ch >= '0' && ch <= '9':
		return Fixed(ch - '0'), nil
	case ch == WildcardChar:
		return Wildcard, nil
	default:
		return 0, fmt.Errorf("invalid puzzle character %q", ch)
	}
}

// Row is one line of the multiplication, most-significant digit first.
type Row []Digit

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Resolved reports whether every cell is concrete.
func (r Row) Resolved() bool {
	for _, d := range r {
		if d.IsWildcard() {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	b := make([]byte, len(r))
	for i, d := range r {
		if v, ok := d.Value(); ok {
			b[i] = '0' + v
		} else {
			b[i] = WildcardChar
		}
	}
	return string(b)
}

// FixedRow converts concrete digits (most-significant first) into a row.
func FixedRow(digits []uint8) Row {
	out := make(Row, len(digits))
	for i, v := range digits {
		out[i] = Fixed(v)
	}
	return out
}
