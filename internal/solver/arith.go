package solver

import "svw.info/mushikui/internal/domain"

// PartialProduct multiplies the resolved low-order suffix of the
// multiplicand by the concrete digit d (1-9) and returns the result digits
// most-significant first. While the multiplicand is only partially resolved
// the result is a suffix, meant to be matched against the right edge of the
// partial-product row; the leading carry digit is appended only once every
// multiplicand digit is known.
func PartialProduct(multiplicand domain.Row, d uint8) []uint8 {
	resolved := make([]uint8, 0, len(multiplicand))
	for i := len(multiplicand) - 1; i >= 0; i-- {
		v, ok := multiplicand[i].Value()
		if !ok {
			break
		}
		resolved = append(resolved, v)
	}
	out := make([]uint8, 0, len(resolved)+1)
	carry := uint8(0)
	for _, m := range resolved {
		e := m*d + carry // at most 9*9+9 = 90
		out = append(out, e%10)
		carry = e / 10
	}
	if carry > 0 && len(resolved) == len(multiplicand) {
		out = append(out, carry)
	}
	reverse(out)
	return out
}

// Product column-sums the partial rows with carry propagation, row j
// shifted left by j decimal places, and returns the digits most-significant
// first. Unresolved cells contribute 0; by the time the search calls this
// every row is fully resolved.
func Product(partials []domain.Row) []uint8 {
	if len(partials) == 0 {
		return nil
	}
	last := partials[len(partials)-1]
	columns := len(last) + len(partials) - 1
	out := make([]uint8, 0, columns+1)
	carry := 0
	for k := 0; k < columns; k++ {
		sum := carry
		for j, row := range partials {
			if k >= j && k-j < len(row) {
				if v, ok := row[len(row)-(k-j)-1].Value(); ok {
					sum += int(v)
				}
			}
		}
		out = append(out, uint8(sum%10))
		carry = sum / 10
	}
	for carry > 0 {
		out = append(out, uint8(carry%10))
		carry /= 10
	}
	reverse(out)
	return out
}

func reverse(s []uint8) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// acceptsSuffix reports whether digits match the right edge of row
// cell-by-cell. digits must not be longer than the row.
func acceptsSuffix(row domain.Row, digits []uint8) bool {
	if len(digits) > len(row) {
		return false
	}
	for k := 0; k < len(digits); k++ {
		if !row[len(row)-k-1].Accepts(digits[len(digits)-k-1]) {
			return false
		}
	}
	return true
}
