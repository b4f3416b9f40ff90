// Package mask implements the eight data masking patterns a QR Code symbol
// may be drawn with, selected per section 4.8 to minimize the module
// penalty score.
package mask

// Pattern is a mask pattern number between 0 and 7 (inclusive).
type Pattern uint8

// New creates a mask pattern from the given number.
//
// Panics if the number is outside the range [0, 7].
func New(pattern uint8) Pattern {
	if pattern > 7 {
		panic("mask: pattern value out of range")
	}
	return Pattern(pattern)
}

// Value returns the value, which is in the range [0, 7].
func (p Pattern) Value() uint8 {
	return uint8(p)
}

// Invert reports whether the module at column x, row y should be flipped
// under this mask pattern, following the eight formulas of Table 10. The
// formulas are not symmetric in x and y, so callers must pass column
// before row.
func (p Pattern) Invert(x, y int) bool {
	switch p {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("mask: unknown pattern")
	}
}
