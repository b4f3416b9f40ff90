package qrencode

import (
	"github.com/quietzone/qrencode/internal/bitx"
	"github.com/quietzone/qrencode/mask"
)

// drawFunctionPatterns paints and reserves every function module: timing
// patterns, the three finder patterns, alignment patterns, placeholder
// format info strips (overwritten later with real bits once the mask is
// known) and, for v>=7, the final version info strips, per section 4.6.
func (q *QrCode) drawFunctionPatterns() {
	size := q.size

	// Timing patterns: row 6 and column 6, alternating dark/light.
	for i := 0; i < size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	// Finder patterns at three corners (not bottom-right), with their
	// one-module separator included in the same 9x9 paint.
	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(size-4, 3)
	q.drawFinderPattern(3, size-4)

	// Alignment patterns, skipping the three corners shared with finders.
	centers := q.version.AlignmentPatternCenters()
	n := len(centers)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			corner := (i == 0 && j == 0) || (i == 0 && j == n-1) || (i == n-1 && j == 0)
			if !corner {
				q.drawAlignmentPattern(centers[i], centers[j])
			}
		}
	}

	// Dummy format bits (mask 0); real bits written after the mask is chosen.
	q.drawFormatBits(mask.New(0))
	q.drawVersionInfo()
}

// drawFinderPattern paints a 9x9 finder pattern (7x7 concentric square plus
// its light separator ring) centered at (row, col). Column/row coordinates
// outside the matrix are silently skipped so corner patterns near the edge
// don't need special-casing.
func (q *QrCode) drawFinderPattern(row, col int) {
	for dr := -4; dr <= 4; dr++ {
		for dc := -4; dc <= 4; dc++ {
			r, c := row+dr, col+dc
			if r < 0 || r >= q.size || c < 0 || c >= q.size {
				continue
			}
			dist := maxInt(absInt(dr), absInt(dc))
			q.setFunctionModule(r, c, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern paints a 5x5 concentric alignment pattern centered
// at (row, col). All coordinates must be in bounds.
func (q *QrCode) drawAlignmentPattern(row, col int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			q.setFunctionModule(row+dr, col+dc, maxInt(absInt(dr), absInt(dc)) != 1)
		}
	}
}

// setFunctionModule sets a module's color and marks it as a function
// module, so masking and data placement never touch it again.
func (q *QrCode) setFunctionModule(row, col int, dark bool) {
	q.setModule(row, col, dark)
	q.isFunction[row*q.size+col] = true
}

// drawFormatBits computes the 15-bit BCH(15,5)-encoded format info for the
// given mask and this symbol's error correction level, and writes both
// copies into their reserved strips, per section 4.9.
func (q *QrCode) drawFormatBits(m mask.Pattern) {
	data := uint32(q.ecLevel.FormatBits())<<3 | uint32(m.Value())
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	bits := (data<<10 | rem) ^ 0x5412

	// First copy: around the top-left finder pattern.
	for i := 0; i < 6; i++ {
		q.setFunctionModule(i, 8, bitx.GetBit(bits, int32(i)))
	}
	q.setFunctionModule(7, 8, bitx.GetBit(bits, 6))
	q.setFunctionModule(8, 8, bitx.GetBit(bits, 7))
	q.setFunctionModule(8, 7, bitx.GetBit(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(8, 14-i, bitx.GetBit(bits, int32(i)))
	}

	// Second copy: along the bottom and right edges.
	size := q.size
	for i := 0; i < 8; i++ {
		q.setFunctionModule(8, size-1-i, bitx.GetBit(bits, int32(i)))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(size-15+i, 8, bitx.GetBit(bits, int32(i)))
	}
	q.setFunctionModule(size-8, 8, true) // dark module, always set
}

// drawVersionInfo computes the 18-bit BCH(18,6)-encoded version info (for
// v>=7 only) and writes both copies into their reserved 3x6 strips.
func (q *QrCode) drawVersionInfo() {
	if q.version.Value() < 7 {
		return
	}

	data := uint32(q.version.Value())
	rem := data
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	bits := data<<12 | rem

	for i := 0; i < 18; i++ {
		bit := bitx.GetBit(bits, int32(i))
		a := q.size - 11 + i%3
		b := i / 3
		q.setFunctionModule(b, a, bit)
		q.setFunctionModule(a, b, bit)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
