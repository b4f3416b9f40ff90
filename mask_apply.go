package qrencode

import (
	"github.com/quietzone/qrencode/mask"
)

// Penalty weights for the four scoring rules of section 4.8.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// applyMask XORs every non-function module with the given mask pattern's
// condition. Applying the same mask twice is a no-op (XOR is its own
// inverse), which the automatic mask-selection loop relies on to undo a
// trial mask before scoring the next one.
func (q *QrCode) applyMask(m mask.Pattern) {
	for row := 0; row < q.size; row++ {
		for col := 0; col < q.size; col++ {
			idx := row*q.size + col
			// Invert takes (x, y): x is the column, y is the row, matching
			// the asymmetric formulas (patterns 1, 2 and 4 differ under a
			// row/column swap).
			invert := m.Invert(col, row) && !q.isFunction[idx]
			q.modules[idx] = q.modules[idx] != invert
		}
	}
}

// penaltyScore computes the total penalty (N1+N2+N3+N4) of this symbol's
// current module state, used to pick the mask with the lowest score.
func (q *QrCode) penaltyScore() int {
	var result int
	size := q.size

	// N1 + N3: runs of same-colored modules and finder-like patterns, by row.
	for row := 0; row < size; row++ {
		var runColor bool
		var runLen int
		fp := newFinderPenalty(size)
		for col := 0; col < size; col++ {
			if q.module(row, col) == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				fp.addHistory(runLen)
				if !runColor {
					result += fp.countPatterns() * penaltyN3
				}
				runColor = q.module(row, col)
				runLen = 1
			}
		}
		result += fp.terminateAndCount(runColor, runLen) * penaltyN3
	}

	// N1 + N3: by column.
	for col := 0; col < size; col++ {
		var runColor bool
		var runLen int
		fp := newFinderPenalty(size)
		for row := 0; row < size; row++ {
			if q.module(row, col) == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				fp.addHistory(runLen)
				if !runColor {
					result += fp.countPatterns() * penaltyN3
				}
				runColor = q.module(row, col)
				runLen = 1
			}
		}
		result += fp.terminateAndCount(runColor, runLen) * penaltyN3
	}

	// N2: 2x2 blocks of uniform color.
	for row := 0; row < size-1; row++ {
		for col := 0; col < size-1; col++ {
			c := q.module(row, col)
			if c == q.module(row, col+1) && c == q.module(row+1, col) && c == q.module(row+1, col+1) {
				result += penaltyN2
			}
		}
	}

	// N4: balance of dark vs light modules. k = floor(|P-50|/5), score = 10*k.
	var dark int
	for _, m := range q.modules {
		if m {
			dark++
		}
	}
	total := size * size
	percentDark := dark * 100 / total
	diff := absInt(percentDark - 50)
	k := diff / 5
	result += k * penaltyN4

	return result
}

// finderPenalty tracks the last seven run lengths of a row or column to
// detect the 1:1:3:1:1 finder-like pattern required by the N3 rule.
type finderPenalty struct {
	size    int
	history [7]int
}

func newFinderPenalty(size int) *finderPenalty {
	return &finderPenalty{size: size}
}

// addHistory pushes a new run length onto the front of the history,
// dropping the oldest. The very first run recorded gets the light quiet
// zone folded in, since no border run precedes it.
func (p *finderPenalty) addHistory(runLen int) {
	if p.history[0] == 0 {
		runLen += p.size
	}
	copy(p.history[1:], p.history[:len(p.history)-1])
	p.history[0] = runLen
}

// countPatterns must only be called right after a light run is recorded,
// and returns how many of the two finder-like windows (ending or starting
// at the current position) match dark:light:dark:light:dark 1:1:3:1:1,
// with a light run of at least four units on one side.
func (p *finderPenalty) countPatterns() int {
	h := p.history
	n := h[1]
	core := n > 0 && h[2] == n && h[3] == n*3 && h[4] == n && h[5] == n
	count := 0
	if core && h[0] >= n*4 && h[6] >= n {
		count++
	}
	if core && h[6] >= n*4 && h[0] >= n {
		count++
	}
	return count
}

// terminateAndCount must be called once at the end of each row or column,
// folding in the final run (plus the light quiet zone beyond the edge) and
// returning the resulting pattern count.
func (p *finderPenalty) terminateAndCount(runColor bool, runLen int) int {
	if runColor {
		p.addHistory(runLen)
		runLen = 0
	}
	runLen += p.size
	p.addHistory(runLen)
	return p.countPatterns()
}
