package qrencode

import (
	"github.com/quietzone/qrencode/gf256"
	"github.com/quietzone/qrencode/internal/bitx"
)

// addECCAndInterleave splits data into the blocks prescribed by the
// version/level block layout, computes each block's Reed-Solomon error
// correction codewords, and interleaves data then EC bytes column-major,
// per sections 4.4 and 4.5.
func (q *QrCode) addECCAndInterleave(data []byte) []byte {
	layout := q.version.Layout(q.ecLevel)
	divisor := gf256.ComputeDivisor(layout.ECCodewordsPerBlock)

	numBlocks := layout.Group1Count + layout.Group2Count
	blocks := make([][]byte, 0, numBlocks)

	k := 0
	for i := 0; i < layout.Group1Count; i++ {
		dat := append([]byte{}, data[k:k+layout.Group1Size]...)
		k += layout.Group1Size
		ecc := gf256.ComputeRemainder(dat, divisor)
		blocks = append(blocks, append(dat, ecc...))
	}
	for i := 0; i < layout.Group2Count; i++ {
		dat := append([]byte{}, data[k:k+layout.Group2Size]...)
		k += layout.Group2Size
		ecc := gf256.ComputeRemainder(dat, divisor)
		blocks = append(blocks, append(dat, ecc...))
	}

	rawCodewords := q.version.NumRawDataModules() / 8
	result := make([]byte, 0, rawCodewords)

	maxDataLen := layout.Group1Size
	if layout.Group2Size > maxDataLen {
		maxDataLen = layout.Group2Size
	}
	for i := 0; i < maxDataLen; i++ {
		for _, block := range blocks {
			dataLen := len(block) - layout.ECCodewordsPerBlock
			if i < dataLen {
				result = append(result, block[i])
			}
		}
	}
	for i := 0; i < layout.ECCodewordsPerBlock; i++ {
		for _, block := range blocks {
			dataLen := len(block) - layout.ECCodewordsPerBlock
			result = append(result, block[dataLen+i])
		}
	}

	return result
}

// drawCodewords paints the interleaved data+EC codewords onto every
// non-function module in the zig-zag traversal of section 4.7: two-column
// stripes from the right edge leftward, skipping the timing column at 6,
// alternating direction each stripe, right module then left module within
// a row. Remainder bits (already zero from allocation) are left untouched.
func (q *QrCode) drawCodewords(data []byte) {
	var i int
	rightCol := q.size - 1
	for rightCol >= 1 {
		if rightCol == 6 {
			rightCol = 5
		}
		for vert := 0; vert < q.size; vert++ {
			for j := 0; j < 2; j++ {
				col := rightCol - j
				upward := (rightCol+1)/2%2 == 0
				var row int
				if upward {
					row = q.size - 1 - vert
				} else {
					row = vert
				}
				if !q.isFunction[row*q.size+col] && i < len(data)*8 {
					bit := bitx.GetBit(uint32(data[i>>3]), int32(7-(i&7)))
					q.setModule(row, col, bit)
					i++
				}
			}
		}
		rightCol -= 2
	}
}
