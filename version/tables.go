package version

import "github.com/quietzone/qrencode/qrcodeecc"

// eccCodewordsPerBlock[level][version] is the number of error correction
// codewords assigned to each block for that (version, level) pair.
var eccCodewordsPerBlock = [4][41]int8{
	// index 0 is unused padding for version 0.
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},     // L
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // M
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Q
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // H
}

// numErrorCorrectionBlocks[level][version] is the total number of blocks
// (group 1 + group 2) the data codewords are split into; index 0 is unused
// padding for version 0.
var numErrorCorrectionBlocks = [4][41]int8{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // L
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // M
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Q
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // H
}

// alignmentPatternCenters is the Annex E table of alignment-pattern center
// coordinates, verbatim. A computed approximation (e.g. an even-step
// interpolation) produces symbols that fail decoder conformance at specific
// versions, so this table is not derived.
var alignmentPatternCenters = [41][]int{
	nil,     // V0 unused
	nil,     // V1 (no alignment patterns)
	{6, 18}, // V2
	{6, 22}, // V3
	{6, 26}, // V4
	{6, 30}, // V5
	{6, 34}, // V6
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
	{6, 30, 54},
	{6, 32, 58},
	{6, 34, 62},
	{6, 26, 46, 66},
	{6, 26, 48, 70},
	{6, 26, 50, 74},
	{6, 30, 54, 78},
	{6, 30, 56, 82},
	{6, 30, 58, 86},
	{6, 34, 62, 90},
	{6, 28, 50, 72, 94},
	{6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110},
	{6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126},
	{6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150},
	{6, 24, 50, 76, 102, 128, 154},
	{6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166},
	{6, 30, 58, 86, 114, 142, 170},
}

// AlignmentPatternCenters returns the Annex E center coordinates used on
// both axes for alignment patterns at this version, or nil for version 1.
func (v Version) AlignmentPatternCenters() []int {
	return alignmentPatternCenters[v.Value()]
}

func tableGet(table [4][41]int8, v Version, ecl qrcodeecc.Level) int {
	return int(table[ecl.Ordinal()][v.Value()])
}

// Side returns the matrix side length in modules: 17 + 4*version.
func (v Version) Side() int {
	return 17 + 4*int(v.Value())
}

// NumRawDataModules returns the number of bits (data + EC, including
// remainder bits) available in a symbol of this version once all function
// modules are excluded. The result is in [208, 29648].
func (v Version) NumRawDataModules() int {
	ver := int(v.Value())
	result := (16*ver+128)*ver + 64
	if ver >= 2 {
		numAlign := ver/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if ver >= 7 {
			result -= 36
		}
	}
	if result < 208 || result > 29648 {
		panic("version: computed raw data module count out of range")
	}
	return result
}

// RemainderBits is the number of zero-padding bits appended after
// interleaving, so that the data stream length is a whole number of bytes
// plus this remainder. It is always in {0, 3, 4, 7}.
func (v Version) RemainderBits() int {
	return v.NumRawDataModules() % 8
}

// ECCodewordsPerBlock returns the number of EC codewords assigned to each
// block for (version, level).
func (v Version) ECCodewordsPerBlock(ecl qrcodeecc.Level) int {
	return tableGet(eccCodewordsPerBlock, v, ecl)
}

// NumErrorCorrectionBlocks returns the total block count (group 1 + group 2)
// for (version, level).
func (v Version) NumErrorCorrectionBlocks(ecl qrcodeecc.Level) int {
	return tableGet(numErrorCorrectionBlocks, v, ecl)
}

// NumDataCodewords returns the number of 8-bit data codewords (i.e. not EC)
// held by a symbol of this version and level, remainder bits discarded.
func (v Version) NumDataCodewords(ecl qrcodeecc.Level) int {
	return v.NumRawDataModules()/8 - v.ECCodewordsPerBlock(ecl)*v.NumErrorCorrectionBlocks(ecl)
}

// BlockLayout describes how data codewords of a (version, level) pair are
// split into two groups of blocks: group 1 has Group1Count blocks of
// Group1Size codewords each, group 2 has Group2Count blocks of
// Group1Size+1 codewords each (Group2Count may be zero).
type BlockLayout struct {
	Group1Count, Group1Size int
	Group2Count, Group2Size int
	ECCodewordsPerBlock     int
}

// Layout computes the block layout for (version, level), matching §4.4:
// the total codewords are split so that every block yields exactly
// ECCodewordsPerBlock EC bytes and short blocks (group 1) are one data
// codeword smaller than long blocks (group 2).
func (v Version) Layout(ecl qrcodeecc.Level) BlockLayout {
	numBlocks := v.NumErrorCorrectionBlocks(ecl)
	ecPerBlock := v.ECCodewordsPerBlock(ecl)
	rawCodewords := v.NumRawDataModules() / 8
	numShortBlocks := numBlocks - (rawCodewords % numBlocks)
	shortBlockLen := rawCodewords / numBlocks
	shortDataLen := shortBlockLen - ecPerBlock

	layout := BlockLayout{
		Group1Count:         numShortBlocks,
		Group1Size:          shortDataLen,
		ECCodewordsPerBlock: ecPerBlock,
	}
	if numBlocks > numShortBlocks {
		layout.Group2Count = numBlocks - numShortBlocks
		layout.Group2Size = shortDataLen + 1
	}
	return layout
}
