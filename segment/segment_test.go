package segment_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/quietzone/qrencode/qrcodeecc"
	"github.com/quietzone/qrencode/segment"
	"github.com/quietzone/qrencode/version"
)

func TestIsNumericAndIsAlphanumeric(t *testing.T) {
	assert.True(t, segment.IsNumeric([]byte("0123456789")))
	assert.False(t, segment.IsNumeric([]byte("01234X")))
	assert.True(t, segment.IsAlphanumeric([]byte("HELLO WORLD")))
	assert.False(t, segment.IsAlphanumeric([]byte("hello")))
}

func TestMakeNumericGroupsOfThree(t *testing.T) {
	seg := segment.MakeNumeric([]byte("01234567"))
	require.Equal(t, 8, seg.NumChars())
	assert.Equal(t, 27, seg.Data().Len())
	assert.Equal(t, "03159860", seg.Data().Hex())
}

func TestMakeAlphanumericPairs(t *testing.T) {
	seg := segment.MakeAlphanumeric([]byte("HELLO WORLD"))
	assert.Equal(t, segment.Alphanumeric, seg.Mode())
	assert.Equal(t, 11, seg.NumChars())
}

func TestMakeBytesRejectsNonASCII(t *testing.T) {
	_, err := segment.MakeBytes([]byte{0x48, 0x80, 0x69})
	require.Error(t, err)
	assert.True(t, errors.Is(err, segment.ErrUnsupportedCharacter))
}

func TestMakeBytesAcceptsASCII(t *testing.T) {
	seg, err := segment.MakeBytes([]byte("Hi"))
	require.NoError(t, err)
	assert.Equal(t, "4869", seg.Data().Hex())
}

func TestAnalyzeAndSelectChoosesVersion1ForHelloWorldAtQ(t *testing.T) {
	seg, ver, err := segment.AnalyzeAndSelect([]byte("HELLO WORLD"), qrcodeecc.Quartile)
	require.NoError(t, err)
	assert.Equal(t, version.New(1), ver)
	assert.Equal(t, segment.Alphanumeric, seg.Mode())
}

func TestAnalyzeAndSelectChoosesVersion1ForNumericAtM(t *testing.T) {
	seg, ver, err := segment.AnalyzeAndSelect([]byte("01234567"), qrcodeecc.Medium)
	require.NoError(t, err)
	assert.Equal(t, version.New(1), ver)
	assert.Equal(t, segment.Numeric, seg.Mode())
}

func TestAnalyzeAndSelectChoosesVersion1ForByteAtL(t *testing.T) {
	seg, ver, err := segment.AnalyzeAndSelect([]byte("Hi"), qrcodeecc.Low)
	require.NoError(t, err)
	assert.Equal(t, version.New(1), ver)
	assert.Equal(t, segment.Byte, seg.Mode())
}

func TestAnalyzeAndSelectTooLargePayload(t *testing.T) {
	huge := make([]byte, 1<<20)
	for i := range huge {
		huge[i] = 'A'
	}
	_, _, err := segment.AnalyzeAndSelect(huge, qrcodeecc.High)
	assert.True(t, errors.Is(err, segment.ErrPayloadTooLarge))
}

func TestAnalyzeAndSelectPropagatesUnsupportedCharacter(t *testing.T) {
	huge := make([]byte, 1)
	huge[0] = 0xFF
	_, _, err := segment.AnalyzeAndSelect(huge, qrcodeecc.Low)
	assert.True(t, errors.Is(err, segment.ErrUnsupportedCharacter))
}

func TestNumericSegmentBitLengthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 50).Draw(t, "n")
		digits := make([]byte, n)
		for i := range digits {
			digits[i] = byte('0' + rapid.IntRange(0, 9).Draw(t, "digit"))
		}
		seg := segment.MakeNumeric(digits)
		tail := map[int]int{0: 0, 1: 4, 2: 7}[n%3]
		assert.Equal(t, 10*(n/3)+tail, seg.Data().Len())
	})
}
