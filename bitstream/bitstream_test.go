package bitstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/quietzone/qrencode/bitstream"
)

func TestAppendBitsBigEndianPacking(t *testing.T) {
	var b bitstream.BitStream
	b.AppendBits(0x1, 4)  // 0001
	b.AppendBits(0x2, 4)  // 0010
	assert.Equal(t, 8, b.Len())
	assert.Equal(t, []byte{0x12}, b.Bytes())
	assert.Equal(t, "12", b.Hex())
}

func TestBytesLengthIsCeilDiv8AndTrailingBitsZero(t *testing.T) {
	var b bitstream.BitStream
	b.AppendBits(0b101, 3)
	assert.Equal(t, 3, b.Len())
	bytes := b.Bytes()
	assert.Len(t, bytes, 1)
	assert.Equal(t, byte(0b10100000), bytes[0])
}

func TestBitIndexedRead(t *testing.T) {
	var b bitstream.BitStream
	b.AppendBits(0b1011, 4)
	assert.True(t, b.Bit(0))
	assert.False(t, b.Bit(1))
	assert.True(t, b.Bit(2))
	assert.True(t, b.Bit(3))
	assert.Panics(t, func() { b.Bit(4) })
	assert.Panics(t, func() { b.Bit(-1) })
}

func TestByteLengthInvariantProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 64).Draw(t, "n")
		var b bitstream.BitStream
		for i := 0; i < n; i++ {
			b.AppendBool(rapid.Bool().Draw(t, "bit"))
		}
		assert.Equal(t, (n+7)/8, len(b.Bytes()))
		assert.Equal(t, n, b.Len())
	})
}
