// Package bitstream implements the append-only bit buffer used to build
// QR Code segment and codeword data before it is packed into bytes.
package bitstream

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/quietzone/qrencode/internal/bitx"
)

// ErrIndexOutOfBounds marks an internal consistency failure: a read past
// the stream's current length. This should be unreachable given valid QR
// encoding logic, so callers panic rather than propagate it.
var ErrIndexOutOfBounds = errors.New("bitstream: index out of bounds")

// BitStream is an appendable sequence of bits (0s and 1s).
//
// The first bit ever appended occupies bit 7 of byte 0 once the stream is
// viewed through Bytes; trailing bits in the last byte past Len are zero.
type BitStream []bool

// AppendBits appends the given number of low-order bits of val to the
// stream, most significant bit first.
//
// Requires length <= 31 and val < 2^length.
func (b *BitStream) AppendBits(val uint32, length uint8) {
	if length > 31 || (val>>length) != 0 {
		panic("bitstream: value out of range for bit length")
	}
	if length == 0 {
		return
	}

	tmp := make([]bool, length)
	for i := int32(length - 1); i >= 0; i-- {
		tmp[int32(length-1)-i] = bitx.GetBit(val, i)
	}
	*b = append(*b, tmp...)
}

// AppendBool appends a single bit.
func (b *BitStream) AppendBool(bit bool) {
	*b = append(*b, bit)
}

// Len returns the number of bits in the stream.
func (b BitStream) Len() int {
	return len(b)
}

// Bit returns the bit at the given index. Panics (IndexOutOfBounds, an
// internal consistency failure per the error taxonomy) if i is out of range.
func (b BitStream) Bit(i int) bool {
	if i < 0 || i >= len(b) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, len(b)))
	}
	return b[i]
}

// Bytes packs the stream into big-endian bytes. The byte array length is
// ceil(Len()/8); trailing bits in the last byte past Len are zero.
func (b BitStream) Bytes() []byte {
	out := make([]byte, (len(b)+7)/8)
	for i, bit := range b {
		if bit {
			out[i>>3] |= 1 << (7 - uint(i&7))
		}
	}
	return out
}

// Hex returns a lower-case hexadecimal view of Bytes(), useful for
// comparing against the worked codeword examples in the spec.
func (b BitStream) Hex() string {
	return hex.EncodeToString(b.Bytes())
}
