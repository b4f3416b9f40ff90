// Package qrencode encodes an arbitrary byte payload into a QR Code Model 2
// symbol: mode analysis, bit-stream encoding with padding, Reed-Solomon
// error correction, block interleaving, module placement, data masking and
// format/version information, per ISO/IEC 18004.
package qrencode

import (
	"errors"
	"fmt"
	"math"

	"github.com/quietzone/qrencode/bitstream"
	"github.com/quietzone/qrencode/mask"
	"github.com/quietzone/qrencode/qrcodeecc"
	"github.com/quietzone/qrencode/segment"
	"github.com/quietzone/qrencode/version"
)

// ErrPayloadTooLarge means no version in 1..40 at the requested error
// correction level can hold the payload.
var ErrPayloadTooLarge = segment.ErrPayloadTooLarge

// ErrUnsupportedCharacter means byte mode was chosen but the payload
// contains a byte outside the ASCII range.
var ErrUnsupportedCharacter = segment.ErrUnsupportedCharacter

// ErrIndexOutOfBounds marks an internal consistency failure — a bit-stream
// read past its length. This should be unreachable given valid encoding
// logic and is only ever panicked, never returned.
var ErrIndexOutOfBounds = bitstream.ErrIndexOutOfBounds

// QrCode is an immutable QR Code Model 2 symbol: a square grid of dark and
// light modules, built once by one of the Encode* functions and never
// mutated afterward.
type QrCode struct {
	version    version.Version
	size       int
	ecLevel    qrcodeecc.Level
	mask       mask.Pattern
	modules    []bool
	isFunction []bool
}

// Encode returns a QR Code representing payload at the requested error
// correction level, automatically choosing the smallest version and mode.
//
// Byte mode is used whenever payload isn't entirely numeric or
// alphanumeric characters. Returns ErrPayloadTooLarge if no version fits,
// or ErrUnsupportedCharacter if byte mode encounters a non-ASCII byte.
func Encode(payload []byte, ecl qrcodeecc.Level) (*QrCode, error) {
	seg, ver, err := segment.AnalyzeAndSelect(payload, ecl)
	if err != nil {
		return nil, err
	}
	return EncodeSegments([]segment.Segment{seg}, ver, ecl)
}

// EncodeText is an alias of Encode, kept for parity with the common
// high-level "encode this string" entry point; payload is the UTF-8 bytes
// of text, interpreted as defined in section 4.2 (a payload containing
// non-ASCII bytes always falls through to Byte mode, which rejects it with
// ErrUnsupportedCharacter).
func EncodeText(text string, ecl qrcodeecc.Level) (*QrCode, error) {
	return Encode([]byte(text), ecl)
}

// EncodeBinary encodes data using byte mode unconditionally, even if it
// would also qualify as numeric or alphanumeric.
func EncodeBinary(data []byte, ecl qrcodeecc.Level) (*QrCode, error) {
	seg, err := segment.MakeBytes(data)
	if err != nil {
		return nil, err
	}

	var chosen version.Version
	found := false
	for v := version.Min.Value(); v <= version.Max.Value(); v++ {
		ver := version.New(v)
		need := 4 + int(segment.Byte.NumCharCountBits(ver)) + seg.Data().Len()
		if need <= ver.NumDataCodewords(ecl)*8 {
			chosen = ver
			found = true
			break
		}
	}
	if !found {
		return nil, ErrPayloadTooLarge
	}
	return EncodeSegments([]segment.Segment{seg}, chosen, ecl)
}

// EncodeSegments builds a QR Code from pre-built segments at a caller-chosen
// version, concatenating each segment's mode indicator, character count and
// data bits in order, then terminating, byte-aligning and padding to the
// version's data capacity before splitting into blocks and computing error
// correction (section 4.3, 4.4).
func EncodeSegments(segs []segment.Segment, ver version.Version, ecl qrcodeecc.Level) (*QrCode, error) {
	dataCodewords, err := buildDataCodewords(segs, ver, ecl)
	if err != nil {
		return nil, err
	}
	return EncodeCodewords(ver, ecl, dataCodewords, nil)
}

// buildDataCodewords concatenates each segment's mode indicator, character
// count and data bits in order, then terminates, byte-aligns and pads to
// the version's data capacity, returning the resulting padded data
// codeword bytes (section 4.3).
func buildDataCodewords(segs []segment.Segment, ver version.Version, ecl qrcodeecc.Level) ([]byte, error) {
	var bs bitstream.BitStream
	for _, seg := range segs {
		bs.AppendBits(seg.Mode().Bits(), 4)
		bs.AppendBits(uint32(seg.NumChars()), seg.Mode().NumCharCountBits(ver))
		for i := 0; i < seg.Data().Len(); i++ {
			bs.AppendBool(seg.Data().Bit(i))
		}
	}

	capacityBits := ver.NumDataCodewords(ecl) * 8
	if bs.Len() > capacityBits {
		return nil, fmt.Errorf("%w: segments require %d bits, version %d at this level holds %d",
			ErrPayloadTooLarge, bs.Len(), ver.Value(), capacityBits)
	}

	// Terminator: up to 4 zero bits, truncated to remaining capacity.
	termLen := capacityBits - bs.Len()
	if termLen > 4 {
		termLen = 4
	}
	bs.AppendBits(0, uint8(termLen))

	// Byte-align.
	if pad := (8 - bs.Len()%8) % 8; pad > 0 {
		bs.AppendBits(0, uint8(pad))
	}

	// Pad with alternating 0xEC, 0x11 until capacity is reached.
	padBytes := [2]uint32{0xEC, 0x11}
	for i := 0; bs.Len() < capacityBits; i++ {
		bs.AppendBits(padBytes[i%2], 8)
	}

	return bs.Bytes(), nil
}

// EncodeCodewords is the low-level constructor: given the already padded
// data codeword bytes (excluding error correction, including segment
// headers and padding), lay out every function pattern, split and
// interleave the error-correction codewords, place the data, and either
// apply the forced mask m or choose the mask with the lowest penalty score.
func EncodeCodewords(ver version.Version, ecl qrcodeecc.Level, dataCodewords []byte, m *mask.Pattern) (*QrCode, error) {
	if len(dataCodewords) != ver.NumDataCodewords(ecl) {
		return nil, errors.New("qrencode: data codeword count does not match version and error correction level")
	}

	size := ver.Side()
	q := &QrCode{
		version:    ver,
		size:       size,
		ecLevel:    ecl,
		modules:    make([]bool, size*size),
		isFunction: make([]bool, size*size),
	}

	q.drawFunctionPatterns()
	all := q.addECCAndInterleave(dataCodewords)
	q.drawCodewords(all)

	if m == nil {
		best := mask.New(0)
		minPenalty := int(math.MaxInt32)
		for i := uint8(0); i < 8; i++ {
			candidate := mask.New(i)
			q.applyMask(candidate)
			q.drawFormatBits(candidate)
			penalty := q.penaltyScore()
			if penalty < minPenalty {
				best = candidate
				minPenalty = penalty
			}
			q.applyMask(candidate) // undo; XOR is its own inverse
		}
		m = &best
	}

	q.mask = *m
	q.applyMask(q.mask)
	q.drawFormatBits(q.mask)

	q.isFunction = nil
	return q, nil
}

// Version returns the symbol's version, in [1, 40].
func (q *QrCode) Version() version.Version { return q.version }

// Size returns the symbol's side length in modules, in [21, 177].
func (q *QrCode) Size() int { return q.size }

// ErrorCorrectionLevel returns the symbol's error correction level.
func (q *QrCode) ErrorCorrectionLevel() qrcodeecc.Level { return q.ecLevel }

// Mask returns the symbol's mask pattern, in [0, 7].
func (q *QrCode) Mask() mask.Pattern { return q.mask }

// GetModule returns the color of the module at (row, col): true for dark,
// false for light. Out-of-bounds coordinates return false.
func (q *QrCode) GetModule(row, col int) bool {
	if row < 0 || row >= q.size || col < 0 || col >= q.size {
		return false
	}
	return q.module(row, col)
}

func (q *QrCode) module(row, col int) bool {
	return q.modules[row*q.size+col]
}

func (q *QrCode) setModule(row, col int, dark bool) {
	q.modules[row*q.size+col] = dark
}
