// Package segment classifies a payload into the smallest usable encoding
// mode and emits the single-segment bit stream (mode indicator, character
// count, data bits) that the root package pads and splits into blocks.
package segment

import (
	"errors"
	"fmt"

	"github.com/quietzone/qrencode/bitstream"
	"github.com/quietzone/qrencode/qrcodeecc"
	"github.com/quietzone/qrencode/version"
)

var (
	// ErrPayloadTooLarge means no version in 1..40 at the requested EC
	// level can hold the payload in the chosen mode.
	ErrPayloadTooLarge = errors.New("qrencode: payload too large for any version at this error correction level")
	// ErrUnsupportedCharacter means byte mode was chosen but the payload
	// contains a byte outside the ASCII range (ECI is out of scope).
	ErrUnsupportedCharacter = errors.New("qrencode: unsupported character in payload")
)

// alphanumericCharset maps each of the 45 legal alphanumeric characters to
// its value in the range [0, 44].
var alphanumericCharset = buildAlphanumericCharset()

func buildAlphanumericCharset() map[byte]uint32 {
	const chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
	m := make(map[byte]uint32, len(chars))
	for i := 0; i < len(chars); i++ {
		m[chars[i]] = uint32(i)
	}
	return m
}

// IsNumeric reports whether every byte of payload is a decimal digit.
func IsNumeric(payload []byte) bool {
	for _, b := range payload {
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether every byte of payload is in the
// alphanumeric character set.
func IsAlphanumeric(payload []byte) bool {
	for _, b := range payload {
		if _, ok := alphanumericCharset[b]; !ok {
			return false
		}
	}
	return true
}

// Segment is an immutable (mode, character count, data bits) tuple, ready
// to be concatenated with its mode indicator and character count into a
// symbol's bit stream.
type Segment struct {
	mode     Mode
	numChars int
	data     bitstream.BitStream
}

// Mode returns the segment's mode.
func (s Segment) Mode() Mode { return s.mode }

// NumChars returns the segment's character count (bytes, for Byte mode).
func (s Segment) NumChars() int { return s.numChars }

// Data returns the segment's data bits, excluding the mode indicator and
// character count indicator.
func (s Segment) Data() bitstream.BitStream { return s.data }

// MakeNumeric encodes text (all bytes '0'..'9') in numeric mode: groups of
// three digits become 10 bits, a trailing pair becomes 7 bits, a trailing
// single digit becomes 4 bits.
func MakeNumeric(text []byte) Segment {
	var bs bitstream.BitStream
	var accum uint32
	var count uint8
	for _, c := range text {
		accum = accum*10 + uint32(c-'0')
		count++
		if count == 3 {
			bs.AppendBits(accum, 10)
			accum, count = 0, 0
		}
	}
	if count > 0 {
		bs.AppendBits(accum, count*3+1)
	}
	return Segment{mode: Numeric, numChars: len(text), data: bs}
}

// MakeAlphanumeric encodes text in alphanumeric mode: pairs (a,b) become
// 45*a+b packed into 11 bits, a trailing single character becomes 6 bits.
func MakeAlphanumeric(text []byte) Segment {
	var bs bitstream.BitStream
	var accum uint32
	var count uint32
	for _, c := range text {
		accum = accum*45 + alphanumericCharset[c]
		count++
		if count == 2 {
			bs.AppendBits(accum, 11)
			accum, count = 0, 0
		}
	}
	if count > 0 {
		bs.AppendBits(accum, 6)
	}
	return Segment{mode: Alphanumeric, numChars: len(text), data: bs}
}

// MakeBytes encodes data in byte mode, one byte per 8 bits. Returns
// ErrUnsupportedCharacter, wrapping the offending index, if any byte is
// outside the ASCII range (this spec's scope excludes ECI).
func MakeBytes(data []byte) (Segment, error) {
	var bs bitstream.BitStream
	for i, b := range data {
		if b >= 0x80 {
			return Segment{}, fmt.Errorf("%w: byte 0x%02x at index %d", ErrUnsupportedCharacter, b, i)
		}
		bs.AppendBits(uint32(b), 8)
	}
	return Segment{mode: Byte, numChars: len(data), data: bs}, nil
}

// encodedDataBits returns the number of data bits a segment of this mode
// and character count occupies, excluding the mode indicator, character
// count indicator, terminator and padding.
func encodedDataBits(mode Mode, numChars int) int {
	switch mode {
	case Numeric:
		rem := numChars % 3
		tail := map[int]int{0: 0, 1: 4, 2: 7}[rem]
		return 10*(numChars/3) + tail
	case Alphanumeric:
		rem := numChars % 2
		tail := map[int]int{0: 0, 1: 6}[rem]
		return 11*(numChars/2) + tail
	case Byte:
		return 8 * numChars
	default:
		panic("segment: unknown mode")
	}
}

// totalBits returns 4 (mode indicator) + the character count indicator
// width at ver + the segment's data bits.
func totalBits(mode Mode, numChars int, ver version.Version) int {
	return 4 + int(mode.NumCharCountBits(ver)) + encodedDataBits(mode, numChars)
}

// classify picks the smallest-capacity mode that can represent payload:
// numeric, then alphanumeric, then byte (the non-goal Kanji/ECI modes are
// never considered).
func classify(payload []byte) Mode {
	switch {
	case IsNumeric(payload):
		return Numeric
	case IsAlphanumeric(payload):
		return Alphanumeric
	default:
		return Byte
	}
}

// AnalyzeAndSelect classifies payload into the smallest-capacity mode, then
// chooses the smallest version v in [1,40] such that the resulting
// single-segment bit stream fits 8*NumDataCodewords(v, ecl), and builds the
// segment. Returns ErrPayloadTooLarge if no version fits, or
// ErrUnsupportedCharacter if byte mode encounters a non-ASCII byte.
func AnalyzeAndSelect(payload []byte, ecl qrcodeecc.Level) (Segment, version.Version, error) {
	mode := classify(payload)

	var chosen version.Version
	found := false
	for v := version.Min.Value(); v <= version.Max.Value(); v++ {
		ver := version.New(v)
		capacityBits := ver.NumDataCodewords(ecl) * 8
		if totalBits(mode, len(payload), ver) <= capacityBits {
			chosen = ver
			found = true
			break
		}
	}
	if !found {
		return Segment{}, 0, ErrPayloadTooLarge
	}

	var seg Segment
	var err error
	switch mode {
	case Numeric:
		seg = MakeNumeric(payload)
	case Alphanumeric:
		seg = MakeAlphanumeric(payload)
	case Byte:
		seg, err = MakeBytes(payload)
	}
	if err != nil {
		return Segment{}, 0, err
	}
	return seg, chosen, nil
}
