package segment

import "github.com/quietzone/qrencode/version"

// Mode describes how a segment's data bits are interpreted.
type Mode uint32

const (
	// Numeric holds only the decimal digits '0'..'9'.
	Numeric Mode = iota
	// Alphanumeric holds the 45-character alphanumeric set.
	Alphanumeric
	// Byte holds arbitrary 8-bit bytes, one per character.
	Byte
)

// Bits returns the 4-bit mode indicator value.
func (m Mode) Bits() uint32 {
	switch m {
	case Numeric:
		return 0x1
	case Alphanumeric:
		return 0x2
	case Byte:
		return 0x4
	default:
		panic("segment: unknown mode")
	}
}

// NumCharCountBits returns the bit width of the character count field for a
// segment in this mode at the given version, one of {8|9|10, 11|12|16,
// 13|14|16} depending on the version range 1-9, 10-26, 27-40.
func (m Mode) NumCharCountBits(ver version.Version) uint8 {
	var widths [3]uint8
	switch m {
	case Numeric:
		widths = [3]uint8{10, 12, 14}
	case Alphanumeric:
		widths = [3]uint8{9, 11, 13}
	case Byte:
		widths = [3]uint8{8, 16, 16}
	default:
		panic("segment: unknown mode")
	}

	idx := (ver.Value() + 7) / 17
	return widths[idx]
}
