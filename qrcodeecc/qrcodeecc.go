// Package qrcodeecc defines the four error correction levels a QR Code
// symbol can be encoded at.
package qrcodeecc

// Level is the error correction level in a QR Code symbol.
type Level uint

const (
	// Low means the QR Code can tolerate about 7% erroneous codewords.
	Low Level = 0
	// Medium means the QR Code can tolerate about 15% erroneous codewords.
	Medium Level = 1
	// Quartile means the QR Code can tolerate about 25% erroneous codewords.
	Quartile Level = 2
	// High means the QR Code can tolerate about 30% erroneous codewords.
	High Level = 3
)

// String renders the level's single-letter name, as used on the command line.
func (l Level) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		panic("qrcodeecc: unknown level")
	}
}

// Parse maps a case-insensitive single-letter name ("L", "M", "Q", "H") to
// its Level. The second return value is false for any other input.
func Parse(s string) (Level, bool) {
	switch s {
	case "L", "l":
		return Low, true
	case "M", "m":
		return Medium, true
	case "Q", "q":
		return Quartile, true
	case "H", "h":
		return High, true
	default:
		return 0, false
	}
}

// Ordinal returns an index in [0,3] suitable for indexing the per-level
// capacity tables, in the fixed order Low, Medium, Quartile, High.
func (l Level) Ordinal() int {
	switch l {
	case Low, Medium, Quartile, High:
		return int(l)
	default:
		panic("qrcodeecc: unknown level")
	}
}

// FormatBits returns the 2-bit pattern used inside the 15-bit format
// information field. Note this is NOT the same ordering as Ordinal: the
// standard assigns these bits so that Medium sorts lowest.
func (l Level) FormatBits() uint8 {
	switch l {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrcodeecc: unknown level")
	}
}
