// Package bmp writes a QR Code symbol as a 1-bit-per-pixel Windows BMP
// file (BITMAPFILEHEADER + BITMAPINFOHEADER, a 2-entry black/white
// palette, bottom-up row order), per section 6 of the output format.
package bmp

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/quietzone/qrencode"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	paletteSize    = 2 * 4 // two BGRA palette entries
	pixelOffset    = fileHeaderSize + infoHeaderSize + paletteSize
	pixelsPerMeter = 0x0EC4 // ~96 DPI, matches common BMP encoders
)

// rowStride returns the number of bytes occupied by one scanline of width
// pixels at 1 bit per pixel, padded up to a 4-byte boundary as the BMP
// format requires.
func rowStride(width int) int {
	bytesPerRow := (width + 7) / 8
	return (bytesPerRow + 3) &^ 3
}

// Encode writes symbol to w as a 1-bpp BMP image with a light quiet zone
// of border modules on every side. Each QR module becomes exactly one
// pixel; scale the resulting file with an external tool if larger pixels
// are wanted.
func Encode(w io.Writer, symbol *qrencode.QrCode, border int) error {
	side := symbol.Size() + 2*border
	stride := rowStride(side)
	pixelDataSize := stride * side
	fileSize := pixelOffset + pixelDataSize

	var buf bytes.Buffer
	buf.Grow(fileSize)

	// BITMAPFILEHEADER.
	buf.WriteByte('B')
	buf.WriteByte('M')
	writeUint32(&buf, uint32(fileSize))
	writeUint32(&buf, 0) // reserved
	writeUint32(&buf, uint32(pixelOffset))

	// BITMAPINFOHEADER.
	writeUint32(&buf, infoHeaderSize)
	writeInt32(&buf, int32(side))
	writeInt32(&buf, int32(side))
	writeUint16(&buf, 1) // color planes
	writeUint16(&buf, 1) // bits per pixel
	writeUint32(&buf, 0) // no compression
	writeUint32(&buf, 0) // image size: unused for uncompressed bitmaps
	writeInt32(&buf, pixelsPerMeter)
	writeInt32(&buf, pixelsPerMeter)
	writeUint32(&buf, 2) // palette entries used
	writeUint32(&buf, 0) // all palette colors are important

	// Palette: index 0 white, index 1 black.
	buf.Write([]byte{0xFF, 0xFF, 0xFF, 0x00})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})

	// Pixel array: bottom-up, MSB-first within each byte, rows padded to
	// a 4-byte boundary.
	row := make([]byte, stride)
	for y := side - 1; y >= 0; y-- {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < side; x++ {
			if dark(symbol, border, y, x) {
				row[x/8] |= 1 << (7 - uint(x%8))
			}
		}
		buf.Write(row)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// dark reports whether the pixel at bitmap row y, column x is a dark
// (black, palette index 1) module, treating the border quiet zone as
// always light.
func dark(symbol *qrencode.QrCode, border, y, x int) bool {
	return symbol.GetModule(y-border, x-border)
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	buf.Write(tmp[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func writeInt32(buf *bytes.Buffer, v int32) {
	writeUint32(buf, uint32(v))
}
