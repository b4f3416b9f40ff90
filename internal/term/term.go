// Package term renders a QR Code to a terminal using Unicode half-block
// characters, so a scannable code can be printed without writing an image
// file.
package term

import (
	"fmt"
	"io"

	"github.com/quietzone/qrencode"
)

// quietZone is the minimum light border, in modules, required around a
// symbol for reliable scanning (section 4.9).
const quietZone = 4

// module reports the color of symbol at (row, col), treating every
// position in the quiet zone as light.
func module(symbol *qrencode.QrCode, row, col int) bool {
	return symbol.GetModule(row-quietZone, col-quietZone)
}

// Render writes symbol to w as Unicode half-block characters, combining
// each pair of module rows into a single terminal line. A light quiet zone
// of quietZone modules surrounds the symbol on every side.
func Render(w io.Writer, symbol *qrencode.QrCode) error {
	total := symbol.Size() + 2*quietZone

	for row := 0; row < total; row += 2 {
		for col := 0; col < total; col++ {
			top := module(symbol, row, col)
			bot := false
			if row+1 < total {
				bot = module(symbol, row+1, col)
			}
			var err error
			switch {
			case top && bot:
				_, err = fmt.Fprint(w, "██")
			case top && !bot:
				_, err = fmt.Fprint(w, "▀▀")
			case !top && bot:
				_, err = fmt.Fprint(w, "▄▄")
			default:
				_, err = fmt.Fprint(w, "  ")
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
