package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quietzone/qrencode"
	"github.com/quietzone/qrencode/internal/bmp"
	"github.com/quietzone/qrencode/internal/term"
	"github.com/quietzone/qrencode/qrcodeecc"
)

// ErrInvalidEcLevel means the EC-level argument wasn't one of L, M, Q, H
// (case-insensitive).
var ErrInvalidEcLevel = errors.New("qrencode: invalid error correction level")

// ErrIoError wraps a failure writing the output file.
var ErrIoError = errors.New("qrencode: I/O error")

var showASCII bool

var rootCmd = &cobra.Command{
	Use:           "qrencode <payload> <L|M|Q|H> <output.bmp>",
	Short:         "Encode a QR Code symbol and write it as a BMP file",
	Args:          cobra.ExactArgs(3),
	RunE:          runEncode,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().BoolVar(&showASCII, "ascii", false, "also print the symbol to stdout using half-block characters")
}

func runEncode(cmd *cobra.Command, args []string) error {
	payload, ecLevelArg, outPath := args[0], args[1], args[2]

	ecl, ok := qrcodeecc.Parse(ecLevelArg)
	if !ok {
		return fmt.Errorf("%w: %q (want one of L, M, Q, H)", ErrInvalidEcLevel, ecLevelArg)
	}

	symbol, err := qrencode.EncodeText(payload, ecl)
	if err != nil {
		return err
	}

	log.Info("encoded symbol", "version", symbol.Version().Value(), "size", symbol.Size(),
		"level", symbol.ErrorCorrectionLevel(), "mask", symbol.Mask().Value())

	if showASCII {
		if err := term.Render(os.Stdout, symbol); err != nil {
			return fmt.Errorf("%w: %w", ErrIoError, err)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIoError, err)
	}
	defer f.Close()

	if err := bmp.Encode(f, symbol, 4); err != nil {
		return fmt.Errorf("%w: %w", ErrIoError, err)
	}

	log.Info("wrote BMP", "path", outPath)
	return nil
}
