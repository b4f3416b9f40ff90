package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEncodeWritesBMPFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.bmp")

	rootCmd.SetArgs([]string{"HELLO WORLD", "Q", outPath})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, byte('B'), data[0])
	assert.Equal(t, byte('M'), data[1])
}

func TestRunEncodeRejectsInvalidEcLevel(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.bmp")

	rootCmd.SetArgs([]string{"HELLO WORLD", "Z", outPath})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEcLevel)
}

func TestRunEncodeRejectsWrongArgCount(t *testing.T) {
	rootCmd.SetArgs([]string{"only-one-arg"})
	assert.Error(t, rootCmd.Execute())
}
