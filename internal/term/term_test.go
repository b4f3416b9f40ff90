package term_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietzone/qrencode"
	"github.com/quietzone/qrencode/internal/term"
	"github.com/quietzone/qrencode/qrcodeecc"
)

func TestRenderProducesSquareBlockOfHalfHeightLines(t *testing.T) {
	symbol, err := qrencode.EncodeText("Hi", qrcodeecc.Low)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, term.Render(&sb, symbol))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	expectedLines := (symbol.Size() + 2*4 + 1) / 2
	assert.Equal(t, expectedLines, len(lines))

	expectedRuneWidth := (symbol.Size() + 2*4) * 2
	for _, line := range lines {
		assert.Equal(t, expectedRuneWidth, len([]rune(line)))
	}
}

func TestRenderTopLeftCornerIsWithinQuietZone(t *testing.T) {
	symbol, err := qrencode.EncodeText("Hi", qrcodeecc.Low)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, term.Render(&sb, symbol))

	firstLine := strings.Split(sb.String(), "\n")[0]
	assert.Equal(t, "  ", firstLine[:2])
}
