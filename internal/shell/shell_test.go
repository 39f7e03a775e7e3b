package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chesscore/internal/config"
)

func run(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(config.Default(), &out)
	require.NoError(t, sh.Run(strings.NewReader(script)))
	return out.String()
}

func TestPositionAndFEN(t *testing.T) {
	out := run(t, "position startpos moves e2e4\nfen\nquit\n")
	assert.Contains(t, out, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
}

func TestMovesCount(t *testing.T) {
	out := run(t, "position startpos\nmoves\n")
	assert.Contains(t, out, "20 legal moves")
}

func TestStatusCheckmate(t *testing.T) {
	out := run(t, "position fen R6k/6pp/8/8/8/8/8/K7 b - - 0 1\nstatus\n")
	assert.Contains(t, out, "checkmate")
}

func TestStatusStalemate(t *testing.T) {
	out := run(t, "position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1\nstatus\n")
	assert.Contains(t, out, "stalemate")
}

func TestPerftCommand(t *testing.T) {
	out := run(t, "position startpos\nperft 3\n")
	assert.Contains(t, out, "8,902 nodes")
}

func TestIllegalMoveRejected(t *testing.T) {
	out := run(t, "position startpos\nmove e2e5\nfen\n")
	// The position is unchanged after the rejected move.
	assert.Contains(t, out, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
}
