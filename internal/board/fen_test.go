package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENStartPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	assert.Equal(t, White, pos.SideToMove())
	assert.Equal(t, 1, pos.FullTurnNumber())
	assert.Equal(t, InvalidSquare, pos.EnPassantTarget())
	for _, c := range []Color{White, Black} {
		assert.True(t, pos.CanCastle(c, true))
		assert.True(t, pos.CanCastle(c, false))
		assert.Equal(t, 16, pos.ColorOcc[c].PopCount())
	}
	assert.Equal(t, 8+8, pos.PieceOcc[Pawn].PopCount())
	assert.Equal(t, 2, pos.PieceOcc[King].PopCount())

	k, ok := pos.PieceOnSquare(E1)
	require.True(t, ok)
	assert.Equal(t, King, k)
	c, _ := pos.PlayerOnSquare(E1)
	assert.Equal(t, White, c)

	pos.CheckInvariants()
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"8/P7/8/8/8/8/8/k6K w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 42",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, pos.ToFEN(), "emit after parse")

		reparsed, err := ParseFEN(pos.ToFEN())
		require.NoError(t, err)
		assert.Equal(t, *pos, *reparsed, "parse(emit(P)) must equal P bitwise")
	}
}

func TestFENHalfmoveClockIgnored(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 37 90")
	require.NoError(t, err)
	assert.Equal(t, 90, pos.FullTurnNumber())
	// The halfmove clock is not tracked; emission always writes 0.
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 90", pos.ToFEN())
}

func TestParseFENFourFields(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - -")
	require.NoError(t, err)
	assert.Equal(t, 1, pos.FullTurnNumber(), "full-turn counter defaults to 1")
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"4k3/8/8/8/8/8/8/4K3",           // too few fields
		"4k3/8/8/8/8/8/4K3 w - - 0 1",   // seven ranks
		"9/8/8/8/8/8/8/4K3 w - - 0 1",   // bad digit
		"4x3/8/8/8/8/8/8/4K3 w - - 0 1", // bad piece letter
		"4k3/8/8/8/8/8/8/4K3 x - - 0 1", // bad side
		"4k3/8/8/8/8/8/8/4K3 w z - 0 1", // bad castling
		"4k3/8/8/8/8/8/8/4K3 w - j9 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 xx",
	}
	for _, fen := range bad {
		_, err := ParseFEN(fen)
		assert.Error(t, err, "FEN %q", fen)
	}
}
