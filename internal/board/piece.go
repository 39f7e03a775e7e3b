package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceKind represents the type of a chess piece. The numeric values index
// the precomputed attack tables and are part of the library contract.
type PieceKind uint8

const (
	King   PieceKind = 0
	Pawn   PieceKind = 1
	Knight PieceKind = 2
	Rook   PieceKind = 3
	Bishop PieceKind = 4
	Queen  PieceKind = 5
)

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case King:
		return "King"
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	}
	return "None"
}

// Piece letters indexed by color then kind, as used in FEN.
var pieceChars = [2][6]byte{
	{'K', 'P', 'N', 'R', 'B', 'Q'},
	{'k', 'p', 'n', 'r', 'b', 'q'},
}

// promoteChars maps a piece kind to its lowercase move-string letter.
var promoteChars = [6]byte{'k', 'p', 'n', 'r', 'b', 'q'}

// PieceChar returns the FEN character for a piece of the given kind and
// color (uppercase for white, lowercase for black).
func PieceChar(k PieceKind, c Color) byte {
	return pieceChars[c][k]
}

// pieceFromChar converts a FEN piece character to its kind and color.
func pieceFromChar(ch byte) (PieceKind, Color, bool) {
	switch ch {
	case 'K', 'k':
		return King, colorOfChar(ch), true
	case 'P', 'p':
		return Pawn, colorOfChar(ch), true
	case 'N', 'n':
		return Knight, colorOfChar(ch), true
	case 'R', 'r':
		return Rook, colorOfChar(ch), true
	case 'B', 'b':
		return Bishop, colorOfChar(ch), true
	case 'Q', 'q':
		return Queen, colorOfChar(ch), true
	}
	return 0, 0, false
}

func colorOfChar(ch byte) Color {
	if ch >= 'a' {
		return Black
	}
	return White
}

// promotionKindFromChar maps a lowercase promotion letter to a piece kind.
// Only knight, bishop, rook and queen are valid promotion targets.
func promotionKindFromChar(ch byte) (PieceKind, bool) {
	switch ch {
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	}
	return 0, false
}
