package board

import (
	"sync"

	"github.com/op/go-logging"

	mylogging "github.com/hailam/chesscore/internal/logging"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = mylogging.GetLog()
	}
	return log
}

// Precomputed attack tables for kings, knights and pawns. Sliding pieces
// use the magic lookups in magic.go.
var (
	kingMoves   [64]Bitboard
	knightMoves [64]Bitboard

	// pawnMoves is indexed [color][doubleBlocked][aheadBits][square].
	// aheadBits holds the occupancy of the diagonal-left, straight-ahead
	// and diagonal-right squares (bits 0, 1, 2) relative to the pawn's
	// advancing direction; doubleBlocked is the occupancy of the two-step
	// square. The stored set is the union of single push (ahead empty),
	// double push (home rank, both squares empty) and captures (occupied
	// diagonals). Promotions are handled at generation time.
	pawnMoves [2][2][8][64]Bitboard
)

var initOnce sync.Once

func init() {
	Init()
}

// Init fills the process-wide attack tables. It runs automatically on
// package load; calling it again is a no-op. Once it has returned the
// tables are read-only and safe for concurrent readers.
func Init() {
	initOnce.Do(func() {
		initKingMoves()
		initKnightMoves()
		initPawnMoves()
		initMagics()
		getLog().Debug("attack tables initialized")
	})
}

func initKingMoves() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		moves := bb.North() | bb.South() | bb.East() | bb.West() |
			bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()
		kingMoves[sq] = moves
	}
}

func initKnightMoves() {
	for sq := A1; sq <= H8; sq++ {
		x, y := sq.File(), sq.Rank()
		var moves Bitboard
		for _, i := range [2]int{-1, 1} {
			for _, j := range [2]int{-1, 1} {
				if s := NewSquare(x+i, y+2*j); s != InvalidSquare {
					moves = moves.Set(s)
				}
				if s := NewSquare(x+2*i, y+j); s != InvalidSquare {
					moves = moves.Set(s)
				}
			}
		}
		knightMoves[sq] = moves
	}
}

func initPawnMoves() {
	for c := White; c <= Black; c++ {
		dir := 1
		homeRank := 1
		if c == Black {
			dir = -1
			homeRank = 6
		}
		for sq := A1; sq <= H8; sq++ {
			x, y := sq.File(), sq.Rank()
			aheadOnBoard := y+dir >= 0 && y+dir < 8
			for ahead := 0; ahead < 8; ahead++ {
				for dbl := 0; dbl < 2; dbl++ {
					var moves Bitboard
					if ahead&2 == 0 && aheadOnBoard {
						moves = moves.Set(NewSquare(x, y+dir))
						if dbl == 0 && y == homeRank {
							moves = moves.Set(NewSquare(x, y+2*dir))
						}
					}
					if x >= 1 && ahead&1 != 0 && aheadOnBoard {
						moves = moves.Set(NewSquare(x-1, y+dir))
					}
					if x <= 6 && ahead&4 != 0 && aheadOnBoard {
						moves = moves.Set(NewSquare(x+1, y+dir))
					}
					pawnMoves[c][dbl][ahead][sq] = moves
				}
			}
		}
	}
}

// KingAttacks returns the king move set for a square.
func KingAttacks(sq Square) Bitboard {
	return kingMoves[sq]
}

// KnightAttacks returns the knight move set for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightMoves[sq]
}

// PawnMoves returns the pawn move set (pushes and occupied-diagonal
// captures) for a pawn of the given color under the given occupancy. The
// occupancy should include the en passant target so diagonal captures hit
// the ep square.
func PawnMoves(sq Square, c Color, occupied Bitboard) Bitboard {
	dir := 8
	if c == Black {
		dir = -8
	}
	// Grab the three squares ahead of the pawn and the two-step square as
	// occupancy windows. Edge-file garbage bits are ignored by the table.
	var ahead, dbl uint8
	if shift := int(sq) - 1 + dir; shift >= 0 {
		ahead = uint8(occupied>>shift) & 0x7
	} else {
		ahead = uint8(occupied<<-shift) & 0x7
	}
	if shift := int(sq) + 2*dir; shift >= 0 {
		dbl = uint8(occupied>>shift) & 0x1
	} else {
		dbl = uint8(occupied<<-shift) & 0x1
	}
	return pawnMoves[c][dbl][ahead][sq]
}

// PseudoMoves returns the pseudo-legal move set for a piece of the given
// kind and color on the given square: every square the piece may move to by
// its movement rules, including squares occupied by friendly pieces.
// Callers mask with ^own occupancy to get the movable set. sliderOcc is the
// union of both color occupancies; pawnOcc additionally includes the en
// passant target.
func PseudoMoves(kind PieceKind, c Color, sq Square, sliderOcc, pawnOcc Bitboard) Bitboard {
	if !sq.IsValid() {
		panic("board: PseudoMoves: invalid square")
	}
	switch kind {
	case King:
		return kingMoves[sq]
	case Pawn:
		return PawnMoves(sq, c, pawnOcc)
	case Knight:
		return knightMoves[sq]
	case Rook:
		return RookAttacks(sq, sliderOcc)
	case Bishop:
		return BishopAttacks(sq, sliderOcc)
	case Queen:
		return QueenAttacks(sq, sliderOcc)
	}
	panic("board: PseudoMoves: unknown piece kind")
}

// AttackersOf returns the bitboard of pieces of the given color that attack
// a square. The square is projected outward as a ghost of each piece kind
// of the defending color and each projection is intersected with the
// matching attacker piece set; queens are hit by both the rook and bishop
// projections.
func (p *Position) AttackersOf(sq Square, by Color) Bitboard {
	defender := by.Other()
	sliderOcc := p.Occupied()
	pawnOcc := p.occupancyForPawns()

	var hits Bitboard
	for kind := King; kind <= Knight; kind++ {
		hits |= PseudoMoves(kind, defender, sq, sliderOcc, pawnOcc) & p.PieceOcc[kind]
	}
	hits |= RookAttacks(sq, sliderOcc) & (p.PieceOcc[Rook] | p.PieceOcc[Queen])
	hits |= BishopAttacks(sq, sliderOcc) & (p.PieceOcc[Bishop] | p.PieceOcc[Queen])
	return hits & p.ColorOcc[by]
}

// Checkers returns the bitboard of opposing pieces attacking the given
// color's king.
func (p *Position) Checkers(c Color) Bitboard {
	return p.AttackersOf(p.KingSquare(c), c.Other())
}

// InCheck reports whether the given color's king is attacked.
func (p *Position) InCheck(c Color) bool {
	return p.Checkers(c) != 0
}
