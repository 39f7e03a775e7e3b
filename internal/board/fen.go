package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position. The four positional fields
// are required; the halfmove clock, if present, is ignored (the library
// does not track it) and the full-turn counter defaults to 1 when absent.
//
// Castling rights are accepted verbatim: the parser does not cross-check
// them against piece placement.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := &Position{}

	if err := parsePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
	case "b":
		pos.Flags |= flagSideToMove
	default:
		return nil, fmt.Errorf("invalid side to move: %q", parts[1])
	}

	if err := parseCastling(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq := ParseSquare(parts[3])
		if sq == InvalidSquare {
			return nil, fmt.Errorf("invalid en passant square: %q", parts[3])
		}
		pos.setEnPassant(sq)
	}

	// Field 4 is the halfmove clock; the library does not track it, so the
	// value is skipped entirely.

	turns := 1
	if len(parts) > 5 {
		n, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-turn counter: %q", parts[5])
		}
		turns = n
	}
	pos.setFullTurnNumber(turns)

	return pos, nil
}

func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, color, ok := pieceFromChar(ch)
			if !ok {
				return fmt.Errorf("invalid piece character: %q", ch)
			}
			pos.setPiece(kind, color, NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d describes %d files", rank+1, file)
		}
	}
	return nil
}

func parseCastling(pos *Position, castling string) error {
	if castling == "-" {
		return nil
	}
	for i := 0; i < len(castling); i++ {
		switch castling[i] {
		case 'K':
			pos.Flags |= flagWCastleK
		case 'Q':
			pos.Flags |= flagWCastleQ
		case 'k':
			pos.Flags |= flagBCastleK
		case 'q':
			pos.Flags |= flagBCastleQ
		default:
			return fmt.Errorf("invalid castling character: %q", castling[i])
		}
	}
	return nil
}

// ToFEN returns the FEN representation of the position. The halfmove clock
// is not tracked and is always emitted as 0.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			kind, ok := p.PieceOnSquare(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			color, _ := p.PlayerOnSquare(sq)
			sb.WriteByte(PieceChar(kind, color))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingString())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantTarget().String())

	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(p.FullTurnNumber()))

	return sb.String()
}
