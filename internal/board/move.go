package board

// Move encodes a single piece move in 64 bits. Moves are reversible: the
// position's previous flags travel inside the move, so Unmake needs no
// auxiliary undo stack.
//
// Bit layout:
//
//	bits 0-15  : position flags (low 16) before the move
//	bits 16-21 : source square
//	bits 22-27 : destination square
//	bit  28    : set if the move is a promotion
//	bits 29-31 : promotion piece kind
//	bit  32    : set if the move is a capture
//	bits 33-35 : captured piece kind
//	bits 36-41 : capture square (differs from destination for en passant)
//	bit  42    : set if the move is a castle
//
// Promotion fields are zero unless bit 28 is set and capture fields are zero
// unless bit 32 is set, so two moves are the same move iff they compare
// equal with ==.
type Move uint64

// MoveEnd is the sentinel returned when no more moves are available, or by
// move construction when the input does not describe a legal move.
const MoveEnd Move = 0xFFFFFFFFFFFFFFFF

const (
	movePrevFlags     Move = 0x000000FFFF
	moveSrc           Move = 0x00003F0000
	moveSrcShift           = 16
	moveDst           Move = 0x0000FC00000
	moveDstShift           = 22
	moveIsPromote     Move = 0x00010000000
	movePromoteShift       = 29
	movePromoteKind   Move = 0x000E0000000
	moveIsCapture     Move = 0x00100000000
	moveCaptureShift       = 33
	moveCaptureKind   Move = 0x00E00000000
	moveCaptureSq     Move = 0x3F000000000
	moveCaptureSqShft      = 36
	moveIsCastle      Move = 0x40000000000
	moveCastleShift        = 42
)

// PrevFlags returns the low 16 flag bits of the position the move was
// constructed against.
func (m Move) PrevFlags() uint16 {
	return uint16(m & movePrevFlags)
}

// Src returns the source square of the move.
func (m Move) Src() Square {
	return Square((m & moveSrc) >> moveSrcShift)
}

// Dst returns the destination square of the move.
func (m Move) Dst() Square {
	return Square((m & moveDst) >> moveDstShift)
}

// IsPromotion reports whether the move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m&moveIsPromote != 0
}

// PromotionKind returns the piece kind a pawn is promoted to. Only valid
// when IsPromotion is true.
func (m Move) PromotionKind() PieceKind {
	return PieceKind((m & movePromoteKind) >> movePromoteShift)
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m&moveIsCapture != 0
}

// CapturedKind returns the kind of the captured piece. Only valid when
// IsCapture is true.
func (m Move) CapturedKind() PieceKind {
	return PieceKind((m & moveCaptureKind) >> moveCaptureShift)
}

// CaptureSquare returns the square the captured piece stood on, or
// InvalidSquare if the move is not a capture. For en passant the capture
// square differs from the destination.
func (m Move) CaptureSquare() Square {
	if !m.IsCapture() {
		return InvalidSquare
	}
	return Square((m & moveCaptureSq) >> moveCaptureSqShft)
}

// IsCastle reports whether the move is a castle (encoded as the king's
// two-square move).
func (m Move) IsCastle() bool {
	return m&moveIsCastle != 0
}

// String returns the move in pure long algebraic notation, e.g. "e2e4" or
// "a7a8q". MoveEnd renders as "0000".
func (m Move) String() string {
	if m == MoveEnd {
		return "0000"
	}
	s := m.Src().String() + m.Dst().String()
	if m.IsPromotion() {
		s += string(promoteChars[m.PromotionKind()])
	}
	return s
}

// constructMove packs the move fields. Promotion and capture fields are
// normalized to zero when the corresponding flag is unset.
func constructMove(prevFlags uint16, src, dst Square, isPromote bool, promote PieceKind,
	isCapture bool, captured PieceKind, captureSq Square, isCastle bool) Move {
	m := Move(prevFlags) |
		Move(src)<<moveSrcShift |
		Move(dst)<<moveDstShift
	if isPromote {
		m |= moveIsPromote | Move(promote)<<movePromoteShift&movePromoteKind
	}
	if isCapture {
		m |= moveIsCapture |
			Move(captured)<<moveCaptureShift&moveCaptureKind |
			Move(captureSq)<<moveCaptureSqShft&moveCaptureSq
	}
	if isCastle {
		m |= moveIsCastle
	}
	return m
}

// epTargetPawnSquare maps an en passant target square to the square of the
// pawn it captures: the pawn sits one rank ahead of the target, on rank 4
// behind a rank-3 target and on rank 5 behind a rank-6 target.
func epTargetPawnSquare(ep Square) Square {
	switch ep.Rank() {
	case 2:
		return ep + 8
	case 5:
		return ep - 8
	}
	panic("board: en passant target off ranks 3 and 6")
}

// NewMove constructs a move from a source square, destination square and
// promotion info, reconstructing capture, en passant and castle details from
// the position the move would be applied on. The position is not mutated.
// Returns MoveEnd if the components cannot describe a move on this position
// (e.g. the destination holds a friendly piece).
func NewMove(src, dst Square, isPromote bool, promote PieceKind, p *Position) Move {
	isCapture := false
	captureSq := InvalidSquare
	var captured PieceKind
	if k, ok := p.PieceOnSquare(dst); ok {
		if c, _ := p.PlayerOnSquare(dst); c == p.SideToMove() {
			return MoveEnd
		}
		isCapture = true
		captured = k
		captureSq = dst
	}
	srcKind, srcOccupied := p.PieceOnSquare(src)
	if ep := p.EnPassantTarget(); ep != InvalidSquare && dst == ep && srcOccupied && srcKind == Pawn {
		captureSq = epTargetPawnSquare(ep)
		k, ok := p.PieceOnSquare(captureSq)
		if !ok || k != Pawn {
			return MoveEnd
		}
		isCapture = true
		captured = Pawn
	}
	isCastle := srcOccupied && srcKind == King &&
		(src == E1 && (dst == C1 || dst == G1) || src == E8 && (dst == C8 || dst == G8))

	return constructMove(uint16(p.Flags), src, dst, isPromote, promote,
		isCapture, captured, captureSq, isCastle)
}

// moveStringWellFormed reports whether a string has the shape of a pure
// algebraic move: four or five characters, files at 0 and 2, ranks at 1 and
// 3, and an optional promotion letter from {n, b, r, q}.
func moveStringWellFormed(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	if !fileWellFormed(s[0]) || !rankWellFormed(s[1]) {
		return false
	}
	if !fileWellFormed(s[2]) || !rankWellFormed(s[3]) {
		return false
	}
	if len(s) == 5 {
		if _, ok := promotionKindFromChar(s[4]); !ok {
			return false
		}
	}
	return true
}

func fileWellFormed(b byte) bool {
	return b >= 'a' && b <= 'h' || b >= 'A' && b <= 'H'
}

func rankWellFormed(b byte) bool {
	return b >= '1' && b <= '8'
}

// MoveFromString parses a pure algebraic move string ("e2e4", "a7a8q")
// against a position and returns the fully encoded move. Returns MoveEnd if
// the string is malformed or does not describe a legal move on the position.
func MoveFromString(s string, p *Position) Move {
	if !moveStringWellFormed(s) {
		return MoveEnd
	}
	src := ParseSquare(s[0:2])
	dst := ParseSquare(s[2:4])
	isPromote := false
	var promote PieceKind
	if len(s) == 5 {
		isPromote = true
		promote, _ = promotionKindFromChar(s[4])
	}
	m := NewMove(src, dst, isPromote, promote, p)
	if m == MoveEnd || !MoveIsLegal(m, p) {
		return MoveEnd
	}
	return m
}
