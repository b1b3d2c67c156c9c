package chessmg

import (
	"fmt"
	"strings"
)

// Move encodes a chess move in 16 bits.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift = 0  // 6 bits
	moveToShift   = 6  // 6 bits
	moveFlagShift = 12 // 4 bits
)

// MoveFlag marks the special cases the applier must handle.
type MoveFlag uint8

const (
	FlagQuiet MoveFlag = iota // ordinary move or capture
	FlagDoublePush
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
	FlagPromoteKnight
	FlagPromoteBishop
	FlagPromoteRook
	FlagPromoteQueen
)

// NullMove is the zero Move. It is never legal.
const NullMove Move = 0

// NewMove constructs a Move value from components.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from&0x3F)<<moveFromShift |
		uint16(to&0x3F)<<moveToShift |
		uint16(flag&0xF)<<moveFlagShift)
}

// NewPromotion constructs a promotion to kind k (Knight through Queen).
func NewPromotion(from, to Square, k PieceKind) Move {
	return NewMove(from, to, promotionFlag(k))
}

func promotionFlag(k PieceKind) MoveFlag {
	switch k {
	case Knight:
		return FlagPromoteKnight
	case Bishop:
		return FlagPromoteBishop
	case Rook:
		return FlagPromoteRook
	case Queen:
		return FlagPromoteQueen
	}
	return FlagQuiet
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((m >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((m >> moveToShift) & 0x3F) }

// Flag returns the special move flag.
func (m Move) Flag() MoveFlag { return MoveFlag((m >> moveFlagShift) & 0xF) }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flag() >= FlagPromoteKnight }

// IsCastle reports whether the move is a castling king move.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueenside
}

// Promotion returns the kind promoted to, or NoKind.
func (m Move) Promotion() PieceKind {
	switch m.Flag() {
	case FlagPromoteKnight:
		return Knight
	case FlagPromoteBishop:
		return Bishop
	case FlagPromoteRook:
		return Rook
	case FlagPromoteQueen:
		return Queen
	}
	return NoKind
}

// String produces coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if k := m.Promotion(); k != NoKind {
		s += strings.ToLower(pieceLetters[k : k+1])
	}
	return s
}

// ParseMove converts coordinate notation (e2e4, e7e8q) into a Move carrying
// only from, to and promotion. The remaining flags depend on the position;
// use Position.ResolveMove to obtain the generator's move.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return NullMove, fmt.Errorf("%w %q: bad length", ErrInvalidMove, movestr)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("%w %q: %v", ErrInvalidMove, movestr, err)
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("%w %q: %v", ErrInvalidMove, movestr, err)
	}
	if len(movestr) == 4 {
		return NewMove(from, to, FlagQuiet), nil
	}
	var promo PieceKind
	switch movestr[4] {
	case 'q':
		promo = Queen
	case 'r':
		promo = Rook
	case 'b':
		promo = Bishop
	case 'n':
		promo = Knight
	default:
		return NullMove, fmt.Errorf("%w %q: invalid promotion piece", ErrInvalidMove, movestr)
	}
	return NewPromotion(from, to, promo), nil
}
