package chessmg

// CastlingRights is a bit set of the four castling flags.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside
)

// Has reports whether every flag in r is set.
func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }

// String returns the four-character mask, e.g. "KQkq" or "K--q".
func (cr CastlingRights) String() string {
	out := []byte("----")
	for i, ch := range []byte("KQkq") {
		if cr&(1<<uint(i)) != 0 {
			out[i] = ch
		}
	}
	return string(out)
}

// castleRightsMask[sq] lists the rights lost when a piece leaves or lands on sq.
var castleRightsMask = func() (m [64]CastlingRights) {
	m[E1] = CastleWhiteKingside | CastleWhiteQueenside
	m[H1] = CastleWhiteKingside
	m[A1] = CastleWhiteQueenside
	m[E8] = CastleBlackKingside | CastleBlackQueenside
	m[H8] = CastleBlackKingside
	m[A8] = CastleBlackQueenside
	return m
}()

// castleSpec is the fixed geometry of one castling move.
type castleSpec struct {
	right            CastlingRights
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	transit          Square // square the king crosses
	empty            uint64 // squares between king and rook
}

// castles[color][0] is kingside, castles[color][1] queenside.
var castles = [2][2]castleSpec{
	White: {
		{CastleWhiteKingside, E1, G1, H1, F1, F1, F1.bit() | G1.bit()},
		{CastleWhiteQueenside, E1, C1, A1, D1, D1, B1.bit() | C1.bit() | D1.bit()},
	},
	Black: {
		{CastleBlackKingside, E8, G8, H8, F8, F8, F8.bit() | G8.bit()},
		{CastleBlackQueenside, E8, C8, A8, D8, D8, B8.bit() | C8.bit() | D8.bit()},
	},
}

func castleFor(c Color, flag MoveFlag) *castleSpec {
	if flag == FlagCastleQueenside {
		return &castles[c][1]
	}
	return &castles[c][0]
}

// Position is a complete chess position: the board plus side to move,
// castling rights, en passant target and the two move counters.
//
// Position is a value type. Copies are independent, which is what the legality
// filter and parallel search rely on.
type Position struct {
	board    Board
	side     Color
	castling CastlingRights
	ep       Square // target square behind a pawn that just double-pushed, or NoSquare
	halfmove int    // half-moves since the last capture or pawn move
	fullmove int    // starts at 1, incremented after Black's move
}

// StartPosition returns the standard initial position.
func StartPosition() Position {
	p := Position{side: White, castling: AllCastling, ep: NoSquare, fullmove: 1}
	back := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f, k := range back {
		p.board.add(Square(f), NewPiece(White, k))
		p.board.add(Square(8+f), WhitePawn)
		p.board.add(Square(48+f), BlackPawn)
		p.board.add(Square(56+f), NewPiece(Black, k))
	}
	return p
}

// Board returns a copy of the board.
func (p *Position) Board() Board { return p.board }

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece { return p.board.PieceAt(sq) }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.side }

// Castling returns the current castling rights.
func (p *Position) Castling() CastlingRights { return p.castling }

// EnPassant returns the en passant target square or NoSquare.
func (p *Position) EnPassant() Square { return p.ep }

// HalfmoveClock returns the number of half-moves since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmove }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (p *Position) FullmoveNumber() int { return p.fullmove }

// InCheck reports whether color c's king is attacked.
func (p *Position) InCheck(c Color) bool { return p.board.inCheck(c) }

// Checkers returns the squares of the pieces giving check to the side to move.
func (p *Position) Checkers() SquareSet {
	ks := p.board.KingSquare(p.side)
	if ks == NoSquare {
		return 0
	}
	return Attackers(&p.board, ks, p.side.Other())
}

// IsCapture reports whether m captures a piece, en passant included.
func (p *Position) IsCapture(m Move) bool {
	return m.Flag() == FlagEnPassant || p.board.pieces[m.To()] != NoPiece
}

// epCapturable reports whether a pawn of the side to move attacks the en passant target.
func (p *Position) epCapturable() bool {
	if p.ep == NoSquare {
		return false
	}
	return pawnAttacks[p.side.Other()][p.ep]&p.board.kinds[p.side][Pawn] != 0
}

// String returns the serialized record of the position.
func (p Position) String() string { return p.Encode() }
