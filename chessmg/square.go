package chessmg

import (
	"errors"
	"math/bits"
	"strings"
)

// Square represents a board position (0-63), rank*8 + file.
// Rank 0 is White's back rank, file 0 is the a-file.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from 0-indexed rank and file.
// It panics with *OutOfRangeError when either coordinate is outside 0-7.
func NewSquare(rank, file int) Square {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		panic(&OutOfRangeError{Rank: rank, File: file})
	}
	return Square(rank*8 + file)
}

// Rank returns the 0-indexed rank of the square.
func (sq Square) Rank() int { return int(sq) >> 3 }

// File returns the 0-indexed file of the square.
func (sq Square) File() int { return int(sq) & 7 }

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool { return sq >= A1 && sq <= H8 }

// String returns the algebraic name of the square ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.New("invalid algebraic square length")
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.New("invalid algebraic square")
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

func (sq Square) bit() uint64 { return 1 << uint(sq) }

// SquareSet is a set of squares packed into a bitboard.
type SquareSet uint64

// Contains reports whether sq is a member of the set.
func (s SquareSet) Contains(sq Square) bool { return sq.Valid() && uint64(s)&sq.bit() != 0 }

// Len returns the number of squares in the set.
func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Squares lists the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for m := uint64(s); m != 0; {
		out = append(out, Square(popLSB(&m)))
	}
	return out
}

func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		names = append(names, sq.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece type used for table lookups.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k PieceKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Piece packs a color and a kind. Black pieces are (kind | 8) so that
// piece & 7 gives the kind and piece & 8 the side.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
)

// NewPiece combines a side and a kind. NoKind yields NoPiece.
func NewPiece(c Color, k PieceKind) Piece {
	if k == NoKind || k > King {
		return NoPiece
	}
	return Piece(k) | Piece(c)<<3
}

// Kind returns the colorless kind of the piece.
func (p Piece) Kind() PieceKind { return PieceKind(p & 7) }

// Color returns the owner of the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p>>3) & 1 }

const pieceLetters = " PNBRQK"

// String returns the FEN letter of the piece, uppercase for White.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	ch := pieceLetters[p.Kind()]
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return string(ch)
}

// pieceFromLetter converts a FEN letter to a piece; NoPiece when unknown.
func pieceFromLetter(ch byte) Piece {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	}
	idx := strings.IndexByte(pieceLetters, ch)
	if idx <= 0 {
		return NoPiece
	}
	return NewPiece(c, PieceKind(idx))
}
