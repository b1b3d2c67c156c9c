package chessmg

import "math/bits"

// Board is the 8x8 grid of optional pieces. It carries no rule knowledge.
//
// The mailbox array is mirrored by per-side, per-kind bitboards and a Zobrist
// component over the piece placement; all three are kept in sync by Place and
// Remove. Board is a plain value: assigning it copies the whole grid.
type Board struct {
	pieces    [64]Piece
	kinds     [2][7]uint64 // kinds[color][kind], index 0 unused
	occupancy [2]uint64    // occupancy[White], occupancy[Black]
	key       uint64
}

func checkSquare(sq Square) {
	if !sq.Valid() {
		panic(&OutOfRangeError{Rank: sq.Rank(), File: sq.File()})
	}
}

// PieceAt returns the piece on sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	checkSquare(sq)
	return b.pieces[sq]
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	checkSquare(sq)
	return b.pieces[sq] == NoPiece
}

// Place puts p on sq, replacing whatever was there. Placing NoPiece clears the square.
func (b *Board) Place(sq Square, p Piece) {
	checkSquare(sq)
	b.remove(sq)
	b.add(sq, p)
}

// Remove clears sq and returns the piece that was on it.
func (b *Board) Remove(sq Square) Piece {
	checkSquare(sq)
	return b.remove(sq)
}

// Occupancy returns the bitboard of squares held by color c.
func (b *Board) Occupancy(c Color) uint64 { return b.occupancy[c] }

// All returns the bitboard of all occupied squares.
func (b *Board) All() uint64 { return b.occupancy[White] | b.occupancy[Black] }

// Pieces returns the bitboard of c's pieces of kind k.
func (b *Board) Pieces(c Color, k PieceKind) uint64 {
	if k == NoKind || k > King {
		return 0
	}
	return b.kinds[c][k]
}

// Count returns the number of pieces of color c and kind k.
func (b *Board) Count(c Color, k PieceKind) int { return bits.OnesCount64(b.Pieces(c, k)) }

// KingSquare returns the square of c's king, or NoSquare when absent.
func (b *Board) KingSquare(c Color) Square {
	kings := b.kinds[c][King]
	if kings == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(kings))
}

// add places a piece on an empty square and updates bitboards and the placement key.
func (b *Board) add(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	bit := sq.bit()
	c := p.Color()
	b.pieces[sq] = p
	b.occupancy[c] |= bit
	b.kinds[c][p.Kind()] |= bit
	b.key ^= zobristPiece[p][sq]
}

// remove clears a square and returns its former piece.
func (b *Board) remove(sq Square) Piece {
	p := b.pieces[sq]
	if p == NoPiece {
		return NoPiece
	}
	mask := ^sq.bit()
	c := p.Color()
	b.pieces[sq] = NoPiece
	b.occupancy[c] &= mask
	b.kinds[c][p.Kind()] &= mask
	b.key ^= zobristPiece[p][sq]
	return p
}

// Validate checks internal consistency between the mailbox, the bitboards
// and the placement key.
func (b *Board) Validate() bool {
	var fresh Board
	for sq := A1; sq <= H8; sq++ {
		fresh.add(sq, b.pieces[sq])
	}
	return fresh == *b
}

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}
