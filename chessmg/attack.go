package chessmg

import "math/bits"

// direction is a (rank, file) step on the board.
type direction struct {
	dRank, dFile int
}

// Ray directions. The first four are orthogonal, the last four diagonal.
const (
	north = iota
	south
	east
	west
	northEast
	northWest
	southEast
	southWest
)

var directions = [8]direction{
	north: {1, 0}, south: {-1, 0}, east: {0, 1}, west: {0, -1},
	northEast: {1, 1}, northWest: {1, -1}, southEast: {-1, 1}, southWest: {-1, -1},
}

var knightSteps = [8]direction{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// sliderDirections is the ray rule table for the sliding kinds.
var sliderDirections = [7][]int{
	Bishop: {northEast, northWest, southEast, southWest},
	Rook:   {north, south, east, west},
	Queen:  {north, south, east, west, northEast, northWest, southEast, southWest},
}

// rays[d][sq] holds the squares strictly beyond sq in direction d up to the edge.
var rays [8][64]uint64

// increasing[d] is true when direction d walks toward higher square indices,
// so the nearest blocker is the lowest set bit.
var increasing [8]bool

// stepAttacks holds the fixed offset tables for Knight and King.
var stepAttacks [7][64]uint64

// pawnAttacks[color][sq] gives the squares a pawn of color attacks from sq.
var pawnAttacks [2][64]uint64

func init() {
	initAttackTables()
}

func offset(sq Square, d direction) (Square, bool) {
	r, f := sq.Rank()+d.dRank, sq.File()+d.dFile
	if r < 0 || r > 7 || f < 0 || f > 7 {
		return NoSquare, false
	}
	return Square(r*8 + f), true
}

func initAttackTables() {
	for d, dir := range directions {
		increasing[d] = dir.dRank > 0 || (dir.dRank == 0 && dir.dFile > 0)
	}
	for sq := A1; sq <= H8; sq++ {
		for _, st := range knightSteps {
			if t, ok := offset(sq, st); ok {
				stepAttacks[Knight][sq] |= t.bit()
			}
		}
		for d, dir := range directions {
			if t, ok := offset(sq, dir); ok {
				stepAttacks[King][sq] |= t.bit()
			}
			var ray uint64
			for t, ok := offset(sq, dir); ok; t, ok = offset(t, dir) {
				ray |= t.bit()
			}
			rays[d][sq] = ray
		}
		for _, df := range []int{-1, 1} {
			if t, ok := offset(sq, direction{1, df}); ok {
				pawnAttacks[White][sq] |= t.bit()
			}
			if t, ok := offset(sq, direction{-1, df}); ok {
				pawnAttacks[Black][sq] |= t.bit()
			}
		}
	}
}

// slide casts rays from sq in the given directions. Each ray stops at the
// first occupied square, which is included.
func slide(sq Square, dirs []int, occ uint64) uint64 {
	var attacks uint64
	for _, d := range dirs {
		ray := rays[d][sq]
		if blockers := ray & occ; blockers != 0 {
			var first int
			if increasing[d] {
				first = bits.TrailingZeros64(blockers)
			} else {
				first = 63 - bits.LeadingZeros64(blockers)
			}
			ray &^= rays[d][first]
		}
		attacks |= ray
	}
	return attacks
}

// attacksFrom returns the squares piece p threatens from sq given occupancy occ.
func attacksFrom(p Piece, sq Square, occ uint64) uint64 {
	switch k := p.Kind(); k {
	case Pawn:
		return pawnAttacks[p.Color()][sq]
	case Knight, King:
		return stepAttacks[k][sq]
	case Bishop, Rook, Queen:
		return slide(sq, sliderDirections[k], occ)
	}
	return 0
}

// AttackedBy returns every square threatened by a piece of color c,
// including squares held by c's own pieces.
func AttackedBy(b *Board, c Color) SquareSet {
	occ := b.All()
	var attacked uint64
	for m := b.occupancy[c]; m != 0; {
		sq := Square(popLSB(&m))
		attacked |= attacksFrom(b.pieces[sq], sq, occ)
	}
	return SquareSet(attacked)
}

// Attackers returns the squares of c's pieces that attack sq.
func Attackers(b *Board, sq Square, by Color) SquareSet {
	checkSquare(sq)
	return SquareSet(b.attackersWithOcc(sq, by, b.All()))
}

// IsSquareAttacked reports whether sq is attacked by a piece of color by.
func IsSquareAttacked(b *Board, sq Square, by Color) bool {
	checkSquare(sq)
	return b.attackersWithOcc(sq, by, b.All()) != 0
}

// attackersWithOcc looks outward from sq using reverse tables: a pawn of by
// attacks sq exactly when a pawn of the other color on sq would attack it.
func (b *Board) attackersWithOcc(sq Square, by Color, occ uint64) uint64 {
	own := &b.kinds[by]
	found := pawnAttacks[by.Other()][sq] & own[Pawn]
	found |= stepAttacks[Knight][sq] & own[Knight]
	found |= stepAttacks[King][sq] & own[King]
	found |= slide(sq, sliderDirections[Rook], occ) & (own[Rook] | own[Queen])
	found |= slide(sq, sliderDirections[Bishop], occ) & (own[Bishop] | own[Queen])
	return found
}

// inCheck reports whether c's king is attacked. A board without a king of c
// is never in check.
func (b *Board) inCheck(c Color) bool {
	ks := b.KingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.attackersWithOcc(ks, c.Other(), b.All()) != 0
}
