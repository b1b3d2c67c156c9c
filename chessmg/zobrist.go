package chessmg

import "math/rand"

// Zobrist keys for piece-on-square, castling state, en passant file and side to move.
var zobristPiece [16][64]uint64 // indexed by piece code
var zobristCastle [16]uint64    // one key per castling rights state
var zobristEnPassant [8]uint64
var zobristSide uint64 // Black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so signatures are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the position signature used for repetition detection.
//
// The en passant file only contributes when a pawn of the side to move stands
// ready to capture onto the target, so two positions that differ only by a
// dead en passant target compare equal.
func (p *Position) Hash() uint64 {
	key := p.board.key ^ zobristCastle[p.castling]
	if p.side == Black {
		key ^= zobristSide
	}
	if p.epCapturable() {
		key ^= zobristEnPassant[p.ep.File()]
	}
	return key
}

// ComputeHash recomputes the signature from scratch.
func (p *Position) ComputeHash() uint64 {
	var key uint64
	for sq := A1; sq <= H8; sq++ {
		if pc := p.board.pieces[sq]; pc != NoPiece {
			key ^= zobristPiece[pc][sq]
		}
	}
	if p.side == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castling]
	if p.epCapturable() {
		key ^= zobristEnPassant[p.ep.File()]
	}
	return key
}
