package chessmg

// Play applies a legal move to the position in place. It is the cheap
// make-move for search code that keeps its own copies; it does not check
// legality, so pass only moves from LegalMoves.
func (p *Position) Play(m Move) { p.play(m) }

// play applies m to the position without any legality check and returns the
// captured piece (NoPiece for none). Callers pass moves produced by the
// generator; the legality filter and Game.Apply rely on it being total.
func (p *Position) play(m Move) Piece {
	from, to, flag := m.From(), m.To(), m.Flag()
	us := p.side

	moving := p.board.remove(from)

	// Handle capture (including en passant, whose pawn sits behind 'to')
	var captured Piece
	if flag == FlagEnPassant {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		captured = p.board.remove(capSq)
	} else {
		captured = p.board.remove(to)
	}

	// Move the piece (or promote)
	placed := moving
	if k := m.Promotion(); k != NoKind {
		placed = NewPiece(us, k)
	}
	p.board.add(to, placed)

	// Castling rook movement
	if m.IsCastle() {
		cs := castleFor(us, flag)
		p.board.add(cs.rookTo, p.board.remove(cs.rookFrom))
	}

	// A king or rook leaving its home square, or anything landing on a rook
	// home square, clears the matching rights.
	p.castling &^= castleRightsMask[from] | castleRightsMask[to]

	// The en passant target lives for exactly one ply.
	p.ep = NoSquare
	if flag == FlagDoublePush {
		p.ep = (from + to) / 2
	}

	if moving.Kind() == Pawn || captured != NoPiece {
		p.halfmove = 0
	} else {
		p.halfmove++
	}

	// Fullmove number increments after Black's move
	if us == Black {
		p.fullmove++
	}
	p.side = us.Other()
	return captured
}
