package chessmg

import "golang.org/x/exp/slices"

// filter modes for selective generation
type genFilter int

const (
	genAll genFilter = iota
	genCaptures
	genQuiets
)

// pieceOrder is the generation order for the non-pawn kinds.
var pieceOrder = [...]PieceKind{Knight, Bishop, Rook, Queen, King}

var promotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

func appendPromotions(moves []Move, from, to Square) []Move {
	for _, k := range promotionKinds {
		moves = append(moves, NewPromotion(from, to, k))
	}
	return moves
}

// PseudoLegalMoves returns every move that obeys piece geometry and occupancy
// for the side to move. The moves may leave the mover's king in check, and
// castling is only checked for rights, rook presence and an empty path.
func (p *Position) PseudoLegalMoves() []Move {
	return p.appendPseudo(make([]Move, 0, 64), genAll)
}

// appendPseudo appends pseudo-legal moves matching the filter into dst.
// En passant and capture-promotions count as captures, push-promotions as quiets.
func (p *Position) appendPseudo(dst []Move, filter genFilter) []Move {
	moves := dst
	us := p.side
	them := us.Other()

	own := p.board.occupancy[us]
	all := own | p.board.occupancy[them]
	// The enemy king blocks rays but is never a capture target.
	prey := p.board.occupancy[them] &^ p.board.kinds[them][King]

	wantQuiet := filter != genCaptures
	wantCapture := filter != genQuiets

	// Pawns
	forward, startRank, lastRank := Square(8), 1, 7
	if us == Black {
		forward, startRank, lastRank = -8, 6, 0
	}
	for pawns := p.board.kinds[us][Pawn]; pawns != 0; {
		from := Square(popLSB(&pawns))

		if one := from + forward; wantQuiet && all&one.bit() == 0 {
			if one.Rank() == lastRank {
				moves = appendPromotions(moves, from, one)
			} else {
				moves = append(moves, NewMove(from, one, FlagQuiet))
				if two := one + forward; from.Rank() == startRank && all&two.bit() == 0 {
					moves = append(moves, NewMove(from, two, FlagDoublePush))
				}
			}
		}

		if !wantCapture {
			continue
		}
		caps := pawnAttacks[us][from]
		for t := caps & prey; t != 0; {
			to := Square(popLSB(&t))
			if to.Rank() == lastRank {
				moves = appendPromotions(moves, from, to)
			} else {
				moves = append(moves, NewMove(from, to, FlagQuiet))
			}
		}
		if p.ep != NoSquare && caps&p.ep.bit() != 0 {
			moves = append(moves, NewMove(from, p.ep, FlagEnPassant))
		}
	}

	// Knights, sliders and the king share one table-driven loop.
	for _, k := range pieceOrder {
		piece := NewPiece(us, k)
		for m := p.board.kinds[us][k]; m != 0; {
			from := Square(popLSB(&m))
			targets := attacksFrom(piece, from, all) &^ own &^ p.board.kinds[them][King]
			if !wantCapture {
				targets &^= prey
			}
			if !wantQuiet {
				targets &= prey
			}
			for t := targets; t != 0; {
				moves = append(moves, NewMove(from, Square(popLSB(&t)), FlagQuiet))
			}
		}
	}

	// Castling (rights, pieces in place, empty path). Attack tests belong to the legality filter.
	if wantQuiet {
		king, rook := NewPiece(us, King), NewPiece(us, Rook)
		for i, flag := range [2]MoveFlag{FlagCastleKingside, FlagCastleQueenside} {
			cs := &castles[us][i]
			if p.castling.Has(cs.right) && all&cs.empty == 0 &&
				p.board.pieces[cs.kingFrom] == king && p.board.pieces[cs.rookFrom] == rook {
				moves = append(moves, NewMove(cs.kingFrom, cs.kingTo, flag))
			}
		}
	}

	return moves
}

// isLegal applies the legality filter to a pseudo-legal move: castling may not
// start from or pass through an attacked square, and no move may leave the
// mover's king in check. The check is simulated on a scratch copy.
func (p *Position) isLegal(m Move) bool {
	us := p.side
	if m.IsCastle() {
		cs := castleFor(us, m.Flag())
		if p.board.inCheck(us) {
			return false
		}
		if p.board.attackersWithOcc(cs.transit, us.Other(), p.board.All()) != 0 {
			return false
		}
	}
	next := *p
	next.play(m)
	return !next.board.inCheck(us)
}

// appendLegal appends the legal moves matching filter into dst, filtering in place.
func (p *Position) appendLegal(dst []Move, filter genFilter) []Move {
	start := len(dst)
	moves := p.appendPseudo(dst, filter)
	legal := moves[:start]
	for _, m := range moves[start:] {
		if p.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves returns all legal moves for the side to move.
func (p *Position) LegalMoves() []Move { return p.appendLegal(make([]Move, 0, 64), genAll) }

// LegalMovesInto appends legal moves into dst (reusing its capacity) and returns it.
func (p *Position) LegalMovesInto(dst []Move) []Move { return p.appendLegal(dst[:0], genAll) }

// LegalCaptures returns legal captures, including en passant and capture-promotions.
func (p *Position) LegalCaptures() []Move { return p.appendLegal(make([]Move, 0, 32), genCaptures) }

// LegalQuiets returns legal non-captures, including castling and push-promotions.
func (p *Position) LegalQuiets() []Move { return p.appendLegal(make([]Move, 0, 64), genQuiets) }

// IsLegal reports whether m is a member of the legal move set.
func (p *Position) IsLegal(m Move) bool {
	return slices.Contains(p.PseudoLegalMoves(), m) && p.isLegal(m)
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	var buf [128]Move
	for _, m := range p.appendPseudo(buf[:0], genAll) {
		if p.isLegal(m) {
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (p *Position) InCheckmate() bool {
	return p.board.inCheck(p.side) && !p.HasLegalMoves()
}

// InStalemate reports whether the side to move has no legal move and is not in check.
func (p *Position) InStalemate() bool {
	return !p.board.inCheck(p.side) && !p.HasLegalMoves()
}

// IsDrawBy50 reports a fifty-move rule claim (the clock counts half-moves).
func (p *Position) IsDrawBy50() bool { return p.halfmove >= 100 }

// GivesCheck reports whether the legal move m leaves the opponent in check.
func (p *Position) GivesCheck(m Move) bool {
	next := *p
	next.play(m)
	return next.board.inCheck(next.side)
}

// ResolveMove maps coordinate notation onto the matching legal move.
func (p *Position) ResolveMove(text string) (Move, error) {
	req, err := ParseMove(text)
	if err != nil {
		return NullMove, err
	}
	for _, m := range p.LegalMoves() {
		if m.From() == req.From() && m.To() == req.To() && m.Promotion() == req.Promotion() {
			return m, nil
		}
	}
	return NullMove, &IllegalMoveError{Move: req, Position: p.Encode()}
}
