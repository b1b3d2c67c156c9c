package chessmg

// Perft counts the leaf nodes of the legal move tree below p to the given
// depth. Each ply owns one reusable move buffer; children are played on
// value copies so p is never modified.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	plies := make([][]Move, depth+1)
	for i := range plies {
		plies[i] = make([]Move, 0, 128)
	}
	return perft(p, depth, plies)
}

func perft(p *Position, depth int, plies [][]Move) uint64 {
	moves := p.appendLegal(plies[depth][:0], genAll)
	plies[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var leaves uint64
	for _, m := range moves {
		child := *p
		child.play(m)
		leaves += perft(&child, depth-1, plies)
	}
	return leaves
}

// PerftDivide splits Perft by root move. An empty map is returned for
// depth 0 or when the side to move has no legal move.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	split := make(map[Move]uint64)
	if depth <= 0 {
		return split
	}
	for _, m := range p.LegalMoves() {
		child := *p
		child.play(m)
		split[m] = Perft(&child, depth-1)
	}
	return split
}
